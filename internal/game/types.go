package game

// Phase represents the current street of a hand
type Phase int

const (
	Preflop Phase = iota
	Flop
	Turn
	River
	Showdown
)

func (p Phase) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[p]
}

// Action represents a player action
type Action int

const (
	Fold Action = iota
	Check
	Call
	Raise
	AllIn
)

func (a Action) String() string {
	return [...]string{"fold", "check", "call", "raise", "allin"}[a]
}

// Decision is an intended action returned by an agent. Amount is the number
// of chips to add with this action; it is only meaningful for Raise.
type Decision struct {
	Action Action
	Amount int
}

// ActionEnvelope describes the legal betting range for the acting seat,
// mirroring the bet slider of the original interface.
type ActionEnvelope struct {
	NeedToCall int // chips required to match the current bet
	MinRaise   int // minimum chips to add for a full raise (call + last raise size)
	Min        int // slider minimum
	Max        int // slider maximum (the full stack)
	Step       int // slider step
}

// Applied reports the action that was actually applied after normalization.
// Amount is the chips added; To is the seat's round bet afterwards.
type Applied struct {
	Action Action
	Amount int
	To     int
}
