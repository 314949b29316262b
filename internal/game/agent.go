package game

import "github.com/Tehes/poker/internal/deck"

// SeatView is the public state of one seat as agents may observe it
type SeatView struct {
	Name       string
	Chips      int
	RoundBet   int
	TotalBet   int
	Folded     bool
	AllIn      bool
	Dealer     bool
	SmallBlind bool
	BigBlind   bool
	IsBot      bool
	Stats      Stats
}

// TableView is a read-only snapshot handed to the acting agent. It exposes
// only that agent's hole cards; opponents appear as public SeatViews.
type TableView struct {
	Phase           Phase
	Pot             int
	CurrentBet      int
	SmallBlind      int
	BigBlind        int
	LastRaiseSize   int
	RaisesThisRound int
	Community       []deck.Card

	Seats  []SeatView
	Acting int // index into Seats

	HoleCards []deck.Card
	Line      *Line // betting line memory of the acting seat, mutable
}

// Hero returns the acting seat's view
func (v TableView) Hero() SeatView {
	return v.Seats[v.Acting]
}

// Opponents returns the live opponents of the acting seat
func (v TableView) Opponents() []SeatView {
	opps := make([]SeatView, 0, len(v.Seats)-1)
	for i, s := range v.Seats {
		if i != v.Acting && !s.Folded {
			opps = append(opps, s)
		}
	}
	return opps
}

// FacingAllIn reports whether any live opponent is all in
func (v TableView) FacingAllIn() bool {
	for _, o := range v.Opponents() {
		if o.AllIn {
			return true
		}
	}
	return false
}

// Agent decides actions for a seat. Implementations must stay within the
// envelope; the table normalizes anything that falls outside it.
type Agent interface {
	Act(view TableView, env ActionEnvelope) Decision
}

// AgentFunc adapts a function to the Agent interface
type AgentFunc func(view TableView, env ActionEnvelope) Decision

func (f AgentFunc) Act(view TableView, env ActionEnvelope) Decision {
	return f(view, env)
}

// ViewFor builds the acting snapshot for the given seat
func (t *Table) ViewFor(seat int) TableView {
	seats := make([]SeatView, len(t.Players))
	for i, p := range t.Players {
		seats[i] = SeatView{
			Name:       p.Name,
			Chips:      p.Chips,
			RoundBet:   p.RoundBet,
			TotalBet:   p.TotalBet,
			Folded:     p.Folded,
			AllIn:      p.AllIn,
			Dealer:     p.Dealer,
			SmallBlind: p.SmallBlind,
			BigBlind:   p.BigBlind,
			IsBot:      p.IsBot,
			Stats:      p.Stats,
		}
	}
	actor := t.Players[seat]
	return TableView{
		Phase:           t.Phase,
		Pot:             t.Pot,
		CurrentBet:      t.CurrentBet,
		SmallBlind:      t.SmallBlind,
		BigBlind:        t.BigBlind,
		LastRaiseSize:   t.LastRaiseSize,
		RaisesThisRound: t.RaisesThisRound,
		Community:       append([]deck.Card(nil), t.Community...),
		Seats:           seats,
		Acting:          seat,
		HoleCards:       append([]deck.Card(nil), actor.HoleCards...),
		Line:            &actor.Line,
	}
}
