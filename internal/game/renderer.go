package game

import "github.com/Tehes/poker/internal/deck"

// Reveal is one hand shown at showdown
type Reveal struct {
	Seat  int
	Name  string
	Cards []deck.Card
}

// Renderer receives display events as a hand plays out. The engine calls
// it synchronously, so implementations control pacing.
type Renderer interface {
	HandStarted(start HandStart, smallBlind, bigBlind int)
	SeatActing(seat int, name string)
	ActionTaken(name string, applied Applied, pot int)
	PhaseDealt(phase Phase, community []deck.Card)
	Showdown(reveals []Reveal, community []deck.Card)
	PotAwarded(pot SettledPot)
	Eliminated(name string)
	Champion(name string, chips int)
}

// NopRenderer discards all display events, used headless and in tests
type NopRenderer struct{}

func (NopRenderer) HandStarted(HandStart, int, int)           {}
func (NopRenderer) SeatActing(int, string)                    {}
func (NopRenderer) ActionTaken(string, Applied, int)          {}
func (NopRenderer) PhaseDealt(Phase, []deck.Card)             {}
func (NopRenderer) Showdown([]Reveal, []deck.Card)            {}
func (NopRenderer) PotAwarded(SettledPot)                     {}
func (NopRenderer) Eliminated(string)                         {}
func (NopRenderer) Champion(string, int)                      {}
