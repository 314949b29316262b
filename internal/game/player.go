package game

import "github.com/Tehes/poker/internal/deck"

// Player represents a seated player
type Player struct {
	Name  string
	Chips int
	IsBot bool

	HoleCards []deck.Card

	RoundBet int // chips committed during the current betting round
	TotalBet int // chips committed during the current hand

	Folded bool
	AllIn  bool

	Dealer     bool
	SmallBlind bool
	BigBlind   bool

	Stats Stats
	Line  Line
}

// NewPlayer creates a player with a starting stack
func NewPlayer(name string, chips int, isBot bool) *Player {
	return &Player{Name: name, Chips: chips, IsBot: isBot}
}

// CanAct reports whether the player can still take betting actions
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// Live reports whether the player still contests the pot
func (p *Player) Live() bool {
	return !p.Folded
}

func (p *Player) resetForHand() {
	p.HoleCards = p.HoleCards[:0]
	p.RoundBet = 0
	p.TotalBet = 0
	p.Folded = false
	p.AllIn = false
	p.Dealer = false
	p.SmallBlind = false
	p.BigBlind = false
	p.Line = Line{}
}

// Stats accumulates per-player behaviour counters across hands. They feed
// the opponent model and are never reset while the player is seated.
type Stats struct {
	HandsPlayed    int
	VPIPActions    int // voluntarily put chips in preflop
	PreflopRaises  int
	Folds          int
	Calls          int
	AggressiveActs int // raises across all streets
	AllIns         int
}

// VPIP returns the Laplace-smoothed voluntarily-put-in-pot frequency
func (s Stats) VPIP() float64 {
	return float64(s.VPIPActions+1) / float64(s.HandsPlayed+2)
}

// PFR returns the Laplace-smoothed preflop raise frequency
func (s Stats) PFR() float64 {
	return float64(s.PreflopRaises+1) / float64(s.HandsPlayed+2)
}

// AggressionFactor returns raises per call, smoothed to avoid division by zero
func (s Stats) AggressionFactor() float64 {
	return float64(s.AggressiveActs+1) / float64(s.Calls+1)
}

// FoldRate returns the observed fold frequency, zero until hands are recorded
func (s Stats) FoldRate() float64 {
	if s.HandsPlayed == 0 {
		return 0
	}
	return float64(s.Folds) / float64(s.HandsPlayed)
}

// Line tracks the betting line of a single hand: who drove the action
// preflop and whether a continuation plan was formed on later streets.
// It is reset at the start of every hand.
type Line struct {
	PreflopAggressor bool

	CbetDecided bool
	CbetPlanned bool
	CbetMade    bool

	BarrelDecided bool
	BarrelPlanned bool
	BarrelMade    bool
}
