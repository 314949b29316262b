package game

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/Tehes/poker/internal/deck"
	"github.com/Tehes/poker/internal/randutil"
)

const (
	defaultSmallBlind = 10
	defaultBigBlind   = 20

	// blinds double after this many full dealer orbits
	blindEscalationOrbits = 2

	betStep = 10
)

var (
	ErrTooFewPlayers = errors.New("table needs at least two players")
	ErrBoardOverflow = errors.New("community cards exceed five")
	ErrDeckExhausted = errors.New("deck exhausted")
)

// Table holds the full state of a poker table. The player slice is kept in
// seating order and rotated at the start of every hand so that the dealer
// always sits at index 0, which keeps blind and position math trivial.
type Table struct {
	Players []*Player

	Phase     Phase
	Pot       int
	Community []deck.Card

	SmallBlind int
	BigBlind   int

	CurrentBet      int
	LastRaiseSize   int
	RaisesThisRound int

	HandNumber int

	Deck *deck.Deck

	initialDealer string
	orbits        int

	rng    *rand.Rand
	logger *log.Logger
}

// TableOption configures a table
type TableOption func(*Table)

// WithBlinds sets the starting blind levels
func WithBlinds(small, big int) TableOption {
	return func(t *Table) {
		t.SmallBlind = small
		t.BigBlind = big
	}
}

// WithRNG sets the random source used for shuffling
func WithRNG(rng *rand.Rand) TableOption {
	return func(t *Table) { t.rng = rng }
}

// WithDeck replaces the deck, used by tests to fix the deal order
func WithDeck(d *deck.Deck) TableOption {
	return func(t *Table) { t.Deck = d }
}

// WithLogger sets the structured logger
func WithLogger(logger *log.Logger) TableOption {
	return func(t *Table) { t.logger = logger }
}

// NewTable creates a table for the given players in seating order
func NewTable(players []*Player, opts ...TableOption) (*Table, error) {
	if len(players) < 2 {
		return nil, ErrTooFewPlayers
	}
	t := &Table{
		Players:    players,
		SmallBlind: defaultSmallBlind,
		BigBlind:   defaultBigBlind,
		Community:  make([]deck.Card, 0, 5),
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = randutil.New(0)
	}
	if t.Deck == nil {
		t.Deck = deck.New(t.rng)
	}
	if t.logger == nil {
		t.logger = log.New(io.Discard)
	}
	return t, nil
}

// HandStart summarises the setup work done at the top of a hand
type HandStart struct {
	HandNumber int
	Eliminated []string
	Champion   *Player
	Dealer     *Player
	SmallBlind *Player
	BigBlind   *Player
	SBPosted   int
	BBPosted   int
	BlindsUp   bool
}

// StartHand removes busted players, rotates the dealer, escalates blinds,
// posts blinds and deals hole cards. When only one player remains the
// returned HandStart carries the champion and no hand is dealt.
func (t *Table) StartHand() (HandStart, error) {
	start := HandStart{}

	kept := t.Players[:0]
	for _, p := range t.Players {
		if p.Chips > 0 {
			kept = append(kept, p)
		} else {
			start.Eliminated = append(start.Eliminated, p.Name)
			t.logger.Info("player eliminated", "player", p.Name)
		}
	}
	t.Players = kept

	if len(t.Players) == 0 {
		return start, ErrTooFewPlayers
	}
	if len(t.Players) == 1 {
		start.Champion = t.Players[0]
		return start, nil
	}

	t.HandNumber++
	start.HandNumber = t.HandNumber

	for _, p := range t.Players {
		p.resetForHand()
		p.Stats.HandsPlayed++
	}

	t.rotateDealer(&start)

	t.Phase = Preflop
	t.Pot = 0
	t.Community = t.Community[:0]
	t.CurrentBet = 0
	t.LastRaiseSize = t.BigBlind
	t.RaisesThisRound = 0

	t.postBlinds(&start)

	t.Deck.Recycle()
	for _, p := range t.Players {
		cards := t.Deck.DealN(2)
		if len(cards) < 2 {
			return start, ErrDeckExhausted
		}
		p.HoleCards = append(p.HoleCards, cards...)
	}

	t.logger.Info("hand started",
		"hand", t.HandNumber,
		"dealer", start.Dealer.Name,
		"sb", t.SmallBlind,
		"bb", t.BigBlind,
		"players", len(t.Players))

	return start, nil
}

// rotateDealer shifts the seating order so the next seat becomes the dealer.
// A completed orbit is detected when the marker returns to the player who
// dealt first; every second orbit the blinds double.
func (t *Table) rotateDealer(start *HandStart) {
	t.Players = append(t.Players[1:], t.Players[0])

	if t.HandNumber == 1 || !t.seated(t.initialDealer) {
		t.initialDealer = t.Players[0].Name
	} else if t.Players[0].Name == t.initialDealer {
		t.orbits++
		if t.orbits%blindEscalationOrbits == 0 {
			t.SmallBlind *= 2
			t.BigBlind *= 2
			start.BlindsUp = true
			t.logger.Info("blinds escalated", "sb", t.SmallBlind, "bb", t.BigBlind)
		}
	}

	dealer := t.Players[0]
	dealer.Dealer = true
	start.Dealer = dealer
}

func (t *Table) seated(name string) bool {
	for _, p := range t.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}

// postBlinds posts the small and big blind, clamped to short stacks.
// Heads-up the dealer posts the small blind.
func (t *Table) postBlinds(start *HandStart) {
	sbIdx, bbIdx := 1, 2
	if len(t.Players) == 2 {
		sbIdx, bbIdx = 0, 1
	}

	sb := t.Players[sbIdx]
	bb := t.Players[bbIdx]
	sb.SmallBlind = true
	bb.BigBlind = true

	start.SmallBlind = sb
	start.BigBlind = bb
	start.SBPosted = t.placeBet(sb, min(t.SmallBlind, sb.Chips))
	start.BBPosted = t.placeBet(bb, min(t.BigBlind, bb.Chips))

	// The price to play is the full big blind even when the poster is short
	t.CurrentBet = t.BigBlind
}

// placeBet moves chips from the player to the pot and returns the amount
// actually moved. A player whose stack reaches zero is all in.
func (t *Table) placeBet(p *Player, amount int) int {
	if amount > p.Chips {
		amount = p.Chips
	}
	if amount < 0 {
		amount = 0
	}
	p.Chips -= amount
	p.RoundBet += amount
	p.TotalBet += amount
	t.Pot += amount
	if p.Chips == 0 {
		p.AllIn = true
	}
	return amount
}

// AdvancePhase moves to the next street, resetting round bets and dealing
// community cards with a burn card before each deal.
func (t *Table) AdvancePhase() error {
	for _, p := range t.Players {
		p.RoundBet = 0
	}
	t.CurrentBet = 0
	t.LastRaiseSize = t.BigBlind
	t.RaisesThisRound = 0

	switch t.Phase {
	case Preflop:
		t.Phase = Flop
		return t.dealCommunity(3)
	case Flop:
		t.Phase = Turn
		return t.dealCommunity(1)
	case Turn:
		t.Phase = River
		return t.dealCommunity(1)
	case River:
		t.Phase = Showdown
		return nil
	default:
		return fmt.Errorf("cannot advance from phase %s", t.Phase)
	}
}

func (t *Table) dealCommunity(n int) error {
	if len(t.Community)+n > 5 {
		return fmt.Errorf("%w: have %d, dealing %d", ErrBoardOverflow, len(t.Community), n)
	}
	t.Deck.Burn()
	cards := t.Deck.DealN(n)
	if len(cards) < n {
		return ErrDeckExhausted
	}
	t.Community = append(t.Community, cards...)
	return nil
}

// EnvelopeFor computes the legal betting range for the given seat
func (t *Table) EnvelopeFor(seat int) ActionEnvelope {
	p := t.Players[seat]
	needToCall := t.CurrentBet - p.RoundBet
	if needToCall < 0 {
		needToCall = 0
	}

	env := ActionEnvelope{
		NeedToCall: needToCall,
		MinRaise:   needToCall + t.LastRaiseSize,
		Min:        min(needToCall, p.Chips),
		Max:        p.Chips,
		Step:       betStep,
	}

	// Opening bet after the flop: the slider starts free and steps by the
	// big blind so open sizes stay round.
	if t.CurrentBet == 0 && t.Phase != Preflop {
		env.Min = 0
		env.Step = min(t.BigBlind, p.Chips)
		if env.Step == 0 {
			env.Step = betStep
		}
	}
	return env
}

// ApplyDecision normalizes and applies an agent decision for the given
// seat, returning the action that actually took effect:
//
//   - a check facing a bet becomes a fold
//   - a call of zero becomes a check
//   - a raise below the stack and below the minimum raise becomes a call
//   - an all-in below the minimum raise lifts the current bet without
//     reopening the action
func (t *Table) ApplyDecision(seat int, d Decision) Applied {
	p := t.Players[seat]
	needToCall := t.CurrentBet - p.RoundBet
	if needToCall < 0 {
		needToCall = 0
	}

	switch d.Action {
	case Fold:
		p.Folded = true
		return Applied{Action: Fold}

	case Check:
		if needToCall > 0 {
			t.logger.Warn("check facing a bet treated as fold",
				"player", p.Name, "needToCall", needToCall)
			p.Folded = true
			return Applied{Action: Fold}
		}
		return Applied{Action: Check, To: p.RoundBet}

	case Call:
		return t.applyCall(p, needToCall)

	case Raise:
		return t.applyRaise(p, d.Amount, needToCall)

	default:
		p.Folded = true
		return Applied{Action: Fold}
	}
}

func (t *Table) applyCall(p *Player, needToCall int) Applied {
	amount := min(needToCall, p.Chips)
	if amount <= 0 {
		return Applied{Action: Check, To: p.RoundBet}
	}
	t.placeBet(p, amount)
	action := Call
	if p.AllIn && amount < needToCall {
		action = AllIn
	}
	return Applied{Action: action, Amount: amount, To: p.RoundBet}
}

func (t *Table) applyRaise(p *Player, amount, needToCall int) Applied {
	if amount > p.Chips {
		amount = p.Chips
	}
	if amount < 0 {
		amount = 0
	}

	minRaise := needToCall + t.LastRaiseSize
	allIn := amount == p.Chips

	// Undersized raises that are not all in are downgraded silently
	if amount < minRaise && !allIn {
		if needToCall > 0 {
			return t.applyCall(p, needToCall)
		}
		return Applied{Action: Check, To: p.RoundBet}
	}

	fullRaise := amount >= minRaise
	t.placeBet(p, amount)

	if p.RoundBet > t.CurrentBet {
		if fullRaise {
			t.LastRaiseSize = p.RoundBet - t.CurrentBet
			t.RaisesThisRound++
		}
		// An all-in under the minimum raise still lifts the price to call
		// but does not reopen the action for players who already matched.
		t.CurrentBet = p.RoundBet
	}

	action := Raise
	if p.AllIn {
		action = AllIn
	}
	return Applied{Action: action, Amount: amount, To: p.RoundBet}
}

// LiveCount returns the number of players still contesting the pot
func (t *Table) LiveCount() int {
	n := 0
	for _, p := range t.Players {
		if p.Live() {
			n++
		}
	}
	return n
}

// ActionableCount returns the number of players who can still bet
func (t *Table) ActionableCount() int {
	n := 0
	for _, p := range t.Players {
		if p.CanAct() {
			n++
		}
	}
	return n
}

// TotalChips returns chips in stacks plus the pot, used to assert that
// settlement conserves chips.
func (t *Table) TotalChips() int {
	total := t.Pot
	for _, p := range t.Players {
		total += p.Chips
	}
	return total
}

func (t *Table) anyUncalled() bool {
	for _, p := range t.Players {
		if p.CanAct() && p.RoundBet < t.CurrentBet {
			return true
		}
	}
	return false
}
