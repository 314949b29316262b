package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

// Engine drives hands to completion: it walks the betting rounds, consults
// agents, applies their decisions, advances streets and settles the pot.
type Engine struct {
	table    *Table
	eval     Evaluator
	agents   map[string]Agent
	fallback Agent
	renderer Renderer

	clock      quartz.Clock
	thinkDelay time.Duration

	logger *log.Logger
}

// EngineOption configures an engine
type EngineOption func(*Engine)

// WithAgent assigns an agent to the named seat
func WithAgent(name string, agent Agent) EngineOption {
	return func(e *Engine) { e.agents[name] = agent }
}

// WithFallbackAgent sets the agent used for seats with no assignment
func WithFallbackAgent(agent Agent) EngineOption {
	return func(e *Engine) { e.fallback = agent }
}

// WithRenderer sets the display sink
func WithRenderer(r Renderer) EngineOption {
	return func(e *Engine) { e.renderer = r }
}

// WithClock injects the clock used for bot think pacing
func WithClock(c quartz.Clock) EngineOption {
	return func(e *Engine) { e.clock = c }
}

// WithThinkDelay sets the pause before a bot decision is applied
func WithThinkDelay(d time.Duration) EngineOption {
	return func(e *Engine) { e.thinkDelay = d }
}

// WithEngineLogger sets the structured logger
func WithEngineLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine for the given table and evaluator
func NewEngine(table *Table, eval Evaluator, opts ...EngineOption) *Engine {
	e := &Engine{
		table:    table,
		eval:     eval,
		agents:   make(map[string]Agent),
		fallback: CheckFold,
		renderer: NopRenderer{},
		clock:    quartz.NewReal(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CheckFold is the minimal legal agent: check when free, fold to any bet
var CheckFold = AgentFunc(func(_ TableView, env ActionEnvelope) Decision {
	if env.NeedToCall > 0 {
		return Decision{Action: Fold}
	}
	return Decision{Action: Check}
})

// Table returns the engine's table
func (e *Engine) Table() *Table {
	return e.table
}

// HandReport summarises one completed hand
type HandReport struct {
	ID         string
	Number     int
	Pots       []SettledPot
	Eliminated []string
	Champion   string
	GameOver   bool
}

// PlayHand plays a single hand from deal to settlement. When only one
// funded player remains the report names the champion and no hand is dealt.
func (e *Engine) PlayHand() (*HandReport, error) {
	t := e.table
	before := t.TotalChips()

	start, err := t.StartHand()
	if err != nil {
		return nil, err
	}

	report := &HandReport{
		ID:         uuid.NewString(),
		Number:     start.HandNumber,
		Eliminated: start.Eliminated,
	}
	for _, name := range start.Eliminated {
		e.renderer.Eliminated(name)
	}
	if start.Champion != nil {
		report.Champion = start.Champion.Name
		report.GameOver = true
		e.renderer.Champion(start.Champion.Name, start.Champion.Chips)
		return report, nil
	}

	e.renderer.HandStarted(start, t.SmallBlind, t.BigBlind)
	logger := e.logger.With("hand", report.ID)

	for {
		if round := t.BeginRound(); round != nil {
			for {
				seat, ok := round.Next()
				if !ok {
					break
				}
				e.takeTurn(seat, logger)
			}
		}
		if t.LiveCount() <= 1 {
			break
		}
		if err := t.AdvancePhase(); err != nil {
			return nil, err
		}
		if t.Phase == Showdown {
			e.renderer.Showdown(e.reveals(), t.Community)
			break
		}
		e.renderer.PhaseDealt(t.Phase, t.Community)
		logger.Debug("street dealt", "phase", t.Phase, "pot", t.Pot)
	}

	pots, err := t.Settle(e.eval)
	if err != nil {
		return nil, err
	}
	report.Pots = pots
	for _, pot := range pots {
		e.renderer.PotAwarded(pot)
	}

	if after := t.TotalChips(); after != before {
		return nil, fmt.Errorf("chips not conserved across hand %d: %d before, %d after",
			report.Number, before, after)
	}

	e.discardHand()
	return report, nil
}

// Run plays hands until a champion emerges or maxHands is reached.
// A maxHands of zero or less means no limit.
func (e *Engine) Run(maxHands int) (string, error) {
	for i := 0; maxHands <= 0 || i < maxHands; i++ {
		report, err := e.PlayHand()
		if err != nil {
			return "", err
		}
		if report.GameOver {
			return report.Champion, nil
		}
	}
	return "", nil
}

func (e *Engine) takeTurn(seat int, logger *log.Logger) {
	t := e.table
	p := t.Players[seat]

	e.renderer.SeatActing(seat, p.Name)

	view := t.ViewFor(seat)
	env := t.EnvelopeFor(seat)
	decision := e.agentFor(p).Act(view, env)

	if p.IsBot && e.thinkDelay > 0 {
		timer := e.clock.NewTimer(e.thinkDelay)
		<-timer.C
	}

	applied := t.ApplyDecision(seat, decision)
	e.recordAction(p, applied)

	logger.Debug("action applied",
		"player", p.Name,
		"phase", t.Phase,
		"action", applied.Action,
		"amount", applied.Amount,
		"to", applied.To,
		"pot", t.Pot)

	e.renderer.ActionTaken(p.Name, applied, t.Pot)
}

func (e *Engine) agentFor(p *Player) Agent {
	if a, ok := e.agents[p.Name]; ok {
		return a
	}
	return e.fallback
}

func (e *Engine) recordAction(p *Player, a Applied) {
	t := e.table
	switch a.Action {
	case Fold:
		p.Stats.Folds++
	case Call:
		p.Stats.Calls++
		if t.Phase == Preflop {
			p.Stats.VPIPActions++
		}
	case Raise:
		p.Stats.AggressiveActs++
		if t.Phase == Preflop {
			p.Stats.VPIPActions++
			p.Stats.PreflopRaises++
			e.setPreflopAggressor(p)
		}
	case AllIn:
		p.Stats.AllIns++
		if t.Phase == Preflop {
			p.Stats.VPIPActions++
		}
		// An all-in that lifted the current bet counts as aggression,
		// a short call does not.
		if a.To == t.CurrentBet {
			p.Stats.AggressiveActs++
			if t.Phase == Preflop {
				p.Stats.PreflopRaises++
				e.setPreflopAggressor(p)
			}
		} else {
			p.Stats.Calls++
		}
	}
}

func (e *Engine) setPreflopAggressor(aggressor *Player) {
	for _, p := range e.table.Players {
		p.Line.PreflopAggressor = p == aggressor
	}
}

func (e *Engine) reveals() []Reveal {
	reveals := make([]Reveal, 0, len(e.table.Players))
	for i, p := range e.table.Players {
		if p.Live() {
			reveals = append(reveals, Reveal{Seat: i, Name: p.Name, Cards: p.HoleCards})
		}
	}
	return reveals
}

func (e *Engine) discardHand() {
	t := e.table
	for _, p := range t.Players {
		t.Deck.Discard(p.HoleCards...)
		p.HoleCards = nil
	}
	t.Deck.Discard(t.Community...)
	t.Community = t.Community[:0]
}
