// Package bot implements a heuristic no-limit hold'em agent. Decisions are
// chip-EV driven with Harrington M-ratio zones for short stacks and a
// light elimination-risk guardrail for large calls.
package bot

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/Tehes/poker/internal/game"
)

const (
	// Maximum number of raises allowed per betting round
	maxRaisesPerRound = 3
	// Extra required strength ratio per prior raise in the same round
	reraiseRatioStep = 0.12
	// Minimum strength ratio to allow reraises (value gate)
	reraiseValueRatio   = 0.34
	reraiseTopPairRatio = 0.32

	// Tie-breaker windows for close decisions
	strengthTieDelta = 0.25
	oddsTieDelta     = 0.02

	// Opponent-aware aggression tuning
	opponentThreshold = 3
	aggPerOpponent    = 0.1
	thresholdFactor   = 0.3

	// Minimum average hands before opponent stats influence decisions,
	// and how quickly their influence grows after that
	minHandsForWeight = 10
	weightGrowth      = 10

	// Strength required to call off against an all-in
	allInHandPreflop  = 0.85
	allInHandPostflop = 0.38

	// Harrington M-ratio zones and their strength thresholds
	mRatioDeadMax        = 1
	mRatioRedMax         = 5
	mRatioOrangeMax      = 10
	mRatioYellowMax      = 20
	deadPushRatio        = 0.35
	redPushRatio         = 0.7
	redCallRatio         = 0.85
	orangePushRatio      = 0.6
	orangeCallRatio      = 0.8
	yellowRaiseRatio     = 0.6
	yellowCallRatio      = 0.7
	yellowShoveRatio     = 0.85
	premiumPreflopRatio  = 0.8
	premiumPostflopRatio = 0.55
	greenMaxStackBet     = 0.25

	chipLeaderRaiseDelta  = 0.05
	shortstackCallDelta   = 0.05
	shortstackRelativeMax = 0.6
	minPreflopBluffRatio  = 0.45

	// Hand-level commitment tuning to reduce multi-street bleeding
	commitSPRMin         = 1.5
	commitSPRMax         = 5.5
	commitInvestStart    = 0.1
	commitInvestEnd      = 0.6
	commitCallRatioRef   = 0.25
	commitmentPenaltyMax = 0.25

	postflopCallBarrier = 0.16

	eliminationRiskStart  = 0.25
	eliminationRiskFull   = 0.8
	eliminationPenaltyMax = 0.25
)

// Bot is a decision engine for one or more seats. It is stateless between
// actions apart from the betting line carried in the table view, so a
// single Bot may serve every bot seat at the table.
type Bot struct {
	eval   game.Evaluator
	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a bot
type Option func(*Bot)

// WithLogger sets the logger used for decision traces
func WithLogger(logger *log.Logger) Option {
	return func(b *Bot) { b.logger = logger }
}

// New creates a bot using the given evaluator and random source
func New(eval game.Evaluator, rng *rand.Rand, opts ...Option) *Bot {
	b := &Bot{
		eval:   eval,
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Act implements game.Agent
func (b *Bot) Act(view game.TableView, env game.ActionEnvelope) game.Decision {
	d, err := newDecider(b, view, env)
	if err != nil {
		b.logger.Error("hand evaluation failed, playing safe", "err", err)
		if env.NeedToCall > 0 {
			return game.Decision{Action: game.Fold}
		}
		return game.Decision{Action: game.Check}
	}

	decision := d.legalize(d.decide())
	d.trace(decision)
	return decision
}

func (d *decider) trace(decision game.Decision) {
	d.bot.logger.Debug("bot decision",
		"player", d.hero.Name,
		"phase", d.view.Phase,
		"action", decision.Action,
		"amount", decision.Amount,
		"strength", d.strengthRatio,
		"mRatio", d.mRatio,
		"zone", d.mZone,
		"potOdds", d.potOdds,
		"callBarrier", d.eliminationBarrier,
		"stackRatio", d.stackRatio,
		"commitPenalty", d.commitmentPenalty,
		"elimPenalty", d.eliminationPenalty,
		"position", d.positionFactor,
		"opponents", d.activeOpponents,
		"raiseThreshold", d.raiseThreshold,
		"aggressiveness", d.aggressiveness,
		"raiseLevel", d.raiseLevel,
		"texture", d.textureRisk,
		"chipLeader", d.amChipleader,
		"premium", d.premium,
		"bluff", d.isBluff,
		"stab", d.isStab,
	)
}
