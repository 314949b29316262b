package game_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tehes/poker/internal/bot"
	"github.com/Tehes/poker/internal/evaluator"
	"github.com/Tehes/poker/internal/game"
	"github.com/Tehes/poker/internal/randutil"
)

var callStation = game.AgentFunc(func(_ game.TableView, env game.ActionEnvelope) game.Decision {
	if env.NeedToCall > 0 {
		return game.Decision{Action: game.Call}
	}
	return game.Decision{Action: game.Check}
})

func newEngine(t *testing.T, agent game.Agent, chips ...int) *game.Engine {
	t.Helper()
	players := make([]*game.Player, len(chips))
	for i, c := range chips {
		players[i] = game.NewPlayer(fmt.Sprintf("p%d", i), c, true)
	}
	tbl, err := game.NewTable(players, game.WithRNG(randutil.New(42)))
	require.NoError(t, err)
	return game.NewEngine(tbl, evaluator.New(), game.WithFallbackAgent(agent))
}

func TestPlayHandEveryoneFoldsToBigBlind(t *testing.T) {
	t.Parallel()

	e := newEngine(t, game.CheckFold, 2000, 2000, 2000)
	report, err := e.PlayHand()
	require.NoError(t, err)

	require.Len(t, report.Pots, 1)
	assert.Equal(t, 30, report.Pots[0].Amount)
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.GameOver)

	winner := report.Pots[0].Winners[0]
	assert.Equal(t, 2010, winner.Chips, "big blind picks up the small blind")
	assert.Equal(t, 6000, e.Table().TotalChips())

	// Two folds were recorded, the winner never acted beyond the blind
	folds := 0
	for _, p := range e.Table().Players {
		folds += p.Stats.Folds
		assert.Equal(t, 1, p.Stats.HandsPlayed)
	}
	assert.Equal(t, 2, folds)
}

func TestPlayHandCheckedToShowdown(t *testing.T) {
	t.Parallel()

	e := newEngine(t, callStation, 2000, 2000)
	report, err := e.PlayHand()
	require.NoError(t, err)

	require.Len(t, report.Pots, 1)
	assert.Equal(t, 40, report.Pots[0].Amount)
	assert.NotEmpty(t, report.Pots[0].HandName)
	assert.Len(t, e.Table().Community, 5)
	assert.Equal(t, 4000, e.Table().TotalChips())
}

func TestPlayHandDealsRunoutWhenAllIn(t *testing.T) {
	t.Parallel()

	shover := game.AgentFunc(func(_ game.TableView, env game.ActionEnvelope) game.Decision {
		return game.Decision{Action: game.Raise, Amount: env.Max}
	})
	e := newEngine(t, shover, 500, 2000)
	report, err := e.PlayHand()
	require.NoError(t, err)

	assert.Len(t, e.Table().Community, 5, "board runs out for the all-in showdown")
	assert.Equal(t, 2500, e.Table().TotalChips())
	require.NotEmpty(t, report.Pots)
}

func TestPlayHandReportsChampion(t *testing.T) {
	t.Parallel()

	e := newEngine(t, game.CheckFold, 3000, 0)
	report, err := e.PlayHand()
	require.NoError(t, err)

	assert.True(t, report.GameOver)
	assert.Equal(t, "p0", report.Champion)
	assert.Equal(t, []string{"p1"}, report.Eliminated)
}

func TestRunPlaysToChampion(t *testing.T) {
	t.Parallel()

	e := newEngine(t, game.CheckFold, 2000, 2000)
	champion, err := e.Run(500)
	require.NoError(t, err)
	assert.NotEmpty(t, champion, "escalating blinds force a result")
}

func TestRunWithBotsConservesChips(t *testing.T) {
	t.Parallel()

	players := []*game.Player{
		game.NewPlayer("hoover", 2000, true),
		game.NewPlayer("truman", 2000, true),
		game.NewPlayer("lincoln", 2000, true),
		game.NewPlayer("grant", 2000, true),
	}
	rng := randutil.New(7)
	tbl, err := game.NewTable(players, game.WithRNG(rng))
	require.NoError(t, err)

	eval := evaluator.New()
	e := game.NewEngine(tbl, eval,
		game.WithFallbackAgent(bot.New(eval, rng)),
	)

	// Conservation is asserted inside PlayHand after every settlement
	for i := 0; i < 50; i++ {
		report, err := e.PlayHand()
		require.NoError(t, err)
		assert.Equal(t, 8000, tbl.TotalChips())
		if report.GameOver {
			break
		}
	}
}

func TestPreflopAggressorLineIsTracked(t *testing.T) {
	t.Parallel()

	raiseOnce := game.AgentFunc(func(view game.TableView, env game.ActionEnvelope) game.Decision {
		if view.Phase == game.Preflop && view.RaisesThisRound == 0 && env.NeedToCall > 0 {
			return game.Decision{Action: game.Raise, Amount: env.MinRaise}
		}
		if env.NeedToCall > 0 {
			return game.Decision{Action: game.Call}
		}
		return game.Decision{Action: game.Check}
	})

	e := newEngine(t, raiseOnce, 2000, 2000)
	_, err := e.PlayHand()
	require.NoError(t, err)

	aggressors := 0
	for _, p := range e.Table().Players {
		if p.Line.PreflopAggressor {
			aggressors++
			assert.Positive(t, p.Stats.PreflopRaises)
		}
	}
	assert.Equal(t, 1, aggressors)
}
