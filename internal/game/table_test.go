package game_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tehes/poker/internal/game"
	"github.com/Tehes/poker/internal/randutil"
)

func newTable(t *testing.T, chips ...int) *game.Table {
	t.Helper()
	players := make([]*game.Player, len(chips))
	for i, c := range chips {
		players[i] = game.NewPlayer(fmt.Sprintf("p%d", i), c, true)
	}
	tbl, err := game.NewTable(players, game.WithRNG(randutil.New(1)))
	require.NoError(t, err)
	return tbl
}

func TestNewTableNeedsTwoPlayers(t *testing.T) {
	t.Parallel()

	_, err := game.NewTable([]*game.Player{game.NewPlayer("solo", 1000, false)})
	assert.ErrorIs(t, err, game.ErrTooFewPlayers)
}

func TestStartHandPostsBlindsAndDeals(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 2000, 2000, 2000, 2000)
	start, err := tbl.StartHand()
	require.NoError(t, err)

	assert.Equal(t, 1, start.HandNumber)
	assert.Same(t, tbl.Players[0], start.Dealer)
	assert.Same(t, tbl.Players[1], start.SmallBlind)
	assert.Same(t, tbl.Players[2], start.BigBlind)
	assert.Equal(t, 10, start.SBPosted)
	assert.Equal(t, 20, start.BBPosted)
	assert.Equal(t, 30, tbl.Pot)
	assert.Equal(t, 20, tbl.CurrentBet)
	assert.Equal(t, 20, tbl.LastRaiseSize)
	assert.Equal(t, game.Preflop, tbl.Phase)

	for _, p := range tbl.Players {
		assert.Len(t, p.HoleCards, 2)
	}
	assert.Equal(t, 1, tbl.Players[0].Stats.HandsPlayed)
}

func TestStartHandHeadsUpDealerPostsSmallBlind(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 2000, 2000)
	start, err := tbl.StartHand()
	require.NoError(t, err)

	assert.Same(t, start.Dealer, start.SmallBlind)
	assert.Same(t, tbl.Players[1], start.BigBlind)
}

func TestStartHandClampsShortBlind(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 2000, 2000, 2000, 5)
	start, err := tbl.StartHand()
	require.NoError(t, err)

	// Rotation moved the 5-chip stack into the big blind seat
	require.Equal(t, "p3", start.BigBlind.Name)
	assert.Equal(t, 5, start.BBPosted)
	assert.True(t, start.BigBlind.AllIn)
	// The price to play stays a full big blind
	assert.Equal(t, 20, tbl.CurrentBet)
}

func TestStartHandEliminatesBustedPlayers(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 2000, 0, 2000, 0)
	start, err := tbl.StartHand()
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"p1", "p3"}, start.Eliminated)
	assert.Len(t, tbl.Players, 2)
	assert.Nil(t, start.Champion)
}

func TestStartHandDeclaresChampion(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 4000, 0, 0)
	start, err := tbl.StartHand()
	require.NoError(t, err)

	require.NotNil(t, start.Champion)
	assert.Equal(t, "p0", start.Champion.Name)
}

func TestBlindsEscalateEveryTwoOrbits(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 100000, 100000)
	sawEscalation := false
	for i := 0; i < 5; i++ {
		start, err := tbl.StartHand()
		require.NoError(t, err)
		if i < 4 {
			assert.False(t, start.BlindsUp, "hand %d", i+1)
		} else {
			sawEscalation = start.BlindsUp
		}
	}
	assert.True(t, sawEscalation)
	assert.Equal(t, 20, tbl.SmallBlind)
	assert.Equal(t, 40, tbl.BigBlind)
}

func TestDealerRotationSkipsEliminated(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 2000, 2000, 2000)
	_, err := tbl.StartHand()
	require.NoError(t, err)
	firstDealer := tbl.Players[0].Name

	// Bust the would-be next dealer
	tbl.Players[1].Chips = 0
	nextName := tbl.Players[2].Name

	start, err := tbl.StartHand()
	require.NoError(t, err)
	assert.NotEqual(t, firstDealer, start.Dealer.Name)
	assert.Equal(t, nextName, start.Dealer.Name)
}

func TestAdvancePhaseDealsBoard(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 2000, 2000, 2000)
	_, err := tbl.StartHand()
	require.NoError(t, err)

	require.NoError(t, tbl.AdvancePhase())
	assert.Equal(t, game.Flop, tbl.Phase)
	assert.Len(t, tbl.Community, 3)
	assert.Equal(t, 0, tbl.CurrentBet)
	assert.Equal(t, 0, tbl.RaisesThisRound)
	for _, p := range tbl.Players {
		assert.Equal(t, 0, p.RoundBet)
	}

	require.NoError(t, tbl.AdvancePhase())
	assert.Equal(t, game.Turn, tbl.Phase)
	assert.Len(t, tbl.Community, 4)

	require.NoError(t, tbl.AdvancePhase())
	assert.Equal(t, game.River, tbl.Phase)
	assert.Len(t, tbl.Community, 5)

	require.NoError(t, tbl.AdvancePhase())
	assert.Equal(t, game.Showdown, tbl.Phase)
	assert.Len(t, tbl.Community, 5)
}

func TestEnvelopePreflop(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 2000, 2000, 2000, 2000)
	_, err := tbl.StartHand()
	require.NoError(t, err)

	env := tbl.EnvelopeFor(3) // first to act preflop
	assert.Equal(t, 20, env.NeedToCall)
	assert.Equal(t, 40, env.MinRaise)
	assert.Equal(t, 20, env.Min)
	assert.Equal(t, 2000, env.Max)
	assert.Equal(t, 10, env.Step)
}

func TestEnvelopePostflopOpen(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 2000, 2000, 2000)
	_, err := tbl.StartHand()
	require.NoError(t, err)
	require.NoError(t, tbl.AdvancePhase())

	env := tbl.EnvelopeFor(1)
	assert.Equal(t, 0, env.NeedToCall)
	assert.Equal(t, 0, env.Min)
	assert.Equal(t, 20, env.Step, "open sizes step by the big blind")
}

func TestApplyDecisionNormalization(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) *game.Table {
		tbl := newTable(t, 2000, 2000, 2000, 2000)
		_, err := tbl.StartHand()
		require.NoError(t, err)
		// One full raise to 40 is already in
		applied := tbl.ApplyDecision(3, game.Decision{Action: game.Raise, Amount: 40})
		require.Equal(t, game.Raise, applied.Action)
		require.Equal(t, 40, tbl.CurrentBet)
		require.Equal(t, 20, tbl.LastRaiseSize)
		require.Equal(t, 1, tbl.RaisesThisRound)
		return tbl
	}

	t.Run("undersized raise becomes a call", func(t *testing.T) {
		tbl := setup(t)
		applied := tbl.ApplyDecision(0, game.Decision{Action: game.Raise, Amount: 50})
		assert.Equal(t, game.Call, applied.Action)
		assert.Equal(t, 40, applied.Amount)
		assert.Equal(t, 40, tbl.CurrentBet)
	})

	t.Run("minimum raise reopens the action", func(t *testing.T) {
		tbl := setup(t)
		applied := tbl.ApplyDecision(0, game.Decision{Action: game.Raise, Amount: 60})
		assert.Equal(t, game.Raise, applied.Action)
		assert.Equal(t, 60, applied.To)
		assert.Equal(t, 60, tbl.CurrentBet)
		assert.Equal(t, 20, tbl.LastRaiseSize)
		assert.Equal(t, 2, tbl.RaisesThisRound)
	})

	t.Run("short all-in lifts the bet without reopening", func(t *testing.T) {
		tbl := setup(t)
		tbl.Players[0].Chips = 50
		applied := tbl.ApplyDecision(0, game.Decision{Action: game.Raise, Amount: 50})
		assert.Equal(t, game.AllIn, applied.Action)
		assert.Equal(t, 50, tbl.CurrentBet)
		assert.Equal(t, 20, tbl.LastRaiseSize, "last raise size unchanged")
		assert.Equal(t, 1, tbl.RaisesThisRound)
	})

	t.Run("check facing a bet folds", func(t *testing.T) {
		tbl := setup(t)
		applied := tbl.ApplyDecision(0, game.Decision{Action: game.Check})
		assert.Equal(t, game.Fold, applied.Action)
		assert.True(t, tbl.Players[0].Folded)
	})

	t.Run("call with nothing owed checks", func(t *testing.T) {
		tbl := setup(t)
		tbl.Players[0].RoundBet = 40
		applied := tbl.ApplyDecision(0, game.Decision{Action: game.Call})
		assert.Equal(t, game.Check, applied.Action)
	})

	t.Run("short call goes all in", func(t *testing.T) {
		tbl := setup(t)
		tbl.Players[0].Chips = 25
		applied := tbl.ApplyDecision(0, game.Decision{Action: game.Call})
		assert.Equal(t, game.AllIn, applied.Action)
		assert.Equal(t, 25, applied.Amount)
		assert.Equal(t, 40, tbl.CurrentBet)
	})
}

func TestTotalChipsCountsPotAndStacks(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 1000, 1500, 500)
	require.Equal(t, 3000, tbl.TotalChips())

	_, err := tbl.StartHand()
	require.NoError(t, err)
	assert.Equal(t, 3000, tbl.TotalChips())
}
