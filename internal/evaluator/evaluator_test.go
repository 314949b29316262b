package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tehes/poker/internal/deck"
	"github.com/Tehes/poker/internal/game"
)

func solve(t *testing.T, codes ...string) game.HandResult {
	t.Helper()
	cards, err := deck.ParseAll(codes...)
	require.NoError(t, err)
	res, err := New().Solve(cards)
	require.NoError(t, err)
	return res
}

func TestSolveCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    []string
		category int
		handName string
	}{
		{"royal flush", []string{"AS", "KS", "QS", "JS", "TS"}, StraightFlush, "Royal Flush"},
		{"straight flush", []string{"9H", "8H", "7H", "6H", "5H"}, StraightFlush, "Straight Flush"},
		{"four of a kind", []string{"7S", "7H", "7D", "7C", "KS"}, FourOfAKind, "Four of a Kind"},
		{"full house", []string{"TS", "TH", "TD", "4C", "4S"}, FullHouse, "Full House"},
		{"flush", []string{"AD", "JD", "8D", "6D", "2D"}, Flush, "Flush"},
		{"straight", []string{"9C", "8D", "7H", "6S", "5C"}, Straight, "Straight"},
		{"wheel", []string{"AS", "2D", "3H", "4C", "5S"}, Straight, "Straight"},
		{"three of a kind", []string{"QS", "QH", "QD", "7C", "2S"}, ThreeOfAKind, "Three of a Kind"},
		{"two pair", []string{"KS", "KH", "3D", "3C", "9S"}, TwoPair, "Two Pair"},
		{"pair", []string{"8S", "8H", "AD", "7C", "2S"}, Pair, "Pair"},
		{"high card", []string{"AS", "JH", "9D", "6C", "3S"}, HighCard, "High Card"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := solve(t, tt.cards...)
			assert.Equal(t, tt.category, res.CategoryRank)
			assert.Equal(t, tt.handName, res.Name)
			assert.Len(t, res.TiebreakCards, 5)
		})
	}
}

func TestSolvePicksBestOfSeven(t *testing.T) {
	t.Parallel()

	// Hole 9H 8H with a board offering both a straight and a flush
	res := solve(t, "9H", "8H", "7H", "6H", "5S", "2H", "KD")
	assert.Equal(t, Flush, res.CategoryRank)

	// Board quads beat the pocket pair's full house
	res = solve(t, "QS", "QH", "7S", "7H", "7D", "7C", "2S")
	assert.Equal(t, FourOfAKind, res.CategoryRank)
}

func TestSolveValidation(t *testing.T) {
	t.Parallel()

	e := New()
	cards, err := deck.ParseAll("AS", "KS", "QS", "JS")
	require.NoError(t, err)
	_, err = e.Solve(cards)
	assert.Error(t, err, "too few cards")

	cards, err = deck.ParseAll("AS", "AS", "QS", "JS", "TS")
	require.NoError(t, err)
	_, err = e.Solve(cards)
	assert.Error(t, err, "duplicate card")
}

func TestTiebreakOrdering(t *testing.T) {
	t.Parallel()

	// Full house puts the trips rank before the pair rank
	res := solve(t, "4S", "4H", "4D", "TC", "TS")
	assert.Equal(t, deck.Four, res.TiebreakCards[0].Rank)
	assert.Equal(t, deck.Ten, res.TiebreakCards[3].Rank)

	// Two pair orders high pair, low pair, kicker
	res = solve(t, "KS", "KH", "3D", "3C", "9S")
	ranks := make([]deck.Rank, 5)
	for i, c := range res.TiebreakCards {
		ranks[i] = c.Rank
	}
	assert.Equal(t, []deck.Rank{deck.King, deck.King, deck.Three, deck.Three, deck.Nine}, ranks)
}

func TestBeats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		winner []string
		loser  []string
	}{
		{"flush over straight", []string{"AD", "JD", "8D", "6D", "2D"}, []string{"9C", "8D", "7H", "6S", "5C"}},
		{"higher pair", []string{"9S", "9H", "AD", "7C", "2S"}, []string{"8S", "8H", "AD", "7C", "2S"}},
		{"kicker decides", []string{"8S", "8H", "AD", "7C", "2S"}, []string{"8D", "8C", "KD", "7H", "2D"}},
		{"six high straight over wheel", []string{"6C", "5D", "4H", "3S", "2C"}, []string{"AS", "2D", "3H", "4C", "5S"}},
		{"higher full house", []string{"TS", "TH", "TD", "4C", "4S"}, []string{"9S", "9H", "9D", "AC", "AS"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := solve(t, tt.winner...)
			l := solve(t, tt.loser...)
			assert.True(t, w.Beats(l))
			assert.False(t, l.Beats(w))
		})
	}
}

func TestWinners(t *testing.T) {
	t.Parallel()

	e := New()

	pairNines := solve(t, "9S", "9H", "AD", "7C", "2S")
	pairEights := solve(t, "8S", "8H", "AD", "7C", "2S")
	assert.Equal(t, []int{0}, e.Winners([]game.HandResult{pairNines, pairEights}))
	assert.Equal(t, []int{1}, e.Winners([]game.HandResult{pairEights, pairNines}))

	// Identical straights in different suits split
	a := solve(t, "9C", "8D", "7H", "6S", "5C")
	b := solve(t, "9D", "8H", "7S", "6C", "5D")
	assert.Equal(t, []int{0, 1}, e.Winners([]game.HandResult{a, b}))

	assert.Nil(t, e.Winners(nil))
}
