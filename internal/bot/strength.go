package bot

import (
	"math"

	"github.com/Tehes/poker/internal/deck"
	"github.com/Tehes/poker/internal/game"
)

// preflopScore rates two hole cards on a 0..10 scale using a simplified
// Chen formula: high-card base points, doubled for pairs, plus a suited
// bonus and gap penalties.
func preflopScore(a, b deck.Card) float64 {
	hi, lo := a, b
	if hi.Rank < lo.Rank {
		hi, lo = lo, hi
	}

	score := chenBase(hi.Rank)
	if hi.Rank == lo.Rank {
		score *= 2
		if score < 5 {
			score = 5
		}
	}
	if hi.Suit == lo.Suit {
		score += 2
	}

	gap := int(hi.Rank) - int(lo.Rank) - 1
	switch {
	case gap == 1:
		score -= 1
	case gap == 2:
		score -= 2
	case gap == 3:
		score -= 4
	case gap >= 4:
		score -= 5
	}

	// Connected low cards can flop straights
	if gap <= 1 && hi.Rank < deck.Queen {
		score++
	}

	if score < 0 {
		score = 0
	}
	return math.Min(10, score)
}

func chenBase(r deck.Rank) float64 {
	switch r {
	case deck.Ace:
		return 10
	case deck.King:
		return 8
	case deck.Queen:
		return 7
	case deck.Jack:
		return 6
	case deck.Ten:
		return 5
	default:
		return float64(r) / 2
	}
}

// tiebreakFraction folds the tiebreak cards into a fraction below one so
// that hands in the same category can be compared on a single scale.
func tiebreakFraction(res game.HandResult) float64 {
	const base = 15.0
	value := 0.0
	factor := 1.0 / base
	for _, c := range res.TiebreakCards {
		value += float64(c.Rank) * factor
		factor /= base
	}
	return value
}

// solvedScore maps an evaluated hand to roughly 1..10: the category rank
// plus the tiebreak fraction.
func solvedScore(res game.HandResult) float64 {
	return float64(res.CategoryRank) + tiebreakFraction(res)
}

// usesHoleCards reports whether the best five cards include a hole card
func usesHoleCards(hole []deck.Card, res game.HandResult) bool {
	for _, c := range res.TiebreakCards {
		for _, h := range hole {
			if c == h {
				return true
			}
		}
	}
	return false
}
