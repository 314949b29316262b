package game

import "github.com/Tehes/poker/internal/deck"

// HandResult describes an evaluated hand. CategoryRank orders the nine
// hand categories from 1 (high card) to 9 (straight flush); TiebreakCards
// holds the ranks that break ties within a category, most significant first.
type HandResult struct {
	CategoryRank  int
	TiebreakCards []deck.Card
	Name          string
}

// Beats reports whether r outranks other
func (r HandResult) Beats(other HandResult) bool {
	return r.compare(other) > 0
}

func (r HandResult) compare(other HandResult) int {
	if r.CategoryRank != other.CategoryRank {
		if r.CategoryRank > other.CategoryRank {
			return 1
		}
		return -1
	}
	n := len(r.TiebreakCards)
	if len(other.TiebreakCards) < n {
		n = len(other.TiebreakCards)
	}
	for i := 0; i < n; i++ {
		a, b := r.TiebreakCards[i].Rank, other.TiebreakCards[i].Rank
		if a != b {
			if a > b {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Evaluator ranks poker hands. Solve accepts five to seven cards and
// returns the best five-card hand they contain; Winners returns the
// indices of the strongest results, more than one on an exact tie.
type Evaluator interface {
	Solve(cards []deck.Card) (HandResult, error)
	Winners(results []HandResult) []int
}
