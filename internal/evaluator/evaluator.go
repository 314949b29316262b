// Package evaluator ranks poker hands by exhaustive five-card evaluation.
// Solve accepts five to seven cards and returns the best five-card hand
// they contain.
package evaluator

import (
	"fmt"
	"sort"

	"github.com/Tehes/poker/internal/deck"
	"github.com/Tehes/poker/internal/game"
)

// Category ranks, low to high
const (
	HighCard = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var categoryNames = map[int]string{
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
}

// Evaluator implements game.Evaluator by brute force over all five-card
// combinations. Seven cards means only 21 candidates, so there is no need
// for lookup tables.
type Evaluator struct{}

// New creates an evaluator
func New() *Evaluator {
	return &Evaluator{}
}

// Solve returns the best five-card hand within the given cards
func (e *Evaluator) Solve(cards []deck.Card) (game.HandResult, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return game.HandResult{}, fmt.Errorf("solve needs 5 to 7 cards, got %d", len(cards))
	}
	seen := make(map[deck.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return game.HandResult{}, fmt.Errorf("duplicate card %s", c.Code())
		}
		seen[c] = true
	}

	var best game.HandResult
	combinations(cards, func(hand []deck.Card) {
		res := evaluateFive(hand)
		if best.CategoryRank == 0 || res.Beats(best) {
			best = res
		}
	})
	return best, nil
}

// Winners returns the indices of the strongest results, several on a tie
func (e *Evaluator) Winners(results []game.HandResult) []int {
	if len(results) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].Beats(results[best]) {
			best = i
		}
	}
	var winners []int
	for i, r := range results {
		if !results[best].Beats(r) {
			winners = append(winners, i)
		}
	}
	return winners
}

// combinations calls fn with every five-card subset of cards
func combinations(cards []deck.Card, fn func([]deck.Card)) {
	n := len(cards)
	if n == 5 {
		fn(cards)
		return
	}
	hand := make([]deck.Card, 5)
	var recurse func(start, depth int)
	recurse = func(start, depth int) {
		if depth == 5 {
			fn(hand)
			return
		}
		for i := start; i <= n-(5-depth); i++ {
			hand[depth] = cards[i]
			recurse(i+1, depth+1)
		}
	}
	recurse(0, 0)
}

func evaluateFive(hand []deck.Card) game.HandResult {
	cards := append([]deck.Card(nil), hand...)
	sort.Slice(cards, func(i, j int) bool { return cards[i].Rank > cards[j].Rank })

	flush := isFlush(cards)
	straightHigh, straight := straightHighCard(cards)

	if straight {
		ordered := straightOrder(cards, straightHigh)
		if flush {
			name := categoryNames[StraightFlush]
			if straightHigh == deck.Ace {
				name = "Royal Flush"
			}
			return game.HandResult{CategoryRank: StraightFlush, TiebreakCards: ordered, Name: name}
		}
		return game.HandResult{CategoryRank: Straight, TiebreakCards: ordered, Name: categoryNames[Straight]}
	}
	if flush {
		return game.HandResult{CategoryRank: Flush, TiebreakCards: cards, Name: categoryNames[Flush]}
	}

	ordered, shape := groupByCount(cards)
	category := HighCard
	switch {
	case shape[0] == 4:
		category = FourOfAKind
	case shape[0] == 3 && shape[1] == 2:
		category = FullHouse
	case shape[0] == 3:
		category = ThreeOfAKind
	case shape[0] == 2 && shape[1] == 2:
		category = TwoPair
	case shape[0] == 2:
		category = Pair
	}
	return game.HandResult{CategoryRank: category, TiebreakCards: ordered, Name: categoryNames[category]}
}

func isFlush(cards []deck.Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// straightHighCard returns the high rank of a straight made from five
// distinct-rank cards sorted descending. The wheel counts with Five high.
func straightHighCard(cards []deck.Card) (deck.Rank, bool) {
	for i := 1; i < len(cards); i++ {
		if cards[i].Rank == cards[i-1].Rank {
			return 0, false
		}
	}
	if cards[0].Rank-cards[4].Rank == 4 {
		return cards[0].Rank, true
	}
	// A-5-4-3-2
	if cards[0].Rank == deck.Ace && cards[1].Rank == deck.Five {
		return deck.Five, true
	}
	return 0, false
}

// straightOrder puts the straight's cards in comparison order. For the
// wheel the ace moves behind the five so a six-high straight outranks it.
func straightOrder(cards []deck.Card, high deck.Rank) []deck.Card {
	if high == deck.Five && cards[0].Rank == deck.Ace {
		return append(append([]deck.Card(nil), cards[1:]...), cards[0])
	}
	return cards
}

// groupByCount orders cards by group size, then rank, so paired and tripled
// ranks come first. It also returns the group sizes largest first.
func groupByCount(cards []deck.Card) ([]deck.Card, []int) {
	counts := make(map[deck.Rank]int, 5)
	for _, c := range cards {
		counts[c.Rank]++
	}
	ordered := append([]deck.Card(nil), cards...)
	sort.SliceStable(ordered, func(i, j int) bool {
		ci, cj := counts[ordered[i].Rank], counts[ordered[j].Rank]
		if ci != cj {
			return ci > cj
		}
		return ordered[i].Rank > ordered[j].Rank
	})
	shape := make([]int, 0, 5)
	for _, n := range counts {
		shape = append(shape, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(shape)))
	return ordered, shape
}
