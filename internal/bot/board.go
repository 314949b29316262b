package bot

import (
	"github.com/Tehes/poker/internal/deck"
	"github.com/Tehes/poker/internal/game"
)

const pairCategory = 2

// handContext reports whether the solved hand makes top pair (paired with
// the highest board card) or an overpair (pocket pair above the board).
func handContext(res game.HandResult, hole, board []deck.Card) (topPair, overPair bool) {
	if res.CategoryRank != pairCategory {
		return false, false
	}

	highest := board[0].Rank
	for _, c := range board[1:] {
		if c.Rank > highest {
			highest = c.Rank
		}
	}
	pairRank := res.TiebreakCards[0].Rank
	pocketPair := hole[0].Rank == hole[1].Rank

	return pairRank == highest, pocketPair && pairRank > highest
}

type draws struct {
	flushDraw    bool
	straightDraw bool
	outs         int
}

// drawPotential detects flush and straight draws across hole and board.
// A made straight suppresses the straight draw; a made flush suppresses
// the flush draw.
func drawPotential(hole, board []deck.Card) draws {
	all := append(append([]deck.Card(nil), hole...), board...)
	var d draws

	suitCounts := make(map[deck.Suit]int, 4)
	for _, c := range all {
		suitCounts[c.Suit]++
	}
	hasFlush := false
	for _, n := range suitCounts {
		if n >= 5 {
			hasFlush = true
		}
	}
	if !hasFlush {
		for _, n := range suitCounts {
			if n == 4 {
				d.flushDraw = true
			}
		}
	}
	flushOuts := 0
	if d.flushDraw {
		flushOuts = 9
	}

	ranks := make(map[int]bool, len(all)+1)
	for _, c := range all {
		ranks[int(c.Rank)] = true
		if c.Rank == deck.Ace {
			ranks[1] = true // wheel
		}
	}

	straightOuts := 0
	hasStraight := false
	missingRanks := make(map[int]bool)
	for start := 1; start <= 10; start++ {
		missing := -1
		count := 0
		for r := start; r < start+5; r++ {
			if !ranks[r] {
				missing = r
				count++
			}
		}
		if count == 0 {
			hasStraight = true
			break
		}
		if count == 1 {
			d.straightDraw = true
			missingRanks[missing] = true
			if missing == start || missing == start+4 {
				straightOuts = 8
			}
		}
	}

	if hasStraight {
		d.straightDraw = false
		straightOuts = 0
	} else if d.straightDraw && straightOuts == 0 {
		if len(missingRanks) >= 2 {
			straightOuts = 8
		} else {
			straightOuts = 4
		}
	}

	d.outs = flushOuts + straightOuts
	return d
}

// boardTexture rates how coordinated the board is, from 0 (dry) to 1
// (very wet), as the mean of connectedness, suitedness and pairing.
func boardTexture(board []deck.Card) float64 {
	if len(board) < 3 {
		return 0
	}

	rankCounts := make(map[deck.Rank]int, len(board))
	suitCounts := make(map[deck.Suit]int, 4)
	for _, c := range board {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	maxRankCount := 0
	for _, n := range rankCounts {
		if n > maxRankCount {
			maxRankCount = n
		}
	}
	pairRisk := 0.0
	if maxRankCount > 1 {
		pairRisk = float64(maxRankCount-1) / float64(len(board)-1)
	}

	maxSuitCount := 0
	for _, n := range suitCounts {
		if n > maxSuitCount {
			maxSuitCount = n
		}
	}
	suitRisk := float64(maxSuitCount-1) / float64(len(board)-1)

	ranks := make(map[int]bool, len(board)+1)
	for _, c := range board {
		ranks[int(c.Rank)] = true
		if c.Rank == deck.Ace {
			ranks[1] = true
		}
	}
	maxRun, run := 1, 0
	for r := 1; r <= 14; r++ {
		if ranks[r] {
			run++
			if run > maxRun {
				maxRun = run
			}
		} else {
			run = 0
		}
	}
	connectedness := 0.0
	if maxRun >= 3 {
		connectedness = float64(maxRun-2) / float64(len(board)-2)
		if connectedness < 0 {
			connectedness = 0
		}
	}

	risk := (connectedness + suitRisk + pairRisk) / 3
	return clamp01(risk)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
