package game

import (
	"fmt"
	"sort"

	"github.com/Tehes/poker/internal/deck"
)

// SettledPot is one pot awarded during settlement
type SettledPot struct {
	Amount   int
	Eligible []*Player // contributors who paid into this pot layer
	Winners  []*Player
	HandName string // best hand name, empty for fold or refund wins
	Refund   bool   // uncalled chips returned to their only live contributor
	Payouts  map[string]int
}

// Settle distributes the pot at the end of a hand. Side pots are built from
// contribution tiers, folded players stay in the eligible sets but cannot
// win, and odd chips go one at a time to winners closest to the dealer's
// left. Settlement zeroes the pot and all bet counters, so calling it again
// on the same table is a no-op.
func (t *Table) Settle(eval Evaluator) ([]SettledPot, error) {
	defer t.clearBets()

	live := t.livePlayers()

	// Win by fold: no showdown, no evaluation
	if len(live) == 1 && t.Pot > 0 {
		winner := live[0]
		pot := SettledPot{
			Amount:   t.Pot,
			Eligible: live,
			Winners:  live,
			Payouts:  map[string]int{winner.Name: t.Pot},
		}
		winner.Chips += t.Pot
		t.Pot = 0
		return []SettledPot{pot}, nil
	}

	pots := t.buildPots()

	for i := range pots {
		if err := t.awardPot(&pots[i], eval); err != nil {
			return nil, err
		}
	}
	t.Pot = 0
	return pots, nil
}

// buildPots slices the pot into tiers by ascending total contribution.
// Adjacent tiers whose live eligible players coincide are merged, which
// collapses the layers created by folded contributors.
func (t *Table) buildPots() []SettledPot {
	contributors := make([]*Player, 0, len(t.Players))
	for _, p := range t.Players {
		if p.TotalBet > 0 {
			contributors = append(contributors, p)
		}
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].TotalBet < contributors[j].TotalBet
	})

	var pots []SettledPot
	prev := 0
	for i, p := range contributors {
		if p.TotalBet == prev {
			continue
		}
		above := contributors[i:]
		pot := SettledPot{
			Amount:   (p.TotalBet - prev) * len(above),
			Eligible: append([]*Player(nil), above...),
		}
		prev = p.TotalBet

		if n := len(pots); n > 0 && sameLiveSet(pots[n-1].Eligible, pot.Eligible) {
			pots[n-1].Amount += pot.Amount
			continue
		}
		pots = append(pots, pot)
	}
	return pots
}

func sameLiveSet(a, b []*Player) bool {
	la, lb := liveOf(a), liveOf(b)
	return len(la) == len(lb) && containsAll(la, lb)
}

func liveOf(players []*Player) []*Player {
	live := players[:0:0]
	for _, p := range players {
		if p.Live() {
			live = append(live, p)
		}
	}
	return live
}

func containsAll(haystack, needles []*Player) bool {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if h == n {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (t *Table) awardPot(pot *SettledPot, eval Evaluator) error {
	live := liveOf(pot.Eligible)
	if len(live) == 0 {
		return fmt.Errorf("pot of %d has no live eligible player", pot.Amount)
	}
	pot.Payouts = make(map[string]int, len(live))

	// A single live contributor takes the layer back without a showdown.
	// This covers uncalled bets and layers where everyone else folded.
	if len(live) == 1 {
		pot.Winners = live
		pot.Refund = true
		pot.Payouts[live[0].Name] = pot.Amount
		live[0].Chips += pot.Amount
		return nil
	}

	results := make([]HandResult, len(live))
	for i, p := range live {
		cards := append(append([]deck.Card(nil), p.HoleCards...), t.Community...)
		res, err := eval.Solve(cards)
		if err != nil {
			return fmt.Errorf("evaluating %s: %w", p.Name, err)
		}
		results[i] = res
	}

	winnerIdx := eval.Winners(results)
	winners := make([]*Player, len(winnerIdx))
	for i, idx := range winnerIdx {
		winners[i] = live[idx]
	}
	t.sortBySeatFromDealerLeft(winners)

	pot.Winners = winners
	pot.HandName = results[winnerIdx[0]].Name

	share := pot.Amount / len(winners)
	remainder := pot.Amount % len(winners)
	for i, w := range winners {
		amount := share
		if i < remainder {
			amount++
		}
		w.Chips += amount
		pot.Payouts[w.Name] = amount
	}
	return nil
}

// sortBySeatFromDealerLeft orders players by seating position starting at
// the dealer's left, which fixes who receives odd chips.
func (t *Table) sortBySeatFromDealerLeft(players []*Player) {
	pos := make(map[*Player]int, len(t.Players))
	n := len(t.Players)
	for i, p := range t.Players {
		pos[p] = (i + n - 1) % n
	}
	sort.SliceStable(players, func(i, j int) bool {
		return pos[players[i]] < pos[players[j]]
	})
}

func (t *Table) livePlayers() []*Player {
	return liveOf(t.Players)
}

func (t *Table) clearBets() {
	for _, p := range t.Players {
		p.RoundBet = 0
		p.TotalBet = 0
	}
}
