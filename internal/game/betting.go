package game

// Round walks the betting order for one street. It holds an explicit turn
// pointer so the caller can interleave rendering, agent consultation and
// decision application between turns.
//
// A round closes when every live player has either matched the current bet
// or gone all in, with one exception: players keep their first-turn rights,
// so the big blind gets an option preflop and everyone may check behind a
// free board even though their round bet already matches.
type Round struct {
	t      *Table
	idx    int
	cycles int
	n      int
}

// BeginRound starts the betting round for the current street. It returns
// nil when fewer than two players can act, in which case the street plays
// out with no betting.
func (t *Table) BeginRound() *Round {
	if t.ActionableCount() < 2 {
		return nil
	}
	n := len(t.Players)
	start := 1 % n // left of the dealer at index 0
	if t.Phase == Preflop {
		bb := 2
		if n == 2 {
			bb = 1
		}
		start = (bb + 1) % n
	}
	return &Round{t: t, idx: start, n: n}
}

// Next advances the turn pointer to the next player who owes an action and
// returns their seat index. It returns false when the round is closed.
func (r *Round) Next() (int, bool) {
	t := r.t
	for {
		if t.LiveCount() <= 1 {
			return -1, false
		}
		if t.ActionableCount() == 0 {
			return -1, false
		}

		seat := r.idx % r.n
		p := t.Players[seat]
		r.idx++
		r.cycles++

		if !p.CanAct() {
			continue
		}

		if p.RoundBet >= t.CurrentBet {
			// Matched players only act on their first turn of the round:
			// the big blind option preflop, or checking behind when no bet
			// is out. Afterwards a matched bet means the player is done.
			firstTurn := r.cycles <= r.n && (t.Phase == Preflop || t.CurrentBet == 0)
			if !firstTurn {
				if t.anyUncalled() {
					continue
				}
				return -1, false
			}
		}

		return seat, true
	}
}
