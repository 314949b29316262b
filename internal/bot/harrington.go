package bot

import "github.com/Tehes/poker/internal/game"

// mZone buckets the Harrington M-ratio, the number of orbits a stack
// survives paying only blinds.
type mZone int

const (
	zoneDead mZone = iota
	zoneRed
	zoneOrange
	zoneYellow
	zoneGreen
)

func (z mZone) String() string {
	return [...]string{"dead", "red", "orange", "yellow", "green"}[z]
}

func zoneFor(mRatio float64) mZone {
	switch {
	case mRatio < mRatioDeadMax:
		return zoneDead
	case mRatio <= mRatioRedMax:
		return zoneRed
	case mRatio <= mRatioOrangeMax:
		return zoneOrange
	case mRatio <= mRatioYellowMax:
		return zoneYellow
	default:
		return zoneGreen
	}
}

// harringtonDecision implements push-or-fold play for short stacks
// preflop. Green-zone stacks fall through to the regular decision flow.
func (d *decider) harringtonDecision() (game.Decision, bool) {
	push := func() game.Decision {
		if d.canShove {
			return game.Decision{Action: game.Raise, Amount: d.hero.Chips}
		}
		return d.call()
	}
	checkOrFold := func() game.Decision {
		if d.needsToCall {
			return game.Decision{Action: game.Fold}
		}
		return game.Decision{Action: game.Check}
	}

	switch d.mZone {
	case zoneDead:
		if d.facingRaise && d.needsToCall {
			if d.strengthRatio >= d.deadPushThreshold {
				return push(), true
			}
			return game.Decision{Action: game.Fold}, true
		}
		if d.canShove && d.strengthRatio >= d.deadPushThreshold {
			return game.Decision{Action: game.Raise, Amount: d.hero.Chips}, true
		}
		return checkOrFold(), true

	case zoneRed:
		if d.facingRaise && d.needsToCall {
			if d.strengthRatio >= d.riskAdjustedRedCall {
				return d.call(), true
			}
			return game.Decision{Action: game.Fold}, true
		}
		if d.canShove && d.strengthRatio >= d.redPushThreshold {
			return game.Decision{Action: game.Raise, Amount: d.hero.Chips}, true
		}
		return checkOrFold(), true

	case zoneOrange:
		if d.facingRaise && d.needsToCall {
			if d.strengthRatio >= d.riskAdjustedOrangeCall {
				return d.call(), true
			}
			return game.Decision{Action: game.Fold}, true
		}
		if d.canShove && d.strengthRatio >= d.orangePushThreshold {
			return game.Decision{Action: game.Raise, Amount: d.hero.Chips}, true
		}
		return checkOrFold(), true

	case zoneYellow:
		if d.facingRaise && d.needsToCall {
			if d.canShove && d.strengthRatio >= d.yellowShoveThreshold {
				return game.Decision{Action: game.Raise, Amount: d.hero.Chips}, true
			}
			if d.strengthRatio >= d.riskAdjustedYellowCall {
				return d.call(), true
			}
			return game.Decision{Action: game.Fold}, true
		}
		if d.canShove && d.strengthRatio >= d.yellowShoveThreshold {
			return game.Decision{Action: game.Raise, Amount: d.hero.Chips}, true
		}
		if d.canRaise && d.strengthRatio >= d.yellowRaiseThreshold {
			return game.Decision{Action: game.Raise, Amount: d.yellowRaiseSize()}, true
		}
		return checkOrFold(), true
	}

	return game.Decision{}, false
}
