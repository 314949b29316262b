package bot

import "math"

// Bet sizes are fractions of the pot (after the call) with small random
// jitter so the bot does not telegraph its holdings, rounded to chips of
// ten and capped for green-zone stacks without a premium hand.

func roundTo10(x float64) int {
	return int(math.Round(x/10)) * 10
}

func (d *decider) potSized(factor float64) int {
	v := float64(d.view.Pot+d.needToCall) * factor * d.betAggFactor
	if v > float64(d.hero.Chips) {
		v = float64(d.hero.Chips)
	}
	return roundTo10(v)
}

func (d *decider) capGreenNonPremium(amount int) int {
	if !d.isGreen || d.premium {
		return amount
	}
	capRatio := greenMaxStackBet
	if d.spr < 3 {
		capRatio = 0.3
	} else if d.spr > 6 {
		capRatio = 0.2
	}
	cap := int(float64(d.hero.Chips) * capRatio)
	return min(amount, cap)
}

func (d *decider) valueBetSize() int {
	var base float64
	if d.preflop {
		base = 0.55
		if d.strengthRatio >= 0.9 {
			base += 0.15
		}
		base += float64(d.activeOpponents) * 0.04
		base += (1 - d.positionFactor) * 0.05
		if d.positionFactor < 0.3 && d.strengthRatio >= 0.8 {
			base += 0.1 // bigger open from early position
		}
	} else {
		switch {
		case d.textureRisk > 0.6:
			base = 0.7
		case d.textureRisk > 0.3:
			base = 0.6
		default:
			base = 0.45
		}
		if d.strengthRatio > 0.95 {
			base += 0.1 // polarise with very strong hands
		}
		base += float64(d.activeOpponents) * 0.03
		base += (1 - d.positionFactor) * 0.05
	}
	if d.spr < 2 {
		base += 0.1
	} else if d.spr < 4 {
		base += 0.05
	} else if d.spr > 6 {
		base -= 0.05
	}
	jitter := d.rand()*0.2 - 0.1
	factor := math.Min(1, math.Max(0.35, base+jitter))
	return d.capGreenNonPremium(d.potSized(factor))
}

func (d *decider) bluffBetSize() int {
	base := 0.25 + d.textureRisk*0.05
	base += float64(d.activeOpponents) * 0.02
	base += (1 - d.positionFactor) * 0.03
	if d.spr < 3 {
		base += 0.05
	} else if d.spr > 5 {
		base -= 0.05
	}
	jitter := d.rand()*0.08 - 0.04
	factor := math.Min(0.45, math.Max(0.2, base+jitter))
	return d.capGreenNonPremium(d.potSized(factor))
}

func (d *decider) protectionBetSize() int {
	base := 0.45 + d.textureRisk*0.25
	base += float64(d.activeOpponents) * 0.03
	base += (1 - d.positionFactor) * 0.04
	if d.spr < 3 {
		base += 0.1
	} else if d.spr > 5 {
		base -= 0.05
	}
	jitter := d.rand()*0.1 - 0.05
	factor := math.Min(0.8, math.Max(0.35, base+jitter))
	return d.capGreenNonPremium(d.potSized(factor))
}

func (d *decider) overBetSize() int {
	base := 1.2 - d.textureRisk*0.1
	base += float64(d.activeOpponents) * 0.05
	if d.spr < 2 {
		base += 0.3
	}
	jitter := d.rand()*0.15 - 0.05
	factor := math.Max(1.1, math.Min(1.5, base+jitter))
	return d.capGreenNonPremium(d.potSized(factor))
}

func (d *decider) yellowRaiseSize() int {
	base := float64(d.view.BigBlind) * (2.5 + d.rand()*0.5)
	sized := roundTo10(base * d.betAggFactor)
	return min(d.hero.Chips, max(d.minRaiseAmount, sized))
}
