package bot

import (
	"math"

	"github.com/Tehes/poker/internal/deck"
	"github.com/Tehes/poker/internal/game"
)

// decider holds everything derived for a single decision. It is built
// fresh on every action so no state leaks between turns.
type decider struct {
	bot  *Bot
	view game.TableView
	env  game.ActionEnvelope
	hero game.SeatView
	line *game.Line

	preflop        bool
	needToCall     int
	needsToCall    bool
	minRaiseAmount int

	potOdds    float64
	stackRatio float64
	spr        float64
	mRatio     float64
	mZone      mZone
	isGreen    bool

	facingRaise bool
	canRaise    bool
	canShove    bool
	facingAllIn bool

	activeOpponents    int
	effectiveStack     int
	amChipleader       bool
	shortstackRelative bool
	positionFactor     float64

	strength     float64
	solved       *game.HandResult
	holeImproves bool
	topPair      bool
	overPair     bool
	drawChance   bool
	drawOuts     int
	drawEquity   float64
	textureRisk  float64

	strengthRatio    float64
	premium          bool
	decisionStrength float64

	deadPushThreshold      float64
	redPushThreshold       float64
	orangePushThreshold    float64
	yellowRaiseThreshold   float64
	yellowShoveThreshold   float64
	riskAdjustedRedCall    float64
	riskAdjustedOrangeCall float64
	riskAdjustedYellowCall float64
	useHarrington          bool

	commitmentPressure float64
	commitmentPenalty  float64
	eliminationRisk    float64
	eliminationPenalty float64
	callBarrier        float64
	eliminationBarrier float64

	aggressiveness float64
	raiseThreshold float64
	raiseLevel     int
	betAggFactor   float64
	shoveAggAdj    float64

	bluffChance float64
	foldRate    float64
	statsWeight float64
	avgVPIP     float64
	avgAgg      float64
	avgHands    float64

	lineAbort bool
	isBluff   bool
	isStab    bool
}

func newDecider(b *Bot, view game.TableView, env game.ActionEnvelope) (*decider, error) {
	d := &decider{
		bot:  b,
		view: view,
		env:  env,
		hero: view.Hero(),
		line: view.Line,
	}

	d.preflop = len(view.Community) == 0
	d.needToCall = env.NeedToCall
	d.needsToCall = d.needToCall > 0
	d.minRaiseAmount = env.MinRaise

	if denom := view.Pot + d.needToCall; denom > 0 {
		d.potOdds = float64(d.needToCall) / float64(denom)
	}
	d.stackRatio = float64(d.needToCall) / math.Max(1, float64(d.hero.Chips))
	d.spr = float64(d.hero.Chips) / math.Max(1, float64(view.Pot+d.needToCall))
	d.mRatio = float64(d.hero.Chips) / float64(view.SmallBlind+view.BigBlind)
	d.mZone = zoneFor(d.mRatio)
	d.isGreen = d.mZone == zoneGreen

	if d.preflop {
		d.facingRaise = view.CurrentBet > view.BigBlind
	} else {
		d.facingRaise = view.CurrentBet > 0
	}
	d.canRaise = view.RaisesThisRound < maxRaisesPerRound && d.hero.Chips > view.BigBlind
	d.canShove = view.RaisesThisRound < maxRaisesPerRound

	d.surveyOpponents()
	d.positionFactor = d.computePositionFactor()

	if err := d.evaluateHand(); err != nil {
		return nil, err
	}

	d.strengthRatio = d.strength / 10
	if d.preflop {
		d.premium = d.strengthRatio >= premiumPreflopRatio
	} else {
		d.premium = d.strengthRatio >= premiumPostflopRatio
	}

	d.computeThresholds()
	d.computeAggression()

	return d, nil
}

func (d *decider) rand() float64 {
	return d.bot.rng.Float64()
}

func (d *decider) surveyOpponents() {
	maxStack := 0
	anyActive := false
	for i, s := range d.view.Seats {
		if i == d.view.Acting {
			continue
		}
		if s.AllIn {
			d.facingAllIn = true
		}
		if s.Folded {
			continue
		}
		anyActive = true
		d.activeOpponents++
		if s.Chips > maxStack {
			maxStack = s.Chips
		}
	}

	if !anyActive {
		d.effectiveStack = d.hero.Chips
		d.amChipleader = true
		return
	}
	d.effectiveStack = d.hero.Chips
	if maxStack < d.effectiveStack {
		d.effectiveStack = maxStack
	}
	d.amChipleader = d.hero.Chips > maxStack
	d.shortstackRelative = d.effectiveStack == d.hero.Chips &&
		float64(d.hero.Chips) < float64(maxStack)*shortstackRelativeMax
}

// computePositionFactor maps the hero's seat to 0 (first to act) through 1
// (last to act) among the players still in the hand.
func (d *decider) computePositionFactor() float64 {
	seats := d.view.Seats

	var active []int
	for i, s := range seats {
		if !s.Folded {
			active = append(active, i)
		}
	}
	if len(active) <= 1 {
		return 0
	}

	anchor := -1
	for i, s := range seats {
		if (d.preflop && s.BigBlind) || (!d.preflop && s.Dealer) {
			anchor = i
			break
		}
	}
	firstToAct := anchor
	for i := 1; i <= len(seats); i++ {
		idx := (anchor + i) % len(seats)
		if !seats[idx].Folded {
			firstToAct = idx
			break
		}
	}

	seatPos, refPos := 0, 0
	for i, idx := range active {
		if idx == d.view.Acting {
			seatPos = i
		}
		if idx == firstToAct {
			refPos = i
		}
	}
	pos := (seatPos - refPos + len(active)) % len(active)
	return float64(pos) / float64(len(active)-1)
}

func (d *decider) evaluateHand() error {
	hole := d.view.HoleCards
	board := d.view.Community

	if d.preflop {
		d.strength = preflopScore(hole[0], hole[1])
		return nil
	}

	cards := append(append([]deck.Card(nil), hole...), board...)
	res, err := d.bot.eval.Solve(cards)
	if err != nil {
		return err
	}
	d.solved = &res
	d.strength = solvedScore(res)

	// Does the hand beat the board alone? On the river compare against the
	// board's own best five; earlier the board is too short for that test,
	// so fall back to checking whether a hole card made the best five.
	if len(board) < 5 {
		d.holeImproves = usesHoleCards(hole, res)
	} else {
		boardRes, err := d.bot.eval.Solve(board)
		if err != nil {
			return err
		}
		d.holeImproves = solvedScore(res) > solvedScore(boardRes)
	}

	d.topPair, d.overPair = handContext(res, hole, board)

	dr := drawPotential(hole, board)
	d.drawChance = dr.flushDraw || dr.straightDraw
	d.drawOuts = dr.outs
	if dr.outs > 0 {
		factor := 0.0
		switch len(board) {
		case 3:
			factor = 0.04
		case 4:
			factor = 0.02
		}
		d.drawEquity = math.Min(1, float64(dr.outs)*factor)
	}

	d.textureRisk = boardTexture(board)
	return nil
}

func (d *decider) computeThresholds() {
	raiseAggAdj := 0.0
	if d.amChipleader {
		raiseAggAdj = -chipLeaderRaiseDelta
	}
	callTightAdj := 0.0
	if d.shortstackRelative && d.stackRatio < eliminationRiskStart {
		callTightAdj = -shortstackCallDelta
	}

	d.deadPushThreshold = math.Max(0, deadPushRatio+raiseAggAdj)
	d.redPushThreshold = math.Max(0, redPushRatio+raiseAggAdj)
	d.orangePushThreshold = math.Max(0, orangePushRatio+raiseAggAdj)
	d.yellowRaiseThreshold = math.Max(0, yellowRaiseRatio+raiseAggAdj)
	d.yellowShoveThreshold = math.Max(0, yellowShoveRatio+raiseAggAdj)

	redCall := math.Min(1, redCallRatio+callTightAdj)
	orangeCall := math.Min(1, orangeCallRatio+callTightAdj)
	yellowCall := math.Min(1, yellowCallRatio+callTightAdj)

	d.useHarrington = d.preflop && !d.isGreen

	remainingStreets := 0
	switch {
	case d.preflop:
		remainingStreets = 3
	case len(d.view.Community) == 3:
		remainingStreets = 2
	case len(d.view.Community) == 4:
		remainingStreets = 1
	}
	d.computeCommitment(remainingStreets)
	if d.needsToCall {
		d.eliminationRisk = clamp01((d.stackRatio - eliminationRiskStart) /
			(eliminationRiskFull - eliminationRiskStart))
		d.eliminationPenalty = d.eliminationRisk * eliminationPenaltyMax
	}

	d.riskAdjustedRedCall = math.Min(1, redCall+d.eliminationPenalty)
	d.riskAdjustedOrangeCall = math.Min(1, orangeCall+d.eliminationPenalty)
	d.riskAdjustedYellowCall = math.Min(1, yellowCall+d.eliminationPenalty)

	d.computeCallBarrier(callTightAdj)
}

func (d *decider) computeCommitment(remainingStreets int) {
	projected := float64(d.hero.TotalBet + max(0, d.needToCall))
	investedRatio := projected / math.Max(1, projected+float64(d.hero.Chips))
	callCostRatio := float64(d.needToCall) / math.Max(1, float64(d.hero.Chips))

	sprPressure := clamp01((d.spr - commitSPRMin) / (commitSPRMax - commitSPRMin))
	investPressure := clamp01((investedRatio - commitInvestStart) / (commitInvestEnd - commitInvestStart))
	callPressure := clamp01(callCostRatio / commitCallRatioRef)
	streetPressure := math.Min(1, float64(remainingStreets)/2)

	d.commitmentPressure = (investPressure*0.6 + callPressure*0.4) * sprPressure * streetPressure
	d.commitmentPenalty = d.commitmentPressure * commitmentPenaltyMax
}

// computeCallBarrier derives the strength ratio required for a call.
// Preflop it tracks pot odds; postflop it starts from a fixed barrier and
// shifts with made-hand quality, draws, texture, pot odds and commitment.
func (d *decider) computeCallBarrier(callTightAdj float64) {
	if d.preflop {
		base := math.Min(1, math.Max(0, d.potOdds+callTightAdj))
		d.callBarrier = math.Min(1, base+d.commitmentPenalty)
	} else {
		base := math.Min(1, math.Max(0, postflopCallBarrier+callTightAdj))

		adj := 0.0
		if d.holeImproves {
			if d.overPair {
				adj -= 0.03
			} else if d.topPair {
				adj -= 0.02
			}
		}
		if d.drawOuts >= 8 {
			if len(d.view.Community) == 3 {
				adj -= 0.02
			} else if len(d.view.Community) == 4 {
				adj -= 0.01
			}
		}
		if d.activeOpponents <= 1 {
			adj -= 0.02
		}
		if d.textureRisk > 0.6 {
			adj += 0.02
		}
		if d.spr < 3 {
			adj -= 0.01
		} else if d.spr > 6 {
			adj += 0.01
		}
		adj = math.Max(-0.04, math.Min(0.04, adj))

		potOddsAdj := 0.0
		if d.needsToCall {
			potOddsAdj = math.Max(-0.12, math.Min(0.08, (0.25-d.potOdds)*0.6))
		}
		commitShift := 0.0
		if d.needsToCall {
			commitShift = d.commitmentPenalty * 0.8
		}

		d.callBarrier = base + adj - potOddsAdj + commitShift
		d.callBarrier = math.Min(0.22, math.Max(0.10, d.callBarrier))
	}

	d.eliminationBarrier = d.callBarrier
	if d.needsToCall {
		d.eliminationBarrier = math.Min(1, d.callBarrier+d.eliminationPenalty)
	}
}

func (d *decider) computeAggression() {
	oppAggAdj := 0.0
	thresholdAdj := 0.0
	if d.activeOpponents < opponentThreshold {
		oppAggAdj = float64(opponentThreshold-d.activeOpponents) * aggPerOpponent
		thresholdAdj = float64(opponentThreshold-d.activeOpponents) * thresholdFactor
	}

	if d.preflop {
		d.aggressiveness = 0.8 + 0.4*d.positionFactor + oppAggAdj
		d.raiseThreshold = 8 - 2*d.positionFactor
		d.raiseThreshold = math.Max(1, d.raiseThreshold-thresholdAdj)
	} else {
		d.aggressiveness = 1 + 0.6*d.positionFactor
		d.raiseThreshold = math.Max(1, 2.6-0.8*d.positionFactor)
	}
	if d.amChipleader {
		d.raiseThreshold = math.Max(1, d.raiseThreshold-chipLeaderRaiseDelta*10)
	}
	if d.preflop {
		d.decisionStrength = d.strength
	} else {
		d.decisionStrength = d.strengthRatio * 10
	}

	d.applyOpponentStats()

	d.raiseThreshold = math.Max(1, d.raiseThreshold-(d.aggressiveness-1)*0.8)
	if !d.preflop {
		adj := 0.0
		if d.holeImproves {
			if d.overPair {
				adj -= 0.35
			} else if d.topPair {
				adj -= 0.2
			}
		}
		if d.drawOuts >= 8 {
			if len(d.view.Community) == 3 {
				adj -= 0.15
			} else if len(d.view.Community) == 4 {
				adj -= 0.08
			}
		}
		if d.activeOpponents <= 1 {
			adj -= 0.15
		}
		if d.textureRisk > 0.6 {
			adj += 0.15
		}
		if d.spr < 3 {
			adj -= 0.1
		} else if d.spr > 6 {
			adj += 0.1
		}
		adj = math.Max(-0.5, math.Min(0.5, adj))
		d.raiseThreshold = math.Max(1.4, d.raiseThreshold+adj)
	}

	if d.facingRaise && d.view.RaisesThisRound > 0 {
		d.raiseLevel = d.view.RaisesThisRound
	}
	d.raiseThreshold += float64(d.raiseLevel) * reraiseRatioStep * 10

	d.betAggFactor = math.Max(0.9, math.Min(1.1, d.aggressiveness))
	d.shoveAggAdj = math.Max(-0.08, math.Min(0.08, (d.aggressiveness-1)*0.12))
}

// applyOpponentStats nudges thresholds using observed tendencies of the
// other seats. Early hands carry no weight so the bot does not overreact
// to a small sample.
func (d *decider) applyOpponentStats() {
	n := len(d.view.Seats) - 1
	if n <= 0 {
		return
	}

	var sumVPIP, sumAgg, sumFold, sumHands float64
	for i, s := range d.view.Seats {
		if i == d.view.Acting {
			continue
		}
		sumVPIP += s.Stats.VPIP()
		sumAgg += s.Stats.AggressionFactor()
		sumFold += s.Stats.FoldRate()
		sumHands += float64(s.Stats.HandsPlayed)
	}
	d.avgVPIP = sumVPIP / float64(n)
	d.avgAgg = sumAgg / float64(n)
	d.foldRate = sumFold / float64(n)
	d.avgHands = sumHands / float64(n)

	weight := 0.0
	if d.avgHands >= minHandsForWeight {
		weight = 1 - math.Exp(-(d.avgHands-minHandsForWeight)/weightGrowth)
	}
	d.statsWeight = weight

	d.bluffChance = math.Min(0.3, d.foldRate) * weight
	d.bluffChance *= 1 - d.textureRisk*0.5
	bluffAggFactor := math.Max(0.8, math.Min(1.2, d.aggressiveness))
	d.bluffChance = math.Min(0.3, d.bluffChance*bluffAggFactor)

	if d.avgVPIP < 0.25 {
		d.raiseThreshold -= 0.5 * weight
		d.aggressiveness += 0.1 * weight
	} else if d.avgVPIP > 0.5 {
		d.raiseThreshold += 0.5 * weight
		d.aggressiveness -= 0.1 * weight
	}

	if d.avgAgg > 1.5 {
		d.aggressiveness -= 0.1 * weight
	} else if d.avgAgg < 0.7 {
		d.aggressiveness += 0.1 * weight
	}
}

// updateLine maintains the betting-line memory when the hero was the last
// preflop aggressor: plan the continuation bet on the flop and the second
// barrel on the turn, and abandon the line on very wet boards missed.
func (d *decider) updateLine() {
	if d.preflop || d.line == nil || !d.line.PreflopAggressor {
		return
	}
	d.lineAbort = d.textureRisk > 0.7 && d.strengthRatio < 0.45 && d.drawEquity == 0

	if d.view.Phase == game.Flop && !d.line.CbetDecided {
		d.line.CbetDecided = true
		d.line.CbetPlanned = d.decideCbetIntent()
	}
	if d.view.Phase == game.Turn && d.line.CbetMade && !d.line.BarrelDecided {
		d.line.BarrelDecided = true
		d.line.BarrelPlanned = d.decideBarrelIntent()
	}
}

func (d *decider) decideCbetIntent() bool {
	if d.lineAbort {
		return false
	}
	chance := 0.55
	if d.textureRisk < 0.35 {
		chance += 0.15
	} else if d.textureRisk > 0.6 {
		chance -= 0.2
	}
	chance -= float64(max(0, d.activeOpponents-1)) * 0.06
	chance += d.positionFactor * 0.08
	chance += math.Min(0.2, d.foldRate*0.25)
	if d.strengthRatio >= 0.7 {
		chance += 0.15
	}
	if d.drawEquity > 0 {
		chance += 0.08
	}
	chance *= 0.6 + 0.4*d.statsWeight
	chance = math.Max(0.15, math.Min(0.85, chance))
	return d.rand() < chance
}

func (d *decider) decideBarrelIntent() bool {
	if d.lineAbort {
		return false
	}
	chance := 0.35
	if d.textureRisk < 0.35 {
		chance += 0.1
	} else if d.textureRisk > 0.6 {
		chance -= 0.15
	}
	chance -= float64(max(0, d.activeOpponents-1)) * 0.05
	chance += d.positionFactor * 0.06
	chance += math.Min(0.15, d.foldRate*0.2)
	if d.strengthRatio >= 0.75 {
		chance += 0.1
	}
	if d.drawEquity > 0 {
		chance += 0.06
	}
	chance *= 0.6 + 0.4*d.statsWeight
	chance = math.Max(0.1, math.Min(0.75, chance))
	return d.rand() < chance
}

/* -------------------------
   Decision flow
------------------------- */

func (d *decider) decide() game.Decision {
	d.updateLine()

	var decision game.Decision
	decided := false

	if d.useHarrington {
		decision, decided = d.harringtonDecision()
	}

	// Automatic shove logic when stacks are shallow
	if !decided {
		shallowShove := clamp01(0.65 - d.shoveAggAdj)
		shortstackShove := clamp01(0.75 - d.shoveAggAdj)
		if d.spr <= 1.2 && d.strengthRatio >= shallowShove {
			decision = game.Decision{Action: game.Raise, Amount: d.hero.Chips}
			decided = true
		} else if d.preflop && d.hero.Chips <= d.view.BigBlind*10 &&
			d.strengthRatio >= shortstackShove {
			decision = game.Decision{Action: game.Raise, Amount: d.hero.Chips}
			decided = true
		}
	}

	if !decided {
		decision = d.mainLine()
	}

	if !d.useHarrington {
		decision = d.adjustDecision(decision)
	}

	// Reraising without a value hand burns chips: downgrade weak reraises
	reraiseGate := reraiseValueRatio
	if d.topPair || d.overPair {
		reraiseGate = reraiseTopPairRatio
	}
	if decision.Action == game.Raise && d.raiseLevel > 0 && d.strengthRatio < reraiseGate {
		if d.needToCall > 0 {
			decision = d.call()
		} else {
			decision = game.Decision{Action: game.Check}
		}
		d.isBluff = false
		d.isStab = false
	}

	// Raises below the legal minimum that are not all in become calls
	if decision.Action == game.Raise &&
		decision.Amount < d.minRaiseAmount && decision.Amount < d.hero.Chips {
		if d.needToCall > 0 {
			decision = d.call()
		} else {
			decision = game.Decision{Action: game.Check}
		}
	}

	d.markLine(decision)
	return decision
}

// mainLine is the green-zone decision core with randomized tie-breaking
// around the raise threshold and the call barrier.
func (d *decider) mainLine() game.Decision {
	callCap := 0.7
	if d.preflop {
		callCap = 0.5
	}

	if d.needToCall <= 0 {
		if d.canRaise && d.decisionStrength >= d.raiseThreshold {
			amount := max(d.minRaiseAmount, d.valueBetSize())
			if math.Abs(d.decisionStrength-d.raiseThreshold) <= strengthTieDelta {
				if d.rand() < 0.5 {
					return game.Decision{Action: game.Check}
				}
			}
			return game.Decision{Action: game.Raise, Amount: amount}
		}
		return game.Decision{Action: game.Check}
	}

	if d.canRaise && d.decisionStrength >= d.raiseThreshold && d.stackRatio <= 1.0/3 {
		amount := max(d.minRaiseAmount, d.protectionBetSize())
		if math.Abs(d.decisionStrength-d.raiseThreshold) <= strengthTieDelta {
			alt := game.Decision{Action: game.Fold}
			if d.strengthRatio >= d.eliminationBarrier && d.stackRatio <= callCap {
				alt = d.call()
			}
			if d.rand() < 0.5 {
				return game.Decision{Action: game.Raise, Amount: amount}
			}
			return alt
		}
		return game.Decision{Action: game.Raise, Amount: amount}
	}

	if d.strengthRatio >= d.eliminationBarrier && d.stackRatio <= callCap {
		if math.Abs(d.strengthRatio-d.eliminationBarrier) <= oddsTieDelta {
			if d.rand() < 0.5 {
				return d.call()
			}
			return game.Decision{Action: game.Fold}
		}
		return d.call()
	}

	return game.Decision{Action: game.Fold}
}

// adjustDecision layers the exploitative adjustments on top of the core
// line: all-in defense, bluffing versus folders, continuation bets, the
// occasional overbet, slowplay and stabs at abandoned pots.
func (d *decider) adjustDecision(decision game.Decision) game.Decision {
	// Facing an all-in, a genuinely strong hand calls instead of folding
	if decision.Action == game.Fold && d.facingAllIn {
		threshold := allInHandPostflop
		if d.preflop {
			threshold = allInHandPreflop
		}
		if d.strengthRatio >= math.Min(1, threshold+d.eliminationPenalty) {
			decision = d.call()
		}
	}

	if d.bluffChance > 0 && d.canRaise && !d.facingRaise &&
		(!d.preflop || d.strengthRatio >= minPreflopBluffRatio) &&
		(decision.Action == game.Check || decision.Action == game.Fold) && !d.facingAllIn {
		if d.rand() < d.bluffChance {
			decision = game.Decision{Action: game.Raise, Amount: max(d.minRaiseAmount, d.bluffBetSize())}
			d.isBluff = true
		}
	}

	if !d.preflop && d.view.CurrentBet == 0 && decision.Action == game.Check &&
		d.canRaise && !d.facingRaise &&
		d.line != nil && d.line.PreflopAggressor && !d.lineAbort && d.strengthRatio < 0.9 {
		switch {
		case d.view.Phase == game.Flop && d.line.CbetPlanned:
			bet := d.bluffBetSize()
			if d.strengthRatio >= 0.6 || d.drawEquity > 0 {
				bet = d.protectionBetSize()
			}
			decision = game.Decision{
				Action: game.Raise,
				Amount: min(d.hero.Chips, max(d.view.LastRaiseSize, bet)),
			}
			if d.strengthRatio < 0.6 && d.drawEquity == 0 {
				d.isBluff = true
			}
		case d.view.Phase == game.Turn && d.line.BarrelPlanned:
			bet := d.bluffBetSize()
			if d.strengthRatio >= 0.65 || d.drawEquity > 0 {
				bet = d.protectionBetSize()
			}
			decision = game.Decision{
				Action: game.Raise,
				Amount: min(d.hero.Chips, max(d.view.LastRaiseSize, bet)),
			}
			if d.strengthRatio < 0.6 && d.drawEquity == 0 {
				d.isBluff = true
			}
		}
	}

	// Very strong hand in a shallow pot: sometimes size up
	if !d.preflop && decision.Action == game.Raise && d.strengthRatio >= 0.95 &&
		d.spr <= 2 && d.rand() < 0.3 {
		decision.Amount = max(decision.Amount, d.overBetSize())
	}

	// Sometimes slowplay a monster when nothing needs calling
	if !d.preflop && !d.needsToCall && d.strengthRatio >= 0.9 &&
		decision.Action == game.Raise && d.rand() < 0.3 {
		decision = game.Decision{Action: game.Check}
	}

	// Stab at pots nobody wants on dry boards
	if !d.preflop && d.view.CurrentBet == 0 && decision.Action == game.Check &&
		d.canRaise && !d.facingRaise && d.textureRisk < 0.4 &&
		(d.foldRate > 0.25 || d.drawEquity > 0) && d.rand() < 0.2 {
		decision = game.Decision{
			Action: game.Raise,
			Amount: max(d.view.LastRaiseSize, d.protectionBetSize()),
		}
		d.isStab = true
	}

	return decision
}

// markLine records that a planned continuation bet or barrel was made
func (d *decider) markLine(decision game.Decision) {
	if d.line == nil || !d.line.PreflopAggressor || d.preflop ||
		d.view.CurrentBet != 0 || decision.Action != game.Raise {
		return
	}
	if d.view.Phase == game.Flop {
		d.line.CbetMade = true
	} else if d.view.Phase == game.Turn && d.line.CbetMade {
		d.line.BarrelMade = true
	}
}

func (d *decider) call() game.Decision {
	return game.Decision{Action: game.Call, Amount: min(d.hero.Chips, d.needToCall)}
}

// legalize clamps the final decision into the action envelope
func (d *decider) legalize(decision game.Decision) game.Decision {
	switch decision.Action {
	case game.Raise:
		if decision.Amount > d.env.Max {
			decision.Amount = d.env.Max
		}
		if decision.Amount < 0 {
			decision.Amount = 0
		}
	case game.Call:
		decision.Amount = min(d.env.Max, d.env.NeedToCall)
	default:
		decision.Amount = 0
	}
	return decision
}
