package deck

import (
	rand "math/rand/v2"
)

// Deck represents a deck of playing cards plus a graveyard of discards.
// When the deck runs out mid-deal the graveyard is shuffled back in, so a
// deal never fails as long as fewer than 52 cards are in play.
type Deck struct {
	cards     []Card
	graveyard []Card
	rng       *rand.Rand
}

// New creates a shuffled 52-card deck using the provided RNG
func New(rng *rand.Rand) *Deck {
	d := &Deck{
		cards:     make([]Card, 0, 52),
		graveyard: make([]Card, 0, 52),
		rng:       rng,
	}
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.Shuffle()
	return d
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Recycle returns the graveyard to the deck and shuffles
func (d *Deck) Recycle() {
	d.cards = append(d.cards, d.graveyard...)
	d.graveyard = d.graveyard[:0]
	d.Shuffle()
}

// Deal removes and returns the top card, recycling the graveyard if the
// deck is empty. The second return is false only when both piles are empty.
func (d *Deck) Deal() (Card, bool) {
	if len(d.cards) == 0 {
		if len(d.graveyard) == 0 {
			return Card{}, false
		}
		d.Recycle()
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealN deals n cards from the deck
func (d *Deck) DealN(n int) []Card {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, ok := d.Deal()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

// Burn moves the top card to the graveyard
func (d *Deck) Burn() {
	if card, ok := d.Deal(); ok {
		d.graveyard = append(d.graveyard, card)
	}
}

// Discard adds cards to the graveyard (hole cards and board after a hand)
func (d *Deck) Discard(cards ...Card) {
	d.graveyard = append(d.graveyard, cards...)
}

// Remaining returns the number of cards left in the deck proper
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// GraveyardSize returns the number of discarded cards
func (d *Deck) GraveyardSize() int {
	return len(d.graveyard)
}
