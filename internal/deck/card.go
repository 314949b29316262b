package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Code returns the single-letter suit code used in card codes (C, D, H, S)
func (s Suit) Code() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// String returns the Unicode symbol for the suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are high (14)
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the rank character used in card codes
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + int(r)))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Code returns the two-character card code, e.g. "AS" or "TD"
func (c Card) Code() string {
	return c.Rank.String() + c.Suit.Code()
}

// String returns a display representation, e.g. "A♠"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Parse parses a two-character card code like "AS" or "7h" into a Card
func Parse(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("invalid card code %q", code)
	}

	var rank Rank
	switch rc := code[0]; {
	case rc >= '2' && rc <= '9':
		rank = Rank(rc - '0')
	case rc == 'T' || rc == 't':
		rank = Ten
	case rc == 'J' || rc == 'j':
		rank = Jack
	case rc == 'Q' || rc == 'q':
		rank = Queen
	case rc == 'K' || rc == 'k':
		rank = King
	case rc == 'A' || rc == 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid rank character %q", string(code[0]))
	}

	var suit Suit
	switch code[1] {
	case 'C', 'c':
		suit = Clubs
	case 'D', 'd':
		suit = Diamonds
	case 'H', 'h':
		suit = Hearts
	case 'S', 's':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit character %q", string(code[1]))
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParse parses a card code and panics on failure. Intended for tests
// and static card lists.
func MustParse(code string) Card {
	c, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseAll parses a list of card codes
func ParseAll(codes ...string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := Parse(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Codes returns the card codes for a slice of cards
func Codes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return codes
}
