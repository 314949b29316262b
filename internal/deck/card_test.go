package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		rank Rank
		suit Suit
	}{
		{"AS", Ace, Spades},
		{"as", Ace, Spades},
		{"TD", Ten, Diamonds},
		{"2C", Two, Clubs},
		{"9h", Nine, Hearts},
		{"KH", King, Hearts},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, err := Parse(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.rank, c.Rank)
			assert.Equal(t, tt.suit, c.Suit)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"", "A", "ASX", "1S", "AX", "XS"} {
		t.Run(code, func(t *testing.T) {
			_, err := Parse(code)
			assert.Error(t, err)
		})
	}
}

func TestCardCodeRoundTrip(t *testing.T) {
	t.Parallel()

	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			parsed, err := Parse(c.Code())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	}
}

func TestCardDisplay(t *testing.T) {
	t.Parallel()

	c := MustParse("AH")
	assert.Equal(t, "A♥", c.String())
	assert.Equal(t, "AH", c.Code())
	assert.True(t, c.IsRed())

	assert.False(t, MustParse("TS").IsRed())
}
