package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tehes/poker/internal/randutil"
)

func TestNewDeckHas52UniqueCards(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(1))
	require.Equal(t, 52, d.Remaining())

	seen := make(map[Card]bool)
	for {
		c, ok := d.Deal()
		if !ok {
			break
		}
		assert.False(t, seen[c], "card %s dealt twice", c.Code())
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestShuffleIsSeedDeterministic(t *testing.T) {
	t.Parallel()

	a := New(randutil.New(7))
	b := New(randutil.New(7))
	for i := 0; i < 52; i++ {
		ca, _ := a.Deal()
		cb, _ := b.Deal()
		assert.Equal(t, ca, cb)
	}
}

func TestBurnAndDiscardFeedGraveyard(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(3))
	d.Burn()
	assert.Equal(t, 51, d.Remaining())
	assert.Equal(t, 1, d.GraveyardSize())

	cards := d.DealN(2)
	d.Discard(cards...)
	assert.Equal(t, 49, d.Remaining())
	assert.Equal(t, 3, d.GraveyardSize())

	d.Recycle()
	assert.Equal(t, 52, d.Remaining())
	assert.Equal(t, 0, d.GraveyardSize())
}

func TestDealRecyclesGraveyardWhenEmpty(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(5))
	d.Discard(d.DealN(52)...)
	require.Equal(t, 0, d.Remaining())
	require.Equal(t, 52, d.GraveyardSize())

	c, ok := d.Deal()
	require.True(t, ok)
	assert.NotZero(t, c.Code())
	assert.Equal(t, 51, d.Remaining())
}

func TestDealFailsOnlyWhenEverythingIsGone(t *testing.T) {
	t.Parallel()

	d := New(randutil.New(9))
	d.DealN(52)
	_, ok := d.Deal()
	assert.False(t, ok)
}
