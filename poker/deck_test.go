package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercore/internal/randutil"
)

func TestDeckDealsEveryCardOnce(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(1))
	seen := map[Card]bool{}
	for d.Remaining() > 0 {
		c, err := d.DealOne()
		require.NoError(t, err)
		require.True(t, c.Valid())
		require.False(t, seen[c], "dealt %s twice", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)

	_, err := d.DealOne()
	assert.ErrorIs(t, err, ErrDeckExhausted)
	_, err = d.Deal(1)
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestDeckIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	a, err := NewDeck(randutil.New(42)).Deal(10)
	require.NoError(t, err)
	b, err := NewDeck(randutil.New(42)).Deal(10)
	require.NoError(t, err)
	c, err := NewDeck(randutil.New(43)).Deal(10)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestOrderedDeck(t *testing.T) {
	t.Parallel()

	top, err := ParseCards("AsKd2c")
	require.NoError(t, err)
	d, err := NewOrderedDeck(top)
	require.NoError(t, err)

	got, err := d.Deal(3)
	require.NoError(t, err)
	assert.Equal(t, top, got)
	require.NoError(t, d.Burn())
	assert.Equal(t, 48, d.Remaining())

	_, err = NewOrderedDeck([]Card{top[0], top[0]})
	assert.ErrorIs(t, err, ErrDuplicateCard)
}

func TestNewDeckRequiresRNG(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { NewDeck(nil) })
}
