package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitAndLeave(t *testing.T) {
	t.Parallel()

	tbl := New(3)
	a, err := tbl.Sit("Alice", 100)
	require.NoError(t, err)
	b, err := tbl.Sit("Bob", 100)
	require.NoError(t, err)
	c, err := tbl.Sit("Carol", 50)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, []int{a, b, c})

	_, err = tbl.Sit("Dave", 10)
	assert.ErrorIs(t, err, ErrTableFull)

	p, err := tbl.Leave(1)
	require.NoError(t, err)
	assert.Equal(t, "Bob", p.Name)
	assert.False(t, tbl.Occupied(1))
	assert.Equal(t, 2, tbl.PlayerCount())

	_, err = tbl.Leave(1)
	assert.ErrorIs(t, err, ErrSeatEmpty)

	assert.ErrorIs(t, tbl.SitAt(0, "Eve", 10), ErrSeatTaken)
	assert.ErrorIs(t, tbl.SitAt(7, "Eve", 10), ErrSeatRange)
	assert.ErrorIs(t, tbl.SitAt(1, "Eve", 0), ErrInvalidStack)
}

func TestNextOccupiedSkipsEmptySeats(t *testing.T) {
	t.Parallel()

	tbl := New(6)
	require.NoError(t, tbl.SitAt(1, "A", 10))
	require.NoError(t, tbl.SitAt(4, "B", 10))

	assert.Equal(t, 4, tbl.NextOccupied(1))
	assert.Equal(t, 1, tbl.NextOccupied(4))
	assert.Equal(t, 1, tbl.NextOccupied(5))
	assert.Equal(t, 4, tbl.NextOccupied(2))

	require.NoError(t, tbl.SetButton(1))
	tbl.AdvanceButton()
	assert.Equal(t, 4, tbl.Button())
	tbl.AdvanceButton()
	assert.Equal(t, 1, tbl.Button())

	assert.Equal(t, -1, New(2).NextOccupied(0))
}

func TestSeatAccessors(t *testing.T) {
	t.Parallel()

	tbl := New(2)
	require.NoError(t, tbl.SitAt(0, "A", 40))

	tbl.SetChips(0, 25)
	tbl.SetFolded(0, true)
	assert.Equal(t, 25, tbl.Chips(0))
	assert.True(t, tbl.Folded(0))

	// empty seats read as zero and ignore writes
	tbl.SetChips(1, 99)
	assert.Equal(t, 0, tbl.Chips(1))
	assert.False(t, tbl.Folded(1))

	tbl.ResetHand()
	assert.False(t, tbl.Folded(0))
	assert.Equal(t, 25, tbl.TotalChips())
}

func TestNewRejectsBadSeatCount(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New(1) })
	assert.Panics(t, func() { New(11) })
}
