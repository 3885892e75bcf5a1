package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSidePotsSkipEqualLevels(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 20, 20, 100)
	r := NewRound(tbl, 2)
	act(t, r, 0, AllInAction(), 1)
	act(t, r, 1, AllInAction(), 2)
	act(t, r, 2, BetAction(50), Closed)

	pots, err := r.IntoSidePots()
	require.NoError(t, err)
	assert.Equal(t, []Pot{
		{Level: 20, Amount: 60, Eligible: []int{0, 1, 2}},
		{Level: 50, Amount: 30, Eligible: []int{2}},
	}, pots)
}

func TestSidePotsFoldedAboveEveryLiveLevel(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 20, 100, 100)
	r := NewRound(tbl, 0)
	act(t, r, 1, BetAction(50), 2)
	act(t, r, 2, FoldAction(), 0)
	act(t, r, 0, AllInAction(), Closed)
	// the bettor gives up after the street has closed
	_, err := r.Act(1, FoldAction())
	require.NoError(t, err)

	pots, err := r.IntoSidePots()
	require.NoError(t, err)
	assert.Equal(t, []Pot{{Level: 20, Amount: 20, Dead: 50, Eligible: []int{0}}}, pots)
	assert.Equal(t, 70, PotsTotal(pots))
}

func TestSidePotsOnlyDeadMoney(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 100, 100, 100)
	r := NewRound(tbl, 0)
	act(t, r, 1, BetAction(10), 2)
	_, err := r.Act(1, FoldAction())
	require.NoError(t, err)

	pots, err := r.IntoSidePots()
	require.NoError(t, err)
	assert.Equal(t, []Pot{{Level: 0, Dead: 10, Eligible: []int{0, 2}}}, pots)
}

func TestSidePotsFourWayAllIn(t *testing.T) {
	t.Parallel()

	tbl := newTable(t, 10, 40, 25, 100)
	r := NewRound(tbl, 3)
	act(t, r, 0, AllInAction(), 1)
	act(t, r, 1, AllInAction(), 2)
	act(t, r, 2, AllInAction(), 3)
	act(t, r, 3, CallAction(), Closed)

	pots, err := r.IntoSidePots()
	require.NoError(t, err)
	assert.Equal(t, []Pot{
		{Level: 10, Amount: 40, Eligible: []int{0, 1, 2, 3}},
		{Level: 25, Amount: 45, Eligible: []int{1, 2, 3}},
		{Level: 40, Amount: 30, Eligible: []int{1, 3}},
	}, pots)
	assert.Equal(t, 60, tbl.Chips(3))
}

func TestCollapse(t *testing.T) {
	t.Parallel()

	folded := map[int]bool{2: true, 3: true}
	isFolded := func(seat int) bool { return folded[seat] }

	tests := []struct {
		name      string
		pots      []Pot
		remaining []int
		want      []Pot
	}{
		{
			name: "merges pots that lose their difference",
			pots: []Pot{
				{Level: 10, Amount: 30, Eligible: []int{0, 1, 2}},
				{Level: 50, Amount: 80, Eligible: []int{0, 1}},
			},
			remaining: []int{0, 1},
			want:      []Pot{{Level: 50, Amount: 110, Eligible: []int{0, 1}}},
		},
		{
			name: "keeps distinct contestants apart",
			pots: []Pot{
				{Level: 10, Amount: 30, Eligible: []int{0, 1, 4}},
				{Level: 20, Amount: 20, Dead: 5, Eligible: []int{1, 4}},
				{Level: 15, Amount: 30, Eligible: []int{1, 4}},
			},
			remaining: []int{0, 1, 4},
			want: []Pot{
				{Level: 10, Amount: 30, Eligible: []int{0, 1, 4}},
				{Level: 20, Amount: 50, Dead: 5, Eligible: []int{1, 4}},
			},
		},
		{
			name:      "orphaned pot goes to remaining players",
			pots:      []Pot{{Level: 5, Dead: 15, Eligible: []int{2, 3}}},
			remaining: []int{0, 1},
			want:      []Pot{{Level: 5, Dead: 15, Eligible: []int{0, 1}}},
		},
		{
			name:      "no pots",
			remaining: []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collapse(tt.pots, isFolded, tt.remaining)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, PotsTotal(tt.pots), PotsTotal(got))
		})
	}
}
