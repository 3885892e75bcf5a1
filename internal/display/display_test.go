package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercore/internal/game"
	"github.com/lox/pokercore/internal/simulator"
	"github.com/lox/pokercore/internal/statistics"
	"github.com/lox/pokercore/internal/table"
	"github.com/lox/pokercore/poker"
)

func TestCardsPlainWhenNotATerminal(t *testing.T) {
	t.Parallel()

	r := New(&bytes.Buffer{})
	cards, err := poker.ParseCards("AsKh")
	require.NoError(t, err)
	assert.Equal(t, "[A♠ K♥]", r.Cards(cards))
	assert.Equal(t, "[]", r.Cards(nil))
}

func TestRank(t *testing.T) {
	t.Parallel()

	r := New(&bytes.Buffer{})
	cards, err := poker.ParseCards("AsKsQsJsTs9h2c")
	require.NoError(t, err)
	rank, best, err := poker.EvaluateBest(cards)
	require.NoError(t, err)
	assert.Equal(t, "Royal Flush [A♠ K♠ Q♠ J♠ T♠]", r.Rank(rank, best))
}

func TestSeatAndResult(t *testing.T) {
	t.Parallel()

	r := New(&bytes.Buffer{})
	tbl := table.New(3)
	require.NoError(t, tbl.SitAt(0, "Alice", 100))
	require.NoError(t, tbl.SitAt(2, "Carol", 50))

	assert.Contains(t, r.Seat(tbl, 0), "Alice")
	assert.Contains(t, r.Seat(tbl, 0), "(D)")
	assert.NotContains(t, r.Seat(tbl, 2), "(D)")
	assert.Contains(t, r.Seat(tbl, 1), "empty")

	res := &game.Result{
		Pots: []game.Pot{
			{Level: 50, Amount: 100, Eligible: []int{0, 2}},
			{Level: 100, Amount: 50, Eligible: []int{0}},
		},
		Awards: []game.Award{
			{Pot: 0, Seat: 2, Name: "Carol", Amount: 100},
			{Pot: 1, Seat: 0, Name: "Alice", Amount: 50},
		},
	}
	out := r.Result(res)
	assert.Contains(t, out, "Main pot 100")
	assert.Contains(t, out, "Side pot 1 50")
	assert.Contains(t, out, "Carol wins 100")
	assert.NotContains(t, out, " with ")
}

func TestPositionName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BB", PositionName(1, 2))
	assert.Equal(t, "SB", PositionName(1, 6))
	assert.Equal(t, "UTG", PositionName(3, 6))
	assert.Equal(t, "UTG+2", PositionName(5, 6))
}

func TestReport(t *testing.T) {
	t.Parallel()

	rep := &simulator.Report{
		Hands:      10,
		Showdowns:  4,
		Pots:       12,
		Categories: map[poker.Category]int{poker.OnePair: 3, poker.Flush: 1},
		Positions:  make([]statistics.Statistics, 2),
	}
	rep.Positions[0].Add(statistics.HandResult{NetBB: 1})
	rep.Positions[1].Add(statistics.HandResult{NetBB: -1})
	rep.Bots = map[string]*statistics.Statistics{"tag": &rep.Positions[0], "call": &rep.Positions[1]}

	out := New(&bytes.Buffer{}).Report(rep)
	assert.Contains(t, out, "4 (40.0%)")
	assert.Contains(t, out, "Flush")
	assert.Contains(t, out, "BTN")
	assert.Contains(t, out, "Net by bot")
	assert.Less(t, bytes.Index([]byte(out), []byte("call")), bytes.Index([]byte(out), []byte("tag")))
	assert.Less(t, bytes.Index([]byte(out), []byte("Flush")), bytes.Index([]byte(out), []byte("Pair")))
}

func TestColorMode(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"", "auto"} {
		opts, err := ColorMode(mode)
		require.NoError(t, err)
		assert.Empty(t, opts)
	}

	never, err := ColorMode("never")
	require.NoError(t, err)
	cards := poker.MustParseCards("Ah")
	assert.Equal(t, "[A♥]", New(&bytes.Buffer{}, never...).Cards(cards))

	always, err := ColorMode("always")
	require.NoError(t, err)
	assert.Contains(t, New(&bytes.Buffer{}, always...).Cards(cards), "\x1b[")

	_, err = ColorMode("sometimes")
	assert.Error(t, err)
}
