package bot

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercore/internal/game"
	"github.com/lox/pokercore/internal/randutil"
	"github.com/lox/pokercore/poker"
)

func facingBet() View {
	return View{
		Street:   game.Flop,
		Hole:     poker.MustParseCards("7c2d"),
		Board:    poker.MustParseCards("KsQh3c"),
		Chips:    100,
		ToCall:   10,
		Pot:      30,
		BigBlind: 2,
		Legal:    []game.Action{game.FoldAction(), game.CallAction(), game.RaiseAction(10), game.AllInAction()},
	}
}

func unopened() View {
	v := facingBet()
	v.ToCall = 0
	v.Legal = []game.Action{game.CheckAction(), game.BetAction(2), game.AllInAction()}
	return v
}

func TestNew(t *testing.T) {
	t.Parallel()

	rng := randutil.New(1)
	for _, name := range append(slices.Clone(Names), "RAND", "Tag") {
		b, err := New(name, rng)
		require.NoError(t, err, name)
		require.NotNil(t, b, name)
	}

	_, err := New("shark", rng)
	assert.ErrorIs(t, err, ErrUnknownBot)
}

func TestFoldBot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, game.CheckAction(), FoldBot{}.Decide(unopened()))
	assert.Equal(t, game.FoldAction(), FoldBot{}.Decide(facingBet()))
}

func TestCallBot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, game.CheckAction(), CallBot{}.Decide(unopened()))
	assert.Equal(t, game.CallAction(), CallBot{}.Decide(facingBet()))

	short := facingBet()
	short.Chips = 5
	short.Legal = []game.Action{game.FoldAction(), game.AllInAction()}
	assert.Equal(t, game.AllInAction(), CallBot{}.Decide(short))
}

func TestTAGBot(t *testing.T) {
	t.Parallel()

	b := &TAGBot{rng: randutil.New(3)}

	v := facingBet()
	v.ToCall = 20
	assert.Equal(t, game.FoldAction(), b.Decide(v), "nothing facing a big bet")
	assert.Equal(t, game.CheckAction(), b.Decide(unopened()))

	v = unopened()
	v.Hole = poker.MustParseCards("KdKc")
	got := b.Decide(v)
	assert.Equal(t, game.Bet, got.Kind, "set of kings")
	assert.Equal(t, 20, got.Amount, "two thirds of a 30 pot")

	v = facingBet()
	v.Street = game.Preflop
	v.Board = nil
	v.Hole = poker.MustParseCards("AhQh")
	got = b.Decide(v)
	assert.Equal(t, game.Raise, got.Kind)
	assert.Equal(t, 20, got.Amount)

	v.Chips = 25
	assert.Equal(t, game.AllInAction(), b.Decide(v), "raise would cover the stack")
}

func TestPremium(t *testing.T) {
	t.Parallel()

	for hand, want := range map[string]bool{
		"AsAd": true,
		"TsTd": true,
		"9s9d": false,
		"AsKd": true,
		"QcAc": true,
		"AsJd": false,
		"KsQd": false,
	} {
		assert.Equal(t, want, premium(poker.MustParseCards(hand)), hand)
	}
}

func TestPairedHoleIgnoresBoardPairs(t *testing.T) {
	t.Parallel()

	board := poker.MustParseCards("8s8d3c")
	assert.False(t, pairedHole(poker.MustParseCards("AhKd"), board))
	assert.True(t, pairedHole(poker.MustParseCards("Ah3d"), board))
	assert.True(t, pairedHole(poker.MustParseCards("2h2d"), board))
}

// TestBotsOnlyChooseLegalKinds feeds each bot random views and checks every
// answer is one of the advised action kinds.
func TestBotsOnlyChooseLegalKinds(t *testing.T) {
	t.Parallel()

	rng := randutil.New(7)
	for _, name := range Names {
		b, err := New(name, rng)
		require.NoError(t, err)
		for i := range 200 {
			v := facingBet()
			if i%2 == 0 {
				v = unopened()
			}
			v.Pot = rng.IntN(400)
			v.Chips = 1 + rng.IntN(200)
			got := b.Decide(v)
			_, ok := find(v.Legal, got.Kind)
			require.True(t, ok, "%s chose %s from %v", name, got, v.Legal)
		}
	}
}
