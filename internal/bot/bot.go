// Package bot contains simple table policies used to drive simulated hands.
package bot

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/lox/pokercore/internal/game"
	"github.com/lox/pokercore/poker"
)

var ErrUnknownBot = errors.New("unknown bot")

// View is what a bot sees when it is asked to act.
type View struct {
	Seat     int
	Street   game.Street
	Hole     []poker.Card
	Board    []poker.Card
	Chips    int
	ToCall   int
	Pot      int
	BigBlind int
	// Legal holds the advised actions, as returned by Hand.LegalActions.
	Legal []game.Action
}

// Bot picks one action for a view. Implementations must return an action of
// a kind present in v.Legal.
type Bot interface {
	Decide(v View) game.Action
}

// Names lists the bots New accepts.
var Names = []string{"fold", "call", "random", "maniac", "tag"}

// New creates the named bot. rng drives every random choice the bot makes.
func New(name string, rng *rand.Rand) (Bot, error) {
	switch strings.ToLower(name) {
	case "fold":
		return FoldBot{}, nil
	case "call":
		return CallBot{}, nil
	case "random", "rand":
		return &RandBot{rng: rng}, nil
	case "maniac":
		return &ManiacBot{rng: rng}, nil
	case "tag":
		return &TAGBot{rng: rng}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownBot, name, strings.Join(Names, ", "))
	}
}

// FoldBot checks when it can and folds otherwise.
type FoldBot struct{}

func (FoldBot) Decide(v View) game.Action {
	if a, ok := find(v.Legal, game.Check); ok {
		return a
	}
	return game.FoldAction()
}

// CallBot never raises. It calls any bet, going all-in when the call covers
// its stack.
type CallBot struct{}

func (CallBot) Decide(v View) game.Action {
	for _, kind := range []game.ActionKind{game.Check, game.Call} {
		if a, ok := find(v.Legal, kind); ok {
			return a
		}
	}
	return game.AllInAction()
}

// RandBot picks uniformly among the legal actions but only shoves one time in
// ten, so that hands still reach later streets.
type RandBot struct {
	rng *rand.Rand
}

func (b *RandBot) Decide(v View) game.Action {
	legal := v.Legal
	if len(legal) > 1 && legal[len(legal)-1].Kind == game.AllIn && b.rng.IntN(10) > 0 {
		legal = legal[:len(legal)-1]
	}
	return legal[b.rng.IntN(len(legal))]
}

// ManiacBot bets and raises most of the time, sizing between the minimum and
// the pot.
type ManiacBot struct {
	rng *rand.Rand
}

func (b *ManiacBot) Decide(v View) game.Action {
	if b.rng.IntN(100) < 70 {
		for _, kind := range []game.ActionKind{game.Bet, game.Raise} {
			if a, ok := find(v.Legal, kind); ok {
				return sized(a, v, a.Amount+b.rng.IntN(max(v.Pot, 1)))
			}
		}
	}
	return CallBot{}.Decide(v)
}

// TAGBot plays tight and aggressive: premium starting hands and made hands
// are raised, everything else checks or folds to a bet.
type TAGBot struct {
	rng *rand.Rand
}

func (b *TAGBot) Decide(v View) game.Action {
	strong := false
	if v.Street == game.Preflop {
		strong = premium(v.Hole)
	} else if rank, _, err := poker.EvaluateBest(append(slices.Clone(v.Hole), v.Board...)); err == nil {
		strong = rank.Category >= poker.TwoPair || (rank.Category == poker.OnePair && pairedHole(v.Hole, v.Board))
	}

	if strong {
		for _, kind := range []game.ActionKind{game.Bet, game.Raise} {
			if a, ok := find(v.Legal, kind); ok {
				// two thirds of the pot, never below the minimum
				return sized(a, v, max(a.Amount, v.Pot*2/3))
			}
		}
		return CallBot{}.Decide(v)
	}

	if a, ok := find(v.Legal, game.Check); ok {
		return a
	}
	// cheap calls are still worth seeing a card
	if v.ToCall <= v.BigBlind && b.rng.IntN(3) == 0 {
		if a, ok := find(v.Legal, game.Call); ok {
			return a
		}
	}
	return game.FoldAction()
}

// premium matches TT+, AK and AQ.
func premium(hole []poker.Card) bool {
	if len(hole) != 2 {
		return false
	}
	hi, lo := hole[0].Rank, hole[1].Rank
	if lo > hi {
		hi, lo = lo, hi
	}
	if hi == lo {
		return hi >= poker.Ten
	}
	return hi == poker.Ace && lo >= poker.Queen
}

// pairedHole reports whether one of the hole cards pairs the board or the hole
// cards are a pocket pair, so a pair on the board alone does not count.
func pairedHole(hole, board []poker.Card) bool {
	if len(hole) == 2 && hole[0].Rank == hole[1].Rank {
		return true
	}
	for _, h := range hole {
		for _, c := range board {
			if h.Rank == c.Rank {
				return true
			}
		}
	}
	return false
}

func find(legal []game.Action, kind game.ActionKind) (game.Action, bool) {
	for _, a := range legal {
		if a.Kind == kind {
			return a, true
		}
	}
	return game.Action{}, false
}

// sized returns a with its amount set to amount, or an all-in when the stack
// cannot cover it.
func sized(a game.Action, v View, amount int) game.Action {
	amount = max(amount, a.Amount)
	need := amount
	if a.Kind == game.Raise {
		need += v.ToCall
	}
	if need >= v.Chips {
		return game.AllInAction()
	}
	a.Amount = amount
	return a
}
