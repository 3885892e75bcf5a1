// Package game implements no-limit Texas Hold'em betting for a single hand.
//
// The core type is Round, which tracks one street of betting: each seat's
// contribution, the current bet, and who still has to act. A Round turns its
// contributions into main and side pots with IntoSidePots once the street
// closes.
//
// # Basic Usage
//
// Drive a single street directly against any Seats implementation:
//
//	r := game.NewRound(tbl, button)
//	next, err := r.Act(seat, game.CallAction())
//	// ... until next == game.Closed
//	pots, err := r.IntoSidePots()
//
// Or run a whole hand, which posts blinds, deals, and settles the showdown:
//
//	h, err := game.NewHand(tbl, game.WithBlinds(1, 2), game.WithRNG(randutil.New(42)))
//	err = h.Start()
//	for h.ToAct() != game.Closed {
//	    err = h.Act(h.ToAct(), chooseAction(h.LegalActions()))
//	}
//	res := h.Result()
//
// # Deterministic Testing
//
// Hands never reach for global randomness. Pass WithRNG with a seeded source
// or WithDeck with a pre-arranged poker.NewOrderedDeck to script the cards.
//
// # Concurrency
//
// Nothing in this package locks. A Hand and its Round own the table they are
// given for the duration of each call; run concurrent hands on separate
// tables.
package game
