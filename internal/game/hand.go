package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lox/pokercore/internal/table"
	"github.com/lox/pokercore/poker"
)

var (
	ErrNotEnoughPlayers  = errors.New("at least 2 players with chips required")
	ErrNoRandomSource    = errors.New("rng or deck is required")
	ErrHandNotStarted    = errors.New("hand not started")
	ErrHandStarted       = errors.New("hand already started")
	ErrHandComplete      = errors.New("hand is complete")
	ErrOutOfTurn         = errors.New("seat is not next to act")
	ErrChipsNotConserved = errors.New("chip total changed during hand")
)

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// Award is what one seat won from one pot.
type Award struct {
	Pot    int
	Seat   int
	Name   string
	Amount int
	// Rank and Best are zero when the pot was won uncontested.
	Rank poker.HandRank
	Best [5]poker.Card
}

// Entry is one recorded player action.
type Entry struct {
	Street Street
	Seat   int
	Action Action
	// Total is what the seat has in front of it this street after acting.
	Total int
	// Raised is set when the action increased the bet the others face.
	Raised bool
}

// Result summarises a finished hand.
type Result struct {
	HandID   string
	Board    []poker.Card
	Pots     []Pot
	Awards   []Award
	Showdown bool
}

// Hand runs a single hand at a table: blinds, four betting streets, and the
// showdown. The table's dealer button must already be in place.
type Hand struct {
	ID string

	table  *table.Table
	deck   *poker.Deck
	logger *log.Logger

	smallBlind int
	bigBlind   int

	street     Street
	board      []poker.Card
	round      *Round
	pots       []Pot
	toAct      int
	startChips int
	stacks     []int
	posted     []int
	history    []Entry
	started    bool
	result     *Result
}

// NewHand prepares a hand at t. Call Start to post blinds and deal.
func NewHand(t *table.Table, opts ...HandOption) (*Hand, error) {
	cfg := defaultHandConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	deck := cfg.deck
	if deck == nil {
		if cfg.rng == nil {
			return nil, ErrNoRandomSource
		}
		deck = poker.NewDeck(cfg.rng)
	}

	id := cfg.handID
	if id == "" {
		u, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generate hand id: %w", err)
		}
		id = u.String()
	}

	return &Hand{
		ID:         id,
		table:      t,
		deck:       deck,
		logger:     cfg.logger.With("hand", id),
		smallBlind: cfg.smallBlind,
		bigBlind:   cfg.bigBlind,
		toAct:      Closed,
	}, nil
}

// Start resets the seats, deals hole cards, posts the blinds and opens
// preflop betting. Players without chips sit the hand out.
func (h *Hand) Start() error {
	if h.started {
		return ErrHandStarted
	}
	t := h.table
	t.ResetHand()
	for seat := range t.SeatCount() {
		if t.Occupied(seat) && t.Chips(seat) == 0 {
			t.SetFolded(seat, true)
		}
	}
	players := h.unfolded()
	if len(players) < 2 {
		return ErrNotEnoughPlayers
	}
	button := t.Button()
	if !t.Occupied(button) || t.Folded(button) {
		button = h.nextLive(button)
		if err := t.SetButton(button); err != nil {
			return err
		}
	}
	h.startChips = t.TotalChips()
	h.stacks = make([]int, t.SeatCount())
	for seat := range h.stacks {
		h.stacks[seat] = t.Chips(seat)
	}

	// one card at a time, starting left of the button
	for range 2 {
		seat := button
		for range players {
			seat = h.nextLive(seat)
			card, err := h.deck.DealOne()
			if err != nil {
				return fmt.Errorf("deal hole cards: %w", err)
			}
			p := t.Player(seat)
			p.Hole = append(p.Hole, card)
		}
	}

	sb := h.nextLive(button)
	if len(players) == 2 {
		// heads-up: the button posts the small blind and acts first preflop
		sb = button
	}
	bb := h.nextLive(sb)

	h.street = Preflop
	h.round = NewRound(t, button)
	if err := h.round.Post(sb, h.smallBlind); err != nil {
		return err
	}
	if err := h.round.Post(bb, h.bigBlind); err != nil {
		return err
	}
	h.posted = make([]int, t.SeatCount())
	h.posted[sb] = h.round.Contributed(sb)
	h.posted[bb] = h.round.Contributed(bb)
	h.started = true

	h.logger.Info("Hand started",
		"button", button, "sb", sb, "bb", bb, "players", len(players))

	h.toAct = h.round.NextFrom(bb)
	if h.toAct == Closed {
		return h.closeStreet()
	}
	return nil
}

// Act applies action for seat, which must be the seat returned by ToAct.
// When the street closes the next one is dealt automatically; when only one
// player remains or the river closes the hand is settled.
func (h *Hand) Act(seat int, action Action) error {
	if !h.started {
		return ErrHandNotStarted
	}
	if h.result != nil {
		return ErrHandComplete
	}
	if seat != h.toAct {
		return fmt.Errorf("%w: seat %d acted, seat %d to act", ErrOutOfTurn, seat, h.toAct)
	}

	bet := h.round.CurrentBet()
	next, err := h.round.Act(seat, action)
	if err != nil {
		return err
	}
	h.history = append(h.history, Entry{
		Street: h.street,
		Seat:   seat,
		Action: action,
		Total:  h.round.Contributed(seat),
		Raised: h.round.CurrentBet() > bet,
	})
	h.logger.Debug("Action",
		"street", h.street, "seat", seat, "action", action,
		"contributed", h.round.Contributed(seat), "bet", h.round.CurrentBet(), "next", next)

	if len(h.unfolded()) == 1 {
		return h.finish()
	}
	h.toAct = next
	if next != Closed {
		return nil
	}
	return h.closeStreet()
}

// closeStreet banks the street's pots and deals forward until someone has to
// act or the hand is over. When nobody can bet any more the board is run out
// street by street.
func (h *Hand) closeStreet() error {
	for {
		pots, err := h.round.IntoSidePots()
		if err != nil {
			return err
		}
		h.pots = append(h.pots, pots...)
		h.logger.Debug("Street closed", "street", h.street, "pots", len(pots), "total", PotsTotal(pots))

		if h.street == River {
			h.street = Showdown
			return h.finish()
		}
		if err := h.dealStreet(); err != nil {
			return err
		}

		h.round = NewRound(h.table, h.table.Button())
		h.toAct = h.round.NextFrom(h.table.Button())
		if h.toAct != Closed {
			return nil
		}
	}
}

func (h *Hand) dealStreet() error {
	n := 1
	if h.street == Preflop {
		n = 3
	}
	if err := h.deck.Burn(); err != nil {
		return fmt.Errorf("burn before %s: %w", h.street+1, err)
	}
	cards, err := h.deck.Deal(n)
	if err != nil {
		return fmt.Errorf("deal %s: %w", h.street+1, err)
	}
	h.board = append(h.board, cards...)
	h.street++
	h.logger.Info("Dealt street", "street", h.street, "board", poker.FormatCards(h.board))
	return nil
}

// finish settles the hand, either uncontested or at showdown.
func (h *Hand) finish() error {
	if h.round != nil && !h.round.consumed {
		pots, err := h.round.IntoSidePots()
		if err != nil {
			return err
		}
		h.pots = append(h.pots, pots...)
	}
	h.toAct = Closed

	remaining := h.unfolded()
	pots := Collapse(h.pots, h.table.Folded, remaining)
	res := &Result{
		HandID:   h.ID,
		Board:    slices.Clone(h.board),
		Pots:     pots,
		Showdown: len(remaining) > 1,
	}

	if !res.Showdown {
		winner := remaining[0]
		for i, p := range pots {
			h.credit(res, Award{Pot: i, Seat: winner, Amount: p.Total()})
		}
		h.logger.Info("Hand won uncontested", "seat", winner, "amount", PotsTotal(pots))
	} else {
		if err := h.showdown(res, remaining); err != nil {
			return err
		}
	}
	h.result = res

	if got := h.table.TotalChips(); got != h.startChips {
		return fmt.Errorf("%w: started with %d, ended with %d", ErrChipsNotConserved, h.startChips, got)
	}
	return nil
}

func (h *Hand) showdown(res *Result, remaining []int) error {
	type scored struct {
		rank poker.HandRank
		best [5]poker.Card
	}
	scores := make(map[int]scored, len(remaining))
	for _, seat := range remaining {
		cards := append(slices.Clone(h.table.Player(seat).Hole), h.board...)
		rank, best, err := poker.EvaluateBest(cards)
		if err != nil {
			return fmt.Errorf("evaluate seat %d: %w", seat, err)
		}
		scores[seat] = scored{rank: rank, best: best}
		h.logger.Info("Showdown", "seat", seat, "rank", rank.String(), "best", poker.FormatCards(best[:]))
	}

	for i, p := range res.Pots {
		var winners []int
		for _, seat := range h.clockwise(p.Eligible) {
			if len(winners) == 0 {
				winners = []int{seat}
				continue
			}
			switch poker.Compare(scores[seat].rank, scores[winners[0]].rank) {
			case 1:
				winners = []int{seat}
			case 0:
				winners = append(winners, seat)
			}
		}

		share, odd := p.Total()/len(winners), p.Total()%len(winners)
		for j, seat := range winners {
			amount := share
			if j < odd {
				amount++
			}
			h.credit(res, Award{
				Pot:    i,
				Seat:   seat,
				Amount: amount,
				Rank:   scores[seat].rank,
				Best:   scores[seat].best,
			})
		}
	}
	return nil
}

func (h *Hand) credit(res *Result, a Award) {
	p := h.table.Player(a.Seat)
	a.Name = p.Name
	p.Chips += a.Amount
	res.Awards = append(res.Awards, a)
}

// clockwise orders seats starting left of the button, so odd chips go to the
// first winner after the button.
func (h *Hand) clockwise(seats []int) []int {
	n := h.table.SeatCount()
	button := h.table.Button()
	out := slices.Clone(seats)
	slices.SortFunc(out, func(a, b int) int {
		return (a-button-1+n)%n - (b-button-1+n)%n
	})
	return out
}

func (h *Hand) unfolded() []int {
	var seats []int
	for seat := range h.table.SeatCount() {
		if h.table.Occupied(seat) && !h.table.Folded(seat) {
			seats = append(seats, seat)
		}
	}
	return seats
}

func (h *Hand) nextLive(from int) int {
	seat := from
	for range h.table.SeatCount() {
		seat = h.table.NextOccupied(seat)
		if seat < 0 || !h.table.Folded(seat) {
			return seat
		}
	}
	return -1
}

// ToAct returns the seat that has to act next, or Closed once the hand is
// over.
func (h *Hand) ToAct() int { return h.toAct }

// Street returns the current street.
func (h *Hand) Street() Street { return h.street }

// Board returns the community cards dealt so far.
func (h *Hand) Board() []poker.Card { return slices.Clone(h.board) }

// Round exposes the current street's betting state.
func (h *Hand) Round() *Round { return h.round }

// Pots returns the pots banked from closed streets.
func (h *Hand) Pots() []Pot { return slices.Clone(h.pots) }

// History returns every action taken so far, in order.
func (h *Hand) History() []Entry { return slices.Clone(h.history) }

// StartingStacks returns each seat's chips before the blinds were posted,
// indexed by seat.
func (h *Hand) StartingStacks() []int { return slices.Clone(h.stacks) }

// Posted returns the blinds each seat posted, indexed by seat.
func (h *Hand) Posted() []int { return slices.Clone(h.posted) }

// Result returns the settled hand, or nil while it is still running.
func (h *Hand) Result() *Result { return h.result }

// LegalActions lists what the seat to act may do, with the minimum sizes for
// bets and raises. It is advisory: Round.Act accepts any action.
func (h *Hand) LegalActions() []Action {
	if h.result != nil || h.toAct == Closed {
		return nil
	}
	seat := h.toAct
	chips := h.table.Chips(seat)
	owe := h.round.ToCall(seat)
	minRaise := max(h.bigBlind, h.round.MinRaise())

	var actions []Action
	if owe > 0 {
		actions = append(actions, FoldAction())
		if chips > owe {
			actions = append(actions, CallAction())
		}
	} else {
		actions = append(actions, CheckAction())
	}
	switch {
	case h.round.CurrentBet() == 0 && chips > minRaise:
		actions = append(actions, BetAction(minRaise))
	case h.round.CurrentBet() > 0 && chips > owe+minRaise:
		actions = append(actions, RaiseAction(minRaise))
	}
	return append(actions, AllInAction())
}
