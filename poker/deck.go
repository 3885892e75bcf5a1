package poker

import (
	"errors"
	rand "math/rand/v2"
)

// ErrDeckExhausted is returned when more cards are requested than remain.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a standard 52-card deck
type Deck struct {
	cards [52]Card // Fixed size array
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with an explicit RNG. The RNG must not be
// nil; callers that want reproducible hands pass randutil.New(seed).
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		panic("rng is required for deck creation")
	}
	d := &Deck{rng: rng}
	d.fill()
	d.Shuffle()
	return d
}

// NewOrderedDeck returns a deck that deals the given cards first, in order,
// followed by the rest of the deck in index order. Used for scripted hands.
func NewOrderedDeck(top []Card) (*Deck, error) {
	d := &Deck{}
	var used [52]bool
	i := 0
	for _, c := range top {
		if !c.Valid() {
			return nil, ErrInvalidCard
		}
		if used[c.Index()] {
			return nil, ErrDuplicateCard
		}
		used[c.Index()] = true
		d.cards[i] = c
		i++
	}
	for suit := range Suit(NumSuits) {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			if !used[c.Index()] {
				d.cards[i] = c
				i++
			}
		}
	}
	return d, nil
}

func (d *Deck) fill() {
	i := 0
	for suit := range Suit(NumSuits) {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	if d.rng == nil {
		return
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if d.next+n > len(d.cards) {
		return nil, ErrDeckExhausted
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealOne deals a single card from the deck
func (d *Deck) DealOne() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// Burn discards the top card.
func (d *Deck) Burn() error {
	_, err := d.DealOne()
	return err
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
