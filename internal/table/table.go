// Package table holds the seats of a single Hold'em table: who sits where,
// their stacks, and the dealer button.
package table

import (
	"errors"
	"fmt"

	"github.com/lox/pokercore/poker"
)

const (
	MinSeats = 2
	MaxSeats = 10
)

var (
	ErrTableFull    = errors.New("table is full")
	ErrSeatTaken    = errors.New("seat is taken")
	ErrSeatEmpty    = errors.New("seat is empty")
	ErrSeatRange    = errors.New("seat out of range")
	ErrInvalidStack = errors.New("stack must be positive")
)

// Player is a seated player and their per-hand state.
type Player struct {
	Name   string
	Chips  int
	Folded bool
	Hole   []poker.Card
}

// Table is a fixed-size ring of seats. Empty seats are nil.
type Table struct {
	seats  []*Player
	button int
}

// New creates a table with n seats. It panics when n is outside 2..10, which
// is a programming error in the caller.
func New(n int) *Table {
	if n < MinSeats || n > MaxSeats {
		panic(fmt.Sprintf("seat count must be %d-%d, got %d", MinSeats, MaxSeats, n))
	}
	return &Table{seats: make([]*Player, n)}
}

// Sit places a player in the first free seat and returns the seat index.
func (t *Table) Sit(name string, chips int) (int, error) {
	for i, p := range t.seats {
		if p == nil {
			return i, t.SitAt(i, name, chips)
		}
	}
	return -1, ErrTableFull
}

// SitAt places a player in a specific seat.
func (t *Table) SitAt(seat int, name string, chips int) error {
	if seat < 0 || seat >= len(t.seats) {
		return fmt.Errorf("%w: %d", ErrSeatRange, seat)
	}
	if t.seats[seat] != nil {
		return fmt.Errorf("%w: %d", ErrSeatTaken, seat)
	}
	if chips <= 0 {
		return fmt.Errorf("%w: %s has %d", ErrInvalidStack, name, chips)
	}
	t.seats[seat] = &Player{Name: name, Chips: chips}
	return nil
}

// Leave removes and returns the player at seat.
func (t *Table) Leave(seat int) (*Player, error) {
	p := t.Player(seat)
	if p == nil {
		return nil, fmt.Errorf("%w: %d", ErrSeatEmpty, seat)
	}
	t.seats[seat] = nil
	return p, nil
}

// Player returns the player at seat, or nil when the seat is empty or out of
// range.
func (t *Table) Player(seat int) *Player {
	if seat < 0 || seat >= len(t.seats) {
		return nil
	}
	return t.seats[seat]
}

// SeatCount returns the number of chairs, occupied or not.
func (t *Table) SeatCount() int {
	return len(t.seats)
}

// Occupied reports whether a player sits at seat.
func (t *Table) Occupied(seat int) bool {
	return t.Player(seat) != nil
}

// PlayerCount returns the number of seated players.
func (t *Table) PlayerCount() int {
	n := 0
	for _, p := range t.seats {
		if p != nil {
			n++
		}
	}
	return n
}

// NextOccupied returns the next seat clockwise from `from` that has a player,
// skipping empties. With a single player it returns that player's seat; with
// none it returns -1.
func (t *Table) NextOccupied(from int) int {
	n := len(t.seats)
	for i := 1; i <= n; i++ {
		idx := ((from+i)%n + n) % n
		if t.seats[idx] != nil {
			return idx
		}
	}
	return -1
}

// Button returns the dealer seat.
func (t *Table) Button() int {
	return t.button
}

// SetButton places the dealer button on seat.
func (t *Table) SetButton(seat int) error {
	if !t.Occupied(seat) {
		return fmt.Errorf("%w: %d", ErrSeatEmpty, seat)
	}
	t.button = seat
	return nil
}

// AdvanceButton moves the button to the next occupied seat.
func (t *Table) AdvanceButton() {
	if next := t.NextOccupied(t.button); next >= 0 {
		t.button = next
	}
}

// ResetHand clears folded flags and hole cards ahead of a new hand.
func (t *Table) ResetHand() {
	for _, p := range t.seats {
		if p != nil {
			p.Folded = false
			p.Hole = nil
		}
	}
}

// TotalChips sums every seated stack.
func (t *Table) TotalChips() int {
	total := 0
	for _, p := range t.seats {
		if p != nil {
			total += p.Chips
		}
	}
	return total
}

// Chips returns the stack at seat, zero for an empty seat.
func (t *Table) Chips(seat int) int {
	if p := t.Player(seat); p != nil {
		return p.Chips
	}
	return 0
}

// SetChips overwrites the stack at seat.
func (t *Table) SetChips(seat, chips int) {
	if p := t.Player(seat); p != nil {
		p.Chips = chips
	}
}

// Folded reports whether the player at seat has folded this hand.
func (t *Table) Folded(seat int) bool {
	if p := t.Player(seat); p != nil {
		return p.Folded
	}
	return false
}

// SetFolded marks the player at seat as folded or live.
func (t *Table) SetFolded(seat int, folded bool) {
	if p := t.Player(seat); p != nil {
		p.Folded = folded
	}
}
