package game

import (
	"errors"
	"fmt"
)

// Closed is returned by Round.Act when no seat is left to act.
const Closed = -1

var (
	ErrInvalidSeat   = errors.New("invalid seat")
	ErrRoundConsumed = errors.New("betting round already converted to pots")
)

// Seats is the part of the table a betting round reads and writes. Seats are
// indexed 0..SeatCount()-1 and may be empty.
type Seats interface {
	SeatCount() int
	Occupied(seat int) bool
	NextOccupied(from int) int
	Chips(seat int) int
	SetChips(seat, chips int)
	Folded(seat int) bool
	SetFolded(seat int, folded bool)
}

// Round is the betting state of one street. Create one per street with
// NewRound, feed it actions with Act until it reports Closed, then convert
// it with IntoSidePots exactly once.
type Round struct {
	seats       Seats
	contributed []int
	// pending marks seats that have not acted since the last raise.
	pending    []bool
	currentBet int
	lastRaise  int
	opener     int
	closer     int
	consumed   bool
}

// NewRound starts a street with nothing contributed. dealer is the reference
// seat; action closes once it has come back around to the seat after it.
func NewRound(seats Seats, dealer int) *Round {
	n := seats.SeatCount()
	r := &Round{
		seats:       seats,
		contributed: make([]int, n),
		pending:     make([]bool, n),
		opener:      -1,
		closer:      seats.NextOccupied(dealer),
	}
	for i := range n {
		r.pending[i] = r.canBet(i)
	}
	return r
}

// Post puts a forced bet (blind) in front of seat. Unlike Act it leaves the
// seat's option to act later intact.
func (r *Round) Post(seat, amount int) error {
	if err := r.check(seat); err != nil {
		return err
	}
	r.pay(seat, r.contributed[seat]+max(amount, 0))
	if r.contributed[seat] > r.currentBet {
		r.lastRaise = r.contributed[seat] - r.currentBet
		r.currentBet = r.contributed[seat]
	}
	return nil
}

// Act applies one action for seat, moving chips between the seat's stack and
// its contribution, and returns the next seat that has to act or Closed.
//
// Actions are not checked for legality: a Check while facing a bet moves no
// chips and leaves the seat owing, and amounts beyond the stack are clamped so
// the seat goes all-in for less.
func (r *Round) Act(seat int, action Action) (int, error) {
	if err := r.check(seat); err != nil {
		return Closed, err
	}

	var want int
	switch action.Kind {
	case Fold, Check:
		want = r.contributed[seat]
	case Call:
		want = r.currentBet
	case Bet:
		want = action.Amount
	case Raise:
		want = r.currentBet + action.Amount
	case AllIn:
		want = r.seats.Chips(seat) + r.contributed[seat]
	default:
		return Closed, fmt.Errorf("%w: %d", ErrUnknownAction, action.Kind)
	}

	if action.Kind == Fold {
		r.seats.SetFolded(seat, true)
	} else {
		r.pay(seat, want)
	}
	r.pending[seat] = false

	if r.contributed[seat] > r.currentBet {
		r.reopen(seat)
	}

	return r.NextFrom(seat), nil
}

// NextFrom scans clockwise from seat (exclusive) and returns the first seat
// that still has to act, or Closed when the scan comes back to seat.
func (r *Round) NextFrom(seat int) int {
	unfolded, bettors := 0, 0
	for i := range r.contributed {
		if r.live(i) {
			unfolded++
			if r.seats.Chips(i) > 0 {
				bettors++
			}
		}
	}
	if unfolded < 2 {
		return Closed
	}

	idx := seat
	for range len(r.contributed) {
		idx = r.seats.NextOccupied(idx)
		if idx < 0 || idx == seat {
			break
		}
		if r.owes(idx, bettors) {
			return idx
		}
	}
	return Closed
}

// owes reports whether seat still has to act. Seats with nothing behind are
// never owed anything, even when they are short of the current bet.
func (r *Round) owes(seat, bettors int) bool {
	if !r.canBet(seat) {
		return false
	}
	if r.contributed[seat] < r.currentBet {
		return true
	}
	return r.pending[seat] && bettors > 1
}

func (r *Round) reopen(seat int) {
	r.lastRaise = max(r.lastRaise, r.contributed[seat]-r.currentBet)
	r.currentBet = r.contributed[seat]
	r.opener = seat
	r.closer = r.seats.NextOccupied(seat)
	for i := range r.pending {
		r.pending[i] = i != seat && r.canBet(i)
	}
}

func (r *Round) pay(seat, want int) {
	missing := max(0, want-r.contributed[seat])
	stack := r.seats.Chips(seat)
	pay := min(missing, stack)
	r.seats.SetChips(seat, stack-pay)
	r.contributed[seat] += pay
}

func (r *Round) check(seat int) error {
	if r.consumed {
		return ErrRoundConsumed
	}
	if seat < 0 || seat >= len(r.contributed) || !r.seats.Occupied(seat) {
		return fmt.Errorf("%w: %d", ErrInvalidSeat, seat)
	}
	return nil
}

func (r *Round) live(seat int) bool {
	return r.seats.Occupied(seat) && !r.seats.Folded(seat)
}

func (r *Round) canBet(seat int) bool {
	return r.live(seat) && r.seats.Chips(seat) > 0
}

// CurrentBet is the highest total contribution this street.
func (r *Round) CurrentBet() int { return r.currentBet }

// MinRaise is the largest single raise increment this street, blinds
// included. A legal re-raise must be at least this big.
func (r *Round) MinRaise() int { return r.lastRaise }

// Contributed returns what seat has put in this street.
func (r *Round) Contributed(seat int) int {
	if seat < 0 || seat >= len(r.contributed) {
		return 0
	}
	return r.contributed[seat]
}

// ToCall returns the chips seat needs to add to match the current bet.
func (r *Round) ToCall(seat int) int {
	return max(0, r.currentBet-r.Contributed(seat))
}

// Opener is the last seat to raise the current bet, or -1.
func (r *Round) Opener() int { return r.opener }

// Closer is the first seat to act after the most recent aggressor (after the
// dealer while nobody has opened). Action closes once it comes back around
// past the aggressor with every live stack matched.
func (r *Round) Closer() int { return r.closer }

// Total returns every chip contributed this street.
func (r *Round) Total() int {
	total := 0
	for _, c := range r.contributed {
		total += c
	}
	return total
}
