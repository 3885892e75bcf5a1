package game

import (
	"slices"
	"sort"
)

// Pot represents a pot (main or side)
type Pot struct {
	// Level is the per-seat contribution cap of this pot within its street.
	Level int
	// Amount is the live money: the slice of Level every eligible seat paid.
	Amount int
	// Dead is money from seats that folded after reaching this level.
	Dead int
	// Eligible lists the seats that can win the pot, in seat order.
	Eligible []int
}

// Total returns the chips a winner of this pot receives.
func (p Pot) Total() int {
	return p.Amount + p.Dead
}

// IntoSidePots converts the street's contributions into pots, main pot first.
// Contribution levels of unfolded seats are peeled from lowest to highest;
// each level forms a pot whose eligible seats are everyone still holding a
// contribution at or above it. Folded seats' chips are added as dead money to
// the pots of the levels they reached, and never make them eligible.
//
// A Round can only be converted once.
func (r *Round) IntoSidePots() ([]Pot, error) {
	if r.consumed {
		return nil, ErrRoundConsumed
	}
	r.consumed = true

	type stake struct {
		seat   int
		amount int
	}
	var live []stake
	var dead []int
	for seat, c := range r.contributed {
		switch {
		case r.live(seat):
			live = append(live, stake{seat: seat, amount: c})
		case c > 0:
			dead = append(dead, c)
		}
	}
	sort.SliceStable(live, func(i, j int) bool {
		return live[i].amount < live[j].amount
	})

	var pots []Pot
	running := 0
	for len(live) > 0 {
		level := live[0].amount
		if level > running {
			pot := Pot{
				Level:    level,
				Amount:   (level - running) * len(live),
				Eligible: make([]int, 0, len(live)),
			}
			for _, s := range live {
				pot.Eligible = append(pot.Eligible, s.seat)
			}
			slices.Sort(pot.Eligible)
			for _, d := range dead {
				pot.Dead += min(d, level) - min(d, running)
			}
			pots = append(pots, pot)
			running = level
		}
		live = live[1:]
	}

	// Folded money above every live level (an uncalled raise that was later
	// abandoned) goes to the top pot.
	over := 0
	for _, d := range dead {
		over += max(0, d-running)
	}
	if over > 0 {
		if len(pots) == 0 {
			pots = append(pots, Pot{Level: running, Eligible: r.unfolded()})
		}
		pots[len(pots)-1].Dead += over
	}

	return pots, nil
}

func (r *Round) unfolded() []int {
	var seats []int
	for i := range r.contributed {
		if r.live(i) {
			seats = append(seats, i)
		}
	}
	return seats
}

// PotsTotal sums the chips held by pots.
func PotsTotal(pots []Pot) int {
	total := 0
	for _, p := range pots {
		total += p.Total()
	}
	return total
}

// Collapse drops seats that have since folded from each pot's eligible list
// and merges neighbouring pots that end up with the same contestants. Pots
// left without a contestant go to whoever is still in the hand.
func Collapse(pots []Pot, folded func(seat int) bool, remaining []int) []Pot {
	var out []Pot
	for _, p := range pots {
		eligible := make([]int, 0, len(p.Eligible))
		for _, s := range p.Eligible {
			if !folded(s) {
				eligible = append(eligible, s)
			}
		}
		if len(eligible) == 0 {
			eligible = slices.Clone(remaining)
		}

		if n := len(out); n > 0 && slices.Equal(out[n-1].Eligible, eligible) {
			out[n-1].Amount += p.Amount
			out[n-1].Dead += p.Dead
			out[n-1].Level = max(out[n-1].Level, p.Level)
			continue
		}
		out = append(out, Pot{Level: p.Level, Amount: p.Amount, Dead: p.Dead, Eligible: eligible})
	}
	return out
}
