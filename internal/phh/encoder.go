package phh

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/pokercore/internal/game"
	"github.com/lox/pokercore/internal/table"
	"github.com/lox/pokercore/poker"
)

var ErrHandNotFinished = errors.New("phh: hand is not finished")

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, hand *HandHistory) error {
	if hand == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(hand)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(hand *HandHistory) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, hand); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}

// FormatAction converts a recorded action to PHH notation. player is the
// 1-based PHH player number.
func FormatAction(player int, e game.Entry) string {
	p := fmt.Sprintf("p%d", player)
	switch {
	case e.Action.Kind == game.Fold:
		return p + " f"
	case e.Raised:
		return fmt.Sprintf("%s cbr %d", p, e.Total)
	default:
		// checks, calls and all-ins that do not raise
		return p + " cc"
	}
}

// FromHand builds the history of a finished hand played at tbl.
func FromHand(h *game.Hand, tbl *table.Table, name string, ts time.Time) (*HandHistory, error) {
	res := h.Result()
	if res == nil {
		return nil, ErrHandNotFinished
	}

	// seats that were dealt in, clockwise from the first seat after the button
	var order []int
	player := make(map[int]int)
	n := tbl.SeatCount()
	for i := 1; i <= n; i++ {
		seat := (tbl.Button() + i) % n
		if p := tbl.Player(seat); p != nil && len(p.Hole) > 0 {
			order = append(order, seat)
			player[seat] = len(order)
		}
	}

	stacks, posted := h.StartingStacks(), h.Posted()
	winnings := make(map[int]int)
	for _, a := range res.Awards {
		winnings[a.Seat] += a.Amount
	}

	hh := &HandHistory{
		Variant:   "NT",
		Table:     name,
		SeatCount: n,
		MinBet:    slices.Max(posted),
		HandID:    res.HandID,
		Time:      ts.Format("15:04:05"),
		TimeZone:  ts.Location().String(),
		Day:       ts.Day(),
		Month:     int(ts.Month()),
		Year:      ts.Year(),
		Timestamp: ts,
	}
	for _, seat := range order {
		p := tbl.Player(seat)
		hh.Seats = append(hh.Seats, seat+1)
		hh.Players = append(hh.Players, p.Name)
		hh.Antes = append(hh.Antes, 0)
		hh.BlindsOrStraddles = append(hh.BlindsOrStraddles, posted[seat])
		hh.StartingStacks = append(hh.StartingStacks, stacks[seat])
		hh.FinishingStacks = append(hh.FinishingStacks, p.Chips)
		hh.Winnings = append(hh.Winnings, winnings[seat])
		hh.Actions = append(hh.Actions, fmt.Sprintf("d dh p%d %s", player[seat], codes(p.Hole)))
	}

	dealt := game.Preflop
	dealBoard := func(upTo game.Street) {
		for dealt < upTo && dealt < game.River {
			dealt++
			from, to := boardSlice(dealt)
			if to > len(res.Board) {
				return
			}
			hh.Actions = append(hh.Actions, "d db "+codes(res.Board[from:to]))
		}
	}
	for _, e := range h.History() {
		dealBoard(e.Street)
		hh.Actions = append(hh.Actions, FormatAction(player[e.Seat], e))
	}
	dealBoard(game.River)

	if res.Showdown {
		for _, seat := range order {
			if p := tbl.Player(seat); !p.Folded {
				hh.Actions = append(hh.Actions, fmt.Sprintf("p%d sm %s", player[seat], codes(p.Hole)))
			}
		}
	}
	return hh, nil
}

// boardSlice returns the board indexes dealt on street.
func boardSlice(street game.Street) (int, int) {
	switch street {
	case game.Flop:
		return 0, 3
	case game.Turn:
		return 3, 4
	default:
		return 4, 5
	}
}

func codes(cards []poker.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.Code())
	}
	return b.String()
}
