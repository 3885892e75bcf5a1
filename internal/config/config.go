// Package config loads hand scenarios from HCL files: the table layout,
// blinds, the deck source and an optional script of actions to replay.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokercore/internal/game"
	"github.com/lox/pokercore/internal/randutil"
	"github.com/lox/pokercore/internal/table"
	"github.com/lox/pokercore/poker"
)

var ErrInvalidConfig = errors.New("invalid scenario")

// Scenario is the top level of a scenario file.
type Scenario struct {
	Table   TableConfig `hcl:"table,block"`
	Actions []string    `hcl:"actions,optional"`
}

// TableConfig describes the table a scenario is played at.
type TableConfig struct {
	Seats      int          `hcl:"seats,optional"`
	Dealer     int          `hcl:"dealer,optional"`
	SmallBlind int          `hcl:"small_blind,optional"`
	BigBlind   int          `hcl:"big_blind,optional"`
	Seed       int64        `hcl:"seed,optional"`
	Deck       string       `hcl:"deck,optional"`
	Players    []SeatConfig `hcl:"seat,block"`
}

// SeatConfig places one named player.
type SeatConfig struct {
	Name  string `hcl:"name,label"`
	Index int    `hcl:"index"`
	Chips int    `hcl:"chips"`
}

// ScriptedAction is one parsed entry of the actions list.
type ScriptedAction struct {
	Seat   int
	Action game.Action
}

// DefaultScenario returns a three-handed table with 1/2 blinds and no script.
func DefaultScenario() *Scenario {
	return &Scenario{
		Table: TableConfig{
			Seats:      3,
			Dealer:     0,
			SmallBlind: 1,
			BigBlind:   2,
			Seed:       1,
			Players: []SeatConfig{
				{Name: "Alice", Index: 0, Chips: 100},
				{Name: "Bob", Index: 1, Chips: 100},
				{Name: "Carol", Index: 2, Chips: 100},
			},
		},
	}
}

// Load reads a scenario file. A missing file yields DefaultScenario.
func Load(filename string) (*Scenario, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultScenario(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file)
}

// Parse decodes scenario source held in memory. filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file)
}

func decode(file *hcl.File) (*Scenario, error) {
	var s Scenario
	if diags := gohcl.DecodeBody(file.Body, nil, &s); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	defaults := DefaultScenario()
	t := &s.Table

	if t.SmallBlind == 0 {
		t.SmallBlind = defaults.Table.SmallBlind
	}
	if t.BigBlind == 0 {
		t.BigBlind = max(defaults.Table.BigBlind, t.SmallBlind*2)
	}
	if t.Seats == 0 {
		// room for the highest configured seat, at least heads-up
		t.Seats = table.MinSeats
		for _, p := range t.Players {
			t.Seats = max(t.Seats, p.Index+1)
		}
	}
}

// Validate checks the scenario for problems that would stop the hand from
// starting.
func (s *Scenario) Validate() error {
	t := s.Table
	if t.Seats < table.MinSeats || t.Seats > table.MaxSeats {
		return fmt.Errorf("%w: seats must be between %d and %d, got %d", ErrInvalidConfig, table.MinSeats, table.MaxSeats, t.Seats)
	}
	if t.SmallBlind <= 0 {
		return fmt.Errorf("%w: small blind must be positive", ErrInvalidConfig)
	}
	if t.BigBlind < t.SmallBlind {
		return fmt.Errorf("%w: big blind must be at least the small blind", ErrInvalidConfig)
	}
	if len(t.Players) < 2 {
		return fmt.Errorf("%w: at least 2 seats required, got %d", ErrInvalidConfig, len(t.Players))
	}

	taken := make(map[int]string, len(t.Players))
	for _, p := range t.Players {
		if p.Index < 0 || p.Index >= t.Seats {
			return fmt.Errorf("%w: seat %q: index %d outside table of %d", ErrInvalidConfig, p.Name, p.Index, t.Seats)
		}
		if other, ok := taken[p.Index]; ok {
			return fmt.Errorf("%w: seats %q and %q both use index %d", ErrInvalidConfig, other, p.Name, p.Index)
		}
		if p.Chips <= 0 {
			return fmt.Errorf("%w: seat %q: chips must be positive", ErrInvalidConfig, p.Name)
		}
		taken[p.Index] = p.Name
	}
	if _, ok := taken[t.Dealer]; !ok {
		return fmt.Errorf("%w: dealer seat %d is empty", ErrInvalidConfig, t.Dealer)
	}

	if t.Deck != "" {
		if _, err := t.deck(); err != nil {
			return fmt.Errorf("%w: deck: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := s.Script(); err != nil {
		return err
	}
	return nil
}

// NewTable seats the configured players and places the dealer button.
func (s *Scenario) NewTable() (*table.Table, error) {
	t := table.New(s.Table.Seats)
	for _, p := range s.Table.Players {
		if err := t.SitAt(p.Index, p.Name, p.Chips); err != nil {
			return nil, err
		}
	}
	if err := t.SetButton(s.Table.Dealer); err != nil {
		return nil, err
	}
	return t, nil
}

// HandOptions returns the blinds and card source for a hand. A scripted deck
// takes precedence over the seed.
func (s *Scenario) HandOptions() ([]game.HandOption, error) {
	opts := []game.HandOption{game.WithBlinds(s.Table.SmallBlind, s.Table.BigBlind)}
	if s.Table.Deck == "" {
		return append(opts, game.WithRNG(randutil.New(s.Table.Seed))), nil
	}
	deck, err := s.Table.deck()
	if err != nil {
		return nil, err
	}
	return append(opts, game.WithDeck(deck)), nil
}

func (t TableConfig) deck() (*poker.Deck, error) {
	cards, err := poker.ParseCards(t.Deck)
	if err != nil {
		return nil, err
	}
	return poker.NewOrderedDeck(cards)
}

// Script parses the actions list. Entries look like "2:raise 6".
func (s *Scenario) Script() ([]ScriptedAction, error) {
	script := make([]ScriptedAction, 0, len(s.Actions))
	for i, entry := range s.Actions {
		seatText, actionText, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("%w: action %d: want \"seat:action\", got %q", ErrInvalidConfig, i, entry)
		}
		seat, err := strconv.Atoi(strings.TrimSpace(seatText))
		if err != nil {
			return nil, fmt.Errorf("%w: action %d: bad seat %q", ErrInvalidConfig, i, seatText)
		}
		action, err := game.ParseAction(actionText)
		if err != nil {
			return nil, fmt.Errorf("%w: action %d: %w", ErrInvalidConfig, i, err)
		}
		script = append(script, ScriptedAction{Seat: seat, Action: action})
	}
	return script, nil
}
