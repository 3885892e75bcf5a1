// Package simulator plays many bot-driven hands in parallel and checks the
// engine's accounting along the way.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokercore/internal/bot"
	"github.com/lox/pokercore/internal/game"
	"github.com/lox/pokercore/internal/randutil"
	"github.com/lox/pokercore/internal/statistics"
	"github.com/lox/pokercore/internal/table"
	"github.com/lox/pokercore/poker"
)

var ErrInvalidConfig = errors.New("invalid simulator config")

// Config holds configuration for running simulations
type Config struct {
	Hands      int
	Workers    int
	Seed       int64
	Seats      int
	Stack      int
	SmallBlind int
	BigBlind   int
	// Bots names the policy for each seat, repeating when there are fewer
	// names than seats. Defaults to random play at every seat.
	Bots   []string
	Logger *log.Logger
	Clock      quartz.Clock
}

// Report summarises a simulation run.
type Report struct {
	Hands     int
	Showdowns int
	// Pots counts the pots awarded after collapsing; SidePotHands counts the
	// hands that needed more than one.
	Pots         int
	SidePotHands int
	SplitPots    int
	// Categories tallies the winning hand category of every pot won at
	// showdown.
	Categories map[poker.Category]int
	// Positions holds net results per seat position, indexed by seats after
	// the button (0 is the button).
	Positions []statistics.Statistics
	// Bots holds net results per bot name.
	Bots    map[string]*statistics.Statistics
	Elapsed time.Duration
}

// HandsPerSecond returns throughput, or 0 when no time was measured.
func (r *Report) HandsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Hands) / r.Elapsed.Seconds()
}

func newReport(seats int) *Report {
	return &Report{
		Categories: make(map[poker.Category]int),
		Positions:  make([]statistics.Statistics, seats),
		Bots:       make(map[string]*statistics.Statistics),
	}
}

func (r *Report) merge(o *Report) {
	r.Hands += o.Hands
	r.Showdowns += o.Showdowns
	r.Pots += o.Pots
	r.SidePotHands += o.SidePotHands
	r.SplitPots += o.SplitPots
	for c, n := range o.Categories {
		r.Categories[c] += n
	}
	for i := range r.Positions {
		r.Positions[i].Merge(&o.Positions[i])
	}
	for name, st := range o.Bots {
		r.botStats(name).Merge(st)
	}
}

func (r *Report) botStats(name string) *statistics.Statistics {
	st, ok := r.Bots[name]
	if !ok {
		st = &statistics.Statistics{}
		r.Bots[name] = st
	}
	return st
}

func (c *Config) applyDefaults() {
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	c.Workers = min(c.Workers, max(c.Hands, 1))
	if c.Seats == 0 {
		c.Seats = 6
	}
	if c.SmallBlind == 0 {
		c.SmallBlind = 1
	}
	if c.BigBlind == 0 {
		c.BigBlind = 2
	}
	if c.Stack == 0 {
		c.Stack = 100 * c.BigBlind
	}
	if len(c.Bots) == 0 {
		c.Bots = []string{"random"}
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Clock == nil {
		c.Clock = quartz.NewReal()
	}
}

func (c *Config) validate() error {
	switch {
	case c.Hands <= 0:
		return fmt.Errorf("%w: hands must be positive, got %d", ErrInvalidConfig, c.Hands)
	case c.Seats < table.MinSeats || c.Seats > table.MaxSeats:
		return fmt.Errorf("%w: seats must be between %d and %d, got %d", ErrInvalidConfig, table.MinSeats, table.MaxSeats, c.Seats)
	case c.SmallBlind <= 0 || c.BigBlind < c.SmallBlind:
		return fmt.Errorf("%w: blinds %d/%d", ErrInvalidConfig, c.SmallBlind, c.BigBlind)
	case c.Stack < c.BigBlind:
		return fmt.Errorf("%w: stack %d is below the big blind", ErrInvalidConfig, c.Stack)
	}
	for _, name := range c.Bots {
		if _, err := bot.New(name, nil); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Run plays cfg.Hands hands across cfg.Workers goroutines. Every worker owns
// its own table. Hand i is dealt from its own seed derived from cfg.Seed, so
// the report does not depend on the worker count.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	start := cfg.Clock.Now()
	reports := make([]*Report, cfg.Workers)

	g, ctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		reports[w] = newReport(cfg.Seats)
		g.Go(func() error {
			return runWorker(ctx, cfg, w, reports[w])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := newReport(cfg.Seats)
	for _, r := range reports {
		report.merge(r)
	}
	for pos := range report.Positions {
		if err := report.Positions[pos].Validate(); err != nil {
			return nil, fmt.Errorf("position %d: %w", pos, err)
		}
	}
	report.Elapsed = cfg.Clock.Since(start)

	cfg.Logger.Info("Simulation complete",
		"hands", report.Hands, "showdowns", report.Showdowns, "pots", report.Pots,
		"elapsed", report.Elapsed)
	return report, nil
}

func runWorker(ctx context.Context, cfg Config, worker int, report *Report) error {
	tbl := table.New(cfg.Seats)
	for seat := range cfg.Seats {
		name := fmt.Sprintf("%s%d", cfg.botName(seat), seat+1)
		if err := tbl.SitAt(seat, name, cfg.Stack); err != nil {
			return err
		}
	}
	logger := cfg.Logger.With("worker", worker)

	for i := worker; i < cfg.Hands; i += cfg.Workers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := playHand(cfg, tbl, i, logger, report); err != nil {
			return fmt.Errorf("hand %d: %w", i, err)
		}
	}
	return nil
}

func playHand(cfg Config, tbl *table.Table, index int, logger *log.Logger, report *Report) error {
	// fresh stacks each hand so that every hand stands alone
	for seat := range cfg.Seats {
		tbl.SetChips(seat, cfg.Stack)
	}
	button := index % cfg.Seats
	if err := tbl.SetButton(button); err != nil {
		return err
	}

	rng := randutil.New(randutil.Derive(cfg.Seed, index))
	bots := make([]bot.Bot, cfg.Seats)
	for seat := range bots {
		b, err := bot.New(cfg.botName(seat), rng)
		if err != nil {
			return err
		}
		bots[seat] = b
	}

	h, err := game.NewHand(tbl,
		game.WithBlinds(cfg.SmallBlind, cfg.BigBlind),
		game.WithRNG(rng),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	if err := h.Start(); err != nil {
		return err
	}
	for h.ToAct() != game.Closed {
		seat := h.ToAct()
		if err := h.Act(seat, bots[seat].Decide(view(cfg, tbl, h, seat))); err != nil {
			return err
		}
	}

	res := h.Result()
	if res == nil {
		return errors.New("hand ended without a result")
	}
	if got, want := tbl.TotalChips(), cfg.Seats*cfg.Stack; got != want {
		return fmt.Errorf("%w: table holds %d, expected %d", game.ErrChipsNotConserved, got, want)
	}
	record(cfg, tbl, button, res, report)
	return nil
}

func (c *Config) botName(seat int) string {
	return c.Bots[seat%len(c.Bots)]
}

func view(cfg Config, tbl *table.Table, h *game.Hand, seat int) bot.View {
	r := h.Round()
	return bot.View{
		Seat:     seat,
		Street:   h.Street(),
		Hole:     tbl.Player(seat).Hole,
		Board:    h.Board(),
		Chips:    tbl.Chips(seat),
		ToCall:   r.ToCall(seat),
		Pot:      game.PotsTotal(h.Pots()) + r.Total(),
		BigBlind: cfg.BigBlind,
		Legal:    h.LegalActions(),
	}
}

func record(cfg Config, tbl *table.Table, button int, res *game.Result, report *Report) {
	report.Hands++
	report.Pots += len(res.Pots)
	if len(res.Pots) > 1 {
		report.SidePotHands++
	}
	if res.Showdown {
		report.Showdowns++
	}

	winners := make(map[int]int)
	for _, a := range res.Awards {
		winners[a.Pot]++
		if winners[a.Pot] == 1 && res.Showdown {
			report.Categories[a.Rank.Category]++
		}
	}
	for _, n := range winners {
		if n > 1 {
			report.SplitPots++
		}
	}

	potSize := game.PotsTotal(res.Pots)
	for seat := range cfg.Seats {
		pos := (seat - button + cfg.Seats) % cfg.Seats
		net := tbl.Chips(seat) - cfg.Stack
		result := statistics.HandResult{
			NetBB:          float64(net) / float64(cfg.BigBlind),
			WentToShowdown: res.Showdown,
			FinalPotSize:   potSize,
		}
		report.Positions[pos].Add(result)
		report.botStats(cfg.botName(seat)).Add(result)
	}
}
