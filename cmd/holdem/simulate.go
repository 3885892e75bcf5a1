package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/pokercore/internal/display"
	"github.com/lox/pokercore/internal/simulator"
)

type SimulateCmd struct {
	Hands      int           `default:"10000" help:"Number of hands to simulate"`
	Workers    int           `default:"0" help:"Worker goroutines (0 for one per CPU)"`
	Seed       int64         `default:"0" help:"RNG seed (0 for random)"`
	Seats      int           `default:"6" help:"Players per table (2-10)"`
	Stack      int           `default:"200" help:"Starting stack for every hand"`
	SmallBlind int           `name:"sb" default:"1" help:"Small blind"`
	BigBlind   int           `name:"bb" default:"2" help:"Big blind"`
	Bots       []string      `default:"random" help:"Bot for each seat, repeated to fill the table (fold, call, random, maniac, tag)"`
	Timeout    time.Duration `default:"0" help:"Stop after this long (0 for no limit)"`
}

func (c *SimulateCmd) Run(logger *log.Logger, r *display.Renderer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("Starting simulation", "hands", c.Hands, "seats", c.Seats, "bots", c.Bots, "seed", seed)

	report, err := simulator.Run(ctx, simulator.Config{
		Hands:      c.Hands,
		Workers:    c.Workers,
		Seed:       seed,
		Seats:      c.Seats,
		Stack:      c.Stack,
		SmallBlind: c.SmallBlind,
		BigBlind:   c.BigBlind,
		Bots:       c.Bots,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("simulation failed (seed %d): %w", seed, err)
	}

	fmt.Println(r.Report(report))
	return nil
}
