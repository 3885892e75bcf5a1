package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/pokercore/internal/config"
	"github.com/lox/pokercore/internal/display"
	"github.com/lox/pokercore/internal/fileutil"
	"github.com/lox/pokercore/internal/game"
	"github.com/lox/pokercore/internal/phh"
)

type PlayCmd struct {
	Scenario string `arg:"" optional:"" help:"Scenario file (a three-handed default is used when missing)" default:"scenario.hcl"`
	History  string `short:"o" help:"Write the finished hand as a PHH file" type:"path"`
}

func (c *PlayCmd) Run(logger *log.Logger, r *display.Renderer) error {
	s, err := config.Load(c.Scenario)
	if err != nil {
		return err
	}
	tbl, err := s.NewTable()
	if err != nil {
		return err
	}
	script, err := s.Script()
	if err != nil {
		return err
	}
	opts, err := s.HandOptions()
	if err != nil {
		return err
	}
	h, err := game.NewHand(tbl, append(opts, game.WithLogger(logger))...)
	if err != nil {
		return err
	}
	if err := h.Start(); err != nil {
		return err
	}

	fmt.Println(r.Title(fmt.Sprintf(" ♠ ♥ Hand %s ♦ ♣ ", h.ID)))
	for seat := range tbl.SeatCount() {
		if tbl.Occupied(seat) {
			fmt.Println(r.Seat(tbl, seat))
		}
	}
	fmt.Println(r.Street(h.Street(), nil))

	act := func(seat int, a game.Action) error {
		street := h.Street()
		if err := h.Act(seat, a); err != nil {
			return err
		}
		contributed := 0
		if h.Street() == street {
			contributed = h.Round().Contributed(seat)
		}
		fmt.Println(r.Action(tbl.Player(seat).Name, seat, a, contributed))
		if h.Street() != street && h.Result() == nil {
			fmt.Println(r.Street(h.Street(), h.Board()))
		}
		return nil
	}

	for i, step := range script {
		if h.ToAct() == game.Closed {
			return fmt.Errorf("action %d (seat %d %s): hand is already over", i, step.Seat, step.Action)
		}
		if err := act(step.Seat, step.Action); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}
	if h.ToAct() != game.Closed {
		logger.Warn("Script ended before the hand did; checking down", "to_act", h.ToAct())
	}
	for h.ToAct() != game.Closed {
		a := game.CheckAction()
		if h.Round().ToCall(h.ToAct()) > 0 {
			a = game.CallAction()
		}
		if err := act(h.ToAct(), a); err != nil {
			return err
		}
	}

	res := h.Result()
	if len(res.Board) > 0 {
		fmt.Println(r.Street(game.Showdown, res.Board))
	}
	fmt.Println(r.Result(res))
	for seat := range tbl.SeatCount() {
		if tbl.Occupied(seat) {
			fmt.Println(r.Seat(tbl, seat))
		}
	}

	if c.History == "" {
		return nil
	}
	name := strings.TrimSuffix(filepath.Base(c.Scenario), filepath.Ext(c.Scenario))
	hh, err := phh.FromHand(h, tbl, name, time.Now())
	if err != nil {
		return err
	}
	if err := fileutil.WriteAtomic(c.History, 0o644, func(w io.Writer) error {
		return phh.Encode(w, hh)
	}); err != nil {
		return err
	}
	logger.Info("Wrote hand history", "path", c.History, "hand", h.ID)
	return nil
}
