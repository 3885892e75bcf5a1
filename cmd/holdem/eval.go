package main

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/lox/pokercore/internal/display"
	"github.com/lox/pokercore/poker"
)

type EvalCmd struct {
	Hands []string `arg:"" help:"Hands to evaluate, e.g. AsKsQsJsTs, or hole cards when --board is set"`
	Board string   `short:"b" help:"Community cards shared by every hand, e.g. 'Ah Kd 7c'"`
}

func (c *EvalCmd) Run(logger *log.Logger, r *display.Renderer) error {
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	type scored struct {
		input string
		rank  poker.HandRank
		best  [5]poker.Card
	}
	hands := make([]scored, 0, len(c.Hands))
	for _, input := range c.Hands {
		cards, err := poker.ParseCards(input)
		if err != nil {
			return fmt.Errorf("hand %q: %w", input, err)
		}
		rank, best, err := poker.EvaluateBest(append(cards, board...))
		if err != nil {
			return fmt.Errorf("hand %q: %w", input, err)
		}
		logger.Debug("Evaluated", "hand", input, "category", rank.Category, "kickers", rank.Kickers)
		hands = append(hands, scored{input: input, rank: rank, best: best})
	}

	if len(board) > 0 {
		fmt.Printf("Board %s\n", r.Cards(board))
	}
	top := slices.MaxFunc(hands, func(a, b scored) int { return poker.Compare(a.rank, b.rank) })
	for _, h := range hands {
		marker := " "
		if len(hands) > 1 && h.rank.Equal(top.rank) {
			marker = "*"
		}
		fmt.Printf("%s %-16s %s\n", marker, h.input, r.Rank(h.rank, h.best))
	}
	return nil
}
