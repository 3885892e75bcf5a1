package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pokercore/poker"
)

// HandOption configures a Hand during creation.
type HandOption func(*handConfig)

// handConfig holds all configuration for creating a hand.
type handConfig struct {
	smallBlind int
	bigBlind   int
	rng        *rand.Rand
	deck       *poker.Deck // If provided, overrides rng for dealing
	logger     *log.Logger
	handID     string
}

func defaultHandConfig() *handConfig {
	return &handConfig{
		smallBlind: 1,
		bigBlind:   2,
		logger:     log.New(io.Discard),
	}
}

// WithBlinds sets the forced bets posted at the start of the hand.
func WithBlinds(small, big int) HandOption {
	return func(c *handConfig) {
		c.smallBlind = small
		c.bigBlind = big
	}
}

// WithRNG sets the random source used to shuffle the deck. Either WithRNG or
// WithDeck is required so that every deal is reproducible from the caller.
func WithRNG(rng *rand.Rand) HandOption {
	return func(c *handConfig) {
		c.rng = rng
	}
}

// WithDeck sets a specific pre-arranged deck.
// This overrides the RNG for dealing.
func WithDeck(deck *poker.Deck) HandOption {
	return func(c *handConfig) {
		c.deck = deck
	}
}

// WithLogger sets the logger for hand events. Defaults to discarding output.
func WithLogger(logger *log.Logger) HandOption {
	return func(c *handConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHandID overrides the generated hand ID.
func WithHandID(id string) HandOption {
	return func(c *handConfig) {
		c.handID = id
	}
}
