package game

import (
	"time"

	"github.com/mcoot/letterswap/internal/services/bot"
	"github.com/mcoot/letterswap/internal/services/deck"
)

// Config holds the rules of a match
type Config struct {
	// HandSize is the number of cards dealt to each player
	HandSize int
	// MaxHandSize is the most cards a player may hold after a penalty;
	// above it the player discards
	MaxHandSize int
	// WordLength is the length of the starting word
	WordLength int
	// Wildcards is the number of wildcards in the deck
	Wildcards int
	// TurnTimeLimit is how long a player has to move
	TurnTimeLimit time.Duration
	// PollInterval is how long the loop waits between bot polls
	PollInterval time.Duration
}

// DefaultConfig returns the standard rules
func DefaultConfig() Config {
	return Config{
		HandSize:      7,
		MaxHandSize:   10,
		WordLength:    3,
		Wildcards:     deck.DefaultWildcards,
		TurnTimeLimit: bot.TurnTimeLimit,
		PollInterval:  time.Second,
	}
}
