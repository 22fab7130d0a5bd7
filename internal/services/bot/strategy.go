package bot

import (
	"fmt"

	"github.com/mcoot/letterswap/internal/model"
)

// PickRule chooses one move out of the letter-card suggestions
type PickRule string

const (
	// PickRandom picks uniformly among all suggestions
	PickRandom PickRule = "random"
	// PickFirst takes the first suggestion found
	PickFirst PickRule = "first"
)

// DiscardRule chooses which card to give up
type DiscardRule string

const (
	// DiscardRandom removes a uniformly random card
	DiscardRandom DiscardRule = "random"
	// DiscardLeastFrequent removes the rarest letter, keeping wildcards
	// unless nothing else is left
	DiscardLeastFrequent DiscardRule = "least_frequent"
)

// SearchStrategy controls how the neighbor search orders and resolves
type SearchStrategy struct {
	// Rank tries the rarest letters first
	Rank bool
	Pick PickRule
}

// Strategy is the full set of behaviour switches for one difficulty
type Strategy struct {
	Search  SearchStrategy
	Discard DiscardRule
}

var strategies = map[model.Difficulty]Strategy{
	model.DifficultyEasy: {
		Search:  SearchStrategy{Rank: false, Pick: PickRandom},
		Discard: DiscardRandom,
	},
	model.DifficultyMedium: {
		Search:  SearchStrategy{Rank: false, Pick: PickRandom},
		Discard: DiscardLeastFrequent,
	},
	model.DifficultyHard: {
		Search:  SearchStrategy{Rank: true, Pick: PickFirst},
		Discard: DiscardLeastFrequent,
	},
}

// StrategyFor returns the strategy used at a difficulty
func StrategyFor(d model.Difficulty) (Strategy, error) {
	st, ok := strategies[d]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", model.ErrUnknownDifficulty, d)
	}
	return st, nil
}
