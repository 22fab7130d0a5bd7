package bot

import (
	"fmt"

	"github.com/mcoot/letterswap/internal/dependencies/random"
	"github.com/mcoot/letterswap/internal/model"
)

// DiscardIndex returns the index of the card to give up under rule
func DiscardIndex(cards []model.Card, rule DiscardRule, rnd random.Random) (int, error) {
	if len(cards) == 0 {
		return 0, model.ErrEmptyHand
	}

	switch rule {
	case DiscardRandom:
		return rnd.Intn(len(cards)), nil

	case DiscardLeastFrequent:
		worst := -1
		var worstFreq float64
		for i, c := range cards {
			f, ok := c.Frequency()
			if !ok {
				continue
			}
			if worst == -1 || f < worstFreq {
				worst, worstFreq = i, f
			}
		}
		if worst == -1 {
			// Only wildcards left
			return 0, nil
		}
		return worst, nil

	default:
		return 0, fmt.Errorf("%w: no discard rule %q", model.ErrUnknownDifficulty, rule)
	}
}
