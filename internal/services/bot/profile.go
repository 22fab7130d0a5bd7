package bot

import (
	"fmt"
	"time"

	"github.com/mcoot/letterswap/internal/model"
)

const (
	// TurnTimeLimit is the maximum duration of any turn, shared by all difficulties
	TurnTimeLimit = 15 * time.Second
	// MinAnswerDelay stops the bot from answering implausibly fast
	MinAnswerDelay = 3 * time.Second
	// AnswerMargin is kept free at the end of a turn so the game loop can
	// process the bot's move before the limit expires
	AnswerMargin = 1 * time.Second
)

// Profile bundles the tuning constants for one difficulty level
type Profile struct {
	// AnswerProbability is the chance the bot plays at all in a given turn
	AnswerProbability float64
	// MeanAnswerTime and StdDevAnswerTime parameterise the normal
	// distribution the answer delay is drawn from
	MeanAnswerTime   time.Duration
	StdDevAnswerTime time.Duration
	// WordFrequencyCutoff is the corpus frequency a word must exceed to be
	// part of the bot's vocabulary
	WordFrequencyCutoff float64
}

func fractionOfTurn(f float64) time.Duration {
	return time.Duration(f * float64(TurnTimeLimit))
}

var profiles = map[model.Difficulty]Profile{
	model.DifficultyEasy: {
		AnswerProbability:   0.9,
		MeanAnswerTime:      fractionOfTurn(0.566),
		StdDevAnswerTime:    fractionOfTurn(0.133),
		WordFrequencyCutoff: 5.752713813881526e-06,
	},
	model.DifficultyMedium: {
		AnswerProbability:   0.95,
		MeanAnswerTime:      fractionOfTurn(0.466),
		StdDevAnswerTime:    fractionOfTurn(0.133),
		WordFrequencyCutoff: 2.9838168355859476e-06,
	},
	model.DifficultyHard: {
		AnswerProbability:   1,
		MeanAnswerTime:      fractionOfTurn(0.266),
		StdDevAnswerTime:    fractionOfTurn(0.066),
		WordFrequencyCutoff: 0,
	},
}

// ProfileFor returns the constant profile for a difficulty
func ProfileFor(d model.Difficulty) (Profile, error) {
	p, ok := profiles[d]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", model.ErrUnknownDifficulty, d)
	}
	return p, nil
}

// ClampAnswerDelay bounds a sampled delay to [MinAnswerDelay, TurnTimeLimit-AnswerMargin]
func ClampAnswerDelay(d time.Duration) time.Duration {
	upper := TurnTimeLimit - AnswerMargin
	switch {
	case d < MinAnswerDelay:
		return MinAnswerDelay
	case d > upper:
		return upper
	default:
		return d
	}
}
