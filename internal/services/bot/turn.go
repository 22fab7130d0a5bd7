package bot

import (
	"fmt"
	"time"
)

// OutcomeKind tags what PlayTurn reports to the game loop
type OutcomeKind int

const (
	// OutcomeWaiting means there is nothing to report yet this turn. It is
	// also returned for the whole turn when the bot has decided not to answer.
	OutcomeWaiting OutcomeKind = iota
	// OutcomeNoMove means the bot is ready but found no legal word
	OutcomeNoMove
	// OutcomeMove carries the bot's word and card
	OutcomeMove
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWaiting:
		return "waiting"
	case OutcomeNoMove:
		return "no_move"
	case OutcomeMove:
		return "move"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the result of one PlayTurn poll
type Outcome struct {
	Kind OutcomeKind
	Move *Move // set only for OutcomeMove
}

var (
	waiting = Outcome{Kind: OutcomeWaiting}
	noMove  = Outcome{Kind: OutcomeNoMove}
)

// TurnState is the decision memoised for the current turn. The zero value
// is an undecided turn.
type TurnState struct {
	Decided     bool
	WillAnswer  bool
	AnswerDelay time.Duration
	Move        *Move
}

// outcomeAt reports the stored decision as seen at elapsed time into the turn
func (t TurnState) outcomeAt(elapsed time.Duration) Outcome {
	switch {
	case !t.WillAnswer:
		return waiting
	case elapsed < t.AnswerDelay:
		return waiting
	case t.Move == nil:
		return noMove
	default:
		return Outcome{Kind: OutcomeMove, Move: t.Move}
	}
}
