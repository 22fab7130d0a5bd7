package model

import "time"

// Seat identifies one of the two players in a match
type Seat string

const (
	SeatHuman Seat = "human"
	SeatBot   Seat = "bot"
)

// Other returns the opposing seat
func (s Seat) Other() Seat {
	if s == SeatHuman {
		return SeatBot
	}
	return SeatHuman
}

// MatchState represents the current phase of a match
type MatchState string

const (
	MatchStatePlaying  MatchState = "playing"   // Turns are being taken
	MatchStateHumanWon MatchState = "human_won" // Human emptied their hand
	MatchStateBotWon   MatchState = "bot_won"   // Bot emptied its hand
)

// Match is the shared state of one human-versus-bot game
type Match struct {
	State       MatchState
	CurrentWord string
	Turn        Seat
	TurnNumber  int // 0-indexed, counts completed turns

	HumanHand *Hand
	UsedCards []Card          // Played and discarded cards awaiting reshuffle
	UsedWords map[string]Seat // Words accepted so far and who played them

	TurnStartedAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsOver returns true once either player has won
func (m *Match) IsOver() bool {
	return m.State != MatchStatePlaying
}

// Winner returns the winning seat, or "" while the match is in progress
func (m *Match) Winner() Seat {
	switch m.State {
	case MatchStateHumanWon:
		return SeatHuman
	case MatchStateBotWon:
		return SeatBot
	default:
		return ""
	}
}

// MatchSummary is a lightweight record of a finished match
type MatchSummary struct {
	Difficulty  Difficulty
	Winner      Seat
	Turns       int
	FinalWord   string
	CompletedAt time.Time
}
