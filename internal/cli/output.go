package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

// Prompt writes an input prompt; nothing is written in JSON mode
func (o *Output) Prompt(msg string) {
	if o.format != "json" {
		fmt.Fprint(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SuggestResult:
		o.printSuggestResult(v)
	case VocabResult:
		o.printVocabResult(v)
	case MatchView:
		o.printMatchView(v)
	case TurnView:
		o.printTurnView(v)
	case StatsResult:
		o.printStatsResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SuggestResult is one bot decision on a word and hand
type SuggestResult struct {
	Word        string   `json:"word"`
	Hand        []string `json:"hand"`
	Difficulty  string   `json:"difficulty"`
	WillAnswer  bool     `json:"will_answer"`
	AnswerDelay string   `json:"answer_delay"`
	Outcome     string   `json:"outcome"`
	Move        string   `json:"move,omitempty"`
	Resolved    string   `json:"resolved,omitempty"`
	Card        string   `json:"card,omitempty"`
}

// VocabResult lists the vocabulary size for each difficulty
type VocabResult struct {
	DictionarySize int          `json:"dictionary_size"`
	Difficulties   []VocabEntry `json:"difficulties"`
}

// VocabEntry is the vocabulary of one difficulty
type VocabEntry struct {
	Difficulty string  `json:"difficulty"`
	Cutoff     float64 `json:"cutoff"`
	Size       int     `json:"size"`
}

// MatchView is the table as seen by the human before their move
type MatchView struct {
	Word      string   `json:"word"`
	Hand      []string `json:"hand"`
	BotCards  int      `json:"bot_cards"`
	DeckCards int      `json:"deck_cards"`
	Turn      int      `json:"turn"`
}

// TurnView reports how a turn ended
type TurnView struct {
	Player    string `json:"player"`
	Word      string `json:"word,omitempty"`
	Card      string `json:"card,omitempty"`
	Accepted  bool   `json:"accepted"`
	Reason    string `json:"reason,omitempty"`
	Penalty   string `json:"penalty,omitempty"`
	Discarded string `json:"discarded,omitempty"`
	NextWord  string `json:"next_word"`
	Winner    string `json:"winner,omitempty"`
}

// StatsResult lists recently finished matches
type StatsResult struct {
	Matches   []MatchRecord `json:"matches"`
	HumanWins int           `json:"human_wins"`
	BotWins   int           `json:"bot_wins"`
}

// MatchRecord is one finished match
type MatchRecord struct {
	Difficulty  string    `json:"difficulty"`
	Winner      string    `json:"winner"`
	Turns       int       `json:"turns"`
	FinalWord   string    `json:"final_word"`
	CompletedAt time.Time `json:"completed_at"`
}

func (o *Output) printSuggestResult(s SuggestResult) {
	fmt.Fprintf(o.w, "Word: %s\n", s.Word)
	fmt.Fprintf(o.w, "Hand: %s\n", strings.Join(s.Hand, " "))
	fmt.Fprintf(o.w, "Difficulty: %s\n", s.Difficulty)
	if !s.WillAnswer {
		fmt.Fprintln(o.w, "The bot stays silent this turn")
		return
	}
	fmt.Fprintf(o.w, "Answers after: %s\n", s.AnswerDelay)
	if s.Move == "" {
		fmt.Fprintln(o.w, "No move found")
		return
	}
	if s.Move != s.Resolved {
		fmt.Fprintf(o.w, "Move: %s (%s) using %s\n", s.Move, s.Resolved, s.Card)
	} else {
		fmt.Fprintf(o.w, "Move: %s using %s\n", s.Move, s.Card)
	}
}

func (o *Output) printVocabResult(v VocabResult) {
	fmt.Fprintf(o.w, "Dictionary: %d words\n", v.DictionarySize)
	for _, e := range v.Difficulties {
		fmt.Fprintf(o.w, "  %-6s %5d words (cutoff %g)\n", e.Difficulty, e.Size, e.Cutoff)
	}
}

func (o *Output) printMatchView(m MatchView) {
	fmt.Fprintf(o.w, "\nTurn %d\n", m.Turn+1)
	fmt.Fprintf(o.w, "Word: %s\n", strings.ToUpper(m.Word))
	fmt.Fprintf(o.w, "Your hand: %s\n", strings.Join(m.Hand, " "))
	fmt.Fprintf(o.w, "Bot holds %d cards, %d left in the deck\n", m.BotCards, m.DeckCards)
}

func (o *Output) printTurnView(t TurnView) {
	switch {
	case t.Accepted && t.Word != t.NextWord:
		fmt.Fprintf(o.w, "%s played %s (%s) using %s\n", t.Player, t.Word, t.NextWord, t.Card)
	case t.Accepted:
		fmt.Fprintf(o.w, "%s played %s using %s\n", t.Player, t.Word, t.Card)
	default:
		fmt.Fprintf(o.w, "%s: %s, draws %s\n", t.Player, describeReason(t.Reason), t.Penalty)
	}
	if t.Discarded != "" {
		fmt.Fprintf(o.w, "%s discards %s\n", t.Player, t.Discarded)
	}
	if t.Winner != "" {
		fmt.Fprintf(o.w, "\n%s wins!\n", t.Winner)
	}
}

func describeReason(reason string) string {
	switch reason {
	case "timeout":
		return "out of time"
	case "pass":
		return "passed"
	case "no_move":
		return "found no word"
	case "invalid_word":
		return "not a word"
	case "not_one_letter":
		return "must change exactly one letter"
	case "card_not_held":
		return "card not in hand"
	default:
		return reason
	}
}

func (o *Output) printStatsResult(s StatsResult) {
	if len(s.Matches) == 0 {
		fmt.Fprintln(o.w, "No matches played yet")
		return
	}
	fmt.Fprintf(o.w, "Human %d - %d Bot\n", s.HumanWins, s.BotWins)
	for _, m := range s.Matches {
		fmt.Fprintf(o.w, "  %s  %-6s  %-5s won in %d turns on %s\n",
			m.CompletedAt.Format(time.DateTime), m.Difficulty, m.Winner, m.Turns, m.FinalWord)
	}
}
