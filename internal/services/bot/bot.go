package bot

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mcoot/letterswap/internal/dependencies/random"
	"github.com/mcoot/letterswap/internal/model"
)

// WordSource supplies the global word list and word frequencies a bot
// derives its vocabulary from
type WordSource interface {
	Words() []string
	Frequencies() map[string]float64
}

// Bot is a computer opponent. It is not safe for concurrent use; one game
// loop owns it and polls PlayTurn during the bot's turns.
type Bot struct {
	difficulty model.Difficulty
	profile    Profile
	strategy   Strategy
	vocabulary *Vocabulary
	hand       *model.Hand
	turn       TurnState
	random     random.Random
	logger     *slog.Logger
}

// New creates a bot at the given difficulty holding cards
func New(
	difficulty model.Difficulty,
	cards []model.Card,
	words WordSource,
	rnd random.Random,
	logger *slog.Logger,
) (*Bot, error) {
	profile, err := ProfileFor(difficulty)
	if err != nil {
		return nil, err
	}
	strategy, err := StrategyFor(difficulty)
	if err != nil {
		return nil, err
	}

	hand := model.NewHand()
	for _, c := range cards {
		parsed, err := model.ParseCard(string(c))
		if err != nil {
			return nil, err
		}
		hand.Add(parsed)
	}

	vocab := BuildVocabulary(words.Words(), words.Frequencies(), profile.WordFrequencyCutoff)

	logger = logger.With(
		slog.String("component", "bot"),
		slog.String("difficulty", string(difficulty)),
	)
	logger.Debug("bot created",
		slog.Int("vocabulary_size", vocab.Size()),
		slog.Int("hand_size", hand.Len()),
	)

	return &Bot{
		difficulty: difficulty,
		profile:    profile,
		strategy:   strategy,
		vocabulary: vocab,
		hand:       hand,
		random:     rnd,
		logger:     logger,
	}, nil
}

// Difficulty returns the bot's difficulty
func (b *Bot) Difficulty() model.Difficulty {
	return b.difficulty
}

// Vocabulary returns the words this bot can play
func (b *Bot) Vocabulary() *Vocabulary {
	return b.vocabulary
}

// Hand returns a copy of the bot's cards
func (b *Bot) Hand() []model.Card {
	return b.hand.Cards()
}

// Turn returns the decision state of the current turn
func (b *Bot) Turn() TurnState {
	return b.turn
}

// PlayTurn is polled by the game loop during the bot's turn with the time
// elapsed since the turn started. The first call of a turn makes the
// decision; later calls only report it.
func (b *Bot) PlayTurn(currentWord string, elapsed time.Duration) (Outcome, error) {
	if !b.turn.Decided {
		if err := b.decide(strings.ToLower(currentWord)); err != nil {
			return Outcome{}, err
		}
	}
	return b.turn.outcomeAt(elapsed), nil
}

func (b *Bot) decide(word string) error {
	move, err := FindNextWord(word, b.hand.Cards(), b.vocabulary, b.strategy.Search, b.random)
	if err != nil {
		return fmt.Errorf("deciding turn on %q: %w", word, err)
	}

	willAnswer := b.random.Float64() < b.profile.AnswerProbability
	sampled := float64(b.profile.MeanAnswerTime) + b.random.NormFloat64()*float64(b.profile.StdDevAnswerTime)

	b.turn = TurnState{
		Decided:     true,
		WillAnswer:  willAnswer,
		AnswerDelay: ClampAnswerDelay(time.Duration(sampled)),
		Move:        move,
	}

	attrs := []any{
		slog.String("word", word),
		slog.Bool("will_answer", willAnswer),
		slog.Duration("answer_delay", b.turn.AnswerDelay),
	}
	if move != nil {
		attrs = append(attrs, slog.String("move", move.Word), slog.String("card", string(move.Card)))
	}
	b.logger.Debug("turn decided", attrs...)
	return nil
}

// EndTurn discards the current turn's decision. The game loop must call it
// once after every bot turn, before the next turn's first PlayTurn.
func (b *Bot) EndTurn() {
	b.turn = TurnState{}
}

// Discard removes one card from the hand according to the difficulty's
// discard rule and returns it
func (b *Bot) Discard() (model.Card, error) {
	idx, err := DiscardIndex(b.hand.Cards(), b.strategy.Discard, b.random)
	if err != nil {
		return "", err
	}
	card := b.hand.RemoveAt(idx)
	b.logger.Debug("card discarded", slog.String("card", string(card)))
	return card, nil
}

// AddCard adds a card to the hand; letters are case-insensitive
func (b *Bot) AddCard(card string) error {
	c, err := model.ParseCard(card)
	if err != nil {
		return err
	}
	b.hand.Add(c)
	return nil
}

// RemoveCard removes one copy of a card from the hand if present
func (b *Bot) RemoveCard(card string) bool {
	return b.hand.Remove(model.Card(strings.ToLower(card)))
}

// HasWon reports whether the bot has emptied its hand
func (b *Bot) HasWon() bool {
	return b.hand.IsEmpty()
}
