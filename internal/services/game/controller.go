package game

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/letterswap/internal/dependencies/clock"
	"github.com/mcoot/letterswap/internal/dependencies/random"
	"github.com/mcoot/letterswap/internal/model"
	"github.com/mcoot/letterswap/internal/services/bot"
	"github.com/mcoot/letterswap/internal/services/deck"
	"github.com/mcoot/letterswap/internal/services/dictionary"
	"github.com/mcoot/letterswap/internal/storage"
)

// PenaltyReason explains why a turn ended with a penalty card
type PenaltyReason string

const (
	PenaltyNone         PenaltyReason = ""
	PenaltyTimeout      PenaltyReason = "timeout"
	PenaltyPass         PenaltyReason = "pass"
	PenaltyNoMove       PenaltyReason = "no_move"
	PenaltyInvalidWord  PenaltyReason = "invalid_word"
	PenaltyNotOneLetter PenaltyReason = "not_one_letter"
	PenaltyCardNotHeld  PenaltyReason = "card_not_held"
)

// Session is one match in progress together with its bot and deck
type Session struct {
	Match *model.Match
	Bot   *bot.Bot
	Deck  *deck.Deck
}

// TurnResult describes how a turn ended
type TurnResult struct {
	Seat        model.Seat
	Word        string     // Word as submitted; bot wildcard moves carry the wildcard symbol
	Card        model.Card // Card played, empty if the move was rejected
	Accepted    bool
	Reason      PenaltyReason
	Penalty     model.Card // Card drawn as a penalty
	Discarded   model.Card // Card given up for exceeding the hand limit
	CurrentWord string
	Winner      model.Seat
}

// Controller runs the turn flow of human-versus-bot matches
type Controller struct {
	dictionary *dictionary.Service
	storage    storage.Storage
	clock      clock.Clock
	random     random.Random
	cfg        Config
	logger     *slog.Logger
	botLogger  *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	dictionary *dictionary.Service,
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		dictionary: dictionary,
		storage:    storage,
		clock:      clock,
		random:     random,
		cfg:        cfg,
		logger:     logger.With(slog.String("component", "game-controller")),
		botLogger:  logger,
	}
}

// Config returns the rules the controller plays by
func (c *Controller) Config() Config {
	return c.cfg
}

// NewMatch deals both hands, flips for the first player and draws a
// starting word
func (c *Controller) NewMatch(ctx context.Context, difficulty model.Difficulty) (*Session, error) {
	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownDifficulty, difficulty)
	}
	if !c.dictionary.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}

	d := deck.New(c.random, c.cfg.Wildcards)

	humanHand := model.NewHand()
	botCards := make([]model.Card, 0, c.cfg.HandSize)
	for range c.cfg.HandSize {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		humanHand.Add(card)
	}
	for range c.cfg.HandSize {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		botCards = append(botCards, card)
	}
	humanHand.Sort()

	opponent, err := bot.New(difficulty, botCards, c.dictionary, c.random, c.botLogger)
	if err != nil {
		return nil, err
	}

	first := model.SeatHuman
	if c.random.Intn(2) == 1 {
		first = model.SeatBot
	}

	word, err := c.dictionary.RandomWord(c.random, c.cfg.WordLength)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	match := &model.Match{
		State:         model.MatchStatePlaying,
		CurrentWord:   word,
		Turn:          first,
		HumanHand:     humanHand,
		UsedWords:     map[string]model.Seat{},
		TurnStartedAt: now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	c.logger.Info("match created",
		slog.String("difficulty", string(difficulty)),
		slog.String("first_player", string(first)),
		slog.String("starting_word", word),
	)

	return &Session{Match: match, Bot: opponent, Deck: d}, nil
}

// SubmitHumanMove plays word for the human. An empty word passes the turn.
func (c *Controller) SubmitHumanMove(ctx context.Context, sess *Session, word string) (*TurnResult, error) {
	m := sess.Match
	if err := checkTurn(m, model.SeatHuman); err != nil {
		return nil, err
	}

	word = strings.ToLower(strings.TrimSpace(word))
	result := &TurnResult{Seat: model.SeatHuman, Word: word}

	elapsed := c.clock.Now().Sub(m.TurnStartedAt)
	switch {
	case elapsed > c.cfg.TurnTimeLimit:
		result.Reason = PenaltyTimeout
	case word == "":
		result.Reason = PenaltyPass
	default:
		card, reason := c.validate(m.CurrentWord, word, m.HumanHand)
		if reason != PenaltyNone {
			result.Reason = reason
			break
		}
		m.HumanHand.Remove(card)
		result.Card = card
		result.Accepted = true
		c.accept(m, model.SeatHuman, word, card)
	}

	return c.finishTurn(ctx, sess, result)
}

// PlayBotTurn polls the bot until it moves, gives up or runs out of time.
// It sleeps PollInterval on the controller's clock between polls.
func (c *Controller) PlayBotTurn(ctx context.Context, sess *Session) (*TurnResult, error) {
	m := sess.Match
	if err := checkTurn(m, model.SeatBot); err != nil {
		return nil, err
	}
	defer sess.Bot.EndTurn()

	result := &TurnResult{Seat: model.SeatBot}
	for {
		elapsed := c.clock.Now().Sub(m.TurnStartedAt)
		out, err := sess.Bot.PlayTurn(m.CurrentWord, elapsed)
		if err != nil {
			return nil, err
		}

		if out.Kind == bot.OutcomeMove {
			result.Word = out.Move.Word
			card, reason := c.validateBotMove(m.CurrentWord, out.Move, sess.Bot)
			if reason != PenaltyNone {
				result.Reason = reason
				break
			}
			sess.Bot.RemoveCard(string(card))
			result.Card = card
			result.Accepted = true
			c.accept(m, model.SeatBot, out.Move.Resolved, card)
			break
		}
		if out.Kind == bot.OutcomeNoMove {
			result.Reason = PenaltyNoMove
			break
		}
		if elapsed >= c.cfg.TurnTimeLimit {
			result.Reason = PenaltyTimeout
			break
		}
		if err := c.clock.Sleep(ctx, c.cfg.PollInterval); err != nil {
			return nil, err
		}
	}

	return c.finishTurn(ctx, sess, result)
}

// validate checks a human move and returns the card that pays for it
func (c *Controller) validate(current, word string, hand *model.Hand) (model.Card, PenaltyReason) {
	if !c.dictionary.IsValidWord(word) {
		return "", PenaltyInvalidWord
	}
	pos, ok := dictionary.ChangedPosition(current, word)
	if !ok {
		return "", PenaltyNotOneLetter
	}
	letter := model.Card(word[pos : pos+1])
	switch {
	case hand.Contains(letter):
		return letter, PenaltyNone
	case hand.Contains(model.Wildcard):
		return model.Wildcard, PenaltyNone
	default:
		return "", PenaltyCardNotHeld
	}
}

// validateBotMove applies the same rules to the bot's chosen move
func (c *Controller) validateBotMove(current string, move *bot.Move, b *bot.Bot) (model.Card, PenaltyReason) {
	if !c.dictionary.IsValidWord(move.Resolved) {
		return "", PenaltyInvalidWord
	}
	pos, ok := dictionary.ChangedPosition(current, move.Resolved)
	if !ok {
		return "", PenaltyNotOneLetter
	}
	if move.Card.IsLetter() && move.Card.Letter() != move.Resolved[pos] {
		return "", PenaltyCardNotHeld
	}
	for _, held := range b.Hand() {
		if held == move.Card {
			return move.Card, PenaltyNone
		}
	}
	return "", PenaltyCardNotHeld
}

func (c *Controller) accept(m *model.Match, seat model.Seat, word string, card model.Card) {
	m.CurrentWord = word
	m.UsedWords[word] = seat
	m.UsedCards = append(m.UsedCards, card)
}

// finishTurn hands out penalties, checks for a winner and passes the turn
func (c *Controller) finishTurn(ctx context.Context, sess *Session, result *TurnResult) (*TurnResult, error) {
	m := sess.Match

	if !result.Accepted {
		if err := c.penalise(sess, result); err != nil {
			return nil, err
		}
	}
	if result.Seat == model.SeatHuman {
		m.HumanHand.Sort()
	}

	switch {
	case m.HumanHand.IsEmpty():
		m.State = model.MatchStateHumanWon
	case sess.Bot.HasWon():
		m.State = model.MatchStateBotWon
	}

	now := c.clock.Now()
	m.TurnNumber++
	m.Turn = m.Turn.Other()
	m.TurnStartedAt = now
	m.UpdatedAt = now
	result.CurrentWord = m.CurrentWord
	result.Winner = m.Winner()

	c.logger.Info("turn finished",
		slog.String("seat", string(result.Seat)),
		slog.String("word", result.Word),
		slog.Bool("accepted", result.Accepted),
		slog.String("reason", string(result.Reason)),
		slog.String("current_word", m.CurrentWord),
		slog.Int("turn", m.TurnNumber),
	)

	if m.IsOver() {
		summary := &model.MatchSummary{
			Difficulty:  sess.Bot.Difficulty(),
			Winner:      m.Winner(),
			Turns:       m.TurnNumber,
			FinalWord:   m.CurrentWord,
			CompletedAt: now,
		}
		if err := c.storage.SaveMatchSummary(ctx, summary); err != nil {
			c.logger.Error("failed to save match summary", slog.String("error", err.Error()))
			return result, err
		}
		c.logger.Info("match finished", slog.String("winner", string(m.Winner())))
	}

	return result, nil
}

// penalise draws a penalty card for the player whose turn failed, then
// makes them discard if the hand has grown past the limit
func (c *Controller) penalise(sess *Session, result *TurnResult) error {
	m := sess.Match
	card, err := c.draw(sess)
	if err != nil {
		return err
	}
	result.Penalty = card

	switch result.Seat {
	case model.SeatHuman:
		m.HumanHand.Add(card)
		if m.HumanHand.Len() > c.cfg.MaxHandSize {
			idx, err := bot.DiscardIndex(m.HumanHand.Cards(), bot.DiscardLeastFrequent, c.random)
			if err != nil {
				return err
			}
			result.Discarded = m.HumanHand.RemoveAt(idx)
		}
	case model.SeatBot:
		if err := sess.Bot.AddCard(string(card)); err != nil {
			return err
		}
		if len(sess.Bot.Hand()) > c.cfg.MaxHandSize {
			discarded, err := sess.Bot.Discard()
			if err != nil {
				return err
			}
			result.Discarded = discarded
		}
	}
	if result.Discarded != "" {
		m.UsedCards = append(m.UsedCards, result.Discarded)
	}
	return nil
}

// draw takes a card, reshuffling the used pile into the deck when it runs out
func (c *Controller) draw(sess *Session) (model.Card, error) {
	m := sess.Match
	if sess.Deck.Len() == 0 && len(m.UsedCards) > 0 {
		sess.Deck.Reshuffle(m.UsedCards)
		m.UsedCards = nil
		c.logger.Debug("deck reshuffled", slog.Int("deck_size", sess.Deck.Len()))
	}
	return sess.Deck.Draw()
}

func checkTurn(m *model.Match, seat model.Seat) error {
	if m.IsOver() {
		return model.ErrMatchOver
	}
	if m.Turn != seat {
		return model.ErrNotPlayerTurn
	}
	return nil
}
