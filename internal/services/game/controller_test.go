package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/letterswap/internal/dependencies/mocks"
	"github.com/mcoot/letterswap/internal/dependencies/random"
	"github.com/mcoot/letterswap/internal/model"
	"github.com/mcoot/letterswap/internal/services/bot"
	"github.com/mcoot/letterswap/internal/services/deck"
	"github.com/mcoot/letterswap/internal/services/dictionary"
	"github.com/mcoot/letterswap/internal/services/game"
	"github.com/mcoot/letterswap/internal/storage/memory"
	"github.com/mcoot/letterswap/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	ctx        context.Context
	storage    *memory.Storage
	dictionary *dictionary.Service
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *game.Controller
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.ctx = context.Background()
	s.storage = memory.New()
	s.dictionary = dictionary.New(s.storage, testutil.NopLogger())
	s.dictionary.LoadFrequencies(map[string]float64{
		"cat": 0.5,
		"bat": 0.4,
		"hat": 0.3,
		"tat": 0.2,
		"cot": 0.1,
		"hut": 0.1,
	})
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = game.NewController(s.dictionary, s.storage, s.clock, s.random, game.DefaultConfig(), testutil.NopLogger())
}

func cards(s ...string) []model.Card {
	out := make([]model.Card, len(s))
	for i, c := range s {
		out[i] = model.Card(c)
	}
	return out
}

// session builds a match on word with the given hands. The last deck card is
// drawn first.
func (s *ControllerSuite) session(turn model.Seat, difficulty model.Difficulty, human, botHand, pile []string) *game.Session {
	opponent, err := bot.New(difficulty, cards(botHand...), s.dictionary, s.random, testutil.NopLogger())
	s.Require().NoError(err)
	now := s.clock.Now()
	return &game.Session{
		Match: &model.Match{
			State:         model.MatchStatePlaying,
			CurrentWord:   "cat",
			Turn:          turn,
			HumanHand:     model.NewHand(cards(human...)...),
			UsedWords:     map[string]model.Seat{},
			TurnStartedAt: now,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		Bot:  opponent,
		Deck: deck.NewFromCards(s.random, cards(pile...)),
	}
}

// NewMatch

func (s *ControllerSuite) TestNewMatchDealsHands() {
	controller := game.NewController(s.dictionary, s.storage, s.clock, random.NewSeeded(7), game.DefaultConfig(), testutil.NopLogger())

	sess, err := controller.NewMatch(s.ctx, model.DifficultyMedium)
	s.Require().NoError(err)

	cfg := game.DefaultConfig()
	s.Equal(cfg.HandSize, sess.Match.HumanHand.Len())
	s.Len(sess.Bot.Hand(), cfg.HandSize)
	s.Equal(len(deck.Composition(cfg.Wildcards))-2*cfg.HandSize, sess.Deck.Len())
	s.Equal(model.MatchStatePlaying, sess.Match.State)
	s.Equal(model.DifficultyMedium, sess.Bot.Difficulty())
	s.Len(sess.Match.CurrentWord, cfg.WordLength)
	s.True(s.dictionary.IsValidWord(sess.Match.CurrentWord))
	s.Contains([]model.Seat{model.SeatHuman, model.SeatBot}, sess.Match.Turn)
	s.Equal(s.clock.Now(), sess.Match.TurnStartedAt)
}

func (s *ControllerSuite) TestNewMatchUnknownDifficulty() {
	_, err := s.controller.NewMatch(s.ctx, model.Difficulty("brutal"))
	s.ErrorIs(err, model.ErrUnknownDifficulty)
}

func (s *ControllerSuite) TestNewMatchDictionaryNotLoaded() {
	empty := dictionary.New(s.storage, testutil.NopLogger())
	controller := game.NewController(empty, s.storage, s.clock, s.random, game.DefaultConfig(), testutil.NopLogger())

	_, err := controller.NewMatch(s.ctx, model.DifficultyEasy)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

// Human turns

func (s *ControllerSuite) TestHumanValidMove() {
	sess := s.session(model.SeatHuman, model.DifficultyHard, []string{"t", "x"}, []string{"z"}, nil)

	result, err := s.controller.SubmitHumanMove(s.ctx, sess, "TAT")
	s.Require().NoError(err)

	s.True(result.Accepted)
	s.Equal(model.Card("t"), result.Card)
	s.Equal("tat", result.CurrentWord)
	s.Equal(game.PenaltyNone, result.Reason)
	s.Equal([]model.Card{"x"}, sess.Match.HumanHand.Cards())
	s.Equal(model.SeatBot, sess.Match.Turn)
	s.Equal(1, sess.Match.TurnNumber)
	s.Equal(model.SeatHuman, sess.Match.UsedWords["tat"])
	s.Equal([]model.Card{"t"}, sess.Match.UsedCards)
}

func (s *ControllerSuite) TestHumanWildcardWhenLetterNotHeld() {
	sess := s.session(model.SeatHuman, model.DifficultyHard, []string{"*", "x"}, []string{"z"}, nil)

	result, err := s.controller.SubmitHumanMove(s.ctx, sess, "bat")
	s.Require().NoError(err)

	s.True(result.Accepted)
	s.Equal(model.Wildcard, result.Card)
	s.Equal("bat", sess.Match.CurrentWord)
	s.Equal([]model.Card{"x"}, sess.Match.HumanHand.Cards())
}

func (s *ControllerSuite) TestHumanPrefersLetterOverWildcard() {
	sess := s.session(model.SeatHuman, model.DifficultyHard, []string{"*", "b"}, []string{"z"}, nil)

	result, err := s.controller.SubmitHumanMove(s.ctx, sess, "bat")
	s.Require().NoError(err)

	s.Equal(model.Card("b"), result.Card)
	s.Equal([]model.Card{"*"}, sess.Match.HumanHand.Cards())
}

func (s *ControllerSuite) TestHumanPenalties() {
	tests := []struct {
		name   string
		word   string
		reason game.PenaltyReason
	}{
		{"unknown word", "zzz", game.PenaltyInvalidWord},
		{"two letters changed", "hut", game.PenaltyNotOneLetter},
		{"same word", "cat", game.PenaltyNotOneLetter},
		{"card not held", "bat", game.PenaltyCardNotHeld},
		{"pass", "", game.PenaltyPass},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			sess := s.session(model.SeatHuman, model.DifficultyHard, []string{"x"}, []string{"z"}, []string{"q"})

			result, err := s.controller.SubmitHumanMove(s.ctx, sess, tt.word)
			s.Require().NoError(err)

			s.False(result.Accepted)
			s.Equal(tt.reason, result.Reason)
			s.Equal(model.Card("q"), result.Penalty)
			s.Equal("cat", result.CurrentWord)
			s.Equal([]model.Card{"q", "x"}, sess.Match.HumanHand.Cards())
			s.Equal(model.SeatBot, sess.Match.Turn)
		})
	}
}

func (s *ControllerSuite) TestHumanTimeout() {
	sess := s.session(model.SeatHuman, model.DifficultyHard, []string{"t"}, []string{"z"}, []string{"q"})
	s.clock.Advance(bot.TurnTimeLimit + time.Second)

	result, err := s.controller.SubmitHumanMove(s.ctx, sess, "tat")
	s.Require().NoError(err)

	s.False(result.Accepted)
	s.Equal(game.PenaltyTimeout, result.Reason)
	s.Equal("cat", sess.Match.CurrentWord)
	s.Equal(2, sess.Match.HumanHand.Len())
	s.Equal(s.clock.Now(), sess.Match.TurnStartedAt)
}

func (s *ControllerSuite) TestHumanWins() {
	sess := s.session(model.SeatHuman, model.DifficultyHard, []string{"t"}, []string{"z"}, nil)

	result, err := s.controller.SubmitHumanMove(s.ctx, sess, "tat")
	s.Require().NoError(err)

	s.Equal(model.SeatHuman, result.Winner)
	s.Equal(model.MatchStateHumanWon, sess.Match.State)

	summaries, err := s.storage.ListMatchSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(model.SeatHuman, summaries[0].Winner)
	s.Equal(model.DifficultyHard, summaries[0].Difficulty)
	s.Equal("tat", summaries[0].FinalWord)
	s.Equal(1, summaries[0].Turns)

	_, err = s.controller.SubmitHumanMove(s.ctx, sess, "hat")
	s.ErrorIs(err, model.ErrMatchOver)
}

func (s *ControllerSuite) TestMatchEndIsLogged() {
	logger, logs := testutil.CaptureLogger()
	controller := game.NewController(s.dictionary, s.storage, s.clock, s.random, game.DefaultConfig(), logger)
	sess := s.session(model.SeatHuman, model.DifficultyHard, []string{"t"}, []string{"z"}, nil)

	_, err := controller.SubmitHumanMove(s.ctx, sess, "tat")
	s.Require().NoError(err)

	s.Contains(logs.String(), `"msg":"match finished"`)
	s.Contains(logs.String(), `"component":"game-controller"`)
	s.Contains(logs.String(), `"winner":"human"`)
}

func (s *ControllerSuite) TestHumanOutOfTurn() {
	sess := s.session(model.SeatBot, model.DifficultyHard, []string{"t"}, []string{"z"}, nil)

	_, err := s.controller.SubmitHumanMove(s.ctx, sess, "tat")
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *ControllerSuite) TestPenaltyReshufflesUsedCards() {
	sess := s.session(model.SeatHuman, model.DifficultyHard, []string{"x"}, []string{"z"}, nil)
	sess.Match.UsedCards = cards("k")

	result, err := s.controller.SubmitHumanMove(s.ctx, sess, "")
	s.Require().NoError(err)

	s.Equal(model.Card("k"), result.Penalty)
	s.Empty(sess.Match.UsedCards)
	s.Equal(0, sess.Deck.Len())
}

func (s *ControllerSuite) TestPenaltyWithNoCardsLeft() {
	sess := s.session(model.SeatHuman, model.DifficultyHard, []string{"x"}, []string{"z"}, nil)

	_, err := s.controller.SubmitHumanMove(s.ctx, sess, "")
	s.ErrorIs(err, model.ErrDeckEmpty)
}

func (s *ControllerSuite) TestHumanDiscardsOverHandLimit() {
	human := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "l"}
	sess := s.session(model.SeatHuman, model.DifficultyHard, human, []string{"z"}, []string{"z"})

	result, err := s.controller.SubmitHumanMove(s.ctx, sess, "")
	s.Require().NoError(err)

	s.Equal(model.Card("z"), result.Penalty)
	s.Equal(model.Card("z"), result.Discarded)
	s.Equal(game.DefaultConfig().MaxHandSize, sess.Match.HumanHand.Len())
	s.False(sess.Match.HumanHand.Contains("z"))
	s.Equal([]model.Card{"z"}, sess.Match.UsedCards)
}

// Bot turns

func (s *ControllerSuite) TestBotMovesAfterDelay() {
	sess := s.session(model.SeatBot, model.DifficultyHard, []string{"x"}, []string{"t", "z"}, nil)

	result, err := s.controller.PlayBotTurn(s.ctx, sess)
	s.Require().NoError(err)

	s.True(result.Accepted)
	s.Equal("tat", result.Word)
	s.Equal(model.Card("t"), result.Card)
	s.Equal("tat", sess.Match.CurrentWord)
	s.Equal([]model.Card{"z"}, sess.Bot.Hand())
	s.Equal(model.SeatBot, sess.Match.UsedWords["tat"])
	s.Equal(model.SeatHuman, sess.Match.Turn)
	s.False(sess.Bot.Turn().Decided)

	// hard answers after 0.266 of the turn limit, polled once a second
	s.Len(s.clock.Slept, 4)
	for _, d := range s.clock.Slept {
		s.Equal(time.Second, d)
	}
}

func (s *ControllerSuite) TestBotNoMove() {
	sess := s.session(model.SeatBot, model.DifficultyHard, []string{"x"}, []string{"z"}, []string{"q"})

	result, err := s.controller.PlayBotTurn(s.ctx, sess)
	s.Require().NoError(err)

	s.False(result.Accepted)
	s.Equal(game.PenaltyNoMove, result.Reason)
	s.Equal(model.Card("q"), result.Penalty)
	s.Equal([]model.Card{"z", "q"}, sess.Bot.Hand())
	// no move is only reported once the answer delay has passed
	s.Len(s.clock.Slept, 4)
	s.False(sess.Bot.Turn().Decided)
}

func (s *ControllerSuite) TestBotTimesOutWhenNotAnswering() {
	sess := s.session(model.SeatBot, model.DifficultyEasy, []string{"x"}, []string{"t"}, []string{"q"})
	s.random.QueueFloat64(0.95)

	result, err := s.controller.PlayBotTurn(s.ctx, sess)
	s.Require().NoError(err)

	s.False(result.Accepted)
	s.Equal(game.PenaltyTimeout, result.Reason)
	s.Equal("cat", sess.Match.CurrentWord)
	s.Len(s.clock.Slept, int(bot.TurnTimeLimit/time.Second))
	s.ElementsMatch([]model.Card{"t", "q"}, sess.Bot.Hand())
}

func (s *ControllerSuite) TestBotWildcardWins() {
	sess := s.session(model.SeatBot, model.DifficultyHard, []string{"x"}, []string{"*"}, nil)

	result, err := s.controller.PlayBotTurn(s.ctx, sess)
	s.Require().NoError(err)

	s.True(result.Accepted)
	s.Equal("*at", result.Word)
	s.Equal(model.Wildcard, result.Card)
	s.Equal("bat", result.CurrentWord)
	s.Equal(model.SeatBot, result.Winner)
	s.Equal(model.MatchStateBotWon, sess.Match.State)

	summaries, err := s.storage.ListMatchSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(summaries, 1)
	s.Equal(model.SeatBot, summaries[0].Winner)
}

func (s *ControllerSuite) TestBotDiscardsOverHandLimit() {
	hand := []string{"z", "z", "z", "z", "z", "z", "z", "z", "z", "z"}
	sess := s.session(model.SeatBot, model.DifficultyHard, []string{"x"}, hand, []string{"q"})

	result, err := s.controller.PlayBotTurn(s.ctx, sess)
	s.Require().NoError(err)

	s.Equal(game.PenaltyNoMove, result.Reason)
	s.Equal(model.Card("q"), result.Penalty)
	s.Equal(model.Card("z"), result.Discarded)
	s.Len(sess.Bot.Hand(), game.DefaultConfig().MaxHandSize)
	s.Contains(sess.Bot.Hand(), model.Card("q"))
}

func (s *ControllerSuite) TestBotOutOfTurn() {
	sess := s.session(model.SeatHuman, model.DifficultyHard, []string{"x"}, []string{"t"}, nil)

	_, err := s.controller.PlayBotTurn(s.ctx, sess)
	s.ErrorIs(err, model.ErrNotPlayerTurn)
}

func (s *ControllerSuite) TestBotTurnCancelled() {
	sess := s.session(model.SeatBot, model.DifficultyHard, []string{"x"}, []string{"t"}, nil)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.controller.PlayBotTurn(ctx, sess)
	s.ErrorIs(err, context.Canceled)
	s.False(sess.Bot.Turn().Decided)
	s.Equal(model.SeatBot, sess.Match.Turn)
}
