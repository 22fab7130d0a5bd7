package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/letterswap/internal/model"
)

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "data", "letterswap.db")

	st, err := New(s.path)
	s.Require().NoError(err)
	s.storage = st
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetWordFrequencies() {
	freqs := map[string]float64{"cat": 1e-4, "cot": 2.5e-6, "zax": 0}

	err := s.storage.SaveWordFrequencies(s.ctx, freqs)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetWordFrequencies(s.ctx)
	s.Require().NoError(err)
	s.Equal(freqs, retrieved)
}

func (s *StorageSuite) TestGetWordFrequenciesNotLoaded() {
	_, err := s.storage.GetWordFrequencies(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestSaveWordFrequenciesReplacesExisting() {
	s.Require().NoError(s.storage.SaveWordFrequencies(s.ctx, map[string]float64{"cat": 1, "dog": 2}))
	s.Require().NoError(s.storage.SaveWordFrequencies(s.ctx, map[string]float64{"cow": 3}))

	retrieved, err := s.storage.GetWordFrequencies(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]float64{"cow": 3}, retrieved)
}

func (s *StorageSuite) TestSaveEmptyWordFrequenciesClears() {
	s.Require().NoError(s.storage.SaveWordFrequencies(s.ctx, map[string]float64{"cat": 1}))
	s.Require().NoError(s.storage.SaveWordFrequencies(s.ctx, nil))

	_, err := s.storage.GetWordFrequencies(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *StorageSuite) TestDataSurvivesReopen() {
	s.Require().NoError(s.storage.SaveWordFrequencies(s.ctx, map[string]float64{"cat": 1}))
	s.Require().NoError(s.storage.Close())

	reopened, err := New(s.path)
	s.Require().NoError(err)
	s.storage = reopened

	retrieved, err := s.storage.GetWordFrequencies(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]float64{"cat": 1}, retrieved)
}

// Match summary tests

func (s *StorageSuite) TestSaveAndListMatchSummaries() {
	completed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	summary := &model.MatchSummary{
		Difficulty:  model.DifficultyMedium,
		Winner:      model.SeatHuman,
		Turns:       12,
		FinalWord:   "dog",
		CompletedAt: completed,
	}

	err := s.storage.SaveMatchSummary(s.ctx, summary)
	s.Require().NoError(err)

	list, err := s.storage.ListMatchSummaries(s.ctx, 10)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(model.DifficultyMedium, list[0].Difficulty)
	s.Equal(model.SeatHuman, list[0].Winner)
	s.Equal(12, list[0].Turns)
	s.Equal("dog", list[0].FinalWord)
	s.True(completed.Equal(list[0].CompletedAt))
}

func (s *StorageSuite) TestMatchSummariesMostRecentFirst() {
	completed := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, word := range []string{"cat", "cot", "cut", "hut"} {
		s.Require().NoError(s.storage.SaveMatchSummary(s.ctx, &model.MatchSummary{
			Difficulty:  model.DifficultyHard,
			Winner:      model.SeatBot,
			Turns:       i,
			FinalWord:   word,
			CompletedAt: completed,
		}))
	}

	list, err := s.storage.ListMatchSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 4)
	s.Equal("hut", list[0].FinalWord)
	s.Equal("cat", list[3].FinalWord)

	limited, err := s.storage.ListMatchSummaries(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().Len(limited, 2)
	s.Equal("cut", limited[1].FinalWord)
}

func (s *StorageSuite) TestListMatchSummariesEmpty() {
	list, err := s.storage.ListMatchSummaries(s.ctx, 5)
	s.Require().NoError(err)
	s.Empty(list)
}
