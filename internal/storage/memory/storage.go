package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/mcoot/letterswap/internal/model"
	"github.com/mcoot/letterswap/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	wordFrequencies map[string]float64
	summaries       []*model.MatchSummary // oldest first
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) GetWordFrequencies(ctx context.Context) (map[string]float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.wordFrequencies == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	return maps.Clone(s.wordFrequencies), nil
}

func (s *Storage) SaveWordFrequencies(ctx context.Context, frequencies map[string]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// An empty table is indistinguishable from no table, as in redis
	if len(frequencies) == 0 {
		s.wordFrequencies = nil
		return nil
	}
	s.wordFrequencies = maps.Clone(frequencies)
	return nil
}

// Match summary operations

func (s *Storage) SaveMatchSummary(ctx context.Context, summary *model.MatchSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *summary
	s.summaries = append(s.summaries, &copied)
	return nil
}

func (s *Storage) ListMatchSummaries(ctx context.Context, limit int) ([]*model.MatchSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.MatchSummary
	for i := len(s.summaries) - 1; i >= 0; i-- {
		if limit > 0 && len(result) >= limit {
			break
		}
		copied := *s.summaries[i]
		result = append(result, &copied)
	}
	return result, nil
}
