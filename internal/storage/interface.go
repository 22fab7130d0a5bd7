package storage

import (
	"context"

	"github.com/mcoot/letterswap/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Dictionary operations
	GetWordFrequencies(ctx context.Context) (map[string]float64, error)
	SaveWordFrequencies(ctx context.Context, frequencies map[string]float64) error

	// Match summary operations
	SaveMatchSummary(ctx context.Context, summary *model.MatchSummary) error
	// ListMatchSummaries returns up to limit summaries, most recent first
	ListMatchSummaries(ctx context.Context, limit int) ([]*model.MatchSummary, error)
}
