package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// SummaryLimit caps how many match summaries are retained
	SummaryLimit int
	// SummaryTTL expires the summary list after a period of inactivity (0 = never)
	SummaryTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		SummaryLimit: 100,
		SummaryTTL:   30 * 24 * time.Hour,
	}
}
