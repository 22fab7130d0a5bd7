package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/letterswap/internal/model"
	"github.com/mcoot/letterswap/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) GetWordFrequencies(ctx context.Context) (map[string]float64, error) {
	key := wordFrequenciesKey()

	// Check if dictionary exists
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	members, err := s.client.ZRangeWithScores(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	result := make(map[string]float64, len(members))
	for _, m := range members {
		word, ok := m.Member.(string)
		if !ok {
			continue
		}
		result[word] = m.Score
	}
	return result, nil
}

func (s *Storage) SaveWordFrequencies(ctx context.Context, frequencies map[string]float64) error {
	key := wordFrequenciesKey()

	// Replace the whole table atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(frequencies) > 0 {
		members := make([]redis.Z, 0, len(frequencies))
		for word, freq := range frequencies {
			members = append(members, redis.Z{Score: freq, Member: word})
		}
		pipe.ZAdd(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// Match summary operations

func (s *Storage) SaveMatchSummary(ctx context.Context, summary *model.MatchSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	key := matchSummariesKey()
	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	if s.cfg.SummaryLimit > 0 {
		pipe.LTrim(ctx, key, 0, int64(s.cfg.SummaryLimit-1))
	}
	if s.cfg.SummaryTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.SummaryTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListMatchSummaries(ctx context.Context, limit int) ([]*model.MatchSummary, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	items, err := s.client.LRange(ctx, matchSummariesKey(), 0, stop).Result()
	if err != nil {
		return nil, err
	}

	result := make([]*model.MatchSummary, 0, len(items))
	for _, item := range items {
		var summary model.MatchSummary
		if err := json.Unmarshal([]byte(item), &summary); err != nil {
			return nil, err
		}
		result = append(result, &summary)
	}
	return result, nil
}
