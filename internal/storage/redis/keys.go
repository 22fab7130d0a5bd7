package redis

import "fmt"

// Key prefix for all letterswap data
const keyPrefix = "letterswap"

// wordFrequenciesKey returns the Redis key for the sorted set of words scored by frequency
func wordFrequenciesKey() string {
	return fmt.Sprintf("%s:dictionary:frequencies", keyPrefix)
}

// matchSummariesKey returns the Redis key for the list of finished match summaries
func matchSummariesKey() string {
	return fmt.Sprintf("%s:match_summaries", keyPrefix)
}
