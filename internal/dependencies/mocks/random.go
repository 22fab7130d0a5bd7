package mocks

import (
	"github.com/mcoot/letterswap/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// Float64Results is a queue of results to return from Float64
	Float64Results []float64
	float64Index   int

	// NormResults is a queue of results to return from NormFloat64
	NormResults []float64
	normIndex   int

	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result
}

// Float64 returns the next queued result, or 0 if none remaining
func (r *MockRandom) Float64() float64 {
	if r.float64Index >= len(r.Float64Results) {
		return 0
	}
	result := r.Float64Results[r.float64Index]
	r.float64Index++
	return result
}

// NormFloat64 returns the next queued result, or 0 if none remaining
func (r *MockRandom) NormFloat64() float64 {
	if r.normIndex >= len(r.NormResults) {
		return 0
	}
	result := r.NormResults[r.normIndex]
	r.normIndex++
	return result
}

// String returns the next queued result, or empty string if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		return ""
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueFloat64 adds values to the Float64 result queue
func (r *MockRandom) QueueFloat64(values ...float64) {
	r.Float64Results = append(r.Float64Results, values...)
}

// QueueNorm adds values to the NormFloat64 result queue
func (r *MockRandom) QueueNorm(values ...float64) {
	r.NormResults = append(r.NormResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}

// IntnCalls returns how many times Intn has been called with a queued result
func (r *MockRandom) IntnCalls() int {
	return r.intnIndex
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.Float64Results = nil
	r.float64Index = 0
	r.NormResults = nil
	r.normIndex = 0
	r.StringResults = nil
	r.stringIndex = 0
}
