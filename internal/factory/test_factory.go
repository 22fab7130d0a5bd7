package factory

import (
	"time"

	"github.com/mcoot/letterswap/internal/dependencies/mocks"
	"github.com/mcoot/letterswap/internal/services/game"
	"github.com/mcoot/letterswap/internal/storage/memory"
	"github.com/mcoot/letterswap/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, game.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads a small dictionary of three-letter words around
// "cat" with descending frequencies
func (t *TestApp) LoadTestDictionary() {
	t.DictionaryService.LoadFrequencies(map[string]float64{
		"cat": 6e-4,
		"hat": 5e-4,
		"bat": 4e-4,
		"cot": 3e-4,
		"cut": 2e-4,
		"hut": 1e-4,
		"hit": 9e-5,
		"tat": 5e-6,
		"hot": 4e-6,
		"cab": 3e-6,
	})
}
