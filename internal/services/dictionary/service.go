package dictionary

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/mcoot/letterswap/internal/dependencies/random"
	"github.com/mcoot/letterswap/internal/model"
	"github.com/mcoot/letterswap/internal/storage"
)

//go:embed default_words.tsv
var defaultWords string

// Service holds the playable word list and each word's corpus frequency
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  map[string]float64
	sorted []string
	loaded bool
}

// New creates a new dictionary Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "dictionary")),
		words:   make(map[string]float64),
	}
}

// LoadFromStorage loads the word frequency table from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	freqs, err := s.storage.GetWordFrequencies(ctx)
	if err != nil {
		return err
	}
	s.load(freqs)
	s.logger.Info("dictionary loaded from storage", slog.Int("word_count", len(freqs)))
	return nil
}

// LoadFromFile loads a word list from a file. Each line holds a word,
// optionally followed by whitespace and its frequency. Lines starting
// with # are ignored.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	freqs, err := ParseFrequencies(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	// Save to storage for future use
	if err := s.storage.SaveWordFrequencies(ctx, freqs); err != nil {
		return err
	}

	s.load(freqs)
	s.logger.Info("dictionary loaded from file",
		slog.String("path", path),
		slog.Int("word_count", len(freqs)),
	)
	return nil
}

// LoadDefault loads the word list bundled with the binary
func (s *Service) LoadDefault() error {
	freqs, err := ParseFrequencies(strings.NewReader(defaultWords))
	if err != nil {
		return err
	}
	s.load(freqs)
	return nil
}

// LoadFrequencies directly loads a word frequency table (useful for testing)
func (s *Service) LoadFrequencies(freqs map[string]float64) {
	lowered := make(map[string]float64, len(freqs))
	for w, f := range freqs {
		lowered[strings.ToLower(w)] = f
	}
	s.load(lowered)
}

// LoadWords directly loads words with no frequency information
func (s *Service) LoadWords(words []string) {
	freqs := make(map[string]float64, len(words))
	for _, w := range words {
		freqs[strings.ToLower(w)] = 0
	}
	s.load(freqs)
}

func (s *Service) load(freqs map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = maps.Clone(freqs)
	if s.words == nil {
		s.words = make(map[string]float64)
	}
	s.sorted = slices.Sorted(maps.Keys(s.words))
	s.loaded = true
}

// ParseFrequencies reads "word [frequency]" lines into a lowercase table
func ParseFrequencies(r io.Reader) (map[string]float64, error) {
	freqs := make(map[string]float64)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		word := strings.ToLower(fields[0])
		if !isAlpha(word) {
			return nil, fmt.Errorf("line %d: invalid word %q", lineNo, fields[0])
		}

		var freq float64
		if len(fields) > 1 {
			f, err := strconv.ParseFloat(fields[1], 64)
			if err != nil || f < 0 {
				return nil, fmt.Errorf("line %d: invalid frequency %q", lineNo, fields[1])
			}
			freq = f
		}
		freqs[word] = freq
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return freqs, nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return s != ""
}

// IsValidWord checks if a word exists in the dictionary
// Words must be at least 2 characters
func (s *Service) IsValidWord(word string) bool {
	if len(word) < 2 {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return false
	}

	_, ok := s.words[strings.ToLower(word)]
	return ok
}

// IsOneLetterDifferent reports whether b is a with exactly one letter changed
func IsOneLetterDifferent(a, b string) bool {
	_, ok := ChangedPosition(a, b)
	return ok
}

// ChangedPosition returns the single index at which a and b differ,
// ignoring case. ok is false if they differ in length or in anything
// other than exactly one position.
func ChangedPosition(a, b string) (pos int, ok bool) {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if len(a) != len(b) {
		return 0, false
	}
	pos = -1
	for i := 0; i < len(a); i++ {
		if a[i] == b[i] {
			continue
		}
		if pos != -1 {
			return 0, false
		}
		pos = i
	}
	return pos, pos != -1
}

// Words returns every dictionary word in lexical order
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.sorted)
}

// Frequencies returns a copy of the word frequency table
func (s *Service) Frequencies() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.words)
}

// RandomWord picks a uniformly random word of the given length
func (s *Service) RandomWord(rnd random.Random, length int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return "", model.ErrDictionaryNotLoaded
	}

	var candidates []string
	for _, w := range s.sorted {
		if len(w) == length {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %d", model.ErrNoWordOfLength, length)
	}
	return candidates[rnd.Intn(len(candidates))], nil
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// ErrDictionaryNotLoaded is returned when operations are attempted before loading
var ErrDictionaryNotLoaded = model.ErrDictionaryNotLoaded
