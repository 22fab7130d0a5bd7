package bot_test

import (
	"github.com/mcoot/letterswap/internal/model"
)

// staticWords is an in-memory WordSource
type staticWords struct {
	freqs map[string]float64
}

func newStaticWords(freqs map[string]float64) *staticWords {
	return &staticWords{freqs: freqs}
}

func (w *staticWords) Words() []string {
	words := make([]string, 0, len(w.freqs))
	for word := range w.freqs {
		words = append(words, word)
	}
	return words
}

func (w *staticWords) Frequencies() map[string]float64 {
	return w.freqs
}

func cards(s ...string) []model.Card {
	out := make([]model.Card, len(s))
	for i, c := range s {
		out[i] = model.Card(c)
	}
	return out
}
