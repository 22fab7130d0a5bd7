package bot

import "strings"

// Vocabulary is the immutable set of words a bot is able to play
type Vocabulary struct {
	words map[string]struct{}
}

// BuildVocabulary keeps the words whose recorded frequency strictly exceeds
// cutoff. Words with no recorded frequency count as 0. A cutoff of zero or
// below admits every word.
func BuildVocabulary(words []string, frequencies map[string]float64, cutoff float64) *Vocabulary {
	v := &Vocabulary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(w)
		if cutoff > 0 && frequencies[w] <= cutoff {
			continue
		}
		v.words[w] = struct{}{}
	}
	return v
}

// Contains reports whether word is in the vocabulary
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.words[word]
	return ok
}

// Size returns the number of words in the vocabulary
func (v *Vocabulary) Size() int {
	return len(v.words)
}
