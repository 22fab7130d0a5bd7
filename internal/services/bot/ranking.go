package bot

import "github.com/mcoot/letterswap/internal/model"

// Rank orders cards from least to most frequent letter using a stable
// insertion sort, followed by every non-letter card in its original order.
// The input slice is left untouched.
func Rank(cards []model.Card) []model.Card {
	letters := make([]model.Card, 0, len(cards))
	var others []model.Card
	for _, c := range cards {
		if c.IsLetter() {
			letters = append(letters, c)
		} else {
			others = append(others, c)
		}
	}

	for i := 1; i < len(letters); i++ {
		key := letters[i]
		keyFreq, _ := key.Frequency()
		j := i - 1
		for j >= 0 {
			f, _ := letters[j].Frequency()
			if keyFreq >= f {
				break
			}
			letters[j+1] = letters[j]
			j--
		}
		letters[j+1] = key
	}

	return append(letters, others...)
}
