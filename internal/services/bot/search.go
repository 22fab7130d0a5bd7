package bot

import (
	"fmt"

	"github.com/mcoot/letterswap/internal/dependencies/random"
	"github.com/mcoot/letterswap/internal/model"
)

// Move is a word the bot intends to play and the card that pays for it
type Move struct {
	// Word is the new word as played. For wildcard moves the substituted
	// position holds the wildcard symbol.
	Word string
	Card model.Card
	// Resolved is the dictionary word the move produces
	Resolved string
	// Position is the index of the changed letter
	Position int
}

// IsWildcard reports whether the move is paid for with the wildcard
func (m *Move) IsWildcard() bool {
	return m.Card.IsWildcard()
}

// FindNextWord searches for a word one substitution away from word that the
// hand can pay for. Each letter card contributes at most one suggestion: the
// first position, scanning left to right, that yields an unseen vocabulary
// word. A wildcard is only used when no letter card produced anything.
// A nil move with a nil error means there is no legal move.
func FindNextWord(word string, hand []model.Card, vocab *Vocabulary, st SearchStrategy, rnd random.Random) (*Move, error) {
	cards := hand
	if st.Rank {
		cards = Rank(hand)
	}

	var suggestions []Move
	seen := make(map[string]struct{})
	var fallback *Move

	for _, card := range cards {
		switch {
		case card.IsLetter():
			for pos := 0; pos < len(word); pos++ {
				candidate := substitute(word, pos, card.Letter())
				if candidate == word || !vocab.Contains(candidate) {
					continue
				}
				if _, dup := seen[candidate]; dup {
					continue
				}
				seen[candidate] = struct{}{}
				suggestions = append(suggestions, Move{
					Word:     candidate,
					Card:     card,
					Resolved: candidate,
					Position: pos,
				})
				break
			}

		case card.IsWildcard():
			if fallback == nil {
				fallback = wildcardMove(word, vocab)
			}

		default:
			return nil, fmt.Errorf("%w: %q in hand", model.ErrMalformedCard, string(card))
		}
	}

	if len(suggestions) > 0 {
		switch st.Pick {
		case PickFirst:
			return &suggestions[0], nil
		default:
			return &suggestions[rnd.Intn(len(suggestions))], nil
		}
	}
	return fallback, nil
}

// wildcardMove tries every letter at every position and returns the first
// vocabulary word found, marked with the wildcard at the changed position
func wildcardMove(word string, vocab *Vocabulary) *Move {
	for i := 0; i < len(model.Alphabet); i++ {
		for pos := 0; pos < len(word); pos++ {
			candidate := substitute(word, pos, model.Alphabet[i])
			if candidate == word || !vocab.Contains(candidate) {
				continue
			}
			return &Move{
				Word:     substitute(candidate, pos, model.Wildcard.Letter()),
				Card:     model.Wildcard,
				Resolved: candidate,
				Position: pos,
			}
		}
	}
	return nil
}

func substitute(word string, pos int, letter byte) string {
	b := []byte(word)
	b[pos] = letter
	return string(b)
}
