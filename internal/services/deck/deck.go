package deck

import (
	"math"

	"github.com/mcoot/letterswap/internal/dependencies/random"
	"github.com/mcoot/letterswap/internal/model"
)

// DefaultWildcards is the number of wildcards in a fresh deck
const DefaultWildcards = 4

// Deck is the face-down draw pile. The top of the pile is the end of the slice.
type Deck struct {
	cards  []model.Card
	random random.Random
}

// Composition returns an unshuffled deck: every letter appears in proportion
// to its frequency (at least once), followed by the wildcards
func Composition(wildcards int) []model.Card {
	var cards []model.Card
	for i := 0; i < len(model.Alphabet); i++ {
		letter := model.Alphabet[i]
		freq, _ := model.LetterFrequency(letter)
		copies := max(1, int(math.Round(freq/2)))
		for range copies {
			cards = append(cards, model.Card(string(letter)))
		}
	}
	for range wildcards {
		cards = append(cards, model.Wildcard)
	}
	return cards
}

// New creates a shuffled deck with the standard composition
func New(rnd random.Random, wildcards int) *Deck {
	d := &Deck{cards: Composition(wildcards), random: rnd}
	Shuffle(d.cards, rnd)
	return d
}

// NewFromCards creates a deck from an explicit pile without shuffling.
// The last card is drawn first.
func NewFromCards(rnd random.Random, cards []model.Card) *Deck {
	pile := make([]model.Card, len(cards))
	copy(pile, cards)
	return &Deck{cards: pile, random: rnd}
}

// Shuffle permutes cards in place (Fisher-Yates)
func Shuffle(cards []model.Card, rnd random.Random) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Draw takes the top card
func (d *Deck) Draw() (model.Card, error) {
	if len(d.cards) == 0 {
		return "", model.ErrDeckEmpty
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

// Reshuffle adds used cards back into the pile and shuffles it
func (d *Deck) Reshuffle(used []model.Card) {
	d.cards = append(d.cards, used...)
	Shuffle(d.cards, d.random)
}

// Len returns the number of cards left to draw
func (d *Deck) Len() int {
	return len(d.cards)
}
