package model

import (
	"fmt"
	"strings"
)

// Card is a single card held in a hand: one lowercase letter or the wildcard
type Card string

// Wildcard is the card that stands in for any letter
const Wildcard Card = "*"

// ParseCard normalises a card string and rejects anything that is not a
// single letter or the wildcard symbol
func ParseCard(s string) (Card, error) {
	c := Card(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsLetter() && !c.IsWildcard() {
		return "", fmt.Errorf("%w: %q", ErrMalformedCard, s)
	}
	return c, nil
}

// IsLetter reports whether the card is one of a-z
func (c Card) IsLetter() bool {
	if len(c) != 1 {
		return false
	}
	_, ok := LetterFrequency(c[0])
	return ok
}

// IsWildcard reports whether the card is the wildcard
func (c Card) IsWildcard() bool {
	return c == Wildcard
}

// Letter returns the card's letter. Only meaningful when IsLetter is true.
func (c Card) Letter() byte {
	return c[0]
}

// Frequency returns the letter frequency of a letter card
func (c Card) Frequency() (float64, bool) {
	if len(c) != 1 {
		return 0, false
	}
	return LetterFrequency(c[0])
}

func (c Card) String() string {
	return string(c)
}
