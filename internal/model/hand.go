package model

import (
	"slices"
	"strings"
)

// Hand is an ordered collection of cards held by one player.
// Order is insertion order unless the caller re-sorts it.
type Hand struct {
	cards []Card
}

// NewHand creates a hand from the given cards, lowercasing each one
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, len(cards))}
	for _, c := range cards {
		h.cards = append(h.cards, Card(strings.ToLower(string(c))))
	}
	return h
}

// Add appends a card to the end of the hand
func (h *Hand) Add(c Card) {
	h.cards = append(h.cards, Card(strings.ToLower(string(c))))
}

// Remove removes the first occurrence of the card, case-insensitively.
// It reports whether a card was removed.
func (h *Hand) Remove(c Card) bool {
	target := Card(strings.ToLower(string(c)))
	for i, held := range h.cards {
		if held == target {
			h.RemoveAt(i)
			return true
		}
	}
	return false
}

// RemoveAt removes and returns the card at index i
func (h *Hand) RemoveAt(i int) Card {
	c := h.cards[i]
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return c
}

// Contains reports whether the hand holds at least one copy of the card
func (h *Hand) Contains(c Card) bool {
	target := Card(strings.ToLower(string(c)))
	for _, held := range h.cards {
		if held == target {
			return true
		}
	}
	return false
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.cards)
}

// IsEmpty returns true when the hand holds no cards
func (h *Hand) IsEmpty() bool {
	return len(h.cards) == 0
}

// Cards returns a copy of the cards in hand order
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Strings returns the cards as plain strings, for display
func (h *Hand) Strings() []string {
	out := make([]string, len(h.cards))
	for i, c := range h.cards {
		out[i] = string(c)
	}
	return out
}

// Sort orders the hand alphabetically, wildcards first
func (h *Hand) Sort() {
	slices.Sort(h.cards)
}
