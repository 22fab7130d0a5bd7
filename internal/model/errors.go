package model

import "errors"

// Common errors used across the application
var (
	// Card and hand errors
	ErrMalformedCard = errors.New("malformed card")
	ErrEmptyHand     = errors.New("hand is empty")

	// Bot errors
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// Deck errors
	ErrDeckEmpty = errors.New("deck and discard pile are empty")

	// Match errors
	ErrMatchOver     = errors.New("match is already over")
	ErrNotPlayerTurn = errors.New("not this player's turn")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrNoWordOfLength      = errors.New("no dictionary word of requested length")
)
