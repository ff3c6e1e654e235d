// Package domain defines the core business entities and errors: flashcards,
// parsed candidates, and generated decks. Entities here carry their own
// invariants and know nothing about transport, generation, or export formats.
package domain
