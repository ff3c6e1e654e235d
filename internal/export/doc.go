// Package export serializes validated flashcard sets into CSV, JSON, or
// Anki-compatible payloads, built atomically in memory.
package export
