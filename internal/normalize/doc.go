// Package normalize enforces the flashcard schema invariants on parsed
// candidates: trimming, defaulting, and deduplication, in a fixed order.
package normalize
