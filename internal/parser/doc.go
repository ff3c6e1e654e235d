// Package parser turns raw generated text into candidate flashcards. It is
// deliberately forgiving: whitespace, label casing, and trailing commentary
// from the model are tolerated, and malformed lines are counted rather than
// escalated.
package parser
