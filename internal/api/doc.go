// Package api contains the HTTP handlers for the deck generation service:
// creating decks from uploaded documents or pasted text, fetching stored
// decks, and exporting them in interchange formats. Handlers translate
// pipeline errors into HTTP status codes via MapErrorToStatusCode and never
// leak internal error detail to clients.
package api
