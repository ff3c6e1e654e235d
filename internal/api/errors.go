package api

import (
	"errors"
	"net/http"

	"github.com/cardsmithhq/cardsmith/internal/export"
	"github.com/cardsmithhq/cardsmith/internal/extract"
	"github.com/cardsmithhq/cardsmith/internal/generation"
	"github.com/cardsmithhq/cardsmith/internal/normalize"
	"github.com/cardsmithhq/cardsmith/internal/prompt"
	"github.com/cardsmithhq/cardsmith/internal/store"
)

// MapErrorToStatusCode maps pipeline errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, extract.ErrUnsupportedFormat),
		errors.Is(err, export.ErrUnsupportedFormat),
		errors.Is(err, prompt.ErrInvalidCardCount),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Payload too large
	case errors.Is(err, prompt.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge

	// The document or the generated output was unusable
	case errors.Is(err, extract.ErrExtractionFailed),
		errors.Is(err, prompt.ErrEmptyText),
		errors.Is(err, normalize.ErrEmptyResultSet),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	// Not found errors
	case errors.Is(err, store.ErrDeckNotFound):
		return http.StatusNotFound

	// Upstream generation failures
	case errors.Is(err, generation.ErrGenerationTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrTransientFailure):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type, detailed enough to surface directly to an end user.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return "Unsupported document format: upload a PDF or plain-text file"

	case errors.Is(err, extract.ErrExtractionFailed):
		return "The document could not be read; it may be corrupt or contain no text"

	case errors.Is(err, prompt.ErrInputTooLarge):
		return "The document text exceeds the size limit for one generation"

	case errors.Is(err, prompt.ErrEmptyText):
		return "The document contains no usable text"

	case errors.Is(err, prompt.ErrInvalidCardCount):
		return "Card count must be at least 1"

	case errors.Is(err, generation.ErrGenerationTimeout):
		return "Flashcard generation timed out; try again or use a smaller document"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The generation service declined this content"

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrTransientFailure):
		return "The generation service failed; try again shortly"

	case errors.Is(err, normalize.ErrEmptyResultSet):
		return "No valid flashcards could be generated from this content"

	case errors.Is(err, export.ErrUnsupportedFormat):
		return "Unsupported export format: use csv, json, or anki"

	case errors.Is(err, store.ErrDeckNotFound):
		return "Deck not found; it may have expired"

	default:
		return "An unexpected error occurred"
	}
}
