package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cardsmithhq/cardsmith/internal/api/shared"
	"github.com/cardsmithhq/cardsmith/internal/domain"
	"github.com/cardsmithhq/cardsmith/internal/export"
	"github.com/cardsmithhq/cardsmith/internal/extract"
	"github.com/cardsmithhq/cardsmith/internal/prompt"
	"github.com/cardsmithhq/cardsmith/internal/service"
)

// maxUploadBytes bounds document uploads before extraction even starts.
const maxUploadBytes = 20 << 20 // 20 MiB

// CreateDeckRequest is the JSON request body for generating a deck from
// pasted text.
type CreateDeckRequest struct {
	Text           string `json:"text"            validate:"required,min=1"`
	CardCount      int    `json:"card_count"      validate:"gte=0"`
	TopicHint      string `json:"topic_hint"`
	DifficultyHint string `json:"difficulty_hint"`
}

// CardResponse mirrors domain.Card for API responses.
type CardResponse struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
	Topic      string `json:"topic"`
}

// TopicSummary reports how many cards landed in each topic.
type TopicSummary struct {
	Topic     string `json:"topic"`
	CardCount int    `json:"card_count"`
}

// DeckResponse represents the response data for a generated deck.
type DeckResponse struct {
	ID           string         `json:"id"`
	Cards        []CardResponse `json:"cards"`
	SkippedLines int            `json:"skipped_lines"`
	SourceChars  int            `json:"source_chars"`
	Topics       []TopicSummary `json:"topics"`
	CreatedAt    time.Time      `json:"created_at"`
}

// DeckHandler handles deck-related HTTP requests
type DeckHandler struct {
	deckService *service.DeckService
	logger      *slog.Logger
}

// NewDeckHandler creates a new DeckHandler
func NewDeckHandler(deckService *service.DeckService, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckHandler{
		deckService: deckService,
		logger:      logger,
	}
}

// CreateDeck handles POST /api/decks requests. It accepts either a
// multipart form (fields: file, type, card_count, topic_hint,
// difficulty_hint) or a JSON body with pasted text.
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	payload, format, params, err := h.readCreateRequest(w, r)
	if err != nil {
		// readCreateRequest has already written the response
		return
	}

	deck, err := h.deckService.GenerateDeck(r.Context(), payload, format, params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, deckToResponse(deck))
}

// GetDeck handles GET /api/decks/{id} requests
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deckID(w, r)
	if !ok {
		return
	}

	deck, err := h.deckService.GetDeck(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deckToResponse(deck))
}

// ExportDeck handles GET /api/decks/{id}/export?format=csv|json|anki
// requests. The full payload is constructed in memory and written once.
func (h *DeckHandler) ExportDeck(w http.ResponseWriter, r *http.Request) {
	id, ok := h.deckID(w, r)
	if !ok {
		return
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	payload, err := h.deckService.ExportDeck(r.Context(), id, format)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	filename := fmt.Sprintf("flashcards-%s.%s", id, payload.Extension)
	w.Header().Set("Content-Type", payload.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(payload.Data); err != nil {
		h.logger.Error("failed to write export payload", "error", err, "deck_id", id)
	}
}

// deckID parses the {id} route parameter, writing a 400 response on failure.
func (h *DeckHandler) deckID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid deck ID")
		return uuid.Nil, false
	}
	return id, true
}

// readCreateRequest extracts the document payload, declared format, and
// generation parameters from either request encoding. On failure it writes
// the error response and returns a non-nil error.
func (h *DeckHandler) readCreateRequest(
	w http.ResponseWriter,
	r *http.Request,
) ([]byte, extract.Format, prompt.Params, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return h.readMultipart(w, r)
	}

	var req CreateDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, "", prompt.Params{}, err
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return nil, "", prompt.Params{}, err
	}

	params, err := h.buildParams(w, r, req.CardCount, req.TopicHint, req.DifficultyHint)
	if err != nil {
		return nil, "", prompt.Params{}, err
	}

	return []byte(req.Text), extract.FormatText, params, nil
}

// readMultipart handles file uploads. The declared type comes from the
// "type" field when present, otherwise from the file extension.
func (h *DeckHandler) readMultipart(
	w http.ResponseWriter,
	r *http.Request,
) ([]byte, extract.Format, prompt.Params, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return nil, "", prompt.Params{}, err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing file field")
		return nil, "", prompt.Params{}, err
	}
	defer func() { _ = file.Close() }()

	payload, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Failed to read uploaded file")
		return nil, "", prompt.Params{}, err
	}
	if len(payload) > maxUploadBytes {
		err := errors.New("upload exceeds size limit")
		shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge, "Uploaded file is too large")
		return nil, "", prompt.Params{}, err
	}

	declared := r.FormValue("type")
	if declared == "" {
		declared = strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	}
	format, ok := extract.ParseFormat(declared)
	if !ok {
		err := fmt.Errorf("%w: %q", extract.ErrUnsupportedFormat, declared)
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return nil, "", prompt.Params{}, err
	}

	count := 0
	if raw := r.FormValue("card_count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "card_count must be an integer")
			return nil, "", prompt.Params{}, err
		}
	}

	params, err := h.buildParams(w, r, count, r.FormValue("topic_hint"), r.FormValue("difficulty_hint"))
	if err != nil {
		return nil, "", prompt.Params{}, err
	}

	return payload, format, params, nil
}

// buildParams validates the shared generation parameters. A zero count is
// passed through; the service applies the configured default.
func (h *DeckHandler) buildParams(
	w http.ResponseWriter,
	r *http.Request,
	count int,
	topicHint, difficultyHint string,
) (prompt.Params, error) {
	params := prompt.Params{
		CardCount: count,
		TopicHint: topicHint,
	}

	if difficultyHint != "" {
		difficulty, ok := domain.ParseDifficulty(difficultyHint)
		if !ok {
			err := fmt.Errorf("%w: %q", domain.ErrInvalidDifficulty, difficultyHint)
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"difficulty_hint must be one of Easy, Medium, Hard")
			return prompt.Params{}, err
		}
		params.DifficultyHint = difficulty
	}

	return params, nil
}

// deckToResponse converts a domain.Deck to a DeckResponse
func deckToResponse(deck *domain.Deck) DeckResponse {
	cards := make([]CardResponse, len(deck.Cards))
	for i, card := range deck.Cards {
		cards[i] = CardResponse{
			Question:   card.Question,
			Answer:     card.Answer,
			Difficulty: string(card.Difficulty),
			Topic:      card.Topic,
		}
	}

	topics, grouped := domain.GroupByTopic(deck.Cards)
	summaries := make([]TopicSummary, len(topics))
	for i, topic := range topics {
		summaries[i] = TopicSummary{Topic: topic, CardCount: len(grouped[topic])}
	}

	return DeckResponse{
		ID:           deck.ID.String(),
		Cards:        cards,
		SkippedLines: deck.SkippedLines,
		SourceChars:  deck.SourceChars,
		Topics:       summaries,
		CreatedAt:    deck.CreatedAt,
	}
}
