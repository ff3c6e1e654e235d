package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cardsmithhq/cardsmith/internal/api"
	apiMiddleware "github.com/cardsmithhq/cardsmith/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // trace IDs for error correlation

	deckHandler := api.NewDeckHandler(app.deckService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/decks", deckHandler.CreateDeck)
		r.Get("/decks/{id}", deckHandler.GetDeck)
		r.Get("/decks/{id}/export", deckHandler.ExportDeck)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
