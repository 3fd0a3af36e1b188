package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/flexstats/internal/errors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Route("/api", func(r chi.Router) {
		r.Post("/matches", s.handleIngestMatch)
		r.Post("/matches/score", s.handleScoreMatch)
		r.Post("/matches/score/riot", s.handleScoreRiotMatch)
		r.Post("/players/history", s.handlePlayerHistory)
		r.Post("/squad/compare", s.handleCompareSquad)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewNotFoundError("route", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, &errors.AppError{
			Code:    errors.ErrCodeInput,
			Message: r.Method + " is not allowed on " + r.URL.Path,
			Status:  http.StatusMethodNotAllowed,
		})
	})
	return r
}
