package api

import (
	"net/http"

	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/logger"
)

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady reports 503 while the match store is unreachable.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if s.Store != nil {
		if err := s.Store.Ping(ctx); err != nil {
			logger.FromContext(ctx).Warn("readiness check failed - database: %v", err)
			handleError(w, r, errors.NewUpstreamUnavailableError(err))
			return
		}
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
