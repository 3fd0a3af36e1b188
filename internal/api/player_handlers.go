package api

import (
	"net/http"

	"github.com/vytor/flexstats/internal/models"
)

type historyRequest struct {
	Player models.PlayerIdentity `json:"player"`
	Window int                   `json:"window,omitempty"`
}

type compareRequest struct {
	Players []models.PlayerIdentity `json:"players"`
	Window  int                     `json:"window,omitempty"`
	Key     models.ComparisonKey    `json:"key,omitempty"`
}

func (s *Server) handlePlayerHistory(w http.ResponseWriter, r *http.Request) {
	var req historyRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	h, err := s.Histories.PlayerHistory(r.Context(), req.Player, req.Window)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, h)
}

func (s *Server) handleCompareSquad(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Comparisons.CompareSquad(r.Context(), req.Players, req.Window, req.Key)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
