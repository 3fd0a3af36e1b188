package api

import (
	"net/http"

	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/logger"
	"github.com/vytor/flexstats/internal/models"
	"github.com/vytor/flexstats/internal/riot"
)

type scoreRequest struct {
	Participants []models.ParticipantRecord `json:"participants"`
	Requested    *models.PlayerIdentity     `json:"requested,omitempty"`
}

func (s *Server) handleScoreMatch(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Matches.ScoreMatch(r.Context(), req.Participants, req.Requested)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleScoreRiotMatch(w http.ResponseWriter, r *http.Request) {
	requested, err := playerParam(r, "player")
	if err != nil {
		handleError(w, r, err)
		return
	}
	participants, err := s.riotParticipants(w, r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Matches.ScoreMatch(r.Context(), participants, requested)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

// handleIngestMatch stores a match. ?format=riot accepts a raw match-v5 body.
func (s *Server) handleIngestMatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var (
		participants []models.ParticipantRecord
		err          error
	)
	switch format := r.URL.Query().Get("format"); format {
	case "riot":
		participants, err = s.riotParticipants(w, r)
	case "", "records":
		var req scoreRequest
		err = s.decodeJSON(w, r, &req)
		participants = req.Participants
	default:
		log.Debug("unknown ingest format: %s", format)
		handleError(w, r, errors.NewInputError("format", "must be riot or records, got "+format))
		return
	}
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.Matches.IngestMatch(r.Context(), participants)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, result)
}

func (s *Server) riotParticipants(w http.ResponseWriter, r *http.Request) ([]models.ParticipantRecord, error) {
	match, err := riot.DecodeMatch(s.body(w, r))
	if err != nil {
		return nil, err
	}
	return match.ParticipantRecords()
}
