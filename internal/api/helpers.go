package api

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/logger"
	"github.com/vytor/flexstats/internal/models"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

func (s *Server) body(w http.ResponseWriter, r *http.Request) io.Reader {
	limit := s.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	return http.MaxBytesReader(w, r.Body, limit)
}

// decodeJSON reads exactly one JSON document into v.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(s.body(w, r))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.NewInputError("body", fmt.Sprintf("larger than %d bytes", tooLarge.Limit))
		}
		if stderrors.Is(err, io.EOF) {
			return errors.NewInputError("body", "empty request body")
		}
		return errors.NewInputError("body", err.Error())
	}
	if dec.More() {
		return errors.NewInputError("body", "trailing data after JSON document")
	}
	return nil
}

// playerParam parses an optional name#tag query parameter.
func playerParam(r *http.Request, key string) (*models.PlayerIdentity, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	p, err := models.ParsePlayerIdentity(raw)
	if err != nil {
		return nil, errors.NewInputError(key, err.Error())
	}
	return &p, nil
}
