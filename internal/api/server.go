package api

import (
	"github.com/vytor/flexstats/internal/repository"
	"github.com/vytor/flexstats/internal/services"
)

// DefaultMaxBodyBytes caps request bodies. A ranked match-v5 document is
// well under 200KB.
const DefaultMaxBodyBytes = 1 << 20

type Server struct {
	Matches      services.MatchService
	Histories    services.HistoryService
	Comparisons  services.ComparisonService
	Store        repository.MatchRepository
	MaxBodyBytes int64
}
