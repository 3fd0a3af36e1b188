package services

import (
	"context"

	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/logger"
	"github.com/vytor/flexstats/internal/models"
	"github.com/vytor/flexstats/internal/repository"
	"github.com/vytor/flexstats/internal/scoring"
)

// MatchService scores single matches and feeds the match store.
type MatchService interface {
	ScoreMatch(ctx context.Context, participants []models.ParticipantRecord, requested *models.PlayerIdentity) (models.MatchResult, error)
	IngestMatch(ctx context.Context, participants []models.ParticipantRecord) (models.MatchResult, error)
}

type matchService struct {
	repo   repository.MatchRepository
	ranker *scoring.Ranker
}

// NewMatchService creates a new MatchService
func NewMatchService(repo repository.MatchRepository, ranker *scoring.Ranker) MatchService {
	return &matchService{repo: repo, ranker: ranker}
}

func (s *matchService) ScoreMatch(ctx context.Context, participants []models.ParticipantRecord, requested *models.PlayerIdentity) (models.MatchResult, error) {
	log := logger.FromContext(ctx)
	log.Debug("scoring match: participants=%d", len(participants))

	var (
		result models.MatchResult
		err    error
	)
	if requested != nil && !requested.IsZero() {
		result, err = s.ranker.RankFor(participants, *requested)
	} else {
		result, err = s.ranker.Rank(participants)
	}
	if err != nil {
		log.Debug("match rejected: %v", err)
		return models.MatchResult{}, err
	}

	log.Debug("match scored: match_id=%s, mvp=%s", result.MatchID, result.Participants[0].Player)
	return result, nil
}

// IngestMatch ranks the match to validate it, then stores the raw records.
func (s *matchService) IngestMatch(ctx context.Context, participants []models.ParticipantRecord) (models.MatchResult, error) {
	log := logger.FromContext(ctx)

	result, err := s.ranker.Rank(participants)
	if err != nil {
		log.Debug("refusing to ingest invalid match: %v", err)
		return models.MatchResult{}, err
	}

	log = log.WithField("match_id", result.MatchID)
	if err := s.repo.InsertMatch(ctx, participants); err != nil {
		log.Error("failed to store match: %v", err)
		return models.MatchResult{}, errors.NewUpstreamUnavailableError(err)
	}

	log.Info("match ingested: participants=%d", result.Size())
	return result, nil
}
