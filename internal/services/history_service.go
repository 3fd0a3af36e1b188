package services

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/history"
	"github.com/vytor/flexstats/internal/logger"
	"github.com/vytor/flexstats/internal/models"
	"github.com/vytor/flexstats/internal/repository"
	"github.com/vytor/flexstats/internal/scoring"
)

// HistoryService builds a player's history from the match store.
type HistoryService interface {
	// PlayerHistory ranks the player's last window matches and aggregates
	// them. A zero window uses the configured default.
	PlayerHistory(ctx context.Context, player models.PlayerIdentity, window int) (models.PlayerHistory, error)
}

type historyService struct {
	repo          repository.MatchRepository
	ranker        *scoring.Ranker
	defaultWindow int
	timeout       time.Duration
}

// NewHistoryService creates a new HistoryService. A positive timeout bounds
// every store read.
func NewHistoryService(repo repository.MatchRepository, ranker *scoring.Ranker, defaultWindow int, timeout time.Duration) HistoryService {
	if defaultWindow <= 0 {
		defaultWindow = history.DefaultWindow
	}
	return &historyService{
		repo:          repo,
		ranker:        ranker,
		defaultWindow: defaultWindow,
		timeout:       timeout,
	}
}

func (s *historyService) PlayerHistory(ctx context.Context, player models.PlayerIdentity, window int) (models.PlayerHistory, error) {
	if player.IsZero() {
		return models.PlayerHistory{}, errors.NewInputError("player", "name is required")
	}
	window, err := history.ResolveWindow(window, s.defaultWindow)
	if err != nil {
		return models.PlayerHistory{}, err
	}

	log := logger.FromContext(ctx).WithField("player", player.String())
	log.Debug("building history: window=%d", window)

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.repo.RecentMatches(ctx, player, window)
	if err != nil {
		err = classifyStoreError(err, player, window)
		if errors.Is(err, errors.ErrCodeUpstreamUnavailable) {
			log.Error("failed to load matches: %v", err)
		} else {
			log.Debug("no history: %v", err)
		}
		return models.PlayerHistory{}, err
	}

	results := make([]models.MatchResult, 0, len(raw))
	for _, participants := range raw {
		result, err := s.ranker.Rank(participants)
		if err != nil {
			log.Warn("stored match failed validation: %v", err)
			return models.PlayerHistory{}, err
		}
		results = append(results, result)
	}

	h, err := history.New(window).Aggregate(results, player)
	if err != nil {
		log.Warn("failed to aggregate history: %v", err)
		return models.PlayerHistory{}, err
	}

	log.Debug("history built in %v: games=%d, mvp_score=%.2f", time.Since(start), h.TotalGames, h.Averages.MVPScore)
	return h, nil
}

// classifyStoreError maps store failures onto the error taxonomy. Anything
// the store does not name explicitly, including deadlines, is an upstream outage.
func classifyStoreError(err error, player models.PlayerIdentity, window int) error {
	var short *repository.InsufficientHistoryError
	switch {
	case stderrors.Is(err, repository.ErrPlayerNotFound):
		return errors.NewNotFoundError("player", player)
	case stderrors.As(err, &short):
		return errors.NewInsufficientHistoryError(player, short.Want, short.Have)
	case stderrors.Is(err, repository.ErrInsufficientHistory):
		return errors.NewInsufficientHistoryError(player, window, 0)
	}
	if errors.CodeOf(err) != "" {
		return err
	}
	return errors.NewUpstreamUnavailableError(err)
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
