package services

import (
	"context"
	"time"

	"github.com/vytor/flexstats/internal/history"
	"github.com/vytor/flexstats/internal/logger"
	"github.com/vytor/flexstats/internal/models"
	"github.com/vytor/flexstats/internal/squad"
)

// ComparisonService compares a squad of players side by side.
type ComparisonService interface {
	CompareSquad(ctx context.Context, players []models.PlayerIdentity, window int, key models.ComparisonKey) (models.ComparisonResult, error)
}

type comparisonService struct {
	histories     HistoryService
	comparator    squad.Comparator
	defaultWindow int
	timeout       time.Duration
}

// NewComparisonService creates a new ComparisonService. The timeout bounds
// the whole fan-out.
func NewComparisonService(histories HistoryService, comparator squad.Comparator, defaultWindow int, timeout time.Duration) ComparisonService {
	if defaultWindow <= 0 {
		defaultWindow = history.DefaultWindow
	}
	return &comparisonService{
		histories:     histories,
		comparator:    comparator,
		defaultWindow: defaultWindow,
		timeout:       timeout,
	}
}

func (s *comparisonService) CompareSquad(ctx context.Context, players []models.PlayerIdentity, window int, key models.ComparisonKey) (models.ComparisonResult, error) {
	window, err := history.ResolveWindow(window, s.defaultWindow)
	if err != nil {
		return models.ComparisonResult{}, err
	}

	cmp := s.comparator.WithKey(key)
	if err := cmp.Validate(players); err != nil {
		return models.ComparisonResult{}, err
	}

	log := logger.FromContext(ctx).WithFields(map[string]any{
		"players": len(players),
		"window":  window,
	})
	log.Info("comparing squad")

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	result, err := cmp.Compare(ctx, players, func(ctx context.Context, p models.PlayerIdentity) (models.PlayerHistory, error) {
		return s.histories.PlayerHistory(ctx, p, window)
	})
	if err != nil {
		log.Warn("squad comparison failed: %v", err)
		return models.ComparisonResult{}, err
	}

	log.Info("squad compared: best=%s", result.Players[0].Player)
	return result, nil
}
