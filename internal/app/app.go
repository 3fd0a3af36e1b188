// Package app wires the match store, scoring policy and services from a Config.
package app

import (
	"fmt"

	"github.com/vytor/flexstats/internal/config"
	"github.com/vytor/flexstats/internal/db"
	"github.com/vytor/flexstats/internal/logger"
	"github.com/vytor/flexstats/internal/repository"
	"github.com/vytor/flexstats/internal/repository/sqlite"
	"github.com/vytor/flexstats/internal/scoring"
	"github.com/vytor/flexstats/internal/services"
	"github.com/vytor/flexstats/internal/squad"
)

// App holds everything a front end (HTTP or CLI) needs.
type App struct {
	DB          *db.DB
	Store       repository.MatchRepository
	Ranker      *scoring.Ranker
	Matches     services.MatchService
	Histories   services.HistoryService
	Comparisons services.ComparisonService
}

// New opens the store and builds the services. Close the App when done.
func New(cfg config.Config) (*App, error) {
	log := logger.Default().WithPrefix("app")

	weights, err := scoring.LoadWeights(cfg.WeightsPath)
	if err != nil {
		return nil, fmt.Errorf("load MVP weights: %w", err)
	}
	scorer, err := scoring.NewScorer(weights)
	if err != nil {
		return nil, fmt.Errorf("MVP weights: %w", err)
	}
	if cfg.WeightsPath != "" {
		log.Info("using MVP weights from %s", cfg.WeightsPath)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := sqlite.NewMatchRepository(database.DB)
	ranker := scoring.NewRanker(scorer, scoring.WithAllowedSizes(cfg.MatchSizes...))
	histories := services.NewHistoryService(store, ranker, cfg.HistoryWindow, cfg.FetchTimeout)

	return &App{
		DB:          database,
		Store:       store,
		Ranker:      ranker,
		Matches:     services.NewMatchService(store, ranker),
		Histories:   histories,
		Comparisons: services.NewComparisonService(histories, squad.New(cfg.MaxSquadSize, cfg.SquadConcurrency), cfg.HistoryWindow, cfg.FetchTimeout),
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
