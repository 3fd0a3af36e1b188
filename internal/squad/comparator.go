// Package squad compares up to five players by their aggregated histories.
package squad

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/logger"
	"github.com/vytor/flexstats/internal/models"
)

// MaxPlayers is the largest squad that can be compared.
const MaxPlayers = 5

// BuildFunc produces one player's history. It is called concurrently, once
// per player, and must not share mutable state between calls.
type BuildFunc func(ctx context.Context, player models.PlayerIdentity) (models.PlayerHistory, error)

// Comparator orders player histories by an aggregate key.
type Comparator struct {
	MaxPlayers  int
	Concurrency int
	Key         models.ComparisonKey
}

// New returns a Comparator ordering by average MVP score.
func New(maxPlayers, concurrency int) Comparator {
	if maxPlayers <= 0 || maxPlayers > MaxPlayers {
		maxPlayers = MaxPlayers
	}
	if concurrency <= 0 {
		concurrency = maxPlayers
	}
	return Comparator{MaxPlayers: maxPlayers, Concurrency: concurrency, Key: models.KeyMVPScore}
}

// WithKey returns a copy of c ordering by key. An empty key keeps the current one.
func (c Comparator) WithKey(key models.ComparisonKey) Comparator {
	if key != "" {
		c.Key = key
	}
	return c
}

// Validate checks a request before any history is built.
func (c Comparator) Validate(players []models.PlayerIdentity) error {
	limit := c.MaxPlayers
	if limit <= 0 {
		limit = MaxPlayers
	}
	switch {
	case len(players) == 0:
		return errors.NewInputError("players", "at least one player is required")
	case len(players) > limit:
		return errors.NewInputError("players", fmt.Sprintf("at most %d players can be compared, got %d", limit, len(players)))
	}
	for i, p := range players {
		if p.IsZero() {
			return errors.NewInputError("players", fmt.Sprintf("player %d has no name", i+1))
		}
	}
	if _, ok := c.Key.Value(models.Averages{}); !ok {
		return errors.NewInputError("key", fmt.Sprintf("unknown comparison key %q", c.Key))
	}
	return nil
}

// Compare builds every player's history in parallel and orders the results
// by Key descending, then win rate descending, then input order.
//
// If any player fails the whole comparison fails; the error names the first
// failing player in input order and keeps that failure's kind.
func (c Comparator) Compare(ctx context.Context, players []models.PlayerIdentity, build BuildFunc) (models.ComparisonResult, error) {
	if err := c.Validate(players); err != nil {
		return models.ComparisonResult{}, err
	}

	log := logger.FromContext(ctx).WithPrefix("squad")
	log.Debug("comparing %d players by %s", len(players), c.key())
	start := time.Now()

	histories := make([]models.PlayerHistory, len(players))
	failures := make([]error, len(players))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency(len(players)))
	for i, p := range players {
		g.Go(func() error {
			h, err := build(gctx, p)
			if err != nil {
				failures[i] = err
				return err
			}
			histories[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		idx := firstFailure(ctx, failures)
		log.Warn("comparison failed on %s after %v: %v", players[idx], time.Since(start), failures[idx])
		return models.ComparisonResult{}, errors.WithPlayer(failures[idx], players[idx])
	}

	type entry struct {
		history models.PlayerHistory
		value   float64
	}
	entries := make([]entry, len(histories))
	for i, h := range histories {
		v, _ := c.key().Value(h.Averages)
		entries[i] = entry{history: h, value: v}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].history.Averages.WinRate > entries[j].history.Averages.WinRate
	})

	ordered := make([]models.PlayerHistory, len(entries))
	for i, e := range entries {
		ordered[i] = e.history
	}

	log.Debug("compared %d players in %v", len(players), time.Since(start))
	return models.ComparisonResult{
		Players:         ordered,
		ComparedPlayers: len(ordered),
		Key:             c.key(),
	}, nil
}

func (c Comparator) key() models.ComparisonKey {
	if c.Key == "" {
		return models.KeyMVPScore
	}
	return c.Key
}

func (c Comparator) concurrency(n int) int {
	if c.Concurrency <= 0 || c.Concurrency > n {
		return n
	}
	return c.Concurrency
}

// firstFailure picks the first failure in input order that was not merely a
// sibling's cancellation. When the caller's own context ended, every failure
// counts.
func firstFailure(parent context.Context, failures []error) int {
	first := -1
	for i, err := range failures {
		if err == nil {
			continue
		}
		if first < 0 {
			first = i
		}
		if parent.Err() == nil && stderrors.Is(err, context.Canceled) {
			continue
		}
		return i
	}
	return first
}
