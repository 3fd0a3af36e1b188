// Package history aggregates one player's recent ranked matches into window
// averages and rank-bucket counts.
package history

import (
	"fmt"
	"math"

	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/models"
)

// DefaultWindow is the number of recent matches averaged when none is configured.
const DefaultWindow = 5

// MaxWindow bounds how many matches one request may average.
const MaxWindow = 20

// ResolveWindow applies def to an unset (zero) window and rejects values
// outside 1..MaxWindow.
func ResolveWindow(window, def int) (int, error) {
	if window == 0 {
		window = def
	}
	if window < 1 || window > MaxWindow {
		return 0, errors.NewInputError("window", fmt.Sprintf("must be between 1 and %d, got %d", MaxWindow, window))
	}
	return window, nil
}

// Aggregator computes a PlayerHistory over at most Window matches.
type Aggregator struct {
	Window int
}

// New returns an Aggregator; a non-positive window falls back to DefaultWindow.
func New(window int) *Aggregator {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Aggregator{Window: window}
}

type totals struct {
	kills, deaths, assists float64
	kda                    float64
	cs, gold, damage       float64
	vision, mvp            float64
	wins                   int
}

// Aggregate summarizes player's performance over matches, which must be
// ordered most recent first. Only the first Window matches are used.
//
// The player has to appear in every match of the window; a gap means the
// data source handed over the wrong matches and is reported as a data
// integrity error instead of being skipped.
func (a *Aggregator) Aggregate(matches []models.MatchResult, player models.PlayerIdentity) (models.PlayerHistory, error) {
	if player.IsZero() {
		return models.PlayerHistory{}, errors.NewInputError("player", "name is required")
	}
	if len(matches) == 0 {
		return models.PlayerHistory{}, errors.NewInputError("matches", "window is empty for "+player.String())
	}

	window := a.Window
	if window <= 0 {
		window = DefaultWindow
	}
	if len(matches) > window {
		matches = matches[:window]
	}

	var (
		sum  totals
		perf models.Performance
		out  = make([]models.MatchResult, 0, len(matches))
	)
	for _, m := range matches {
		withPlayer, ok := m.WithRequested(player)
		if !ok {
			return models.PlayerHistory{}, errors.NewDataIntegrityError("player %s missing from match %s", player, m.MatchID)
		}
		p := withPlayer.Requested

		sum.kills += float64(p.Kills)
		sum.deaths += float64(p.Deaths)
		sum.assists += float64(p.Assists)
		sum.kda += float64(p.Kills+p.Assists) / float64(max(p.Deaths, 1))
		sum.cs += float64(p.CS)
		sum.gold += float64(p.Gold)
		sum.damage += float64(p.DamageDealt)
		sum.vision += float64(p.VisionScore)
		sum.mvp += p.MVPScore
		if p.Win {
			sum.wins++
		}

		if p.Rank == 1 {
			perf.MVPCount++
		}
		if p.Rank <= 3 {
			perf.Top3Count++
		}
		if p.Rank == withPlayer.MaxRank() {
			perf.TrollCount++
		}

		out = append(out, withPlayer)
	}

	n := float64(len(out))
	return models.PlayerHistory{
		Player:  player,
		Matches: out,
		Averages: models.Averages{
			Kills:       roundTo(sum.kills/n, 1),
			Deaths:      roundTo(sum.deaths/n, 1),
			Assists:     roundTo(sum.assists/n, 1),
			KDA:         roundTo(sum.kda/n, 2),
			CS:          roundTo(sum.cs/n, 1),
			Gold:        roundTo(sum.gold/n, 0),
			Damage:      roundTo(sum.damage/n, 0),
			VisionScore: roundTo(sum.vision/n, 1),
			MVPScore:    roundTo(sum.mvp/n, 2),
			WinRate:     roundTo(100*float64(sum.wins)/n, 1),
		},
		Performance: perf,
		TotalGames:  len(out),
	}, nil
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
