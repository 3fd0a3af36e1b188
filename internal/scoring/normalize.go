// Package scoring turns raw match telemetry into derived metrics, MVP scores
// and dense per-match rankings. Everything here is pure and synchronous.
package scoring

import (
	"fmt"
	"math"

	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/models"
)

// Normalize derives KDA, gold and damage per minute, and kill participation.
// teamTotalKills is the kill sum of the participant's team.
//
// A non-positive duration is rejected rather than producing Inf or NaN.
func Normalize(r models.ParticipantRecord, teamTotalKills int) (models.DerivedMetrics, error) {
	if r.DurationSeconds <= 0 {
		return models.DerivedMetrics{}, errors.NewInputError("gameDuration",
			fmt.Sprintf("must be positive, got %d for %s in match %s", r.DurationSeconds, r.Player, r.MatchID))
	}
	if err := checkCounters(r); err != nil {
		return models.DerivedMetrics{}, err
	}
	if teamTotalKills < 0 {
		return models.DerivedMetrics{}, errors.NewInputError("teamTotalKills", fmt.Sprintf("must not be negative, got %d", teamTotalKills))
	}

	minutes := float64(r.DurationSeconds) / 60
	takedowns := float64(r.Kills + r.Assists)

	kp := math.Round(takedowns / float64(max(teamTotalKills, 1)) * 100)
	kp = math.Min(math.Max(kp, 0), 100)

	return models.DerivedMetrics{
		KDA:               round2(takedowns / float64(max(r.Deaths, 1))),
		GoldPerMinute:     round2(float64(r.Gold) / minutes),
		DamagePerMinute:   round2(float64(r.DamageDealt) / minutes),
		KillParticipation: int(kp),
	}, nil
}

func checkCounters(r models.ParticipantRecord) error {
	counters := []struct {
		name  string
		value int
	}{
		{"kills", r.Kills},
		{"deaths", r.Deaths},
		{"assists", r.Assists},
		{"cs", r.CS},
		{"gold", r.Gold},
		{"damage", r.DamageDealt},
		{"damageTaken", r.DamageTaken},
		{"visionScore", r.VisionScore},
	}
	for _, c := range counters {
		if c.value < 0 {
			return errors.NewInputError(c.name, fmt.Sprintf("must not be negative, got %d for %s", c.value, r.Player))
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
