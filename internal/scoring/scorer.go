package scoring

import (
	"github.com/vytor/flexstats/internal/models"
)

// Scorer computes MVP scores from a fixed weight policy.
type Scorer struct {
	weights Weights
}

// NewScorer validates w and returns a Scorer holding its own copy.
func NewScorer(w Weights) (*Scorer, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{weights: w.clone()}, nil
}

// DefaultScorer scores with DefaultWeights.
func DefaultScorer() *Scorer {
	return &Scorer{weights: DefaultWeights()}
}

// Weights returns a copy of the policy in use.
func (s *Scorer) Weights() Weights {
	return s.weights.clone()
}

// Score returns the participant's MVP score rounded to 2 decimal places.
// Per-minute values are divided by 10 so they sit on the same scale as the
// other terms.
func (s *Scorer) Score(r models.ParticipantRecord, m models.DerivedMetrics) float64 {
	var total float64
	for _, metric := range Metrics {
		w := s.weights[metric]
		if w == 0 {
			continue
		}
		total += w * feature(metric, r, m)
	}
	return round2(total)
}

func feature(metric Metric, r models.ParticipantRecord, m models.DerivedMetrics) float64 {
	switch metric {
	case MetricKDA:
		return m.KDA
	case MetricDamage:
		return m.DamagePerMinute / 10
	case MetricGold:
		return m.GoldPerMinute / 10
	case MetricVision:
		return float64(r.VisionScore)
	case MetricKillParticipation:
		return float64(m.KillParticipation)
	case MetricWin:
		if r.Win {
			return 1
		}
	case MetricLoss:
		if !r.Win {
			return -1
		}
	}
	return 0
}
