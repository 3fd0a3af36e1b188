package scoring

import (
	"fmt"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Metric names one weighted term of the MVP score.
type Metric string

const (
	MetricKDA               Metric = "kda"
	MetricDamage            Metric = "damage"
	MetricGold              Metric = "gold"
	MetricVision            Metric = "vision"
	MetricKillParticipation Metric = "kill_participation"
	MetricWin               Metric = "win"
	MetricLoss              Metric = "loss"
)

// Metrics lists every weightable metric in evaluation order.
var Metrics = []Metric{
	MetricKDA,
	MetricDamage,
	MetricGold,
	MetricVision,
	MetricKillParticipation,
	MetricWin,
	MetricLoss,
}

// Weights maps metrics to non-negative weights. Missing metrics weigh 0.
// MetricWin is added on a win and MetricLoss subtracted on a loss.
type Weights map[Metric]float64

// DefaultWeights mirrors the emphasis of the dashboard the scores feed:
// kill participation and KDA dominate, gold and damage follow, then vision.
func DefaultWeights() Weights {
	return Weights{
		MetricKDA:               30,
		MetricDamage:            5,
		MetricGold:              15,
		MetricVision:            10,
		MetricKillParticipation: 25,
		MetricWin:               50,
		MetricLoss:              0,
	}
}

// Validate rejects unknown metrics, negative or non-finite weights, and a
// policy where every weight is zero.
func (w Weights) Validate() error {
	known := make(map[Metric]bool, len(Metrics))
	for _, m := range Metrics {
		known[m] = true
	}

	names := make([]string, 0, len(w))
	for m := range w {
		names = append(names, string(m))
	}
	sort.Strings(names)

	positive := false
	for _, name := range names {
		m := Metric(name)
		v := w[m]
		if !known[m] {
			return fmt.Errorf("unknown metric %q", name)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weight for %s must be finite", name)
		}
		if v < 0 {
			return fmt.Errorf("weight for %s must not be negative, got %g", name, v)
		}
		if v > 0 {
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("at least one weight must be positive")
	}
	return nil
}

func (w Weights) clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// ParseWeights decodes a YAML mapping of metric name to weight, e.g.
//
//	kda: 30
//	kill_participation: 25
//
// The result replaces the defaults entirely.
func ParseWeights(data []byte) (Weights, error) {
	var raw map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse weights: %w", err)
	}
	w := make(Weights, len(raw))
	for k, v := range raw {
		w[Metric(k)] = v
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("parse weights: %w", err)
	}
	return w, nil
}

// LoadWeights reads a YAML weight policy from path. An empty path yields
// DefaultWeights.
func LoadWeights(path string) (Weights, error) {
	if path == "" {
		return DefaultWeights(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights %s: %w", path, err)
	}
	return ParseWeights(data)
}
