package scoring

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/models"
)

// Ranker scores every participant of a match and assigns dense ranks.
type Ranker struct {
	scorer       *Scorer
	allowedSizes map[int]bool
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker)

// WithAllowedSizes restricts the participant counts Rank accepts. A match of
// any other size is treated as corrupt upstream data.
func WithAllowedSizes(sizes ...int) RankerOption {
	return func(r *Ranker) {
		if len(sizes) == 0 {
			r.allowedSizes = nil
			return
		}
		r.allowedSizes = make(map[int]bool, len(sizes))
		for _, n := range sizes {
			r.allowedSizes[n] = true
		}
	}
}

// NewRanker builds a Ranker. A nil scorer uses DefaultScorer.
func NewRanker(scorer *Scorer, opts ...RankerOption) *Ranker {
	if scorer == nil {
		scorer = DefaultScorer()
	}
	r := &Ranker{scorer: scorer}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Scorer returns the scorer in use.
func (rk *Ranker) Scorer() *Scorer {
	return rk.scorer
}

// Rank scores all participants of one match and orders them best first.
//
// Equal scores are broken by more kills, then fewer deaths, then input order,
// so identical input always yields identical ranks.
func (rk *Ranker) Rank(participants []models.ParticipantRecord) (models.MatchResult, error) {
	n := len(participants)
	if n < 1 {
		return models.MatchResult{}, errors.NewInputError("participants", "match has no participants")
	}
	if err := rk.checkMatch(participants); err != nil {
		return models.MatchResult{}, err
	}

	teamKills := make(map[int]int)
	for _, p := range participants {
		teamKills[p.TeamID] += p.Kills
	}

	scored := make([]models.ScoredParticipant, n)
	for i, p := range participants {
		metrics, err := Normalize(p, teamKills[p.TeamID])
		if err != nil {
			return models.MatchResult{}, err
		}
		p.Items = slices.Clone(p.Items)
		scored[i] = models.ScoredParticipant{
			ParticipantRecord: p,
			Metrics:           metrics,
			MVPScore:          rk.scorer.Score(p, metrics),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.MVPScore != b.MVPScore {
			return a.MVPScore > b.MVPScore
		}
		if a.Kills != b.Kills {
			return a.Kills > b.Kills
		}
		return a.Deaths < b.Deaths
	})

	for i := range scored {
		scored[i].Rank = i + 1
		scored[i].Bucket = Classify(i+1, n)
	}

	first := participants[0]
	return models.MatchResult{
		MatchID: first.MatchID,
		Meta: models.MatchMeta{
			DurationSeconds: first.DurationSeconds,
			PlayedAt:        first.PlayedAt,
			GameMode:        first.GameMode,
			QueueID:         first.QueueID,
		},
		Participants: scored,
	}, nil
}

// RankFor ranks the match and points Requested at player. The player must
// have taken part.
func (rk *Ranker) RankFor(participants []models.ParticipantRecord, player models.PlayerIdentity) (models.MatchResult, error) {
	result, err := rk.Rank(participants)
	if err != nil {
		return models.MatchResult{}, err
	}
	withPlayer, ok := result.WithRequested(player)
	if !ok {
		return models.MatchResult{}, errors.NewInputError("requested",
			fmt.Sprintf("player %s did not play in match %s", player, result.MatchID))
	}
	return withPlayer, nil
}

func (rk *Ranker) checkMatch(participants []models.ParticipantRecord) error {
	n := len(participants)
	first := participants[0]
	matchID := first.MatchID

	if strings.TrimSpace(matchID) == "" {
		return errors.NewInputError("matchId", "match id is required")
	}
	if rk.allowedSizes != nil && !rk.allowedSizes[n] {
		return errors.NewDataIntegrityError("match %s has %d participants, expected one of %v",
			matchID, n, sortedSizes(rk.allowedSizes))
	}

	seen := make(map[string]bool, n)
	for _, p := range participants {
		if p.Player.IsZero() {
			return errors.NewInputError("participants", fmt.Sprintf("participant without a name in match %s", matchID))
		}
		key := p.Player.Key()
		if seen[key] {
			return errors.NewInputError("participants", fmt.Sprintf("duplicate player %s in match %s", p.Player, matchID))
		}
		seen[key] = true

		if p.MatchID != matchID {
			return errors.NewDataIntegrityError("participant %s belongs to match %q, not %q", p.Player, p.MatchID, matchID)
		}
		// Non-positive durations are left to Normalize.
		if p.DurationSeconds > 0 && first.DurationSeconds > 0 && p.DurationSeconds != first.DurationSeconds {
			return errors.NewDataIntegrityError("participant %s in match %s has gameDuration %d, expected %d",
				p.Player, matchID, p.DurationSeconds, first.DurationSeconds)
		}
		if !p.PlayedAt.Equal(first.PlayedAt) {
			return errors.NewDataIntegrityError("participant %s in match %s has gameCreation %s, expected %s",
				p.Player, matchID, p.PlayedAt.Format(time.RFC3339), first.PlayedAt.Format(time.RFC3339))
		}
	}
	return nil
}

func sortedSizes(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
