package scoring_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/models"
	"github.com/vytor/flexstats/internal/scoring"
)

func ranksByPlayer(result models.MatchResult) map[string]int {
	out := make(map[string]int, result.Size())
	for _, p := range result.Participants {
		out[p.Player.Key()] = p.Rank
	}
	return out
}

func assertDenseRanks(t *testing.T, result models.MatchResult, n int) {
	t.Helper()
	require.Len(t, result.Participants, n)
	seen := make(map[int]bool, n)
	for i, p := range result.Participants {
		assert.Equal(t, i+1, p.Rank, "participants are ordered by rank")
		assert.False(t, seen[p.Rank])
		seen[p.Rank] = true
	}
	for r := 1; r <= n; r++ {
		assert.True(t, seen[r], "rank %d missing", r)
	}
}

func TestRank_ClearWinnerIsMVP(t *testing.T) {
	a := participant("A", 100, 10, 2, 5, true)
	a.DamageDealt = 20000
	a.Gold = 15000
	a.VisionScore = 30

	match := []models.ParticipantRecord{
		participant("B", 100, 2, 5, 3, true),
		a,
		participant("C", 100, 1, 6, 4, true),
		participant("D", 100, 0, 7, 2, true),
		participant("E", 100, 1, 4, 1, true),
	}

	result, err := scoring.NewRanker(nil).Rank(match)
	require.NoError(t, err)

	assertDenseRanks(t, result, 5)
	top := result.Participants[0]
	assert.Equal(t, "A", top.Player.GameName)
	assert.Equal(t, 1, top.Rank)
	assert.Equal(t, models.BucketMVP, top.Bucket)
	assert.Equal(t, models.BucketTroll, result.Participants[4].Bucket)
	assert.Equal(t, 7.5, top.Metrics.KDA)
	assert.Equal(t, testMatchID, result.MatchID)
	assert.Equal(t, 1800, result.Meta.DurationSeconds)
}

func TestRank_DenseForAnySize(t *testing.T) {
	full := tenPlayerMatch()
	for _, n := range []int{1, 2, 3, 5, 7, 10} {
		result, err := scoring.NewRanker(nil).Rank(full[:n])
		require.NoError(t, err)
		assertDenseRanks(t, result, n)
	}
}

func TestRank_IndependentOfInputOrder(t *testing.T) {
	base := tenPlayerMatch()
	ranker := scoring.NewRanker(nil)

	want, err := ranker.Rank(base)
	require.NoError(t, err)
	wantRanks := ranksByPlayer(want)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.ParticipantRecord(nil), base...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := ranker.Rank(shuffled)
		require.NoError(t, err)
		assert.Equal(t, wantRanks, ranksByPlayer(got))
	}
}

func TestRank_TieBreaks(t *testing.T) {
	// Score is vision only, so every participant below ties on score.
	scorer, err := scoring.NewScorer(scoring.Weights{scoring.MetricVision: 1})
	require.NoError(t, err)
	ranker := scoring.NewRanker(scorer)

	match := []models.ParticipantRecord{
		participant("first-in", 100, 3, 4, 0, true),
		participant("more-kills", 100, 5, 9, 0, true),
		participant("fewer-deaths", 100, 3, 1, 0, true),
		participant("second-in", 100, 3, 4, 0, true),
	}

	for run := 0; run < 3; run++ {
		result, err := ranker.Rank(match)
		require.NoError(t, err)

		var order []string
		for _, p := range result.Participants {
			order = append(order, p.Player.GameName)
		}
		assert.Equal(t, []string{"more-kills", "fewer-deaths", "first-in", "second-in"}, order)
	}
}

func TestRank_Buckets(t *testing.T) {
	result, err := scoring.NewRanker(nil).Rank(tenPlayerMatch())
	require.NoError(t, err)

	var buckets []models.Bucket
	for _, p := range result.Participants {
		buckets = append(buckets, p.Bucket)
	}
	assert.Equal(t, []models.Bucket{
		models.BucketMVP, models.BucketGreat, models.BucketGood,
		models.BucketOK, models.BucketOK, models.BucketMeh, models.BucketMeh,
		models.BucketBad, models.BucketBad, models.BucketTroll,
	}, buckets)
}

func TestRank_Rejects(t *testing.T) {
	dupe := participant("A", 100, 1, 1, 1, true)
	dupe.Player.GameName = "a" // identities compare case-insensitively

	zeroDuration := participant("Z", 100, 1, 1, 1, true)
	zeroDuration.DurationSeconds = 0

	otherMatch := participant("O", 200, 1, 1, 1, false)
	otherMatch.MatchID = "LA2_other"

	unnamed := participant("", 100, 1, 1, 1, true)

	blankID := tenPlayerMatch()
	for i := range blankID {
		blankID[i].MatchID = " "
	}

	shortened := participant("S", 200, 1, 1, 1, false)
	shortened.DurationSeconds = 60

	later := participant("L", 200, 1, 1, 1, false)
	later.PlayedAt = later.PlayedAt.Add(time.Hour)

	tests := []struct {
		name    string
		ranker  *scoring.Ranker
		match   []models.ParticipantRecord
		code    string
		message string
	}{
		{"empty", scoring.NewRanker(nil), nil, errors.ErrCodeInput, "no participants"},
		{"duplicate", scoring.NewRanker(nil), []models.ParticipantRecord{participant("A", 100, 1, 1, 1, true), dupe}, errors.ErrCodeInput, "duplicate player"},
		{"unnamed", scoring.NewRanker(nil), []models.ParticipantRecord{unnamed}, errors.ErrCodeInput, "without a name"},
		{"zero duration", scoring.NewRanker(nil), []models.ParticipantRecord{participant("A", 100, 1, 1, 1, true), zeroDuration}, errors.ErrCodeInput, "gameDuration"},
		{"mixed matches", scoring.NewRanker(nil), []models.ParticipantRecord{participant("A", 100, 1, 1, 1, true), otherMatch}, errors.ErrCodeDataIntegrity, "belongs to match"},
		{"blank match id", scoring.NewRanker(nil), blankID, errors.ErrCodeInput, "match id is required"},
		{"duration disagrees", scoring.NewRanker(nil), []models.ParticipantRecord{participant("A", 100, 1, 1, 1, true), shortened}, errors.ErrCodeDataIntegrity, "gameDuration 60, expected 1800"},
		{"creation disagrees", scoring.NewRanker(nil), []models.ParticipantRecord{participant("A", 100, 1, 1, 1, true), later}, errors.ErrCodeDataIntegrity, "gameCreation"},
		{"size not allowed", scoring.NewRanker(nil, scoring.WithAllowedSizes(5, 10)), tenPlayerMatch()[:3], errors.ErrCodeDataIntegrity, "expected one of [5 10]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.ranker.Rank(tt.match)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRank_AllowedSizesAccepts(t *testing.T) {
	ranker := scoring.NewRanker(nil, scoring.WithAllowedSizes(5, 10))
	_, err := ranker.Rank(tenPlayerMatch())
	assert.NoError(t, err)
	_, err = ranker.Rank(tenPlayerMatch()[:5])
	assert.NoError(t, err)
}

func TestRank_DoesNotShareItems(t *testing.T) {
	match := tenPlayerMatch()[:5]
	result, err := scoring.NewRanker(nil).Rank(match)
	require.NoError(t, err)

	for i := range match {
		match[i].Items[0] = 9999
	}
	for _, p := range result.Participants {
		assert.NotEqual(t, 9999, p.Items[0])
	}
}

func TestRankFor(t *testing.T) {
	ranker := scoring.NewRanker(nil)

	result, err := ranker.RankFor(tenPlayerMatch(), player("P3"))
	require.NoError(t, err)
	require.NotNil(t, result.Requested)
	assert.Equal(t, "p3", result.Requested.Player.GameName)
	assert.Equal(t, result.Participants[result.Requested.Rank-1].Player, result.Requested.Player)

	_, err = ranker.RankFor(tenPlayerMatch(), player("ghost"))
	assert.True(t, errors.Is(err, errors.ErrCodeInput))
}
