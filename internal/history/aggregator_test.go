package history_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/flexstats/internal/errors"
	"github.com/vytor/flexstats/internal/history"
	"github.com/vytor/flexstats/internal/models"
	"github.com/vytor/flexstats/internal/scoring"
)

var me = models.PlayerIdentity{GameName: "Zeal", TagLine: "LAS"}

type line struct {
	kills, deaths, assists int
	win                    bool
	rank                   int
	size                   int
	mvp                    float64
}

// result builds a ranked match of l.size participants with me at l.rank.
func result(id string, l line) models.MatchResult {
	size := l.size
	if size == 0 {
		size = 5
	}
	m := models.MatchResult{MatchID: id, Meta: models.MatchMeta{DurationSeconds: 1800}}
	for rank := 1; rank <= size; rank++ {
		p := models.ScoredParticipant{
			ParticipantRecord: models.ParticipantRecord{
				MatchID: id,
				Player:  models.PlayerIdentity{GameName: fmt.Sprintf("filler%d", rank), TagLine: "LAS"},
			},
			Rank:   rank,
			Bucket: scoring.Classify(rank, size),
		}
		if rank == l.rank {
			p.Player = me
			p.Kills, p.Deaths, p.Assists = l.kills, l.deaths, l.assists
			p.CS, p.Gold, p.DamageDealt, p.VisionScore = 180, 11000, 18000, 22
			p.Win = l.win
			p.MVPScore = l.mvp
		}
		m.Participants = append(m.Participants, p)
	}
	return m
}

func window(lines ...line) []models.MatchResult {
	out := make([]models.MatchResult, len(lines))
	for i, l := range lines {
		out[i] = result(fmt.Sprintf("LA2_%d", i+1), l)
	}
	return out
}

func TestAggregate_WinRate(t *testing.T) {
	matches := window(
		line{kills: 5, deaths: 2, assists: 5, win: true, rank: 1},
		line{kills: 1, deaths: 5, assists: 2, win: false, rank: 5},
		line{kills: 8, deaths: 1, assists: 4, win: true, rank: 2},
		line{kills: 3, deaths: 3, assists: 9, win: true, rank: 3},
		line{kills: 2, deaths: 6, assists: 1, win: false, rank: 4},
	)

	h, err := history.New(5).Aggregate(matches, me)
	require.NoError(t, err)
	assert.Equal(t, 60.0, h.Averages.WinRate)
	assert.Equal(t, 5, h.TotalGames)
}

func TestAggregate_Averages(t *testing.T) {
	matches := window(
		line{kills: 10, deaths: 0, assists: 5, win: true, rank: 1, mvp: 2500.5},
		line{kills: 1, deaths: 4, assists: 2, win: false, rank: 4, mvp: 1000.25},
		line{kills: 4, deaths: 2, assists: 4, win: true, rank: 2, mvp: 1800},
	)

	h, err := history.New(5).Aggregate(matches, me)
	require.NoError(t, err)

	avg := h.Averages
	assert.Equal(t, 5.0, avg.Kills)
	assert.Equal(t, 2.0, avg.Deaths)
	assert.Equal(t, 3.7, avg.Assists)
	// (15 + 0.75 + 4) / 3
	assert.Equal(t, 6.58, avg.KDA)
	assert.Equal(t, 180.0, avg.CS)
	assert.Equal(t, 11000.0, avg.Gold)
	assert.Equal(t, 18000.0, avg.Damage)
	assert.Equal(t, 22.0, avg.VisionScore)
	assert.Equal(t, 1766.92, avg.MVPScore)
	assert.Equal(t, 66.7, avg.WinRate)
}

func TestAggregate_PerformanceUsesMatchSize(t *testing.T) {
	matches := window(
		line{rank: 1, size: 5},
		line{rank: 5, size: 5},   // last of five
		line{rank: 5, size: 10},  // mid table of ten
		line{rank: 10, size: 10}, // last of ten
		line{rank: 3, size: 10},
	)

	h, err := history.New(5).Aggregate(matches, me)
	require.NoError(t, err)
	assert.Equal(t, models.Performance{MVPCount: 1, Top3Count: 2, TrollCount: 2}, h.Performance)
}

func TestAggregate_Invariants(t *testing.T) {
	lines := []line{}
	for i := 0; i < 5; i++ {
		lines = append(lines, line{kills: i, deaths: 5 - i, assists: i * 2, win: i%3 == 0, rank: i%5 + 1, size: 5})
	}

	h, err := history.New(5).Aggregate(window(lines...), me)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, h.Averages.WinRate, 0.0)
	assert.LessOrEqual(t, h.Averages.WinRate, 100.0)
	assert.LessOrEqual(t, h.Performance.MVPCount, h.Performance.Top3Count)
	assert.LessOrEqual(t, h.Performance.Top3Count, h.TotalGames)
	assert.LessOrEqual(t, h.Performance.TrollCount, h.TotalGames)
}

func TestAggregate_UsesMostRecentWindow(t *testing.T) {
	matches := window(
		line{win: true, rank: 1},
		line{win: true, rank: 1},
		line{win: false, rank: 5},
		line{win: false, rank: 5},
	)

	h, err := history.New(2).Aggregate(matches, me)
	require.NoError(t, err)
	assert.Equal(t, 2, h.TotalGames)
	assert.Equal(t, 100.0, h.Averages.WinRate)
	assert.Equal(t, "LA2_1", h.Matches[0].MatchID)
	assert.Equal(t, "LA2_2", h.Matches[1].MatchID)
}

func TestAggregate_SetsRequestedPlayer(t *testing.T) {
	h, err := history.New(5).Aggregate(window(line{rank: 3}, line{rank: 2}), me)
	require.NoError(t, err)
	for _, m := range h.Matches {
		require.NotNil(t, m.Requested)
		assert.True(t, m.Requested.Player.Equal(me))
	}
	assert.Equal(t, 3, h.Matches[0].Requested.Rank)
}

func TestAggregate_EmptyWindow(t *testing.T) {
	_, err := history.New(5).Aggregate(nil, me)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInput))
}

func TestAggregate_PlayerMissingFromMatch(t *testing.T) {
	matches := window(line{rank: 1}, line{rank: 2})
	matches[1].Participants[1].Player = models.PlayerIdentity{GameName: "someone", TagLine: "else"}

	_, err := history.New(5).Aggregate(matches, me)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeDataIntegrity))
	assert.Contains(t, err.Error(), "LA2_2")
}

func TestAggregate_RequiresPlayer(t *testing.T) {
	_, err := history.New(5).Aggregate(window(line{rank: 1}), models.PlayerIdentity{})
	assert.True(t, errors.Is(err, errors.ErrCodeInput))
}

func TestNew_DefaultWindow(t *testing.T) {
	assert.Equal(t, history.DefaultWindow, history.New(0).Window)
	assert.Equal(t, 3, history.New(3).Window)
}

func TestResolveWindow(t *testing.T) {
	w, err := history.ResolveWindow(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, w)

	w, err = history.ResolveWindow(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, w)

	for _, bad := range []int{-1, history.MaxWindow + 1} {
		_, err := history.ResolveWindow(bad, 5)
		assert.True(t, errors.Is(err, errors.ErrCodeInput), "window %d", bad)
	}

	_, err = history.ResolveWindow(0, 0)
	assert.Error(t, err)
}
