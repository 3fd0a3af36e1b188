package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/flexstats/internal/models"
	"github.com/vytor/flexstats/internal/repository"
	"github.com/vytor/flexstats/internal/repository/sqlite"
	"github.com/vytor/flexstats/internal/testutil"
)

var (
	zeal  = models.PlayerIdentity{GameName: "Zeal", TagLine: "LAS"}
	other = models.PlayerIdentity{GameName: "Other", TagLine: "LAS"}
	t0    = time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
)

func match(id string, at time.Time, players ...models.PlayerIdentity) []models.ParticipantRecord {
	out := make([]models.ParticipantRecord, len(players))
	for i, p := range players {
		out[i] = models.ParticipantRecord{
			MatchID:         id,
			Player:          p,
			TeamID:          100 + (i%2)*100,
			Champion:        "Ahri",
			Role:            "MIDDLE",
			Kills:           i + 1,
			Deaths:          2,
			Assists:         3,
			CS:              180,
			Gold:            11000,
			DamageDealt:     21000,
			DamageTaken:     15000,
			VisionScore:     25,
			Items:           []int{3089, 3020, 0, 0, 0, 0, 3340},
			Win:             i%2 == 0,
			DurationSeconds: 1800,
			PlayedAt:        at,
			GameMode:        "CLASSIC",
			QueueID:         440,
		}
	}
	return out
}

type MatchRepositorySuite struct {
	suite.Suite
	db   *sql.DB
	repo repository.MatchRepository
}

func (s *MatchRepositorySuite) SetupTest() {
	testutil.Quiet(s.T())
	s.db = testutil.NewTestDB(s.T())
	s.repo = sqlite.NewMatchRepository(s.db)
}

func (s *MatchRepositorySuite) TearDownTest() {
	testutil.MustClose(s.T(), s.db)
}

func (s *MatchRepositorySuite) insert(id string, at time.Time, players ...models.PlayerIdentity) []models.ParticipantRecord {
	m := match(id, at, players...)
	s.Require().NoError(s.repo.InsertMatch(context.Background(), m))
	return m
}

func (s *MatchRepositorySuite) TestInsertAndLoadRoundTrip() {
	want := s.insert("LA2_1", t0, zeal, other)

	got, err := s.repo.RecentMatches(context.Background(), zeal, 1)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Assert().Equal(want, got[0])
}

func (s *MatchRepositorySuite) TestRecentMatches_MostRecentFirst() {
	for i := range 4 {
		s.insert(fmt.Sprintf("LA2_%d", i), t0.Add(time.Duration(i)*time.Hour), zeal, other)
	}

	got, err := s.repo.RecentMatches(context.Background(), zeal, 3)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Assert().Equal("LA2_3", got[0][0].MatchID)
	s.Assert().Equal("LA2_2", got[1][0].MatchID)
	s.Assert().Equal("LA2_1", got[2][0].MatchID)
}

func (s *MatchRepositorySuite) TestRecentMatches_KeepsSlotOrder() {
	s.insert("LA2_1", t0, other, zeal)

	got, err := s.repo.RecentMatches(context.Background(), zeal, 1)
	s.Require().NoError(err)
	s.Assert().Equal(other, got[0][0].Player)
	s.Assert().Equal(zeal, got[0][1].Player)
}

func (s *MatchRepositorySuite) TestRecentMatches_CaseInsensitivePlayer() {
	s.insert("LA2_1", t0, zeal, other)

	got, err := s.repo.RecentMatches(context.Background(), models.PlayerIdentity{GameName: "zEAL", TagLine: "las"}, 1)
	s.Require().NoError(err)
	s.Assert().Len(got, 1)
}

func (s *MatchRepositorySuite) TestRecentMatches_PlayerNotFound() {
	s.insert("LA2_1", t0, other)

	_, err := s.repo.RecentMatches(context.Background(), zeal, 1)
	s.Assert().ErrorIs(err, repository.ErrPlayerNotFound)
}

func (s *MatchRepositorySuite) TestRecentMatches_NeverShortWindow() {
	s.insert("LA2_1", t0, zeal)
	s.insert("LA2_2", t0.Add(time.Hour), zeal)

	got, err := s.repo.RecentMatches(context.Background(), zeal, 5)
	s.Assert().Nil(got)
	s.Require().ErrorIs(err, repository.ErrInsufficientHistory)

	var short *repository.InsufficientHistoryError
	s.Require().True(errors.As(err, &short))
	s.Assert().Equal(5, short.Want)
	s.Assert().Equal(2, short.Have)
}

func (s *MatchRepositorySuite) TestRecentMatches_InvalidWindow() {
	_, err := s.repo.RecentMatches(context.Background(), zeal, 0)
	s.Assert().Error(err)
}

func (s *MatchRepositorySuite) TestRecentMatches_CancelledContext() {
	s.insert("LA2_1", t0, zeal)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.repo.RecentMatches(ctx, zeal, 1)
	s.Assert().ErrorIs(err, context.Canceled)
}

func (s *MatchRepositorySuite) TestInsertMatch_Idempotent() {
	s.insert("LA2_1", t0, zeal, other)
	s.insert("LA2_1", t0, zeal, other)

	count, err := s.repo.CountMatches(context.Background(), zeal)
	s.Require().NoError(err)
	s.Assert().Equal(1, count)
}

func (s *MatchRepositorySuite) TestInsertMatch_MixedMatchIDsRollsBack() {
	m := match("LA2_1", t0, zeal, other)
	m[1].MatchID = "LA2_2"

	err := s.repo.InsertMatch(context.Background(), m)
	s.Require().Error(err)

	count, err := s.repo.CountMatches(context.Background(), zeal)
	s.Require().NoError(err)
	s.Assert().Zero(count)

	var matches int
	s.Require().NoError(s.db.QueryRow(`SELECT COUNT(*) FROM matches`).Scan(&matches))
	s.Assert().Zero(matches)
}

func (s *MatchRepositorySuite) TestInsertMatch_Empty() {
	s.Assert().Error(s.repo.InsertMatch(context.Background(), nil))
}

func (s *MatchRepositorySuite) TestInsertMatch_NilItemsLoadEmpty() {
	m := match("LA2_1", t0, zeal)
	m[0].Items = nil
	s.Require().NoError(s.repo.InsertMatch(context.Background(), m))

	got, err := s.repo.RecentMatches(context.Background(), zeal, 1)
	s.Require().NoError(err)
	s.Assert().NotNil(got[0][0].Items)
	s.Assert().Empty(got[0][0].Items)
}

func (s *MatchRepositorySuite) TestCountMatches() {
	s.insert("LA2_1", t0, zeal, other)
	s.insert("LA2_2", t0.Add(time.Hour), zeal)

	ctx := context.Background()
	n, err := s.repo.CountMatches(ctx, zeal)
	s.Require().NoError(err)
	s.Assert().Equal(2, n)

	n, err = s.repo.CountMatches(ctx, other)
	s.Require().NoError(err)
	s.Assert().Equal(1, n)
}

func (s *MatchRepositorySuite) TestPing() {
	s.Assert().NoError(s.repo.Ping(context.Background()))
}

func TestMatchRepositorySuite(t *testing.T) {
	suite.Run(t, new(MatchRepositorySuite))
}
