package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/flexstats/internal/models"
)

// MockMatchRepository is a mock implementation of repository.MatchRepository
type MockMatchRepository struct {
	mock.Mock
}

func (m *MockMatchRepository) RecentMatches(ctx context.Context, player models.PlayerIdentity, n int) ([][]models.ParticipantRecord, error) {
	args := m.Called(ctx, player, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]models.ParticipantRecord), args.Error(1)
}

func (m *MockMatchRepository) InsertMatch(ctx context.Context, participants []models.ParticipantRecord) error {
	args := m.Called(ctx, participants)
	return args.Error(0)
}

func (m *MockMatchRepository) CountMatches(ctx context.Context, player models.PlayerIdentity) (int, error) {
	args := m.Called(ctx, player)
	return args.Int(0), args.Error(1)
}

func (m *MockMatchRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
