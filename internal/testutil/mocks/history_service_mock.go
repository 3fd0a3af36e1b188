package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/flexstats/internal/models"
)

// MockHistoryService is a mock implementation of services.HistoryService
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) PlayerHistory(ctx context.Context, player models.PlayerIdentity, window int) (models.PlayerHistory, error) {
	args := m.Called(ctx, player, window)
	return args.Get(0).(models.PlayerHistory), args.Error(1)
}
