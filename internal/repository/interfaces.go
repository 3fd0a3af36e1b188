package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/vytor/flexstats/internal/models"
)

var (
	// ErrPlayerNotFound means the store holds no match for the player.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInsufficientHistory means fewer matches exist than were asked for.
	ErrInsufficientHistory = errors.New("insufficient match history")
)

// InsufficientHistoryError carries how many matches were available.
// It matches ErrInsufficientHistory under errors.Is.
type InsufficientHistoryError struct {
	Want int
	Have int
}

func (e *InsufficientHistoryError) Error() string {
	return fmt.Sprintf("%s: want %d, have %d", ErrInsufficientHistory, e.Want, e.Have)
}

func (e *InsufficientHistoryError) Is(target error) bool {
	return target == ErrInsufficientHistory
}

// MatchRepository is the data source of raw participant records.
type MatchRepository interface {
	// RecentMatches returns the player's n most recent matches, most recent
	// first, each with every participant in slot order. It never returns a
	// short window.
	RecentMatches(ctx context.Context, player models.PlayerIdentity, n int) ([][]models.ParticipantRecord, error)
	// InsertMatch stores one match. Storing a match id twice is a no-op.
	InsertMatch(ctx context.Context, participants []models.ParticipantRecord) error
	CountMatches(ctx context.Context, player models.PlayerIdentity) (int, error)
	Ping(ctx context.Context) error
}
