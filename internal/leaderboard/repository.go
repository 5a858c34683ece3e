package leaderboard

import (
	"context"
	"errors"
)

// ErrNotFound means the player has no leaderboard row yet.
var ErrNotFound = errors.New("leaderboard entry not found")

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (*Entry, error)
	Upsert(ctx context.Context, entry Entry) error
	Top(ctx context.Context, limit int) ([]Entry, error)
}
