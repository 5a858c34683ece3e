package leaderboard

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository backs tests and local development.
type InMemoryRepository struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		entries: make(map[string]Entry),
	}
}

func (r *InMemoryRepository) GetByUser(ctx context.Context, userID string) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &entry, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.UpdatedAt.IsZero() {
		entry.UpdatedAt = time.Now()
	}
	r.entries[entry.UserID] = entry
	return nil
}

func (r *InMemoryRepository) Top(ctx context.Context, limit int) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.BestScore != b.BestScore {
			return a.BestScore > b.BestScore
		}
		if a.BestStreak != b.BestStreak {
			return a.BestStreak > b.BestStreak
		}
		return a.UpdatedAt.Before(b.UpdatedAt)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}
