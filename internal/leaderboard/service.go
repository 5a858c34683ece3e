package leaderboard

import (
	"context"
	"errors"
	"log"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 50
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SubmitBest records a finished round if it beats the stored row.
// Policy: a strictly higher score wins, an equal score with a strictly
// higher streak wins, exact ties are skipped so the earlier round keeps
// its recency rank. Non-improving rounds never hit the write path.
func (s *Service) SubmitBest(ctx context.Context, userID, displayName string, score, streak int) error {
	current, err := s.repo.GetByUser(ctx, userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	entry := Entry{
		UserID:      userID,
		DisplayName: displayName,
		BestScore:   score,
		BestStreak:  streak,
	}

	if current != nil {
		improved := score > current.BestScore ||
			(score == current.BestScore && streak > current.BestStreak)
		if !improved {
			log.Printf(
				"[LEADERBOARD] skipping non-improving round for %s (score=%d streak=%d)",
				userID, score, streak,
			)
			return nil
		}

		// Bests are independent maxima: a higher-scoring round with a
		// shorter streak must not erase the stored streak.
		if current.BestStreak > entry.BestStreak {
			entry.BestStreak = current.BestStreak
		}
	}

	return s.repo.Upsert(ctx, entry)
}

// Top returns the ranked board.
func (s *Service) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	if limit > maxTopLimit {
		limit = maxTopLimit
	}
	return s.repo.Top(ctx, limit)
}
