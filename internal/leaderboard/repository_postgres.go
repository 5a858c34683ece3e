package leaderboard

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUser(ctx context.Context, userID string) (*Entry, error) {
	var entry Entry
	err := r.db.QueryRow(ctx, `
		SELECT user_id, display_name, best_score, best_streak, updated_at
		FROM leaderboard_entries
		WHERE user_id = $1
	`, userID).Scan(
		&entry.UserID,
		&entry.DisplayName,
		&entry.BestScore,
		&entry.BestStreak,
		&entry.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// Upsert replaces the player's row. Conflict resolution is simple
// last-write-wins on the user id.
func (r *PostgresRepository) Upsert(ctx context.Context, entry Entry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO leaderboard_entries (
			user_id,
			display_name,
			best_score,
			best_streak
		)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET
			display_name = EXCLUDED.display_name,
			best_score = EXCLUDED.best_score,
			best_streak = EXCLUDED.best_streak,
			updated_at = now()
	`,
		entry.UserID,
		entry.DisplayName,
		entry.BestScore,
		entry.BestStreak,
	)

	return err
}

// Top returns the leaderboard: higher scores first, streak breaks
// ties, older rows win exact ties.
func (r *PostgresRepository) Top(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_id, display_name, best_score, best_streak, updated_at
		FROM leaderboard_entries
		ORDER BY
			best_score DESC,
			best_streak DESC,
			updated_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		if err := rows.Scan(
			&entry.UserID,
			&entry.DisplayName,
			&entry.BestScore,
			&entry.BestStreak,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
