package leaderboard

import "time"

// Entry is one player's leaderboard row: their best round so far.
type Entry struct {
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	BestScore   int       `json:"best_score"`
	BestStreak  int       `json:"best_streak"`
	UpdatedAt   time.Time `json:"updated_at"`
}
