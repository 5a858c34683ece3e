package game

import (
	"time"

	"github.com/DMailloux03/DominosMemoryGame/internal/order"
)

// Phase is the per-order state machine. Check and Reveal are mutually
// exclusive for a round; either one unlocks Next.
type Phase string

const (
	PhasePending  Phase = "pending"
	PhaseChecked  Phase = "checked"
	PhaseRevealed Phase = "revealed"
	PhaseFinished Phase = "finished"
)

// ScoreState is the round-lifetime counters. Reset only by starting a
// new game, mutated only by Check.
type ScoreState struct {
	Points   int `json:"points"`
	Streak   int `json:"streak"`
	Best     int `json:"best"`
	Answered int `json:"answered"`
}

// Session is one player's running game.
type Session struct {
	ID              string        `json:"id"`
	UserID          string        `json:"-"`
	DisplayName     string        `json:"-"`
	Score           ScoreState    `json:"score"`
	Phase           Phase         `json:"phase"`
	SpecialRequests bool          `json:"special_requests"`
	Order           order.Order   `json:"-"`
	Fields          []order.Field `json:"fields"`

	// ShownAt anchors the speed bonus for the current order.
	ShownAt time.Time `json:"-"`
}

// snapshot copies the session so handlers can serialize it after the
// service lock is released. Order and Fields are replaced wholesale on
// re-deal, never mutated in place, so a shallow copy is enough.
func (s *Session) snapshot() *Session {
	c := *s
	return &c
}

// RevealedField is one answer handed back by Reveal, formatted the way
// the charts print it.
type RevealedField struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}
