package game

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/DMailloux03/DominosMemoryGame/internal/catalog"
	"github.com/DMailloux03/DominosMemoryGame/internal/order"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrOrderOpen       = errors.New("current order has not been checked or revealed")
	ErrOrderLocked     = errors.New("current order was already checked or revealed")
	ErrRoundFinished   = errors.New("round is finished, start a new game")
)

// LeaderboardSubmitter receives candidate bests when a round ends.
// Submission is fire-and-forget; failures never touch game state.
type LeaderboardSubmitter interface {
	SubmitBest(ctx context.Context, userID, displayName string, score, streak int) error
}

// Service owns every live session. The mutex guards the session map
// and all session state against concurrent handlers; every method
// returns a snapshot so responses serialize outside the lock.
type Service struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	generator   *order.Generator
	leaderboard LeaderboardSubmitter
}

func NewService(generator *order.Generator, leaderboard LeaderboardSubmitter) *Service {
	return &Service{
		sessions:    make(map[string]*Session),
		generator:   generator,
		leaderboard: leaderboard,
	}
}

// Start opens a fresh round for the player: all counters zero, first
// order on the table.
func (s *Service) Start(userID, displayName string, specialRequests bool) (*Session, error) {
	ord, err := s.generator.Generate(specialRequests)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:              uuid.New().String(),
		UserID:          userID,
		DisplayName:     displayName,
		Phase:           PhasePending,
		SpecialRequests: specialRequests,
		Order:           ord,
		Fields:          order.Fields(ord),
		ShownAt:         time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session.snapshot(), nil
}

// Get returns the session if it belongs to the player.
func (s *Service) Get(sessionID, userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.locked(sessionID, userID)
	if err != nil {
		return nil, err
	}
	return session.snapshot(), nil
}

func (s *Service) locked(sessionID, userID string) (*Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Check scores the submission and advances the round. Atomic: an
// incomplete submission returns an error with nothing mutated.
func (s *Service) Check(sessionID, userID string, submitted map[string]string) (*CheckResult, *Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.locked(sessionID, userID)
	if err != nil {
		return nil, nil, err
	}
	if session.Phase == PhaseFinished {
		return nil, nil, ErrRoundFinished
	}
	if session.Phase != PhasePending {
		return nil, nil, ErrOrderLocked
	}

	result, err := Score(session.Fields, submitted, time.Since(session.ShownAt))
	if err != nil {
		return nil, nil, err
	}

	session.Score.Points += result.Earned
	session.Score.Answered++

	if result.Perfect {
		session.Score.Streak++
		if session.Score.Streak > session.Score.Best {
			session.Score.Best = session.Score.Streak
		}
	} else {
		session.Score.Streak = 0
	}

	if session.Score.Answered >= OrdersPerRound {
		session.Phase = PhaseFinished
		s.submitRound(session)
	} else {
		session.Phase = PhaseChecked
	}

	return result, session.snapshot(), nil
}

// Reveal fills in the answers and locks the round without touching the
// score or the orders-answered counter.
func (s *Service) Reveal(sessionID, userID string) ([]RevealedField, *Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.locked(sessionID, userID)
	if err != nil {
		return nil, nil, err
	}
	if session.Phase == PhaseFinished {
		return nil, nil, ErrRoundFinished
	}
	if session.Phase != PhasePending {
		return nil, nil, ErrOrderLocked
	}

	revealed := make([]RevealedField, 0, len(session.Fields))
	for _, field := range session.Fields {
		revealed = append(revealed, RevealedField{
			ID:    field.ID,
			Value: catalog.FormatAmount(field.Expected),
			Unit:  field.Unit,
		})
	}

	session.Phase = PhaseRevealed
	return revealed, session.snapshot(), nil
}

// Next discards the current order and deals a fresh one.
func (s *Service) Next(sessionID, userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.locked(sessionID, userID)
	if err != nil {
		return nil, err
	}

	switch session.Phase {
	case PhaseFinished:
		return nil, ErrRoundFinished
	case PhasePending:
		return nil, ErrOrderOpen
	}

	if err := s.dealLocked(session); err != nil {
		return nil, err
	}
	return session.snapshot(), nil
}

// SetSpecialRequests flips the toggle and deals a new order under the
// new mode, like the original toggle did. The open order is discarded
// unscored.
func (s *Service) SetSpecialRequests(sessionID, userID string, enabled bool) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.locked(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Phase == PhaseFinished {
		return nil, ErrRoundFinished
	}

	session.SpecialRequests = enabled
	if err := s.dealLocked(session); err != nil {
		return nil, err
	}
	return session.snapshot(), nil
}

func (s *Service) dealLocked(session *Session) error {
	ord, err := s.generator.Generate(session.SpecialRequests)
	if err != nil {
		return err
	}

	session.Order = ord
	session.Fields = order.Fields(ord)
	session.ShownAt = time.Now()
	session.Phase = PhasePending
	return nil
}

// submitRound pushes the finished round's bests to the leaderboard in
// the background. A failed write is logged and otherwise ignored; no
// retry, local state unaffected.
func (s *Service) submitRound(session *Session) {
	userID := session.UserID
	displayName := session.DisplayName
	score := session.Score.Points
	streak := session.Score.Best

	go func() {
		if err := s.leaderboard.SubmitBest(context.Background(), userID, displayName, score, streak); err != nil {
			log.Printf("[GAME] leaderboard submit failed for %s: %v", userID, err)
		}
	}()
}
