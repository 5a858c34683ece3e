package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo PlayerRepository
}

func NewService(repo PlayerRepository) *Service {
	return &Service{repo: repo}
}

// REGISTER
func (s *Service) Register(displayName, email, password string) (*Player, error) {
	if displayName == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil, errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	player := &Player{
		DisplayName: displayName,
		Email:       email,
		Password:    string(hashedPassword),
		Role:        RolePlayer,
	}

	if err := s.repo.Save(player); err != nil {
		return nil, err
	}

	return player, nil
}

// LOGIN
func (s *Service) Login(email, password string) (*Player, error) {
	player, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(player.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return player, nil
}
