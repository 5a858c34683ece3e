package auth

import (
	"errors"

	"github.com/google/uuid"
)

type InMemoryPlayerRepository struct {
	players map[string]*Player
}

func NewInMemoryPlayerRepository() *InMemoryPlayerRepository {
	return &InMemoryPlayerRepository{
		players: make(map[string]*Player),
	}
}

func (r *InMemoryPlayerRepository) Save(player *Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	r.players[player.Email] = player
	return nil
}

func (r *InMemoryPlayerRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.players[email]
	return exists, nil
}

func (r *InMemoryPlayerRepository) FindByEmail(email string) (*Player, error) {
	player, ok := r.players[email]
	if !ok {
		return nil, errors.New("player not found")
	}
	return player, nil
}
