package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPlayerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlayerRepository(db *pgxpool.Pool) *PostgresPlayerRepository {
	return &PostgresPlayerRepository{db: db}
}

func (r *PostgresPlayerRepository) Save(player *Player) error {
	if player.ID == "" {
		player.ID = uuid.New().String()
	}

	query := `
		INSERT INTO players (id, display_name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(context.Background(), query,
		player.ID, player.DisplayName, player.Email, player.Password, player.Role,
	)
	return err
}

func (r *PostgresPlayerRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM players WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresPlayerRepository) FindByEmail(email string) (*Player, error) {
	query := `
		SELECT id, display_name, email, password, role
		FROM players WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	player := &Player{}
	if err := row.Scan(&player.ID, &player.DisplayName, &player.Email, &player.Password, &player.Role); err != nil {
		return nil, errors.New("player not found")
	}
	return player, nil
}
