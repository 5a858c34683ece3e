package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// PLAYERS
	// -------------------------------
	playerTableSQL := `
		CREATE TABLE IF NOT EXISTS players (
			id UUID PRIMARY KEY,
			display_name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'PLAYER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, playerTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// LEADERBOARD
	// -------------------------------
	leaderboardSQL := `
		CREATE TABLE IF NOT EXISTS leaderboard_entries (
			user_id UUID PRIMARY KEY,
			display_name VARCHAR(255) NOT NULL,
			best_score INT NOT NULL DEFAULT 0,
			best_streak INT NOT NULL DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES players(id)
		)
	`
	if _, err := db.Exec(ctx, leaderboardSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
