package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// MaxPoolConns bounds the shared connection pool. Sized above the
// expected request concurrency; callers block until a connection frees.
const MaxPoolConns = 20

// ConnectDB establishes a bounded connection pool to PostgreSQL
func ConnectDB(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}
	poolCfg.MaxConns = MaxPoolConns

	var pool *pgxpool.Pool

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			err = pool.Ping(ctx)
			if err == nil {
				log.Info().Msg("connected to PostgreSQL")
				return pool, nil
			}
		}
		log.Warn().Err(err).
			Int("attempt", i+1).
			Int("max_attempts", maxRetries).
			Dur("retry_in", retryInterval).
			Msg("failed to connect to database")
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates the tables if they don't exist
func AutoMigrate(ctx context.Context, db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS lost_items (
		lost_id SERIAL PRIMARY KEY,
		item_name VARCHAR(255) NOT NULL,
		description TEXT,
		category VARCHAR(100),
		lost_date VARCHAR(50),
		location VARCHAR(255),
		owner_name VARCHAR(255),
		owner_contact VARCHAR(255),
		status VARCHAR(50) DEFAULT 'active'
	);

	CREATE TABLE IF NOT EXISTS found_items (
		found_id SERIAL PRIMARY KEY,
		item_name VARCHAR(255) NOT NULL,
		description TEXT,
		category VARCHAR(100),
		found_date VARCHAR(50),
		location VARCHAR(255),
		finder_name VARCHAR(255),
		finder_contact VARCHAR(255),
		status VARCHAR(50) DEFAULT 'active'
	);

	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(100) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(50) DEFAULT 'user'
	);
	`
	if _, err := db.Exec(ctx, sql); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Info().Msg("schema migrations applied")
	return nil
}
