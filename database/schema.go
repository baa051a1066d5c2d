package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// EnsureSchema creates required tables if they do not exist. Intake, progress
// and financial-model records are one JSONB document per user, replaced whole
// on write (the app never merges partial documents server-side).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'seller',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS seller_intakes (
			user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			payload JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS readiness_results (
			user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			readiness INT NOT NULL,
			checklist JSONB NOT NULL,
			next_steps JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS step_progress (
			user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			current_step INT NOT NULL DEFAULT 1,
			completed_articles JSONB NOT NULL DEFAULT '[]'::jsonb,
			completed_tasks JSONB NOT NULL DEFAULT '[]'::jsonb,
			overall_progress INT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS financial_models (
			user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			payload JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS listings (
			id TEXT PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			location TEXT NOT NULL,
			industry TEXT NOT NULL,
			model TEXT NOT NULL,
			revenue_ttm NUMERIC NOT NULL DEFAULT 0,
			ebitda_ttm NUMERIC NOT NULL DEFAULT 0,
			employees INT NOT NULL DEFAULT 0,
			years_operating INT NOT NULL DEFAULT 0,
			systems JSONB NOT NULL DEFAULT '[]'::jsonb,
			readiness INT NOT NULL DEFAULT 0,
			highlights JSONB NOT NULL DEFAULT '[]'::jsonb,
			published_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS listings_readiness_idx ON listings(readiness DESC)`,
	}

	for _, s := range stmts {
		if _, err := pool.Exec(ctx, s); err != nil {
			log.Error().Err(err).Str("stmt", s).Msg("schema ensure error")
		}
	}
}
