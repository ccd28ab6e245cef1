package main

import (
	"context"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"github.com/oksasatya/unibase/config"
	pginfra "github.com/oksasatya/unibase/internal/infrastructure/postgres"
	"github.com/oksasatya/unibase/pkg/helpers"
)

// Seeds (or promotes) the staff account from SEED_STAFF_*. Registration never
// grants staff, so this is how the first one comes to exist.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2, MinConns: 1, ConnectAttempts: cfg.DBConnectAttempts}, logger)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	if cfg.MigrateOnStart {
		if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	email := strings.ToLower(strings.TrimSpace(cfg.SeedStaffEmail))
	hash, err := helpers.HashPassword(cfg.SeedStaffPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, full_name, phone_number, password, is_staff)
		VALUES ($1, $2, $3, $4, TRUE)
		ON CONFLICT ON CONSTRAINT users_email_key DO UPDATE
		SET is_staff = TRUE, password = EXCLUDED.password, updated_at = now()
		RETURNING id
	`, email, cfg.SeedStaffName, cfg.SeedStaffPhone, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed staff user: %v", err)
	}
	logger.WithField("user_id", id).WithField("email", email).Info("staff user ready")
}
