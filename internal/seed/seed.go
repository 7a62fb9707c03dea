package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/malek/tadreeb/internal/app/repositories"
	"github.com/malek/tadreeb/internal/config"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
	"github.com/malek/tadreeb/internal/pkg/auth"
	"github.com/malek/tadreeb/internal/pkg/logger"
)

// CreateDefaultData seeds the single admin user when the users table is
// empty. Re-running is a no-op, existing credentials are never touched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	userRepo := repositories.NewUserRepository(dbPool)

	_, err := userRepo.GetAdmin(ctx)
	if err == nil {
		logger.Debug().Msg("Admin user already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Auth.DefaultPassword)
	if err != nil {
		return err
	}

	var key *string
	if cfg.Auth.ChangePasswordKey != "" {
		key = &cfg.Auth.ChangePasswordKey
	}

	id, err := userRepo.Create(ctx, hash, key)
	if err != nil {
		return err
	}

	logger.Info().Int64("userId", id).Msg("Default admin user created")
	return nil
}
