package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/malek/tadreeb/internal/app/models"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
)

// UserRepository handles database operations for the single admin user
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// GetAdmin returns the single admin row. The application is designed
// around exactly one user; the lowest id wins if more ever exist.
func (r *UserRepository) GetAdmin(ctx context.Context) (*models.User, error) {
	query := `
		SELECT id, password, change_password_key
		FROM users
		ORDER BY id
		LIMIT 1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query).Scan(&user.ID, &user.Password, &user.ChangePasswordKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}

	return &user, nil
}

// Create inserts the admin row (used by the seed)
func (r *UserRepository) Create(ctx context.Context, passwordHash string, changePasswordKey *string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (password, change_password_key) VALUES ($1, $2) RETURNING id`,
		passwordHash, changePasswordKey,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("error creating admin user: %w", err)
	}
	return id, nil
}

// UpdatePassword overwrites the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
