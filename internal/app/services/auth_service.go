package services

import (
	"context"
	"errors"
	"strings"

	"github.com/malek/tadreeb/internal/app/models/dto"
	"github.com/malek/tadreeb/internal/app/repositories"
	"github.com/malek/tadreeb/internal/pkg/apperrors"
	"github.com/malek/tadreeb/internal/pkg/auth"
	"github.com/malek/tadreeb/internal/pkg/logger"
)

// AuthService implements single-admin authentication: login against the
// one stored hash and out-of-band password rotation via a shared key.
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login compares the password against the stored hash and issues a token.
// The plaintext password is never logged.
func (s *AuthService) Login(ctx context.Context, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetAdmin(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials,
				"User not found. Please run database seed.")
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid password")
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		if errors.Is(err, auth.ErrNoSecret) {
			return nil, apperrors.NewCustomError(apperrors.ErrServerMisconfigured,
				"Server misconfiguration: JWT secret is not set")
		}
		return nil, err
	}

	logger.Info().Int64("userId", user.ID).Msg("Admin logged in")

	return &dto.LoginResponse{
		Token: token,
		User:  dto.LoginUser{ID: user.ID},
	}, nil
}

// ChangePassword rotates the stored password when the caller presents the
// stored authorization key. The key is distinct from the login password.
func (s *AuthService) ChangePassword(ctx context.Context, key, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.NewValidationError("New password must be at least 8 characters")
	}

	user, err := s.userRepo.GetAdmin(ctx)
	if err != nil {
		return err
	}

	key = strings.TrimSpace(key)
	if user.ChangePasswordKey == nil || key == "" || key != *user.ChangePasswordKey {
		return apperrors.NewCustomError(apperrors.ErrPermissionDenied, "Invalid authorization key")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	logger.Info().Int64("userId", user.ID).Msg("Admin password rotated")
	return nil
}
