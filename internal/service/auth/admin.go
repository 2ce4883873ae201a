package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ronrahal/athar-syria-s-hope/internal/domain"
)

// SeedAdmin creates the curator account or, if the email exists, resets its
// name and password. Used by the operator CLI.
func (s *Service) SeedAdmin(ctx context.Context, input AdminInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.SeedAdmin: %w", err)
	}

	now := time.Now()
	user, err := s.users.Upsert(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		Role:         domain.UserRoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.SeedAdmin upsert: %w", err)
	}

	s.log.InfoContext(ctx, "admin seeded",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email))
	return user, nil
}

// ResetPassword replaces the password of an existing curator.
// Returns ErrNotFound if no account has that email.
func (s *Service) ResetPassword(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)

	var errs []domain.FieldError
	errs = appendEmailErrors(errs, email)
	errs = appendPasswordErrors(errs, password)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, email, hash); err != nil {
		return fmt.Errorf("auth.ResetPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset", slog.String("email", email))
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
