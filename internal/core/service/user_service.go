package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/directoryhq/user-api/internal/core/domain"
	"github.com/directoryhq/user-api/internal/core/ports"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// UserService implements the admin-gated directory use cases. Admin gating
// itself happens at the transport boundary; the service trusts its caller.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// List returns a page of user records. Skip below zero is clamped to zero;
// a non-positive limit falls back to the default page size, and oversized
// limits are capped.
func (s *UserService) List(ctx context.Context, input ports.ListUsersInput) ([]*domain.User, error) {
	skip := input.Skip
	if skip < 0 {
		skip = 0
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return s.repo.List(ctx, skip, limit)
}

// Create inserts a user on behalf of an administrator. The password is
// hashed exactly like at registration; the record starts as a non-admin
// client until an explicit role update.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: digest,
		Role:         domain.RoleClient,
		Admin:        false,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", created.Name).Int64("user_id", created.ID).Msg("user created by admin")
	return created, nil
}

// UpdateRole changes the role label and admin flag of an existing user.
// The existence check runs first so an unknown id reports not-found rather
// than a silent no-op.
func (s *UserService) UpdateRole(ctx context.Context, id int64, role string, admin bool) error {
	if role == "" {
		role = domain.RoleClient
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.UpdateRole(ctx, id, role, admin); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Str("role", role).Bool("is_admin", admin).Msg("user role updated")
	return nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
