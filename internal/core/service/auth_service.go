package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/directoryhq/user-api/internal/core/domain"
	"github.com/directoryhq/user-api/internal/core/ports"
	"github.com/directoryhq/user-api/internal/pkg/token"
)

const defaultTokenTTL = 20 * time.Minute

// AuthService implements registration, credential verification and token
// issuance against the user directory.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	codec  *token.Codec
	ttl    time.Duration
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, codec *token.Codec, ttl time.Duration, logger zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{repo: repo, hasher: hasher, codec: codec, ttl: ttl, logger: logger}
}

// Register creates an account with the fixed registration policy:
// role "client", admin false. Callers cannot self-assign admin.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		Role:         domain.RoleClient,
		Admin:        false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", created.Name).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates at the admin tier and issues a bearer token carrying
// the claims snapshot of the user at this moment.
func (s *AuthService) Login(ctx context.Context, name, password string) (string, *domain.User, error) {
	user, err := s.AuthenticateAdmin(ctx, name, password)
	if err != nil {
		return "", nil, err
	}

	signed, err := s.codec.Encode(user.Name, user.ID, user.Role, user.Admin, s.ttl)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("name", user.Name).Int64("user_id", user.ID).Msg("token issued")
	return signed, user, nil
}

// AuthenticateAdmin checks existence, then the admin flag, then the
// password. The order is fixed: it decides which error the caller sees.
func (s *AuthService) AuthenticateAdmin(ctx context.Context, name, password string) (*domain.User, error) {
	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if !user.Admin {
		return nil, domain.ErrForbidden
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// AuthenticateAny is the tierless variant: existence, then password.
func (s *AuthService) AuthenticateAny(ctx context.Context, name, password string) (*domain.User, error) {
	user, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}
