package ports

import (
	"context"

	"github.com/directoryhq/user-api/internal/core/domain"
)

// AuthService implements registration and the two authentication tiers.
//
// Both Authenticate variants run their checks in a fixed order: existence,
// then (for the admin tier) the admin flag, then the password. The order
// decides which error a caller observes first and must not change.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login authenticates at the admin tier and issues a signed bearer token.
	Login(ctx context.Context, name, password string) (string, *domain.User, error)
	AuthenticateAdmin(ctx context.Context, name, password string) (*domain.User, error)
	AuthenticateAny(ctx context.Context, name, password string) (*domain.User, error)
}
