package ports

import (
	"context"

	"github.com/directoryhq/user-api/internal/core/domain"
)

// UserRepository is the storage boundary of the user directory. Lookups
// return domain.ErrUserNotFound when no record matches; Create returns
// domain.ErrUserExists on a duplicate name or email.
type UserRepository interface {
	FindByName(ctx context.Context, name string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// List returns a page of users ordered by id.
	List(ctx context.Context, skip, limit int64) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id int64, role string, admin bool) error
	Delete(ctx context.Context, id int64) error
}
