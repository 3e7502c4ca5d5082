package ports

import (
	"context"

	"github.com/directoryhq/user-api/internal/core/domain"
)

// ListUsersInput carries pagination parameters for the list endpoint.
type ListUsersInput struct {
	Skip  int64
	Limit int64
}

// CreateUserInput carries the fields for the admin create operation.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserService defines the admin-gated use cases on the user directory.
type UserService interface {
	List(ctx context.Context, input ListUsersInput) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateRole(ctx context.Context, id int64, role string, admin bool) error
	Delete(ctx context.Context, id int64) error
}
