package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/directoryhq/user-api/internal/core/domain"
	"github.com/directoryhq/user-api/internal/core/ports"
	"github.com/directoryhq/user-api/internal/pkg/hash"
)

func newTestUserService(repo ports.UserRepository) *UserService {
	return NewUserService(repo, hash.NewBcryptWithCost(bcrypt.MinCost), zerolog.Nop())
}

func TestUserService_List_Defaults(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)
	for _, name := range []string{"u1", "u2", "u3"} {
		seedUser(t, repo, name, "pw", false)
	}

	// Zero values fall back to skip=0, limit=10.
	users, err := svc.List(context.Background(), ports.ListUsersInput{})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}

	users, err = svc.List(context.Background(), ports.ListUsersInput{Skip: -5, Limit: 2})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected clamped page of 2, got %d", len(users))
	}
}

func TestUserService_List_CapsLimit(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if _, err := svc.List(context.Background(), ports.ListUsersInput{Limit: 10_000}); err != nil {
		t.Fatalf("list error: %v", err)
	}
}

func TestUserService_Create(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "dave", Email: "d@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pw" {
		t.Fatalf("password stored in plaintext")
	}
	if user.Role != domain.RoleClient || user.Admin {
		t.Fatalf("created user must start as non-admin client")
	}

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "dave", Email: "d@x.com", Password: "pw"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Name: "", Email: "", Password: ""}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)
	u := seedUser(t, repo, "erin", "pw", false)

	if err := svc.UpdateRole(context.Background(), 9999, domain.RoleAdmin, true); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if err := svc.UpdateRole(context.Background(), u.ID, domain.RoleAdmin, true); err != nil {
		t.Fatalf("update error: %v", err)
	}
	updated, err := repo.FindByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("lookup after update: %v", err)
	}
	if updated.Role != domain.RoleAdmin || !updated.Admin {
		t.Fatalf("role change not visible on lookup: %+v", updated)
	}

	// An empty role label defaults to client.
	if err := svc.UpdateRole(context.Background(), u.ID, "", false); err != nil {
		t.Fatalf("update error: %v", err)
	}
	updated, _ = repo.FindByID(context.Background(), u.ID)
	if updated.Role != domain.RoleClient || updated.Admin {
		t.Fatalf("expected demotion to client, got %+v", updated)
	}
}

func TestUserService_Delete(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)
	u := seedUser(t, repo, "frank", "pw", false)

	if err := svc.Delete(context.Background(), 9999); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), u.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), u.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("user still present after delete")
	}
}
