package redis

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/directoryhq/user-api/internal/core/domain"
)

type memCache struct {
	byName map[string]*domain.User
	byID   map[int64]*domain.User
}

func newMemCache() *memCache {
	return &memCache{byName: make(map[string]*domain.User), byID: make(map[int64]*domain.User)}
}

func (c *memCache) GetByName(_ context.Context, name string) (*domain.User, error) {
	return c.byName[name], nil
}

func (c *memCache) GetByID(_ context.Context, id int64) (*domain.User, error) {
	return c.byID[id], nil
}

func (c *memCache) Set(_ context.Context, user *domain.User) error {
	c.byName[user.Name] = user
	c.byID[user.ID] = user
	return nil
}

func (c *memCache) Invalidate(_ context.Context, name string, id int64) error {
	delete(c.byName, name)
	delete(c.byID, id)
	return nil
}

type countingRepo struct {
	users     map[int64]*domain.User
	findCalls int
}

func (r *countingRepo) FindByName(_ context.Context, name string) (*domain.User, error) {
	r.findCalls++
	for _, u := range r.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *countingRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.findCalls++
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *countingRepo) List(_ context.Context, _, _ int64) ([]*domain.User, error) {
	return nil, nil
}

func (r *countingRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.users[user.ID] = user
	return user, nil
}

func (r *countingRepo) UpdateRole(_ context.Context, id int64, role string, admin bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Role = role
	u.Admin = admin
	return nil
}

func (r *countingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newCachedTestRepo() (*CachedUserRepository, *countingRepo, *memCache) {
	inner := &countingRepo{users: map[int64]*domain.User{
		1: {ID: 1, Name: "alice", Email: "a@x.com", Role: domain.RoleClient},
	}}
	cache := newMemCache()
	return &CachedUserRepository{inner: inner, cache: cache, logger: zerolog.Nop()}, inner, cache
}

func TestCachedUserRepository_ReadThrough(t *testing.T) {
	repo, inner, _ := newCachedTestRepo()

	first, err := repo.FindByName(context.Background(), "alice")
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	if inner.findCalls != 1 {
		t.Fatalf("expected one repo hit, got %d", inner.findCalls)
	}

	second, err := repo.FindByName(context.Background(), "alice")
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	if inner.findCalls != 1 {
		t.Fatalf("second lookup should come from cache, repo hits = %d", inner.findCalls)
	}
	if first.ID != second.ID {
		t.Fatalf("cache returned a different user")
	}
}

func TestCachedUserRepository_UpdateInvalidates(t *testing.T) {
	repo, _, cache := newCachedTestRepo()

	if _, err := repo.FindByID(context.Background(), 1); err != nil {
		t.Fatalf("warm-up find: %v", err)
	}
	if cache.byID[1] == nil {
		t.Fatalf("expected warmed cache")
	}

	if err := repo.UpdateRole(context.Background(), 1, domain.RoleAdmin, true); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if cache.byID[1] != nil || cache.byName["alice"] != nil {
		t.Fatalf("mutation must invalidate cache entries")
	}

	fresh, err := repo.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("find after update: %v", err)
	}
	if fresh.Role != domain.RoleAdmin || !fresh.Admin {
		t.Fatalf("stale record after update: %+v", fresh)
	}
}

func TestCachedUserRepository_DeleteInvalidates(t *testing.T) {
	repo, _, cache := newCachedTestRepo()

	if _, err := repo.FindByName(context.Background(), "alice"); err != nil {
		t.Fatalf("warm-up find: %v", err)
	}
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if cache.byName["alice"] != nil {
		t.Fatalf("deleted user still cached")
	}
	if _, err := repo.FindByName(context.Background(), "alice"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
