package redis

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/directoryhq/user-api/internal/core/domain"
	"github.com/directoryhq/user-api/internal/core/ports"
)

// userCache is the cache surface the decorator needs; *UserCache satisfies
// it, and tests substitute an in-memory map.
type userCache interface {
	GetByName(ctx context.Context, name string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, name string, id int64) error
}

// CachedUserRepository decorates a UserRepository with read-through caching
// for single-record lookups. Cache failures are logged and degrade to the
// underlying repository; mutations invalidate before returning.
type CachedUserRepository struct {
	inner  ports.UserRepository
	cache  userCache
	logger zerolog.Logger
}

func NewCachedUserRepository(inner ports.UserRepository, cache *UserCache, logger zerolog.Logger) *CachedUserRepository {
	return &CachedUserRepository{inner: inner, cache: cache, logger: logger}
}

func (r *CachedUserRepository) FindByName(ctx context.Context, name string) (*domain.User, error) {
	if user, err := r.cache.GetByName(ctx, name); err != nil {
		r.logger.Debug().Err(err).Str("name", name).Msg("user cache read failed")
	} else if user != nil {
		return user, nil
	}

	user, err := r.inner.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, user); err != nil {
		r.logger.Debug().Err(err).Str("name", name).Msg("user cache write failed")
	}
	return user, nil
}

func (r *CachedUserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if user, err := r.cache.GetByID(ctx, id); err != nil {
		r.logger.Debug().Err(err).Int64("user_id", id).Msg("user cache read failed")
	} else if user != nil {
		return user, nil
	}

	user, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, user); err != nil {
		r.logger.Debug().Err(err).Int64("user_id", id).Msg("user cache write failed")
	}
	return user, nil
}

// List always hits the repository; pages are not worth caching.
func (r *CachedUserRepository) List(ctx context.Context, skip, limit int64) ([]*domain.User, error) {
	return r.inner.List(ctx, skip, limit)
}

func (r *CachedUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created, err := r.inner.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, created); err != nil {
		r.logger.Debug().Err(err).Str("name", created.Name).Msg("user cache write failed")
	}
	return created, nil
}

func (r *CachedUserRepository) UpdateRole(ctx context.Context, id int64, role string, admin bool) error {
	if err := r.inner.UpdateRole(ctx, id, role, admin); err != nil {
		return err
	}
	r.invalidate(ctx, id)
	return nil
}

func (r *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	// Resolve the name first so both cache keys can be dropped.
	user, err := r.inner.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.cache.Invalidate(ctx, user.Name, id); err != nil {
		r.logger.Warn().Err(err).Int64("user_id", id).Msg("user cache invalidation failed")
	}
	return nil
}

func (r *CachedUserRepository) invalidate(ctx context.Context, id int64) {
	user, err := r.inner.FindByID(ctx, id)
	if err != nil {
		r.logger.Warn().Err(err).Int64("user_id", id).Msg("user cache invalidation lookup failed")
		return
	}
	if err := r.cache.Invalidate(ctx, user.Name, id); err != nil {
		r.logger.Warn().Err(err).Int64("user_id", id).Msg("user cache invalidation failed")
	}
}
