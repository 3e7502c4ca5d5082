package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/directoryhq/user-api/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// UserCache stores directory records in Redis for read-through lookups.
// Key formats: user:name:<name> and user:id:<id>, both holding the JSON
// user document including the password hash (the cache sits below the
// serialization boundary, never in a response path).
type UserCache struct {
	client *redis.Client
}

// NewUserCache creates a UserCache wrapping the given Redis client.
func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

type cachedUser struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	Admin        bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GetByName returns the cached user or nil on a miss.
func (c *UserCache) GetByName(ctx context.Context, name string) (*domain.User, error) {
	return c.get(ctx, nameKey(name))
}

// GetByID returns the cached user or nil on a miss.
func (c *UserCache) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return c.get(ctx, idKey(id))
}

// Set stores the user under both its name and id keys (expires after cacheTTL).
func (c *UserCache) Set(ctx context.Context, user *domain.User) error {
	payload, err := json.Marshal(cachedUser{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		Admin:        user.Admin,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, nameKey(user.Name), payload, cacheTTL)
	pipe.Set(ctx, idKey(user.ID), payload, cacheTTL)
	_, err = pipe.Exec(ctx)
	return err
}

// Invalidate drops both keys of a user after a mutation.
func (c *UserCache) Invalidate(ctx context.Context, name string, id int64) error {
	return c.client.Del(ctx, nameKey(name), idKey(id)).Err()
}

func (c *UserCache) get(ctx context.Context, key string) (*domain.User, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var cu cachedUser
	if err := json.Unmarshal(payload, &cu); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &domain.User{
		ID:           cu.ID,
		Name:         cu.Name,
		Email:        cu.Email,
		PasswordHash: cu.PasswordHash,
		Role:         cu.Role,
		Admin:        cu.Admin,
		CreatedAt:    cu.CreatedAt,
		UpdatedAt:    cu.UpdatedAt,
	}, nil
}

func nameKey(name string) string {
	return "user:name:" + name
}

func idKey(id int64) string {
	return "user:id:" + strconv.FormatInt(id, 10)
}
