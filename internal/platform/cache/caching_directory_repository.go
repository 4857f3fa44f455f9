// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"clinic_backend/internal/feature/useradmin/domain"
	"clinic_backend/internal/feature/useradmin/domain/entity"
	"clinic_backend/internal/feature/useradmin/usecase"
)

// defaultTTL bounds how stale the cached directory listing can get.
// The listing backs the email-existence check on create, so it must
// stay short.
const defaultTTL = 30 * time.Second

// CachingDirectoryRepository decorates a DirectoryRepository with Redis
// caching of the full user listing. It implements the decorator pattern,
// transparently adding caching without modifying the underlying client.
//
// FindByEmail is served from the cached listing, which keeps the linear
// email scan off the wire for repeated calls. Every mutation invalidates
// the cached listing. Token resolution is never cached.
type CachingDirectoryRepository struct {
	inner     usecase.DirectoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator implements DirectoryRepository.
var _ usecase.DirectoryRepository = (*CachingDirectoryRepository)(nil)

// NewCachingDirectoryRepository decorates a DirectoryRepository with
// Redis caching. If ttl is 0 or negative it defaults to 30 seconds; an
// empty namespace defaults to "directory". A nil Redis client bypasses
// caching entirely.
func NewCachingDirectoryRepository(rdb *redis.Client, ttl time.Duration, inner usecase.DirectoryRepository, namespace string) *CachingDirectoryRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if namespace == "" {
		namespace = "directory"
	}
	return &CachingDirectoryRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey is the cache key for the full user listing.
func (c *CachingDirectoryRepository) listKey() string {
	return c.namespace + ":users"
}

// invalidate drops the cached listing. Best effort: cache failures never
// fail the mutation that triggered them.
func (c *CachingDirectoryRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.listKey()).Err(); err != nil {
		slog.Warn("directory cache invalidation failed", "error", err)
	}
}

// ListUsers retrieves the listing, checking the cache first and falling
// back to the remote service.
func (c *CachingDirectoryRepository) ListUsers(ctx context.Context) ([]entity.DirectoryUser, error) {
	if c.rdb == nil {
		return c.inner.ListUsers(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.DirectoryUser
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the remote service
	out, err := c.inner.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByEmail scans the (possibly cached) listing for a case-insensitive
// email match.
func (c *CachingDirectoryRepository) FindByEmail(ctx context.Context, email string) (*entity.DirectoryUser, error) {
	if c.rdb == nil {
		return c.inner.FindByEmail(ctx, email)
	}
	users, err := c.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// CreateUser creates the user remotely and invalidates the cached listing.
func (c *CachingDirectoryRepository) CreateUser(ctx context.Context, u entity.NewDirectoryUser) (*entity.DirectoryUser, error) {
	created, err := c.inner.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return created, nil
}

// UpdateMetadata updates the user remotely and invalidates the cached listing.
func (c *CachingDirectoryRepository) UpdateMetadata(ctx context.Context, id string, meta entity.Metadata) (*entity.DirectoryUser, error) {
	updated, err := c.inner.UpdateMetadata(ctx, id, meta)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return updated, nil
}

// DeleteUser deletes the user remotely and invalidates the cached listing.
func (c *CachingDirectoryRepository) DeleteUser(ctx context.Context, id string) error {
	if err := c.inner.DeleteUser(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// UserFromToken passes through uncached; token resolution must always
// hit the auth service.
func (c *CachingDirectoryRepository) UserFromToken(ctx context.Context, token string) (*entity.DirectoryUser, error) {
	return c.inner.UserFromToken(ctx, token)
}

// TTLFromEnv reads DIRECTORY_CACHE_TTL as a Go duration, falling back to
// the default when unset or unparsable.
func TTLFromEnv() time.Duration {
	v := os.Getenv("DIRECTORY_CACHE_TTL")
	if v == "" {
		return defaultTTL
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid DIRECTORY_CACHE_TTL, using default", "value", v)
		return defaultTTL
	}
	return d
}
