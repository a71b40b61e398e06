// Package cache provides Redis caching utilities for the application.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"toolverse/internal/middleware"
	"toolverse/internal/observability"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

type metricsHook struct{}

func (h metricsHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h metricsHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrorRate.WithLabelValues(cmd.Name()).Inc()
		}
		return err
	}
}

func (h metricsHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		err := next(ctx, cmds)
		if err != nil && !errors.Is(err, redis.Nil) {
			observability.RedisErrorRate.WithLabelValues("pipeline").Inc()
		}
		return err
	}
}

// Connect opens a Redis client for addr, which may be a redis:// URL or host:port.
// It returns nil when addr is empty or the server does not answer, so callers run without cache.
func Connect(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			middleware.Logger.Warn("invalid REDIS_URL, continuing without cache", slog.String("error", err.Error()))
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}
	// Fail fast when Redis goes away mid-run; every caller treats it as optional.
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 2 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 1
	}
	// Skip the maintenance notifications handshake; many servers lack the subcommand.
	opts.MaintNotificationsConfig = &maintnotifications.Config{Mode: maintnotifications.ModeDisabled}

	client := redis.NewClient(opts)
	client.AddHook(metricsHook{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis unavailable, continuing without cache", slog.String("error", err.Error()))
		_ = client.Close()
		return nil
	}
	middleware.Logger.Info("Redis connected successfully")
	return client
}

// Cache is a JSON cache over Redis. A Cache with a nil client is valid and never hits.
type Cache struct {
	rdb *redis.Client
}

// New wraps rdb. rdb may be nil.
func New(rdb *redis.Client) *Cache {
	return &Cache{rdb: rdb}
}

// Client returns the underlying Redis client, or nil when caching is disabled.
func (c *Cache) Client() *redis.Client {
	if c == nil {
		return nil
	}
	return c.rdb
}

// Enabled reports whether a Redis client is configured.
func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	s, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first; on a miss it calls fetch, which must populate dest,
// then stores dest with ttl. Cache failures fall through to fetch.
func (c *Cache) Aside(ctx context.Context, name, key string, dest any, ttl time.Duration, fetch func() error) error {
	if !c.Enabled() {
		return fetch()
	}

	found, err := c.GetJSON(ctx, key, dest)
	switch {
	case err != nil:
		observability.CacheResults.WithLabelValues(name, "error").Inc()
		middleware.Logger.WarnContext(ctx, "cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	case found:
		observability.CacheResults.WithLabelValues(name, "hit").Inc()
		return nil
	default:
		observability.CacheResults.WithLabelValues(name, "miss").Inc()
	}

	if err := fetch(); err != nil {
		return err
	}

	// best-effort
	if err := c.SetJSON(ctx, key, dest, ttl); err != nil {
		middleware.Logger.WarnContext(ctx, "cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// Invalidate deletes keys.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}

// ListVersion returns the current generation of a list namespace. Missing counts as zero.
func (c *Cache) ListVersion(ctx context.Context, namespace string) int64 {
	if !c.Enabled() {
		return 0
	}
	v, err := c.rdb.Get(ctx, versionKey(namespace)).Int64()
	if err != nil {
		return 0
	}
	return v
}

// BumpListVersion moves a list namespace to a new generation, orphaning every cached page of it.
func (c *Cache) BumpListVersion(ctx context.Context, namespace string) {
	if !c.Enabled() {
		return
	}
	c.rdb.Incr(ctx, versionKey(namespace))
}
