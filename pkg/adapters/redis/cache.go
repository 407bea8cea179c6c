package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/aretw0/stagedash/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a cached listing or snapshot stays valid.
const DefaultTTL = 30 * time.Second

// Cache implements ports.PipelineSource by caching another source in Redis.
//
// Redis is an optimisation only: any cache failure is logged and the call
// falls through to the upstream source.
type Cache struct {
	upstream ports.PipelineSource
	client   *backend.Client
	prefix   string
	ttl      time.Duration
	logger   *slog.Logger
}

type Option func(*Cache)

// WithTTL sets the expiration for cached entries.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithLogger sets the logger used to report cache failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New creates a new Redis cache in front of upstream.
func New(upstream ports.PipelineSource, address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(upstream, rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(upstream ports.PipelineSource, client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		upstream: upstream,
		client:   client,
		prefix:   "stagedash:",
		ttl:      DefaultTTL,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cache) listKey() string {
	return c.prefix + "pipelines"
}

func (c *Cache) stateKey(name string) string {
	return c.prefix + "pipeline:" + name
}

// ListPipelines returns the cached listing, refreshing it from upstream on a miss.
func (c *Cache) ListPipelines(ctx context.Context) ([]string, error) {
	var names []string
	if c.lookup(ctx, c.listKey(), &names) {
		return names, nil
	}

	names, err := c.upstream.ListPipelines(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, c.listKey(), names)
	return names, nil
}

// PipelineState returns the cached snapshot, refreshing it from upstream on a miss.
// Unknown pipelines are never cached.
func (c *Cache) PipelineState(ctx context.Context, name string) (*domain.Pipeline, error) {
	var pipeline domain.Pipeline
	if c.lookup(ctx, c.stateKey(name), &pipeline) {
		return &pipeline, nil
	}

	p, err := c.upstream.PipelineState(ctx, name)
	if err != nil {
		return nil, err
	}
	c.store(ctx, c.stateKey(name), p)
	return p, nil
}

// Invalidate drops the cached listing and the given pipeline snapshots.
func (c *Cache) Invalidate(ctx context.Context, names ...string) error {
	keys := []string{c.listKey()}
	for _, name := range names {
		keys = append(keys, c.stateKey(name))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) lookup(ctx context.Context, key string, out any) bool {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, backend.Nil) {
			c.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(val, out); err != nil {
		c.logger.Warn("cache entry corrupted", "key", key, "error", err)
		return false
	}
	c.logger.Debug("cache hit", "key", key)
	return true
}

func (c *Cache) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("failed to marshal cache entry", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
}
