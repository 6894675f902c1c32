package storage

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/beacon/pkg/redis"
)

// Redis is a durable key-value store backed by a Redis server, for
// telemetry clients whose local disk is not trustworthy or shared across
// hosts behind one logical client identity.
//
// Values carry no TTL by default: the session layer owns expiry semantics
// and durable storage is only ever a recovery fallback. A housekeeping TTL
// can be opted into to keep abandoned keys from accumulating.
type Redis struct {
	client    goredis.UniversalClient
	keyPrefix string
	ttl       time.Duration
}

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithKeyPrefix namespaces every key, so several applications can share one
// Redis database.
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.keyPrefix = prefix
	}
}

// WithTTL sets a housekeeping expiry on written keys. Zero (the default)
// means keys live until overwritten.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// NewRedis wraps an existing client.
func NewRedis(client goredis.UniversalClient, opts ...RedisOption) *Redis {
	if client == nil {
		panic("storage: redis client cannot be nil")
	}

	r := &Redis{client: client}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRedisFromConfig connects with retry via the redis helper package and
// wraps the resulting client.
func NewRedisFromConfig(ctx context.Context, cfg redis.Config, opts ...RedisOption) (*Redis, error) {
	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewRedis(client, opts...), nil
}

// Get returns the value for key; a missing key reports absent.
func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	v, err := r.client.Get(ctx, r.keyPrefix+key).Result()
	if err != nil {
		// redis.Nil and transport errors alike read as absent; the session
		// layer treats missing data as first-visit state.
		return "", false
	}
	return v, true
}

// Set stores value under key.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.keyPrefix+key, value, r.ttl).Err()
}

// Available reports whether the server answers PING.
func (r *Redis) Available(ctx context.Context) bool {
	return r.client.Ping(ctx).Err() == nil
}

// Close terminates the underlying connection.
func (r *Redis) Close() error {
	return r.client.Close()
}
