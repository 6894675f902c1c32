// Package redis provides connection helpers for the Redis-backed durable
// storage option.
//
// The package wraps the go-redis client and adds:
//
//   - A robust Connect that retries the connection using the supplied
//     configuration.
//   - A Healthcheck closure for liveness / readiness probes.
//
// Configuration is described by the Config struct whose fields can be
// populated from BEACON_REDIS_* environment variables via the config
// package.
//
// # Usage
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    // handle error, probably terminate the application
//	}
//	defer client.Close()
//
// Most applications reach this package indirectly through
// storage.NewRedisFromConfig.
//
// # Errors
//
// The package defines sentinel errors (ErrInvalidConnectionURL, ErrNotReady,
// ErrHealthcheckFailed) that wrap the underlying go-redis errors using
// errors.Join, so they compare with errors.Is and unwrap cleanly.
package redis
