package session

import (
	"context"
	"time"
)

// CookieStore is the primary persistence backend. The encoded value passed
// to Set already embeds the ";expires=" attribute and the optional
// ";domain=" attribute in cookie-string form; the store is only expected to
// keep the value addressable by name and honor the expiry on reads.
type CookieStore interface {
	Get(name string) (string, bool)
	Set(name, encoded string) error
}

// Storage is the secondary, durable key-value backend. It carries no expiry
// metadata; values live until overwritten. Available is consulted only to
// decide whether to log a degradation warning at renewal time and never
// gates any operation.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
	Available(ctx context.Context) bool
}

// Clock supplies the current time. Injectable for tests.
type Clock func() time.Time

// IDGenerator mints opaque unique identifiers. The output must never
// contain the '|' wire delimiter; this is the generator's contract and is
// not re-validated here.
type IDGenerator func() string
