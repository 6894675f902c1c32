// Package session manages the client-side session identifier used to
// correlate telemetry events into bounded periods of activity.
//
// A Manager owns a single Session record and keeps it current across two
// time windows: a maximum lifetime since the identifier was acquired
// (default 24h) and a maximum inactivity gap since the last renewal
// (default 30m). Crossing either window forces a renewal that replaces the
// record wholesale with a freshly minted identifier. Between renewals,
// keep-alive writes to the primary backend are throttled to at most one
// per minute so high-frequency telemetry does not translate into
// high-frequency storage writes.
//
// # Architecture
//
// State is persisted as a flat "id|acquisition|renewal" triple (decimal
// millisecond timestamps) under a shared key in two backends: a CookieStore
// as the primary source and an optional durable Storage as a recovery
// fallback for when the cookie is evicted before the session naturally
// expires. On first use the Manager restores from the cookie, falls back to
// durable storage, and mints a new session only when neither backend has
// usable state.
//
//	┌──────────┐  Update / Backup  ┌─────────────┐
//	│ Pipeline │ ────────────────► │   Manager   │
//	└──────────┘                   └─────────────┘
//	                                 │         │
//	                      primary    ▼         ▼    fallback
//	                     ┌─────────────┐   ┌─────────┐
//	                     │ CookieStore │   │ Storage │
//	                     └─────────────┘   └─────────┘
//
// # Usage
//
//	import (
//	    "github.com/dmitrymomot/beacon/pkg/cookie"
//	    "github.com/dmitrymomot/beacon/pkg/session"
//	    "github.com/dmitrymomot/beacon/pkg/storage"
//	)
//
//	manager := session.New(
//	    session.WithCookieStore(cookie.NewJar()),
//	    session.WithStorage(storage.NewMemory()),
//	)
//
//	func emit(ctx context.Context, event Event) {
//	    manager.Update(ctx)
//	    event.SessionID = manager.Session().ID
//	    // ...
//	}
//
// # Error Handling
//
// No operation ever returns or throws an error to the caller. Malformed
// persisted data is recovered field by field and logged at Error level; a
// missing or zero renewal timestamp is logged at Warn level and self-heals
// through the normal expiry math; an unavailable durable backend is logged
// at Warn level at renewal time. The only observable effect of any failure
// is degraded session-duration accuracy. After Update returns, Session().ID
// is always non-empty.
//
// # Concurrency
//
// Manager holds no locks and must be driven from a single goroutine; the
// beacon Tracker does exactly that. Exactly one Manager per storage key
// should exist in a process.
package session
