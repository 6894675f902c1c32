package session

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Manager owns the lifecycle of one client-side session: lazy
// initialization from persisted state, renewal on expiry, throttled
// keep-alive cookie writes, and durable-storage checkpoints.
//
// Manager is designed to be driven by a single owning pipeline on one
// goroutine; it holds no internal locks. Exactly one Manager per storage
// key should exist in a given process.
type Manager struct {
	config  Config
	cookies CookieStore
	storage Storage
	now     Clock
	newID   IDGenerator
	log     *slog.Logger

	session Session

	// cookieUpdatedAt throttles keep-alive cookie writes. Per instance, so
	// two managers with distinct keys throttle independently. Zero until
	// the first write.
	cookieUpdatedAt time.Time

	initialized bool
}

// New creates a session manager with the given options. A cookie store is
// required; everything else has a default.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		now:    time.Now,
		newID:  uuid.NewString,
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.cookies == nil {
		// Fail fast on misconfiguration: without the primary backend every
		// page load would silently mint a fresh session.
		panic("session: cookie store is required")
	}

	m.config = m.config.normalize()

	return m
}

// Update brings the session current. On first use it initializes from the
// cookie backend, falling back to durable storage, and mints a new session
// if neither has usable state. On subsequent calls it renews when either
// expiry window is exceeded, or performs a throttled keep-alive cookie
// write otherwise. After Update returns, Session().ID is always non-empty.
//
// Idempotent under rapid repeated calls: within cookieUpdateInterval of the
// last write a still-valid session is left untouched.
func (m *Manager) Update(ctx context.Context) {
	if !m.initialized {
		m.initialize(ctx)
		m.initialized = true
	}

	now := m.now()

	if !m.session.Started() || m.session.expired(now, m.config.MaxLifetime, m.config.IdleTimeout) {
		// Renewal on activity is never starved by the write throttle.
		m.renew(ctx, now)
		return
	}

	if m.cookieUpdatedAt.IsZero() || now.Sub(m.cookieUpdatedAt) > cookieUpdateInterval {
		m.session.RenewedAt = now
		m.writeCookie(now)
	}
}

// Backup persists the current session verbatim to durable storage as a
// recovery checkpoint for cookie eviction. It ignores expiry state, leaves
// the cookie and its write throttle untouched, and silently no-ops when no
// durable storage is configured or no session has started yet.
func (m *Manager) Backup(ctx context.Context) {
	if m.storage == nil || !m.session.Started() {
		return
	}

	if err := m.storage.Set(ctx, m.config.storageKey(), encodeSession(m.session)); err != nil {
		m.log.Warn("failed to back up session to durable storage",
			slog.String("code", "session.backup_failed"),
			slog.Any("error", err),
		)
	}
}

// Session returns a read-only copy of the current record for inclusion in
// telemetry envelopes. Call Update first to guarantee the ID is current.
func (m *Manager) Session() Session {
	return m.session
}

// initialize restores persisted state: cookie first, durable storage
// strictly as a fallback when the cookie yielded no identifier. Leaves the
// session unset when neither backend has usable data; Update then mints a
// fresh session via renewal.
func (m *Manager) initialize(ctx context.Context) {
	if raw, ok := m.cookies.Get(m.config.storageKey()); ok {
		m.restore(raw)
	}

	if m.session.Started() || m.storage == nil {
		return
	}

	if raw, ok := m.storage.Get(ctx, m.config.storageKey()); ok {
		m.restore(raw)
	}
}

// restore decodes one persisted triple into the live record, logging
// decode diagnostics without propagating them.
func (m *Manager) restore(raw string) {
	s, res := decodeSession(raw)
	m.session = s

	if res.Err != nil {
		m.log.Error("error parsing session data, session will be reset",
			slog.String("code", "session.parse_error"),
			slog.Any("error", res.Err),
		)
	}
	if res.RenewalZero {
		// Advisory only: the expiry math against a zero renewal date
		// classifies the session as expired on the next Update.
		m.log.Warn("renewal date is 0, session will be reset",
			slog.String("code", "session.renewal_date_zero"),
		)
	}
}

// renew replaces the session wholesale with a freshly minted one and
// persists it to the cookie backend immediately, bypassing the throttle.
func (m *Manager) renew(ctx context.Context, now time.Time) {
	m.session = Session{
		ID:         m.newID(),
		AcquiredAt: now,
		RenewedAt:  now,
	}

	m.writeCookie(now)

	// Degradation signal only; renewal proceeds regardless.
	if m.storage == nil || !m.storage.Available(ctx) {
		m.log.Warn("durable storage unavailable, session duration may be inaccurate if the cookie is evicted",
			slog.String("code", "session.storage_unavailable"),
		)
	}
}

// writeCookie persists the triple with an expires attribute set to the
// earlier of the two expiry windows, then records the write time as the
// throttle reference point. A failed write still advances the throttle so
// a misbehaving backend is retried at most once per interval.
func (m *Manager) writeCookie(now time.Time) {
	encoded := encodeSession(m.session) + ";expires=" + m.cookieExpiry().UTC().Format(http.TimeFormat)
	if m.config.CookieDomain != "" {
		encoded += ";domain=" + m.config.CookieDomain
	}

	if err := m.cookies.Set(m.config.storageKey(), encoded); err != nil {
		m.log.Warn("failed to write session cookie",
			slog.String("code", "session.cookie_write_failed"),
			slog.Any("error", err),
		)
	}

	m.cookieUpdatedAt = now
}

// cookieExpiry returns the earlier of the acquisition and renewal window
// ends, so the cookie on the wire never outlives the session it encodes.
func (m *Manager) cookieExpiry() time.Time {
	acquisitionExpiry := m.session.AcquiredAt.Add(m.config.MaxLifetime)
	renewalExpiry := m.session.RenewedAt.Add(m.config.IdleTimeout)

	if acquisitionExpiry.Before(renewalExpiry) {
		return acquisitionExpiry
	}
	return renewalExpiry
}
