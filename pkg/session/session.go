package session

import "time"

// Session is one bounded period of client activity. The manager owns a
// single live record and replaces it wholesale on renewal; callers only
// ever see value copies via Manager.Session.
type Session struct {
	// ID is an opaque correlation identifier, empty until first acquired.
	ID string

	// AcquiredAt is when ID was generated or last regenerated.
	AcquiredAt time.Time

	// RenewedAt is the last activity that refreshed the session's liveness.
	RenewedAt time.Time
}

// Started reports whether the session has an identifier assigned.
func (s Session) Started() bool {
	return s.ID != ""
}

// expired reports whether either lifetime window has been exceeded at now.
// A zero AcquiredAt or RenewedAt always classifies as expired, which is how
// corrupt persisted data self-heals into a forced renewal.
func (s Session) expired(now time.Time, maxLifetime, idleTimeout time.Duration) bool {
	return now.Sub(s.AcquiredAt) > maxLifetime || now.Sub(s.RenewedAt) > idleTimeout
}
