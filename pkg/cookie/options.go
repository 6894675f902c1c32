package cookie

import "time"

// Option is a functional option for configuring a Jar.
type Option func(*Jar)

// WithClock sets the time source used for expiry eviction. Injectable for
// tests.
func WithClock(now func() time.Time) Option {
	return func(j *Jar) {
		if now != nil {
			j.now = now
		}
	}
}
