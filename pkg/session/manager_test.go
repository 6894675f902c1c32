package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/beacon/pkg/session"
)

// fakeCookies mimics a cookie backend: Set receives the full encoded value
// with attributes, Get returns only the value part.
type fakeCookies struct {
	values      map[string]string
	lastEncoded string
	setCalls    int
	setErr      error
}

func newFakeCookies() *fakeCookies {
	return &fakeCookies{values: map[string]string{}}
}

func (f *fakeCookies) Get(name string) (string, bool) {
	v, ok := f.values[name]
	return v, ok
}

func (f *fakeCookies) Set(name, encoded string) error {
	f.setCalls++
	f.lastEncoded = encoded
	if f.setErr != nil {
		return f.setErr
	}
	value, _, _ := strings.Cut(encoded, ";")
	f.values[name] = value
	return nil
}

type fakeStorage struct {
	values      map[string]string
	unavailable bool
	setErr      error
	setCalls    int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{values: map[string]string{}}
}

func (f *fakeStorage) Get(ctx context.Context, key string) (string, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *fakeStorage) Set(ctx context.Context, key, value string) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	return nil
}

func (f *fakeStorage) Available(ctx context.Context) bool {
	return !f.unavailable
}

// testClock is a manually advanced time source.
type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestManager_New(t *testing.T) {
	t.Parallel()

	t.Run("panics without cookie store", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { session.New() })
	})
}

func TestManager_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("mints a new session when nothing is persisted", func(t *testing.T) {
		t.Parallel()
		clock := &testClock{t: time.UnixMilli(1_000_000)}
		cookies := newFakeCookies()

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithStorage(newFakeStorage()),
			session.WithClock(clock.now),
		)

		m.Update(ctx)

		sess := m.Session()
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, clock.t, sess.AcquiredAt)
		assert.Equal(t, clock.t, sess.RenewedAt)
		assert.Equal(t, 1, cookies.setCalls)
	})

	t.Run("restores a valid session from the cookie", func(t *testing.T) {
		t.Parallel()
		clock := &testClock{t: time.UnixMilli(2000)}
		cookies := newFakeCookies()
		cookies.values["ai_session"] = "abc|1000|1000"

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithStorage(newFakeStorage()),
			session.WithClock(clock.now),
		)

		m.Update(ctx)
		assert.Equal(t, "abc", m.Session().ID)
		assert.Equal(t, int64(1000), m.Session().AcquiredAt.UnixMilli())
	})

	t.Run("falls back to durable storage only when the cookie is absent", func(t *testing.T) {
		t.Parallel()
		clock := &testClock{t: time.UnixMilli(2000)}
		storage := newFakeStorage()
		storage.values["ai_session"] = "backup|1000|1000"

		m := session.New(
			session.WithCookieStore(newFakeCookies()),
			session.WithStorage(storage),
			session.WithClock(clock.now),
		)

		m.Update(ctx)
		assert.Equal(t, "backup", m.Session().ID)
	})

	t.Run("cookie wins over durable storage", func(t *testing.T) {
		t.Parallel()
		clock := &testClock{t: time.UnixMilli(2000)}
		cookies := newFakeCookies()
		cookies.values["ai_session"] = "fromcookie|1000|1000"
		storage := newFakeStorage()
		storage.values["ai_session"] = "fromstorage|1500|1500"

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithStorage(storage),
			session.WithClock(clock.now),
		)

		m.Update(ctx)
		assert.Equal(t, "fromcookie", m.Session().ID)
	})

	t.Run("renews when the idle window is exceeded", func(t *testing.T) {
		t.Parallel()
		idle := 30 * time.Minute
		clock := &testClock{t: time.UnixMilli(1000).Add(idle + time.Millisecond)}
		cookies := newFakeCookies()
		cookies.values["ai_session"] = "abc|1000|1000"

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithStorage(newFakeStorage()),
			session.WithClock(clock.now),
			session.WithIdleTimeout(idle),
		)

		m.Update(ctx)
		sess := m.Session()
		assert.NotEmpty(t, sess.ID)
		assert.NotEqual(t, "abc", sess.ID)
		assert.Equal(t, clock.t, sess.AcquiredAt)
		assert.Equal(t, clock.t, sess.RenewedAt)
	})

	t.Run("renews when the max lifetime is exceeded despite recent activity", func(t *testing.T) {
		t.Parallel()
		clock := &testClock{t: time.UnixMilli(1000).Add(24*time.Hour + time.Millisecond)}
		cookies := newFakeCookies()
		// Renewal date is current but acquisition is a day old.
		recent := clock.t.Add(-time.Second).UnixMilli()
		cookies.values["ai_session"] = "abc|1000|" + strconv.FormatInt(recent, 10)

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithStorage(newFakeStorage()),
			session.WithClock(clock.now),
		)

		m.Update(ctx)
		assert.NotEqual(t, "abc", m.Session().ID)
	})

	t.Run("throttles keep-alive cookie writes", func(t *testing.T) {
		t.Parallel()
		clock := &testClock{t: time.UnixMilli(10_000)}
		cookies := newFakeCookies()
		cookies.values["ai_session"] = "abc|9000|9000"

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithStorage(newFakeStorage()),
			session.WithClock(clock.now),
		)

		// First call writes: no prior write timestamp exists.
		m.Update(ctx)
		require.Equal(t, 1, cookies.setCalls)
		renewedAt := m.Session().RenewedAt

		// Rapid calls inside the interval are no-ops.
		clock.advance(10 * time.Second)
		m.Update(ctx)
		clock.advance(10 * time.Second)
		m.Update(ctx)
		assert.Equal(t, 1, cookies.setCalls)
		assert.Equal(t, renewedAt, m.Session().RenewedAt)
		assert.Equal(t, "abc", m.Session().ID, "throttled calls must not renew")

		// Past the interval: exactly one write, renewal date moves to now.
		clock.advance(time.Minute)
		m.Update(ctx)
		assert.Equal(t, 2, cookies.setCalls)
		assert.Equal(t, clock.t, m.Session().RenewedAt)
		assert.Equal(t, "abc", m.Session().ID)
	})

	t.Run("malformed payload never reaches the caller", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		clock := &testClock{t: time.UnixMilli(5000)}
		cookies := newFakeCookies()
		cookies.values["ai_session"] = "abc|notanumber|2000"

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithStorage(newFakeStorage()),
			session.WithClock(clock.now),
			session.WithLogger(log),
		)

		assert.NotPanics(t, func() { m.Update(ctx) })
		assert.NotEmpty(t, m.Session().ID)
		assert.Contains(t, buf.String(), "error parsing session data")
		assert.Contains(t, buf.String(), "session.parse_error")
	})

	t.Run("zero renewal date warns and self-heals into a renewal", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		clock := &testClock{t: time.UnixMilli(5000)}
		cookies := newFakeCookies()
		cookies.values["ai_session"] = "abc|4000|0"

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithStorage(newFakeStorage()),
			session.WithClock(clock.now),
			session.WithLogger(log),
		)

		m.Update(ctx)
		assert.Contains(t, buf.String(), "renewal date is 0")
		// Zero renewal classifies as idle-expired, so a fresh id is minted.
		assert.NotEqual(t, "abc", m.Session().ID)
		assert.NotEmpty(t, m.Session().ID)
	})

	t.Run("warns when durable storage is unavailable at renewal", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		storage := newFakeStorage()
		storage.unavailable = true

		m := session.New(
			session.WithCookieStore(newFakeCookies()),
			session.WithStorage(storage),
			session.WithLogger(log),
		)

		m.Update(ctx)
		assert.NotEmpty(t, m.Session().ID)
		assert.Contains(t, buf.String(), "session.storage_unavailable")
	})

	t.Run("name prefix scopes the storage key", func(t *testing.T) {
		t.Parallel()
		clock := &testClock{t: time.UnixMilli(2000)}
		cookies := newFakeCookies()
		cookies.values["ai_sessionmyapp"] = "scoped|1000|1000"

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithClock(clock.now),
			session.WithNamePrefix("myapp"),
		)

		m.Update(ctx)
		assert.Equal(t, "scoped", m.Session().ID)
	})
}

func TestManager_CookieEncoding(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("expires is the earlier of the two windows", func(t *testing.T) {
		t.Parallel()
		clock := &testClock{t: time.UnixMilli(1_000_000)}
		cookies := newFakeCookies()

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithClock(clock.now),
			session.WithMaxLifetime(24*time.Hour),
			session.WithIdleTimeout(30*time.Minute),
		)

		m.Update(ctx)

		// Renewal window ends first for a fresh session.
		want := clock.t.Add(30 * time.Minute).UTC().Format(http.TimeFormat)
		assert.Contains(t, cookies.lastEncoded, ";expires="+want)
	})

	t.Run("domain attribute appended when configured", func(t *testing.T) {
		t.Parallel()
		cookies := newFakeCookies()

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithCookieDomain("example.com"),
		)

		m.Update(ctx)
		assert.Contains(t, cookies.lastEncoded, ";domain=example.com")
	})

	t.Run("write failure warns and does not disturb the session", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))

		cookies := newFakeCookies()
		cookies.setErr = errors.New("jar full")

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithLogger(log),
		)

		m.Update(ctx)
		assert.NotEmpty(t, m.Session().ID)
		assert.Contains(t, buf.String(), "session.cookie_write_failed")
	})
}

func TestManager_Backup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes the current session verbatim", func(t *testing.T) {
		t.Parallel()
		clock := &testClock{t: time.UnixMilli(7000)}
		cookies := newFakeCookies()
		storage := newFakeStorage()

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithStorage(storage),
			session.WithClock(clock.now),
			session.WithIDGenerator(func() string { return "fixed-id" }),
		)

		m.Update(ctx)
		cookieWrites := cookies.setCalls

		m.Backup(ctx)

		assert.Equal(t, "fixed-id|7000|7000", storage.values["ai_session"])
		assert.Equal(t, cookieWrites, cookies.setCalls, "backup must not touch the cookie")
	})

	t.Run("does not reset the write throttle", func(t *testing.T) {
		t.Parallel()
		clock := &testClock{t: time.UnixMilli(10_000)}
		cookies := newFakeCookies()
		storage := newFakeStorage()

		m := session.New(
			session.WithCookieStore(cookies),
			session.WithStorage(storage),
			session.WithClock(clock.now),
		)

		m.Update(ctx)
		require.Equal(t, 1, cookies.setCalls)

		clock.advance(30 * time.Second)
		m.Backup(ctx)
		m.Update(ctx)
		assert.Equal(t, 1, cookies.setCalls, "backup must not unthrottle the cookie write")
	})

	t.Run("no-op before the first update", func(t *testing.T) {
		t.Parallel()
		storage := newFakeStorage()

		m := session.New(
			session.WithCookieStore(newFakeCookies()),
			session.WithStorage(storage),
		)

		m.Backup(ctx)
		assert.Zero(t, storage.setCalls)
	})

	t.Run("no-op without durable storage", func(t *testing.T) {
		t.Parallel()
		m := session.New(session.WithCookieStore(newFakeCookies()))

		m.Update(ctx)
		assert.NotPanics(t, func() { m.Backup(ctx) })
	})
}

func TestManager_IndependentThrottling(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Two managers with distinct prefixes keep separate throttle state.
	clock := &testClock{t: time.UnixMilli(50_000)}
	cookiesA := newFakeCookies()
	cookiesB := newFakeCookies()

	a := session.New(session.WithCookieStore(cookiesA), session.WithClock(clock.now))
	b := session.New(session.WithCookieStore(cookiesB), session.WithClock(clock.now), session.WithNamePrefix("b"))

	a.Update(ctx)
	require.Equal(t, 1, cookiesA.setCalls)
	require.Zero(t, cookiesB.setCalls)

	clock.advance(30 * time.Second)
	b.Update(ctx)
	assert.Equal(t, 1, cookiesA.setCalls)
	assert.Equal(t, 1, cookiesB.setCalls)
}
