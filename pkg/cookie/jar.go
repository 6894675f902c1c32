package cookie

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sync"
	"time"
)

// entry is one stored cookie. Expires and Domain come from the attributes
// embedded in the encoded value passed to Set.
type entry struct {
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
	Domain  string    `json:"domain,omitempty"`
}

// Jar is a local cookie store standing in for the browser cookie jar on
// non-browser telemetry clients. It understands the cookie-string format on
// writes and enforces the embedded expiry on reads, evicting entries lazily
// once the clock passes their expires attribute.
type Jar struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
	path    string
}

// NewJar creates an in-memory jar. State lives for the process lifetime,
// the moral equivalent of a browser session cookie store.
func NewJar(opts ...Option) *Jar {
	j := &Jar{
		entries: make(map[string]entry),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// NewFileJar creates a jar persisted as a JSON file at path, so cookies
// survive process restarts the way browser cookies survive page loads. A
// missing file is an empty jar; an unreadable or corrupt file fails
// construction with ErrCorruptJar.
func NewFileJar(path string, opts ...Option) (*Jar, error) {
	j := NewJar(opts...)
	j.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return j, nil
	}
	if err != nil {
		return nil, errors.Join(ErrCorruptJar, err)
	}
	if err := json.Unmarshal(data, &j.entries); err != nil {
		return nil, errors.Join(ErrCorruptJar, err)
	}

	return j, nil
}

// Set stores a cookie from its encoded form: "value" optionally followed by
// ";expires=<RFC1123 GMT>" and ";domain=<host>" attributes, the same string
// a browser would receive in a Set-Cookie header.
func (j *Jar) Set(name, encoded string) error {
	c, err := http.ParseSetCookie(name + "=" + encoded)
	if err != nil {
		return errors.Join(ErrInvalidCookie, err)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries[name] = entry{
		Value:   c.Value,
		Expires: c.Expires,
		Domain:  c.Domain,
	}

	return j.persistLocked()
}

// Get returns the cookie value by name. Entries whose expires attribute has
// passed are evicted and reported as absent, so callers never observe a
// cookie that has outlived its session.
func (j *Jar) Get(name string) (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	e, ok := j.entries[name]
	if !ok {
		return "", false
	}

	if !e.Expires.IsZero() && j.now().After(e.Expires) {
		delete(j.entries, name)
		_ = j.persistLocked()
		return "", false
	}

	return e.Value, true
}

// Delete removes a cookie by name.
func (j *Jar) Delete(name string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	delete(j.entries, name)
	return j.persistLocked()
}

// Len reports the number of live entries, evicted ones included until their
// next read.
func (j *Jar) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}

// persistLocked writes the jar through to disk for file-backed jars.
// Callers must hold j.mu.
func (j *Jar) persistLocked() error {
	if j.path == "" {
		return nil
	}

	data, err := json.Marshal(j.entries)
	if err != nil {
		return err
	}
	return os.WriteFile(j.path, data, 0o600)
}
