package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// fieldDelimiter joins the three wire fields. No escaping is performed; the
// id generator guarantees its output never contains it.
const fieldDelimiter = "|"

// decodeResult reports how a persisted triple decoded. A non-nil Err means
// at least one timestamp field was present but not coercible; the session
// returned alongside still carries every field that did decode, because
// fields are coerced independently of each other.
type decodeResult struct {
	// Err aggregates per-field coercion failures, nil when fully parsed.
	Err error

	// RenewalZero is set when the renewal field was present but resolved to
	// the zero time. Advisory only: the next Update classifies a zero
	// renewal as expired and renews.
	RenewalZero bool
}

// encodeSession renders the fixed id|acquisition|renewal triple with
// timestamps as decimal milliseconds since epoch. Zero times encode as "0".
func encodeSession(s Session) string {
	var b strings.Builder
	b.WriteString(s.ID)
	b.WriteString(fieldDelimiter)
	b.WriteString(encodeTimestamp(s.AcquiredAt))
	b.WriteString(fieldDelimiter)
	b.WriteString(encodeTimestamp(s.RenewedAt))
	return b.String()
}

func encodeTimestamp(t time.Time) string {
	if t.IsZero() {
		return "0"
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// decodeSession parses a persisted triple back into a Session. Absent
// trailing fields stay unset; present but non-positive or malformed
// timestamps normalize to the zero time. Malformed fields are reported via
// the result, never returned as an error to halt on.
func decodeSession(raw string) (Session, decodeResult) {
	var (
		s   Session
		res decodeResult
	)

	fields := strings.Split(raw, fieldDelimiter)
	s.ID = fields[0]

	if len(fields) > 1 {
		t, err := decodeTimestamp(fields[1])
		if err != nil {
			res.Err = errors.Join(res.Err, fmt.Errorf("acquisition date: %w", err))
		}
		s.AcquiredAt = t
	}

	if len(fields) > 2 {
		t, err := decodeTimestamp(fields[2])
		if err != nil {
			res.Err = errors.Join(res.Err, fmt.Errorf("renewal date: %w", err))
		}
		s.RenewedAt = t
		res.RenewalZero = t.IsZero()
	}

	return s, res
}

// decodeTimestamp coerces a decimal millisecond field. Non-positive values
// normalize silently to the zero time; unparsable values normalize too but
// surface the parse error for diagnostic logging.
func decodeTimestamp(field string) (time.Time, error) {
	ms, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return time.Time{}, errors.Join(ErrMalformedTimestamp, err)
	}
	if ms <= 0 {
		return time.Time{}, nil
	}
	return time.UnixMilli(ms), nil
}
