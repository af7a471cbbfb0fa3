package util

import (
	"strconv"
	"time"
)

// ParseTime tries unix seconds, RFC3339, RFC3339Nano, and the provider's
// "2006-01-02 15:04:05" layout. Returns (t, true) if any worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ISO8601 renders t as an ISO-8601 (RFC 3339) UTC string.
func ISO8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
