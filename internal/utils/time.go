package utils

import (
	"strings"
	"time"
)

// Wire timestamps are ISO-8601 / RFC3339 in UTC.

// NowISO returns the current UTC time in wire format.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ParseISO parses a wire timestamp, tolerating a missing offset.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
