package timeutils

import (
	"time"
)

const (
	mediumLayout = "Jan 2, 2006"
	shortLayout  = "1/2/06"
)

// FormatMedium formats a date like "Mar 5, 2024".
func FormatMedium(t time.Time) string {
	return t.UTC().Format(mediumLayout)
}

// FormatShort formats a date like "3/5/24".
func FormatShort(t time.Time) string {
	return t.UTC().Format(shortLayout)
}

// ParseDate parses either a bare date (2006-01-02) or an RFC 3339 timestamp.
// Bare dates are interpreted as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
