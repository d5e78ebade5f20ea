package utils

import "time"

// ParseDate parses a date string - tries multiple formats since clients send
// anything from plain ISO dates to full RFC3339 timestamps.
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
	}
	var lastErr error
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// DateKey normalizes a timestamp to its calendar-date key, used for
// date-indexed joins and lookups.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
