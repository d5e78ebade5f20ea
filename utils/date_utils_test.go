package utils

import (
	"testing"
	"time"
)

func TestParseDateFormats(t *testing.T) {
	cases := []string{
		"2024-01-15",
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00",
		"2024-01-15T10:30:00.123456",
	}
	for _, input := range cases {
		parsed, err := ParseDate(input)
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", input, err)
		}
		if parsed.Year() != 2024 || parsed.Month() != time.January || parsed.Day() != 15 {
			t.Fatalf("wrong date for %q: %v", input, parsed)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("15/01/2024"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	if _, err := ParseDate(""); err == nil {
		t.Fatalf("expected error for empty string")
	}
}

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, 3, 5, 23, 59, 0, 0, time.UTC)
	if DateKey(ts) != "2024-03-05" {
		t.Fatalf("expected 2024-03-05, got %s", DateKey(ts))
	}
}
