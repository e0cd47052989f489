package models

import (
	"fmt"
	"strings"
	"time"
)

var deadlineLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDeadline parses an ISO-8601 deadline and normalizes it to UTC.
// Timestamps without a zone are read as UTC.
func ParseDeadline(deadline string) (time.Time, error) {
	s := strings.TrimSpace(deadline)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty deadline")
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized deadline format %q", deadline)
}

// DeadlineDate returns the YYYY-MM-DD prefix of a deadline
func DeadlineDate(deadline string) (string, bool) {
	s := strings.TrimSpace(deadline)
	if len(s) < 10 {
		return "", false
	}
	date := s[:10]
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", false
	}
	return date, true
}
