package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// minEpochDigits keeps short numbers such as a bare year from being read as Unix seconds.
const minEpochDigits = 9

var dateLayouts = []string{
	time.DateOnly,
	"2006/01/02 15:04",
	"2006/01/02",
	time.DateTime,
	"2006-01-02 15:04",
	time.RFC3339,
}

// ParseDate accepts calendar dates, dataset timestamps, RFC 3339 and Unix seconds.
func ParseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, &ValidationError{Field: field, Reason: "is required"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	if isEpoch(raw) {
		if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs > 0 {
			return time.Unix(int64(secs), 0).UTC(), nil
		}
	}
	return time.Time{}, &ValidationError{Field: field, Reason: fmt.Sprintf("unrecognized date %q", raw)}
}

func isEpoch(raw string) bool {
	digits, _, _ := strings.Cut(raw, ".")
	if len(digits) < minEpochDigits {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
