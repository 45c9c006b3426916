package legion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedDate aborts a whole ingest: week bucketing cannot proceed when a
// row's date is unknown, so there is no per-row fallback.
var ErrMalformedDate = errors.New("malformed date")

// CleanHour normalizes hour tokens like "14H", "9h" or "9" to "HH:00". Values
// that are not integer-like after stripping the H marker pass through trimmed,
// so an already normalized "14:00" comes back unchanged.
func CleanHour(raw string) string {
	s := strings.TrimSpace(strings.ReplaceAll(strings.ToUpper(raw), "H", ""))
	if s == "" || !isDigits(s) {
		return strings.TrimSpace(raw)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return fmt.Sprintf("%02d:00", n)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Source files carry day-first dates; ISO dates are unambiguous and accepted too.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
	"02/01/06",
	"2/1/06",
	"2006-01-02",
}

// ParseDate parses a date cell with day-first interpretation.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, raw)
}

// CleanScore parses a score cell. Commas and periods are both digit-group
// separators in the source data ("1,234" and "1.234" both mean 1234). Blank or
// unparsable cells count as an absence and become 0, never an error.
func CleanScore(raw string) int {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
