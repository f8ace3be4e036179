package exercise

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	logDateLayout  = "2006-01-02"
	fullDateLayout = "Mon Jan 02 2006"
)

var ErrInvalidDate = errors.New("invalid date")

// Layouts accepted for client supplied dates. Values without an offset are
// read as UTC.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01",
	"2006",
	"Mon Jan 02 2006",
	"Mon Jan 2 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"January 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/2006",
	"1/2/2006",
	time.RFC1123,
	time.RFC1123Z,
}

func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// FormatLogDate renders the calendar date of t, e.g. 2023-01-05.
func FormatLogDate(t time.Time) string {
	return t.UTC().Format(logDateLayout)
}

// FormatFullDate renders t the way the add endpoint reports it, e.g.
// Thu Jan 05 2023.
func FormatFullDate(t time.Time) string {
	return t.UTC().Format(fullDateLayout)
}

// ParseLimit reads the leading integer of s. Anything that does not start
// with digits, and any value below one, means no limit.
func ParseLimit(s string) int64 {
	s = strings.TrimSpace(s)
	negative := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
