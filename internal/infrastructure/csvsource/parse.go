package csvsource

import (
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
}

// parseDate tries each accepted layout in order.
func parseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseInt returns fallback for blank input. invalid reports a non-blank value
// that is not an integer.
func parseInt(raw string, fallback int) (value int, invalid bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback, false
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return fallback, true
	}
	return n, false
}

// normalizeHeader lowercases column names and strips a UTF-8 BOM.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		out[i] = strings.ToLower(strings.TrimSpace(name))
	}
	return out
}
