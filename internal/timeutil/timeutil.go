package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// GameDateLayout is the day.month.year form used by the federation APIs.
const GameDateLayout = "02.01.2006"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatGameDate formats a time as DD.MM.YYYY in its current location.
func FormatGameDate(t time.Time) string {
	return t.Format(GameDateLayout)
}

// ParseGameDate parses a DD.MM.YYYY string into local midnight of loc.
// Single-digit day and month parts are accepted ("3.1.2024").
func ParseGameDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	parts := strings.Split(strings.TrimSpace(value), ".")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("game date %q: expected DD.MM.YYYY", value)
	}
	for _, part := range parts {
		if !allDigits(part) {
			return time.Time{}, fmt.Errorf("game date %q: non-numeric component", value)
		}
	}
	day, dErr := strconv.Atoi(parts[0])
	month, mErr := strconv.Atoi(parts[1])
	year, yErr := strconv.Atoi(parts[2])
	if dErr != nil || mErr != nil || yErr != nil {
		return time.Time{}, fmt.Errorf("game date %q: non-numeric component", value)
	}
	if len(parts[2]) != 4 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("game date %q: out of range", value)
	}
	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	// time.Date normalizes 31.02 to 02.03; reject instead of silently shifting.
	if parsed.Day() != day || parsed.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("game date %q: no such day", value)
	}
	return parsed, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Midnight returns local midnight of t in loc.
func Midnight(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
