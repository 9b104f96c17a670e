package allowance

import (
	"strings"
	"time"
)

// ParseDate parses "YYYY-MM-DD" without going through time.Parse layout
// handling. It returns the zero time and false on invalid input.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	y, ok1 := digits(s[0:4])
	m, ok2 := digits(s[5:7])
	d, ok3 := digits(s[8:10])
	if !ok1 || !ok2 || !ok3 || m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// Reject dates that normalised into the next month (e.g. 2025-02-30).
	if t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// ParseClock parses "HH:MM" (seconds are tolerated and ignored) into minutes
// after midnight.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 8 && s[5] == ':' {
		s = s[:5]
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h, ok1 := digits(s[0:2])
	m, ok2 := digits(s[3:5])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func parseDateTime(date, clock string) (time.Time, bool) {
	d, ok := ParseDate(date)
	if !ok {
		return time.Time{}, false
	}
	mins, ok := ParseClock(clock)
	if !ok {
		return time.Time{}, false
	}
	return d.Add(time.Duration(mins) * time.Minute), true
}

// daysBetween is the whole calendar-day difference between two dates
// produced by ParseDate.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func digits(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
