package optimizer

import (
	"math"
	"regexp"
	"strconv"
)

// Seconds are accepted but not counted.
var durationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:\d+S)?$`)

// ParseDuration converts an ISO-8601 style duration such as "PT2H30M"
// into whole minutes. Missing hour or minute parts count as zero and
// strings that do not match the pattern, or overflow an int, yield 0.
func ParseDuration(s string) int {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, ok := atoiOrZero(m[1])
	if !ok {
		return 0
	}
	minutes, ok := atoiOrZero(m[2])
	if !ok {
		return 0
	}
	if hours > (math.MaxInt-minutes)/60 {
		return 0
	}
	return hours*60 + minutes
}

func atoiOrZero(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseClock parses "HH:MM" into hour and minute.
func parseClock(s string) (int, int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, false
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// ValidClock reports whether s is a usable "HH:MM" arrival limit
func ValidClock(s string) bool {
	_, _, ok := parseClock(s)
	return ok
}
