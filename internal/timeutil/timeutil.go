package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// DefaultTime is what To24Hour falls back to for empty input. Callers
// treat it as a real default (the first morning slot), not an error.
const DefaultTime = "09:00:00"

// To24Hour normalizes a time string to "HH:MM:SS". Input may already be
// 24-hour ("9:30", "09:30:00") or 12-hour ("2:15 PM"); inputs carrying
// neither AM nor PM are treated as 24-hour.
func To24Hour(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTime
	}

	upper := strings.ToUpper(s)
	hasAM := strings.Contains(upper, "AM")
	hasPM := strings.Contains(upper, "PM")

	if !hasAM && !hasPM {
		hour, minute, sec, ok := splitClock(s)
		if !ok || hour < 0 || hour > 23 {
			return DefaultTime
		}
		return fmt.Sprintf("%02d:%s:%s", hour, minute, sec)
	}

	fields := strings.Fields(upper)
	if len(fields) != 2 {
		return DefaultTime
	}

	hour, minute, sec, ok := splitClock(fields[0])
	if !ok || hour < 1 || hour > 12 {
		return DefaultTime
	}

	switch fields[1] {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	default:
		return DefaultTime
	}

	return fmt.Sprintf("%02d:%s:%s", hour, minute, sec)
}

// To12Hour renders a 24-hour "HH:MM[:SS]" string as "HH:MM AM/PM".
// Seconds are dropped. Returns "" for unparseable input.
func To12Hour(s string) string {
	hour, minute, _, ok := splitClock(strings.TrimSpace(s))
	if !ok || hour < 0 || hour > 23 {
		return ""
	}

	modifier := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		modifier = "PM"
	case hour > 12:
		hour -= 12
		modifier = "PM"
	}

	return fmt.Sprintf("%02d:%s %s", hour, minute, modifier)
}

// splitClock breaks "h:mm[:ss]" into its parts, zero-padding minute
// and defaulting seconds to "00".
func splitClock(s string) (hour int, minute, sec string, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, "", "", false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, "", "", false
	}

	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || m < 0 || m > 59 {
		return 0, "", "", false
	}
	minute = fmt.Sprintf("%02d", m)

	sec = "00"
	if len(parts) == 3 {
		n, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || n < 0 || n > 59 {
			return 0, "", "", false
		}
		sec = fmt.Sprintf("%02d", n)
	}

	return hour, minute, sec, true
}

// ParseDate parses a canonical "YYYY-MM-DD" string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders t as a canonical "YYYY-MM-DD" string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
