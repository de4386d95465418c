package availability

import (
	"strconv"
	"strings"
	"time"
)

// mapDayToken normalizes the heterogeneous weekday representations stored on
// practitioner records: numeric 0-6 (Sunday-Saturday), English and Portuguese
// names and abbreviations, with or without accents. Unknown tokens return false so
// the caller fails closed: a window whose weekday cannot be understood never
// matches any date.
func mapDayToken(s string) (time.Weekday, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(t); err == nil {
		if n >= 0 && n <= 6 {
			return time.Weekday(n), true
		}
		return 0, false
	}

	// Portuguese long forms carry an optional "-feira" suffix.
	t = strings.TrimSuffix(t, "-feira")

	switch t {
	case "sun", "sunday", "dom", "domingo":
		return time.Sunday, true
	case "mon", "monday", "seg", "segunda":
		return time.Monday, true
	case "tue", "tues", "tuesday", "ter", "terca", "terça":
		return time.Tuesday, true
	case "wed", "wednesday", "qua", "quarta":
		return time.Wednesday, true
	case "thu", "thur", "thurs", "thursday", "qui", "quinta":
		return time.Thursday, true
	case "fri", "friday", "sex", "sexta":
		return time.Friday, true
	case "sat", "saturday", "sab", "sáb", "sabado", "sábado":
		return time.Saturday, true
	}
	return 0, false
}

// parseClockFlex accepts HH:MM or HH:MM:SS (a dot separator also occurs in old
// records) and returns the wall clock. Seconds are ignored: slot boundaries are
// minute-grained.
func parseClockFlex(s string) (clock, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", ":")
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return clock{}, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return clock{}, false
	}
	return clock{H: h, M: m}, true
}
