package availability

import "time"

// clock holds a local wall time (hour and minute).
type clock struct {
	H int
	M int
}

func (c clock) minuteOfDay() int {
	return c.H*60 + c.M
}

// dayWindow is one normalized recurring availability entry: a weekday plus an
// inclusive start and exclusive end wall-clock window. SlotMinutes, when set, is the
// authoritative granularity for this window and overrides any inferred step.
type dayWindow struct {
	Weekday     time.Weekday
	Start       clock
	End         clock
	SlotMinutes int // 0 means not declared
}

// anchoredWindow is a dayWindow bound to a concrete calendar date: concrete start
// and end instants at the date's local wall-clock times.
type anchoredWindow struct {
	Start       time.Time
	End         time.Time
	SlotMinutes int // 0 means not declared
}

func (w anchoredWindow) contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// instantKey is the dedup key for one exact instant; both backend and generated
// slots are normalized to UTC so equal instants collide regardless of offset.
func instantKey(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
