package availability

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/agenda_dto"
	"agenda-service/internal/pkg/constvars"
	"time"
)

// The three filters below are deliberately separate and order-preserving; getting
// any of them wrong silently reintroduces double-booking. Each takes and returns
// an ascending candidate list.

// filterPast drops candidates that a user could no longer book. A past date
// yields nothing; on today's date a slot must start at least bufferMinutes after
// the current local time; future dates pass unfiltered. Comparison is by local
// time-of-day in loc.
func filterPast(slots []contracts.CandidateSlot, day, now time.Time, loc *time.Location, bufferMinutes int) []contracts.CandidateSlot {
	nowLocal := now.In(loc)
	dayLocal := day.In(loc)

	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, loc)
	queried := time.Date(dayLocal.Year(), dayLocal.Month(), dayLocal.Day(), 0, 0, 0, 0, loc)

	if queried.Before(today) {
		return nil
	}
	if queried.After(today) {
		return slots
	}

	cutoff := nowLocal.Hour()*60 + nowLocal.Minute() + bufferMinutes
	out := make([]contracts.CandidateSlot, 0, len(slots))
	for _, s := range slots {
		local := s.Datetime.In(loc)
		if local.Hour()*60+local.Minute() < cutoff {
			continue
		}
		out = append(out, s)
	}
	return out
}

// filterBooked drops candidates whose local wall-clock time collides with an
// existing appointment. The key is "HH:MM" local time-of-day, not the exact
// instant, so duration mismatches between generated slots and real bookings still
// collide correctly.
func filterBooked(slots []contracts.CandidateSlot, appointments []agenda_dto.Appointment, loc *time.Location) []contracts.CandidateSlot {
	if len(appointments) == 0 {
		return slots
	}
	booked := make(map[string]struct{}, len(appointments))
	for _, a := range appointments {
		booked[a.ScheduledAt.In(loc).Format(constvars.ClockLayout)] = struct{}{}
	}

	out := make([]contracts.CandidateSlot, 0, len(slots))
	for _, s := range slots {
		if _, taken := booked[s.Datetime.In(loc).Format(constvars.ClockLayout)]; taken {
			continue
		}
		out = append(out, s)
	}
	return out
}

// filterDurationFit keeps a candidate only when the full requested appointment
// fits before some matched window closes. A slot that starts late enough to spill
// past closing time is excluded even though its bare start instant looked
// available. Callers apply this only when a duration is known and at least one
// window matched.
func filterDurationFit(slots []contracts.CandidateSlot, windows []anchoredWindow, durationMinutes int) []contracts.CandidateSlot {
	dur := time.Duration(durationMinutes) * time.Minute
	out := make([]contracts.CandidateSlot, 0, len(slots))
	for _, s := range slots {
		for _, w := range windows {
			if w.contains(s.Datetime) && !s.Datetime.Add(dur).After(w.End) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
