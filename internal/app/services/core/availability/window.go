package availability

import (
	"agenda-service/internal/pkg/agenda_dto"
	"time"

	"go.uber.org/zap"
)

// normalizeWindows converts raw availability records into dayWindows. Malformed
// records (unknown weekday, unparseable times, start >= end, non-positive
// slotMinutes) are logged and skipped so one bad record cannot take the whole
// query down.
func normalizeWindows(raw []agenda_dto.AvailabilityWindow, logger *zap.Logger) []dayWindow {
	out := make([]dayWindow, 0, len(raw))
	for i, rw := range raw {
		wd, ok := mapDayToken(rw.Weekday)
		if !ok {
			logger.Warn("skipping availability window with unrecognized weekday",
				zap.Int("index", i),
				zap.String("weekday", rw.Weekday),
			)
			continue
		}
		start, ok1 := parseClockFlex(rw.StartTime)
		end, ok2 := parseClockFlex(rw.EndTime)
		if !ok1 || !ok2 {
			logger.Warn("skipping availability window with unparseable times",
				zap.Int("index", i),
				zap.String("start_time", rw.StartTime),
				zap.String("end_time", rw.EndTime),
			)
			continue
		}
		if start.minuteOfDay() >= end.minuteOfDay() {
			logger.Warn("skipping availability window with start >= end",
				zap.Int("index", i),
				zap.String("start_time", rw.StartTime),
				zap.String("end_time", rw.EndTime),
			)
			continue
		}
		w := dayWindow{Weekday: wd, Start: start, End: end}
		if rw.SlotMinutes != nil {
			if *rw.SlotMinutes <= 0 {
				logger.Warn("skipping availability window with non-positive slotMinutes",
					zap.Int("index", i),
					zap.Int("slot_minutes", *rw.SlotMinutes),
				)
				continue
			}
			w.SlotMinutes = *rw.SlotMinutes
		}
		out = append(out, w)
	}
	return out
}

// matchWindowsForDate anchors every window whose weekday equals the target date's
// local weekday to that date's wall clock.
func matchWindowsForDate(windows []dayWindow, day time.Time, loc *time.Location) []anchoredWindow {
	var out []anchoredWindow
	weekday := day.In(loc).Weekday()
	for _, w := range windows {
		if w.Weekday != weekday {
			continue
		}
		out = append(out, anchoredWindow{
			Start:       atClock(day, w.Start.H, w.Start.M, loc),
			End:         atClock(day, w.End.H, w.End.M, loc),
			SlotMinutes: w.SlotMinutes,
		})
	}
	return out
}

// atClock returns the time on 'day' at hour:minute in the given timezone.
func atClock(day time.Time, h, m int, loc *time.Location) time.Time {
	d := day.In(loc)
	y, mo, dd := d.Date()
	return time.Date(y, mo, dd, h, m, 0, 0, loc)
}
