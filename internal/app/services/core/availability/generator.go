package availability

import (
	"agenda-service/internal/pkg/agenda_dto"
	"sort"
	"time"
)

// generatedSlot is a candidate instant produced locally, before merging with
// backend state.
type generatedSlot struct {
	Datetime    time.Time
	SlotMinutes int
}

// inferStepMinutes derives an empirical slot granularity from backend data: the
// minimum positive gap, in minutes, between consecutive backend slot timestamps
// that fall inside any of the matched windows. Returns 0 when nothing can be
// inferred.
func inferStepMinutes(backend []agenda_dto.BackendSlot, windows []anchoredWindow) int {
	var instants []time.Time
	for _, b := range backend {
		for _, w := range windows {
			if w.contains(b.Datetime) {
				instants = append(instants, b.Datetime)
				break
			}
		}
	}
	if len(instants) < 2 {
		return 0
	}
	sort.Slice(instants, func(i, j int) bool { return instants[i].Before(instants[j]) })

	min := 0
	for i := 1; i < len(instants); i++ {
		gap := int(instants[i].Sub(instants[i-1]).Minutes())
		if gap <= 0 {
			continue
		}
		if min == 0 || gap < min {
			min = gap
		}
	}
	return min
}

// resolveStep picks the generation step for one window: the window's own declared
// granularity wins, then the inferred backend step, then the configured default.
func resolveStep(w anchoredWindow, inferred, fallback int) int {
	if w.SlotMinutes > 0 {
		return w.SlotMinutes
	}
	if inferred > 0 {
		return inferred
	}
	return fallback
}

// generateForWindow emits evenly spaced instants within the window. When backend
// slots already occupy part of the window, generation resumes one step after the
// latest backend instant instead of re-anchoring at the window start; regenerating
// from the start would fabricate instants that duplicate or precede real backend
// state when backend data is partial. The last emitted instant always leaves room
// for a full step before the window closes.
func generateForWindow(w anchoredWindow, backend []agenda_dto.BackendSlot, step int) []generatedSlot {
	if step <= 0 {
		return nil
	}

	anchor := w.Start
	for _, b := range backend {
		if !w.contains(b.Datetime) {
			continue
		}
		next := b.Datetime.Add(time.Duration(step) * time.Minute)
		if next.After(anchor) {
			anchor = next
		}
	}

	stepDur := time.Duration(step) * time.Minute
	var out []generatedSlot
	for t := anchor; !t.Add(stepDur).After(w.End); t = t.Add(stepDur) {
		out = append(out, generatedSlot{Datetime: t, SlotMinutes: step})
	}
	return out
}
