package availability

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/agenda_dto"
	"sort"
	"time"
)

// mergeSlots combines backend slots and generated instants into one ordered
// candidate list, deduplicated by exact instant. Backend entries are inserted
// first and win every collision: they may encode provider-side state (holds,
// manual edits) the generator cannot know. Generated entries fill the remaining
// keys as available.
func mergeSlots(backend []agenda_dto.BackendSlot, generated []generatedSlot, windows []anchoredWindow, fallbackMinutes int) []contracts.CandidateSlot {
	merged := make(map[string]contracts.CandidateSlot, len(backend)+len(generated))

	for _, b := range backend {
		minutes := fallbackMinutes
		if b.SlotMinutes != nil && *b.SlotMinutes > 0 {
			minutes = *b.SlotMinutes
		} else if m := minutesFromContainingWindow(b.Datetime, windows); m > 0 {
			minutes = m
		}
		merged[instantKey(b.Datetime)] = contracts.CandidateSlot{
			Datetime:    b.Datetime,
			SlotMinutes: minutes,
			Available:   b.Available,
		}
	}

	for _, g := range generated {
		key := instantKey(g.Datetime)
		if _, exists := merged[key]; exists {
			continue
		}
		minutes := g.SlotMinutes
		if m := minutesFromContainingWindow(g.Datetime, windows); m > 0 {
			minutes = m
		}
		merged[key] = contracts.CandidateSlot{
			Datetime:    g.Datetime,
			SlotMinutes: minutes,
			Available:   true,
		}
	}

	out := make([]contracts.CandidateSlot, 0, len(merged))
	for _, cs := range merged {
		out = append(out, cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Datetime.Before(out[j].Datetime) })
	return out
}

// minutesFromContainingWindow returns the declared granularity of the window that
// contains the instant, or 0 when no window claims it or the window declares none.
func minutesFromContainingWindow(t time.Time, windows []anchoredWindow) int {
	for _, w := range windows {
		if w.contains(t) && w.SlotMinutes > 0 {
			return w.SlotMinutes
		}
	}
	return 0
}

// resolveEnforcedDuration implements the fixed-length-slot policy: when exactly
// one matched window declares a granularity, that value is the enforced
// appointment duration for the whole query and the caller's duration input is
// overridden. When several windows declare (whether or not they agree) or none
// do, the duration stays caller-supplied.
func resolveEnforcedDuration(windows []anchoredWindow) *int {
	var declared []int
	for _, w := range windows {
		if w.SlotMinutes > 0 {
			declared = append(declared, w.SlotMinutes)
		}
	}
	if len(declared) == 1 {
		v := declared[0]
		return &v
	}
	return nil
}
