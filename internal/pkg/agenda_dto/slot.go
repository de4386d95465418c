package agenda_dto

import "time"

// BackendSlot is a slot entry the agenda API already knows about. The list may be
// sparse or empty for a date; where an entry exists its metadata is authoritative
// because it can encode provider-side state (holds, manual edits) that local
// generation cannot know.
type BackendSlot struct {
	Datetime    time.Time `json:"datetime"`
	Available   bool      `json:"available"`
	SlotMinutes *int      `json:"slotMinutes,omitempty"`
}
