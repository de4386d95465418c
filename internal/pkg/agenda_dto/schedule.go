package agenda_dto

// AvailabilityWindow is one recurring weekly availability entry as stored on the
// agenda API. Weekday arrives in whatever representation the practitioner's record
// uses (numeric 0-6, English or Portuguese names, abbreviations, with or without
// accents); normalization happens in the availability service, never here.
type AvailabilityWindow struct {
	Weekday     string `json:"weekday"`
	StartTime   string `json:"startTime"` // HH:MM or HH:MM:SS wall clock
	EndTime     string `json:"endTime"`   // HH:MM or HH:MM:SS wall clock
	SlotMinutes *int   `json:"slotMinutes,omitempty"`
}
