package agenda_dto

// Exception is a date-specific override of a practitioner's weekly schedule.
// Kind "block" vetoes the whole date; "modified-hours" is informational only.
type Exception struct {
	PractitionerID string `json:"practitionerId"`
	Date           string `json:"date"` // YYYY-MM-DD calendar date, no time component
	Kind           string `json:"kind"`
	Reason         string `json:"reason,omitempty"`
}
