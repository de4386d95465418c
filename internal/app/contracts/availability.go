package contracts

import (
	"context"
	"time"
)

// AvailabilityQueryInput identifies one availability computation. Date is a local
// calendar date; DurationMinutes is the caller's desired appointment length and may
// be zero when the schedule is expected to enforce one.
type AvailabilityQueryInput struct {
	PractitionerID  string
	Date            string // YYYY-MM-DD
	AppointmentType string
	DurationMinutes int
}

// CandidateSlot is one bookable instant after generation, merge and filtering.
type CandidateSlot struct {
	Datetime    time.Time `json:"datetime"`
	SlotMinutes int       `json:"slotMinutes"`
	Available   bool      `json:"available"`
}

// AvailabilityQueryResult is the facade's output. Blocked is a normal outcome, not
// an error; Superseded marks a computation that lost to a newer query for the same
// key and whose slots must not be shown.
type AvailabilityQueryResult struct {
	Slots                   []CandidateSlot `json:"slots"`
	Blocked                 bool            `json:"blocked"`
	BlockReason             string          `json:"blockReason,omitempty"`
	EnforcedDurationMinutes *int            `json:"enforcedDurationMinutes,omitempty"`
	Superseded              bool            `json:"-"`
}

type AvailabilityUsecaseIface interface {
	Query(ctx context.Context, input AvailabilityQueryInput) (*AvailabilityQueryResult, error)
}
