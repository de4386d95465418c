package agenda_dto

import "time"

// Appointment is an existing booking on the agenda API. The availability engine
// reads these only for their ScheduledAt instants; it never mutates them.
type Appointment struct {
	ID              string    `json:"id,omitempty"`
	PractitionerID  string    `json:"practitionerId"`
	PatientID       string    `json:"patientId,omitempty"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes,omitempty"`
	AppointmentType string    `json:"appointmentType,omitempty"`
}
