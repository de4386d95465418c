package requests

// CreateAppointment is the POST /appointments payload. ScheduledAt must be RFC3339
// with an explicit offset so the booked wall-clock time is unambiguous.
type CreateAppointment struct {
	PractitionerID  string `json:"practitionerId" validate:"required"`
	PatientID       string `json:"patientId" validate:"required"`
	ScheduledAt     string `json:"scheduledAt" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0,lte=480"`
	AppointmentType string `json:"appointmentType" validate:"required"`
}
