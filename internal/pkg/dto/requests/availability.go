package requests

// AvailabilityQuery is the GET /availability query string decoded into a struct.
type AvailabilityQuery struct {
	PractitionerID  string `json:"practitionerId" validate:"required"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	AppointmentType string `json:"appointmentType"`
	DurationMinutes int    `json:"durationMinutes" validate:"gte=0,lte=480"`
}
