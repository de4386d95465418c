package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourcePractitioner = "Practitioner"
	ResourceSchedule     = "Schedule"
	ResourceSlot         = "Slot"
	ResourceException    = "Exception"
	ResourceAppointment  = "Appointment"
)

// Exception kinds recognized on the agenda API. Only "block" vetoes a whole date;
// "modified-hours" is informational.
const (
	ExceptionKindBlock         = "block"
	ExceptionKindModifiedHours = "modified-hours"
)

const (
	// DateLayout is the calendar-date wire format used across the agenda API.
	DateLayout = "2006-01-02"
	// ClockLayout is the local wall-clock key used when comparing booked times.
	ClockLayout = "15:04"
)
