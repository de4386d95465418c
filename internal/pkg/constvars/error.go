package constvars

// Client-facing messages. These are the only strings that may reach an end user;
// dev messages stay in logs.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "We cannot process your request right now, please re-check your input"
	ErrClientNoSlotsAvailable              = "No slots available for this date"
	ErrClientSlotAlreadyBooked             = "The selected time is no longer available, please pick another slot"
	ErrClientServerLongRespond             = "Server is taking too long to respond, please try again later"
)

// Developer-facing messages.
const (
	ErrDevInvalidRequestPayload  = "request payload failed validation"
	ErrDevCannotParseQueryParams = "failed to parse query parameters"
	ErrDevCannotParseDate        = "failed to parse date, expected YYYY-MM-DD"
	ErrDevCannotMarshalJSON      = "failed to marshal value to JSON"
	ErrDevCreateHTTPRequest      = "failed to create HTTP request to agenda API"
	ErrDevSendHTTPRequest        = "failed to send HTTP request to agenda API"
	ErrDevDecodeAgendaResponse   = "failed to decode agenda API response for resource %s"
	ErrDevAgendaResourceFailed   = "agenda API returned an error for resource %s"
	ErrDevRedisSet               = "failed to set value on redis"
	ErrDevRedisGet               = "failed to get value from redis"
	ErrDevRedisDelete            = "failed to delete key from redis"
	ErrDevRedisSetNX             = "failed to acquire redis lock via SetNX"
	ErrDevAppointmentConflict    = "an appointment already exists at the requested instant"
	ErrDevLockNotAcquired        = "could not acquire booking day lock"
)

const ResponseUnknown = "unknown"
