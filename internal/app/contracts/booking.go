package contracts

import (
	"agenda-service/internal/pkg/agenda_dto"
	"context"
	"time"
)

type CreateAppointmentInput struct {
	PractitionerID  string
	PatientID       string
	ScheduledAt     time.Time
	DurationMinutes int
	AppointmentType string
}

type AppointmentUsecaseIface interface {
	// CreateAppointment performs the authoritative exact-instant conflict check
	// before committing. The availability engine's filtering is read-time only and
	// can race with another booking; this check is what actually prevents
	// double-booking.
	CreateAppointment(ctx context.Context, input CreateAppointmentInput) (*agenda_dto.Appointment, error)
}
