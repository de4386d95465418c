package contracts

import (
	"agenda-service/internal/pkg/agenda_dto"
	"context"
	"time"
)

type AppointmentAgendaClient interface {
	// FindAppointmentsByPractitionerAndRange returns existing bookings in [start, end].
	FindAppointmentsByPractitionerAndRange(ctx context.Context, practitionerID string, start, end time.Time) ([]agenda_dto.Appointment, error)
	// CreateAppointment commits a booking on the agenda API.
	CreateAppointment(ctx context.Context, request *agenda_dto.Appointment) (*agenda_dto.Appointment, error)
}
