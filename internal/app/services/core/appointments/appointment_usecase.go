package appointments

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/agenda_dto"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// AppointmentUsecase commits bookings against the agenda API. The availability
// engine filters booked slots at read time only; two users can both be shown the
// same free slot. The serialized refetch-and-check here is the authoritative
// guard against double-booking.
type AppointmentUsecase struct {
	appointments contracts.AppointmentAgendaClient
	locker       contracts.LockerService
	config       *config.InternalConfig
	logger       *zap.Logger
	location     *time.Location
}

func NewAppointmentUsecase(
	appointments contracts.AppointmentAgendaClient,
	locker contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	location *time.Location,
) *AppointmentUsecase {
	return &AppointmentUsecase{
		appointments: appointments,
		locker:       locker,
		config:       internalConfig,
		logger:       logger,
		location:     location,
	}
}

func bookingLockKey(practitionerID string, scheduledAt time.Time, loc *time.Location) string {
	return fmt.Sprintf("booking:%s:%s", practitionerID, scheduledAt.In(loc).Format(constvars.DateLayout))
}

func (s *AppointmentUsecase) CreateAppointment(ctx context.Context, input contracts.CreateAppointmentInput) (*agenda_dto.Appointment, error) {
	lockKey := bookingLockKey(input.PractitionerID, input.ScheduledAt, s.location)
	acquired, token, err := s.locker.TryLock(ctx, lockKey, 10*time.Second)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrLockNotAcquired(errors.New("booking lock held by another request"))
	}
	defer s.locker.Unlock(ctx, lockKey, token)

	// Refetch under the lock. The caller's view of availability may be stale by
	// the time the booking lands.
	dayStart := dayStartOf(input.ScheduledAt, s.location)
	existing, err := s.appointments.FindAppointmentsByPractitionerAndRange(ctx, input.PractitionerID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		if a.ScheduledAt.Equal(input.ScheduledAt) {
			s.logger.Info("rejecting booking for already taken instant",
				zap.String(constvars.LoggingPractitionerIDKey, input.PractitionerID),
				zap.Time("scheduled_at", input.ScheduledAt),
			)
			return nil, exceptions.ErrAppointmentConflict(fmt.Errorf("instant %s already booked", input.ScheduledAt.Format(time.RFC3339)))
		}
	}

	created, err := s.appointments.CreateAppointment(ctx, &agenda_dto.Appointment{
		PractitionerID:  input.PractitionerID,
		PatientID:       input.PatientID,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		AppointmentType: input.AppointmentType,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("appointment created",
		zap.String(constvars.LoggingPractitionerIDKey, input.PractitionerID),
		zap.String("appointment_id", created.ID),
		zap.Time("scheduled_at", created.ScheduledAt),
	)
	return created, nil
}

func dayStartOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
