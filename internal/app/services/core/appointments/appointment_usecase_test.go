package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/agenda_dto"
	"agenda-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAgendaClient struct {
	existing  []agenda_dto.Appointment
	findErr   error
	created   *agenda_dto.Appointment
	createErr error
}

func (s *stubAgendaClient) FindAppointmentsByPractitionerAndRange(ctx context.Context, practitionerID string, start, end time.Time) ([]agenda_dto.Appointment, error) {
	return s.existing, s.findErr
}

func (s *stubAgendaClient) CreateAppointment(ctx context.Context, request *agenda_dto.Appointment) (*agenda_dto.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *request
	created.ID = "appt-1"
	s.created = &created
	return &created, nil
}

type stubLocker struct {
	acquired  bool
	lockErr   error
	unlocked  bool
	lockedKey string
}

func (s *stubLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	s.lockedKey = key
	return s.acquired, "token", s.lockErr
}

func (s *stubLocker) Unlock(ctx context.Context, key, lockValue string) error {
	s.unlocked = true
	return nil
}

var testLoc = time.FixedZone("BRT", -3*60*60)

func newUsecase(client *stubAgendaClient, locker *stubLocker) *AppointmentUsecase {
	return NewAppointmentUsecase(client, locker, &config.InternalConfig{}, zap.NewNop(), testLoc)
}

func bookingInput(scheduledAt time.Time) contracts.CreateAppointmentInput {
	return contracts.CreateAppointmentInput{
		PractitionerID:  "prac-1",
		PatientID:       "pat-1",
		ScheduledAt:     scheduledAt,
		DurationMinutes: 30,
		AppointmentType: "consulta",
	}
}

func TestCreateAppointment(t *testing.T) {
	scheduledAt := time.Date(2026, 3, 2, 10, 0, 0, 0, testLoc)

	t.Run("books a free instant and releases the lock", func(t *testing.T) {
		client := &stubAgendaClient{}
		locker := &stubLocker{acquired: true}

		created, err := newUsecase(client, locker).CreateAppointment(context.Background(), bookingInput(scheduledAt))

		require.NoError(t, err)
		assert.Equal(t, "appt-1", created.ID)
		assert.True(t, created.ScheduledAt.Equal(scheduledAt))
		assert.True(t, locker.unlocked)
		assert.Contains(t, locker.lockedKey, "2026-03-02")
	})

	t.Run("rejects an instant that is already taken", func(t *testing.T) {
		client := &stubAgendaClient{
			existing: []agenda_dto.Appointment{{ScheduledAt: scheduledAt}},
		}
		locker := &stubLocker{acquired: true}

		_, err := newUsecase(client, locker).CreateAppointment(context.Background(), bookingInput(scheduledAt))

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
		assert.Nil(t, client.created, "nothing may be committed after a conflict")
	})

	t.Run("same instant in a different offset still conflicts", func(t *testing.T) {
		client := &stubAgendaClient{
			existing: []agenda_dto.Appointment{{ScheduledAt: scheduledAt.UTC()}},
		}
		locker := &stubLocker{acquired: true}

		_, err := newUsecase(client, locker).CreateAppointment(context.Background(), bookingInput(scheduledAt))
		assert.Error(t, err)
	})

	t.Run("unacquired lock aborts the booking", func(t *testing.T) {
		client := &stubAgendaClient{}
		locker := &stubLocker{acquired: false}

		_, err := newUsecase(client, locker).CreateAppointment(context.Background(), bookingInput(scheduledAt))

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
		assert.Nil(t, client.created)
	})

	t.Run("refetch failure aborts instead of booking blind", func(t *testing.T) {
		client := &stubAgendaClient{findErr: errors.New("agenda down")}
		locker := &stubLocker{acquired: true}

		_, err := newUsecase(client, locker).CreateAppointment(context.Background(), bookingInput(scheduledAt))

		require.Error(t, err)
		assert.Nil(t, client.created)
	})
}
