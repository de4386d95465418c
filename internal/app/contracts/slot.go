package contracts

import (
	"agenda-service/internal/pkg/agenda_dto"
	"context"
	"time"
)

type SlotAgendaClient interface {
	// FindSlotsByPractitionerAndRange returns the coarse slot list the agenda API
	// holds for [start, end), scoped by appointment type when non-empty.
	FindSlotsByPractitionerAndRange(ctx context.Context, practitionerID string, start, end time.Time, appointmentType string) ([]agenda_dto.BackendSlot, error)
}
