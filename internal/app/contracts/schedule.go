package contracts

import (
	"agenda-service/internal/pkg/agenda_dto"
	"context"
)

type ScheduleAgendaClient interface {
	// FindWindowsByPractitionerID returns the full recurring weekly schedule,
	// unfiltered by date.
	FindWindowsByPractitionerID(ctx context.Context, practitionerID string) ([]agenda_dto.AvailabilityWindow, error)
	// ListPractitionerIDs returns the ids of practitioners that own a schedule.
	// Used by the cache warm worker.
	ListPractitionerIDs(ctx context.Context) ([]string, error)
}
