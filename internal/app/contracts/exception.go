package contracts

import (
	"agenda-service/internal/pkg/agenda_dto"
	"context"
)

type ExceptionAgendaClient interface {
	// FindExceptionsByPractitionerAndDate returns date-scoped overrides. Date is a
	// YYYY-MM-DD calendar date.
	FindExceptionsByPractitionerAndDate(ctx context.Context, practitionerID, date string) ([]agenda_dto.Exception, error)
}
