package availability

import (
	"agenda-service/internal/pkg/constvars"
	"context"

	"go.uber.org/zap"
)

// checkBlocked decides whether the whole date is vetoed for the practitioner.
// Only exceptions of kind "block" veto; other kinds are informational and never
// short-circuit slot computation. A failed lookup is treated as "no block known":
// falsely blocking a bookable day is worse than occasionally missing a block, and
// the write-time conflict check still guards the actual booking.
func (u *AvailabilityUsecase) checkBlocked(ctx context.Context, practitionerID, date string) (bool, string) {
	excs, err := u.exceptions.FindExceptionsByPractitionerAndDate(ctx, practitionerID, date)
	if err != nil {
		u.logger.Warn("exception lookup failed, assuming date not blocked",
			zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
		return false, ""
	}

	for _, e := range excs {
		if e.Kind == constvars.ExceptionKindBlock {
			return true, e.Reason
		}
	}
	return false, ""
}
