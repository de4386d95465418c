package controllers

import (
	"net/http"
	"strconv"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Usecase   contracts.AvailabilityUsecaseIface
	Log       *zap.Logger
	Validator *validator.Validate
}

func NewAvailabilityController(usecase contracts.AvailabilityUsecaseIface, log *zap.Logger, validate *validator.Validate) *AvailabilityController {
	return &AvailabilityController{
		Usecase:   usecase,
		Log:       log,
		Validator: validate,
	}
}

// GetAvailability answers GET /availability. A blocked date and an empty slot list
// are both 200 responses; only malformed input or infrastructure failure is an error.
func (c *AvailabilityController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := requests.AvailabilityQuery{
		PractitionerID:  query.Get("practitionerId"),
		Date:            query.Get("date"),
		AppointmentType: query.Get("appointmentType"),
	}
	if raw := query.Get("durationMinutes"); raw != "" {
		duration, err := strconv.Atoi(raw)
		if err != nil {
			utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseQueryParams(err))
			return
		}
		req.DurationMinutes = duration
	}

	if err := c.Validator.Struct(req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.BuildNewCustomError(
			err,
			constvars.StatusBadRequest,
			exceptions.FormatFirstValidationError(err),
			constvars.ErrDevInvalidRequestPayload,
		))
		return
	}

	result, err := c.Usecase.Query(r.Context(), contracts.AvailabilityQueryInput{
		PractitionerID:  req.PractitionerID,
		Date:            req.Date,
		AppointmentType: req.AppointmentType,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	// A superseded computation lost to a newer query for the same key; its slots
	// must not be presented as current.
	if result.Superseded {
		utils.BuildSuccessResponse(w, constvars.StatusOK, "availability superseded by a newer query", nil)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, "availability retrieved", result)
}
