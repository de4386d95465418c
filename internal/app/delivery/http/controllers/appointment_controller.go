package controllers

import (
	"net/http"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Usecase   contracts.AppointmentUsecaseIface
	Log       *zap.Logger
	Validator *validator.Validate
}

func NewAppointmentController(usecase contracts.AppointmentUsecaseIface, log *zap.Logger, validate *validator.Validate) *AppointmentController {
	return &AppointmentController{
		Usecase:   usecase,
		Log:       log,
		Validator: validate,
	}
}

func (c *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req requests.CreateAppointment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.BuildNewCustomError(
			err,
			constvars.StatusBadRequest,
			constvars.ErrClientCannotProcessRequest,
			"invalid JSON body",
		))
		return
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

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.BuildNewCustomError(
			err,
			constvars.StatusBadRequest,
			constvars.ErrClientCannotProcessRequest,
			"scheduledAt must be RFC3339 with timezone",
		))
		return
	}

	created, err := c.Usecase.CreateAppointment(r.Context(), contracts.CreateAppointmentInput{
		PractitionerID:  req.PractitionerID,
		PatientID:       req.PatientID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: req.DurationMinutes,
		AppointmentType: req.AppointmentType,
	})
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, "appointment created", created)
}
