package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/dto/responses"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAvailabilityUsecase struct {
	result *contracts.AvailabilityQueryResult
	err    error
	input  contracts.AvailabilityQueryInput
}

func (s *stubAvailabilityUsecase) Query(ctx context.Context, input contracts.AvailabilityQueryInput) (*contracts.AvailabilityQueryResult, error) {
	s.input = input
	return s.result, s.err
}

func TestGetAvailability(t *testing.T) {
	newController := func(usecase contracts.AvailabilityUsecaseIface) *AvailabilityController {
		return NewAvailabilityController(usecase, zap.NewNop(), validator.New())
	}

	t.Run("valid query returns the computed slots", func(t *testing.T) {
		usecase := &stubAvailabilityUsecase{
			result: &contracts.AvailabilityQueryResult{
				Slots: []contracts.CandidateSlot{
					{Datetime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), SlotMinutes: 30, Available: true},
				},
			},
		}
		req := httptest.NewRequest("GET", "/availability?practitionerId=prac-1&date=2026-03-02&durationMinutes=30", nil)
		rr := httptest.NewRecorder()

		newController(usecase).GetAvailability(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "prac-1", usecase.input.PractitionerID)
		assert.Equal(t, "2026-03-02", usecase.input.Date)
		assert.Equal(t, 30, usecase.input.DurationMinutes)

		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		require.NotNil(t, body.Data)
	})

	t.Run("missing practitionerId is rejected", func(t *testing.T) {
		usecase := &stubAvailabilityUsecase{result: &contracts.AvailabilityQueryResult{}}
		req := httptest.NewRequest("GET", "/availability?date=2026-03-02", nil)
		rr := httptest.NewRecorder()

		newController(usecase).GetAvailability(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed date is rejected before the usecase runs", func(t *testing.T) {
		usecase := &stubAvailabilityUsecase{result: &contracts.AvailabilityQueryResult{}}
		req := httptest.NewRequest("GET", "/availability?practitionerId=prac-1&date=02-03-2026", nil)
		rr := httptest.NewRecorder()

		newController(usecase).GetAvailability(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, usecase.input.PractitionerID)
	})

	t.Run("non-numeric duration is rejected", func(t *testing.T) {
		usecase := &stubAvailabilityUsecase{result: &contracts.AvailabilityQueryResult{}}
		req := httptest.NewRequest("GET", "/availability?practitionerId=prac-1&date=2026-03-02&durationMinutes=soon", nil)
		rr := httptest.NewRecorder()

		newController(usecase).GetAvailability(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("superseded result hides its slots", func(t *testing.T) {
		usecase := &stubAvailabilityUsecase{
			result: &contracts.AvailabilityQueryResult{
				Slots: []contracts.CandidateSlot{
					{Datetime: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), SlotMinutes: 30, Available: true},
				},
				Superseded: true,
			},
		}
		req := httptest.NewRequest("GET", "/availability?practitionerId=prac-1&date=2026-03-02", nil)
		rr := httptest.NewRecorder()

		newController(usecase).GetAvailability(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var body responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Nil(t, body.Data)
	})
}
