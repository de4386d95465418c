package availability

import (
	"testing"
	"time"

	"agenda-service/internal/pkg/agenda_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = time.FixedZone("BRT", -3*60*60)

// monday is a fixed Monday used across the package tests.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, testLoc)

func window(startH, startM, endH, endM, slotMinutes int) anchoredWindow {
	return anchoredWindow{
		Start:       atClock(monday, startH, startM, testLoc),
		End:         atClock(monday, endH, endM, testLoc),
		SlotMinutes: slotMinutes,
	}
}

func backendAt(h, m int, available bool) agenda_dto.BackendSlot {
	return agenda_dto.BackendSlot{
		Datetime:  atClock(monday, h, m, testLoc),
		Available: available,
	}
}

func TestGenerateForWindow(t *testing.T) {
	t.Run("empty window fills with evenly spaced slots", func(t *testing.T) {
		got := generateForWindow(window(9, 0, 12, 0, 30), nil, 30)

		require.Len(t, got, 6)
		assert.True(t, got[0].Datetime.Equal(atClock(monday, 9, 0, testLoc)))
		assert.True(t, got[5].Datetime.Equal(atClock(monday, 11, 30, testLoc)))
		for _, s := range got {
			assert.Equal(t, 30, s.SlotMinutes)
		}
	})

	t.Run("resumes after latest backend slot instead of re-anchoring", func(t *testing.T) {
		backend := []agenda_dto.BackendSlot{
			backendAt(9, 0, true),
			backendAt(9, 30, false),
		}

		got := generateForWindow(window(9, 0, 12, 0, 30), backend, 30)

		require.Len(t, got, 4)
		assert.True(t, got[0].Datetime.Equal(atClock(monday, 10, 0, testLoc)))
		assert.True(t, got[3].Datetime.Equal(atClock(monday, 11, 30, testLoc)))
	})

	t.Run("backend slots outside the window do not move the anchor", func(t *testing.T) {
		backend := []agenda_dto.BackendSlot{backendAt(14, 0, true)}

		got := generateForWindow(window(9, 0, 10, 0, 30), backend, 30)

		require.Len(t, got, 2)
		assert.True(t, got[0].Datetime.Equal(atClock(monday, 9, 0, testLoc)))
	})

	t.Run("last slot must leave room for a full step", func(t *testing.T) {
		got := generateForWindow(window(9, 0, 10, 15, 0), nil, 30)

		require.Len(t, got, 2)
		assert.True(t, got[1].Datetime.Equal(atClock(monday, 9, 30, testLoc)))
	})

	t.Run("non-positive step generates nothing", func(t *testing.T) {
		assert.Empty(t, generateForWindow(window(9, 0, 12, 0, 0), nil, 0))
	})
}

func TestInferStepMinutes(t *testing.T) {
	windows := []anchoredWindow{window(9, 0, 12, 0, 0)}

	t.Run("minimum positive gap wins", func(t *testing.T) {
		backend := []agenda_dto.BackendSlot{
			backendAt(9, 0, true),
			backendAt(9, 20, true),
			backendAt(10, 20, true),
		}
		assert.Equal(t, 20, inferStepMinutes(backend, windows))
	})

	t.Run("unsorted input is handled", func(t *testing.T) {
		backend := []agenda_dto.BackendSlot{
			backendAt(10, 0, true),
			backendAt(9, 0, true),
			backendAt(9, 15, true),
		}
		assert.Equal(t, 15, inferStepMinutes(backend, windows))
	})

	t.Run("slots outside windows are ignored", func(t *testing.T) {
		backend := []agenda_dto.BackendSlot{
			backendAt(14, 0, true),
			backendAt(14, 10, true),
		}
		assert.Equal(t, 0, inferStepMinutes(backend, windows))
	})

	t.Run("fewer than two usable instants infers nothing", func(t *testing.T) {
		assert.Equal(t, 0, inferStepMinutes([]agenda_dto.BackendSlot{backendAt(9, 0, true)}, windows))
		assert.Equal(t, 0, inferStepMinutes(nil, windows))
	})

	t.Run("duplicate instants yield no zero gap", func(t *testing.T) {
		backend := []agenda_dto.BackendSlot{
			backendAt(9, 0, true),
			backendAt(9, 0, false),
			backendAt(9, 45, true),
		}
		assert.Equal(t, 45, inferStepMinutes(backend, windows))
	})
}

func TestResolveStep(t *testing.T) {
	assert.Equal(t, 45, resolveStep(window(9, 0, 12, 0, 45), 20, 30), "declared granularity wins")
	assert.Equal(t, 20, resolveStep(window(9, 0, 12, 0, 0), 20, 30), "inferred step second")
	assert.Equal(t, 30, resolveStep(window(9, 0, 12, 0, 0), 0, 30), "config default last")
}
