package availability

import (
	"testing"

	"agenda-service/internal/pkg/agenda_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSlots(t *testing.T) {
	windows := []anchoredWindow{window(9, 0, 12, 0, 30)}

	t.Run("backend wins collisions, generated fills gaps", func(t *testing.T) {
		backend := []agenda_dto.BackendSlot{backendAt(10, 0, false)}
		generated := []generatedSlot{
			{Datetime: atClock(monday, 10, 0, testLoc), SlotMinutes: 30},
			{Datetime: atClock(monday, 10, 30, testLoc), SlotMinutes: 30},
		}

		got := mergeSlots(backend, generated, windows, 30)

		require.Len(t, got, 2)
		assert.True(t, got[0].Datetime.Equal(atClock(monday, 10, 0, testLoc)))
		assert.False(t, got[0].Available, "backend unavailability must survive the merge")
		assert.True(t, got[1].Available)
	})

	t.Run("equal instants with different offsets collide", func(t *testing.T) {
		// 13:00 UTC is 10:00 in the test zone.
		backend := []agenda_dto.BackendSlot{{
			Datetime:  atClock(monday, 10, 0, testLoc).UTC(),
			Available: false,
		}}
		generated := []generatedSlot{{Datetime: atClock(monday, 10, 0, testLoc), SlotMinutes: 30}}

		got := mergeSlots(backend, generated, windows, 30)

		require.Len(t, got, 1)
		assert.False(t, got[0].Available)
	})

	t.Run("output is ordered ascending", func(t *testing.T) {
		backend := []agenda_dto.BackendSlot{
			backendAt(11, 0, true),
			backendAt(9, 0, true),
			backendAt(10, 0, true),
		}

		got := mergeSlots(backend, nil, windows, 30)

		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].Datetime.Before(got[i].Datetime))
		}
	})

	t.Run("slot minutes resolve from backend then window then fallback", func(t *testing.T) {
		declared := 15
		backend := []agenda_dto.BackendSlot{
			{Datetime: atClock(monday, 9, 0, testLoc), Available: true, SlotMinutes: &declared},
			{Datetime: atClock(monday, 10, 0, testLoc), Available: true},
			{Datetime: atClock(monday, 14, 0, testLoc), Available: true},
		}

		got := mergeSlots(backend, nil, windows, 45)

		require.Len(t, got, 3)
		assert.Equal(t, 15, got[0].SlotMinutes, "backend declaration wins")
		assert.Equal(t, 30, got[1].SlotMinutes, "containing window second")
		assert.Equal(t, 45, got[2].SlotMinutes, "fallback outside any window")
	})
}

func TestResolveEnforcedDuration(t *testing.T) {
	t.Run("single declaring window enforces", func(t *testing.T) {
		got := resolveEnforcedDuration([]anchoredWindow{window(9, 0, 12, 0, 45)})
		require.NotNil(t, got)
		assert.Equal(t, 45, *got)
	})

	t.Run("no declaring window enforces nothing", func(t *testing.T) {
		assert.Nil(t, resolveEnforcedDuration([]anchoredWindow{window(9, 0, 12, 0, 0)}))
	})

	t.Run("multiple declaring windows enforce nothing", func(t *testing.T) {
		got := resolveEnforcedDuration([]anchoredWindow{
			window(9, 0, 12, 0, 30),
			window(14, 0, 18, 0, 30),
		})
		assert.Nil(t, got)
	})
}
