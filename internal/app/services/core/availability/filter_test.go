package availability

import (
	"testing"

	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/agenda_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidatesAt(times ...[2]int) []contracts.CandidateSlot {
	out := make([]contracts.CandidateSlot, 0, len(times))
	for _, hm := range times {
		out = append(out, contracts.CandidateSlot{
			Datetime:    atClock(monday, hm[0], hm[1], testLoc),
			SlotMinutes: 30,
			Available:   true,
		})
	}
	return out
}

func TestFilterPast(t *testing.T) {
	slots := candidatesAt([2]int{14, 0}, [2]int{14, 30}, [2]int{15, 0})

	t.Run("past date yields nothing", func(t *testing.T) {
		now := monday.AddDate(0, 0, 1)
		assert.Empty(t, filterPast(slots, monday, now, testLoc, 30))
	})

	t.Run("future date passes untouched", func(t *testing.T) {
		now := monday.AddDate(0, 0, -1)
		assert.Len(t, filterPast(slots, monday, now, testLoc, 30), 3)
	})

	t.Run("today applies lead buffer to local wall clock", func(t *testing.T) {
		now := atClock(monday, 14, 10, testLoc)

		got := filterPast(slots, monday, now, testLoc, 30)

		// Cutoff is 14:40; 14:00 and 14:30 are no longer bookable.
		require.Len(t, got, 1)
		assert.True(t, got[0].Datetime.Equal(atClock(monday, 15, 0, testLoc)))
	})

	t.Run("now expressed in another zone still compares locally", func(t *testing.T) {
		now := atClock(monday, 14, 10, testLoc).UTC()

		got := filterPast(slots, monday, now, testLoc, 30)
		require.Len(t, got, 1)
	})
}

func TestFilterBooked(t *testing.T) {
	slots := candidatesAt([2]int{9, 0}, [2]int{10, 0}, [2]int{10, 30})

	t.Run("booked wall-clock time is removed", func(t *testing.T) {
		appointments := []agenda_dto.Appointment{
			{ScheduledAt: atClock(monday, 10, 0, testLoc)},
		}

		got := filterBooked(slots, appointments, testLoc)

		require.Len(t, got, 2)
		assert.True(t, got[0].Datetime.Equal(atClock(monday, 9, 0, testLoc)))
		assert.True(t, got[1].Datetime.Equal(atClock(monday, 10, 30, testLoc)))
	})

	t.Run("appointment stored in UTC collides with local slot", func(t *testing.T) {
		appointments := []agenda_dto.Appointment{
			{ScheduledAt: atClock(monday, 10, 0, testLoc).UTC()},
		}

		got := filterBooked(slots, appointments, testLoc)
		assert.Len(t, got, 2)
	})

	t.Run("no appointments passes everything", func(t *testing.T) {
		assert.Len(t, filterBooked(slots, nil, testLoc), 3)
	})
}

func TestFilterDurationFit(t *testing.T) {
	windows := []anchoredWindow{window(9, 0, 12, 0, 0)}
	slots := candidatesAt([2]int{11, 0}, [2]int{11, 30})

	t.Run("slot spilling past closing time is excluded", func(t *testing.T) {
		got := filterDurationFit(slots, windows, 60)

		require.Len(t, got, 1)
		assert.True(t, got[0].Datetime.Equal(atClock(monday, 11, 0, testLoc)))
	})

	t.Run("exact fit at closing time is kept", func(t *testing.T) {
		got := filterDurationFit(slots, windows, 30)
		assert.Len(t, got, 2)
	})

	t.Run("slot outside every window is excluded", func(t *testing.T) {
		outside := candidatesAt([2]int{14, 0})
		assert.Empty(t, filterDurationFit(outside, windows, 30))
	})
}

func TestFilterPastKeepsOrder(t *testing.T) {
	slots := candidatesAt([2]int{9, 0}, [2]int{15, 0}, [2]int{16, 0})
	now := atClock(monday, 8, 0, testLoc)

	got := filterPast(slots, monday, now, testLoc, 0)

	require.Len(t, got, 3)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Datetime.Before(got[i].Datetime))
	}
}
