package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableSlotsDayGridWithLunchBreak(t *testing.T) {
	eng := newTestEngine([]models.BreakRule{lunchBreak()}, nil, nil)

	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	slots, err := eng.AvailableSlots(context.Background(), SlotRequest{
		EstablishmentID: "est-1",
		Date:            monday,
		SlotDurationMin: 30,
		BarberID:        strPtr("barber-1"),
	})
	require.NoError(t, err)

	// 09:00-18:00 in 30-minute steps is 18 slots.
	require.Len(t, slots, 18)
	assert.Equal(t, monday.Add(9*time.Hour), slots[0].StartTime)
	assert.Equal(t, monday.Add(18*time.Hour), slots[17].EndTime)

	unavailable := map[string]bool{}
	for _, s := range slots {
		if !s.Available {
			unavailable[s.StartTime.Format("15:04")] = true
		}
	}
	assert.Equal(t, map[string]bool{"12:00": true, "12:30": true}, unavailable,
		"only the two lunch slots overlap the break")
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	appt := confirmedAppt("apt-1", strPtr("barber-1"),
		time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC), 30)
	eng := newTestEngine([]models.BreakRule{lunchBreak()}, nil, []models.Appointment{appt})

	req := SlotRequest{
		EstablishmentID: "est-1",
		Date:            time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		SlotDurationMin: 30,
		BarberID:        strPtr("barber-1"),
	}
	first, err := eng.AvailableSlots(context.Background(), req)
	require.NoError(t, err)
	second, err := eng.AvailableSlots(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical inputs over unchanged data must yield identical output")
}

func TestAvailableSlotsUsesConfiguredHours(t *testing.T) {
	eng := newTestEngine(nil, nil, nil)

	slots, err := eng.AvailableSlots(context.Background(), SlotRequest{
		EstablishmentID: "est-1",
		Date:            time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		SlotDurationMin: 60,
		OpenTime:        "10:00",
		CloseTime:       "14:00",
	})
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, 10, slots[0].StartTime.Hour())
	assert.Equal(t, 14, slots[3].EndTime.Hour())
}

func TestAvailableSlotsDefaultsDuration(t *testing.T) {
	eng := newTestEngine(nil, nil, nil)

	slots, err := eng.AvailableSlots(context.Background(), SlotRequest{
		EstablishmentID: "est-1",
		Date:            time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Len(t, slots, 18, "09:00-18:00 fallback window at the 30-minute default step")
}

func TestAvailableSlotsDropsTrailingPartialStep(t *testing.T) {
	eng := newTestEngine(nil, nil, nil)

	// 50-minute steps into a 9-hour window: the 10th step would end past
	// close and must not be emitted.
	slots, err := eng.AvailableSlots(context.Background(), SlotRequest{
		EstablishmentID: "est-1",
		Date:            time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		SlotDurationMin: 50,
	})
	require.NoError(t, err)
	assert.Len(t, slots, 10)
	last := slots[len(slots)-1]
	assert.False(t, last.EndTime.After(time.Date(2026, 2, 2, 18, 0, 0, 0, time.UTC)))
}

func TestAvailableSlotsMarksOccupiedAppointments(t *testing.T) {
	appt := confirmedAppt("apt-1", strPtr("barber-1"),
		time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC), 30)
	eng := newTestEngine(nil, nil, []models.Appointment{appt})

	slots, err := eng.AvailableSlots(context.Background(), SlotRequest{
		EstablishmentID: "est-1",
		Date:            time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		SlotDurationMin: 30,
		BarberID:        strPtr("barber-1"),
	})
	require.NoError(t, err)
	for _, s := range slots {
		if s.StartTime.Hour() == 10 && s.StartTime.Minute() == 0 {
			assert.False(t, s.Available)
		} else {
			assert.True(t, s.Available, "slot %s", s.StartTime.Format("15:04"))
		}
	}

	// The same grid for another barber is untouched.
	slots, err = eng.AvailableSlots(context.Background(), SlotRequest{
		EstablishmentID: "est-1",
		Date:            time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		SlotDurationMin: 30,
		BarberID:        strPtr("barber-2"),
	})
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestAvailableSlotsFailsClosedOnSourceError(t *testing.T) {
	boom := errors.New("storage unavailable")
	eng := &Engine{
		Breaks:       &fakeBreakSource{},
		TimeBlocks:   &fakeBlockSource{},
		Appointments: &fakeApptSource{err: boom},
	}
	_, err := eng.AvailableSlots(context.Background(), SlotRequest{
		EstablishmentID: "est-1",
		Date:            time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestAvailableSlotsRejectsBadWindow(t *testing.T) {
	eng := newTestEngine(nil, nil, nil)

	_, err := eng.AvailableSlots(context.Background(), SlotRequest{
		EstablishmentID: "est-1",
		Date:            time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		OpenTime:        "18:00",
		CloseTime:       "09:00",
	})
	assert.True(t, IsValidation(err))

	_, err = eng.AvailableSlots(context.Background(), SlotRequest{
		EstablishmentID: "est-1",
		Date:            time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		OpenTime:        "9am",
	})
	assert.True(t, IsValidation(err))
}
