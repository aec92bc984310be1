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

// In-memory sources. Scoping and overlap filtering belong to the engine, so
// the fakes hand back everything they hold.
type fakeBreakSource struct {
	breaks []models.BreakRule
	err    error
}

func (f *fakeBreakSource) ActiveBreaks(_ context.Context, _ BreakQuery) ([]models.BreakRule, error) {
	return f.breaks, f.err
}

type fakeBlockSource struct {
	blocks []models.TimeBlock
	err    error
}

func (f *fakeBlockSource) BlocksInRange(_ context.Context, _ TimeBlockQuery) ([]models.TimeBlock, error) {
	return f.blocks, f.err
}

type fakeApptSource struct {
	appts []models.Appointment
	err   error
}

func (f *fakeApptSource) AppointmentsInRange(_ context.Context, _ AppointmentQuery) ([]models.Appointment, error) {
	return f.appts, f.err
}

func newTestEngine(breaks []models.BreakRule, blocks []models.TimeBlock, appts []models.Appointment) *Engine {
	return &Engine{
		Breaks:       &fakeBreakSource{breaks: breaks},
		TimeBlocks:   &fakeBlockSource{blocks: blocks},
		Appointments: &fakeApptSource{appts: appts},
	}
}

func strPtr(s string) *string { return &s }

func lunchBreak() models.BreakRule {
	return models.BreakRule{
		ID:              "brk-1",
		EstablishmentID: "est-1",
		Name:            "Almoço",
		StartTime:       "12:00",
		EndTime:         "13:00",
		DaysOfWeek:      []int{1, 2, 3, 4, 5},
		Recurring:       true,
		Active:          true,
	}
}

func confirmedAppt(id string, barberID *string, start time.Time, durationMin int) models.Appointment {
	end := start.Add(time.Duration(durationMin) * time.Minute)
	return models.Appointment{
		ID:              id,
		EstablishmentID: "est-1",
		ClientID:        "cli-1",
		BarberID:        barberID,
		Type:            models.TypeScheduled,
		ScheduledTime:   &start,
		EndTime:         &end,
		DurationMin:     durationMin,
		Status:          models.StatusConfirmed,
	}
}

func TestCheckAllConflictsLunchBreakOnMonday(t *testing.T) {
	eng := newTestEngine([]models.BreakRule{lunchBreak()}, nil, nil)

	// Monday 12:30, 30 minutes: squarely inside the lunch break.
	start := time.Date(2026, 2, 2, 12, 30, 0, 0, time.UTC)
	res, err := eng.CheckAllConflicts(context.Background(), CheckInput{
		EstablishmentID: "est-1",
		Start:           start,
		DurationMin:     30,
	})
	require.NoError(t, err)
	assert.True(t, res.HasBreakConflict)
	assert.True(t, res.HasAnyConflict)
	assert.Equal(t, MsgBreakConflict, res.Message)
}

func TestCheckAllConflictsBreakDoesNotApplyOnSunday(t *testing.T) {
	eng := newTestEngine([]models.BreakRule{lunchBreak()}, nil, nil)

	// Sunday 09:00, 60 minutes: the weekday rule never fires.
	start := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	res, err := eng.CheckAllConflicts(context.Background(), CheckInput{
		EstablishmentID: "est-1",
		Start:           start,
		DurationMin:     60,
	})
	require.NoError(t, err)
	assert.False(t, res.HasAnyConflict)
	assert.Empty(t, res.Message)
}

func TestBreakWithoutWeekdaysNeverBlocks(t *testing.T) {
	br := lunchBreak()
	br.DaysOfWeek = nil
	eng := newTestEngine([]models.BreakRule{br}, nil, nil)

	start := time.Date(2026, 2, 2, 12, 30, 0, 0, time.UTC)
	hit, err := eng.HasBreakConflict(context.Background(), CheckInput{
		EstablishmentID: "est-1",
		Start:           start,
		DurationMin:     30,
	})
	require.NoError(t, err)
	assert.False(t, hit, "a rule with no weekday set cannot match any date")
}

func TestBreakBarberScoping(t *testing.T) {
	global := lunchBreak()
	scoped := lunchBreak()
	scoped.ID = "brk-2"
	scoped.BarberID = strPtr("barber-5")

	start := time.Date(2026, 2, 2, 12, 30, 0, 0, time.UTC)
	in := CheckInput{EstablishmentID: "est-1", Start: start, DurationMin: 30}

	// Establishment-wide break conflicts with every barber.
	eng := newTestEngine([]models.BreakRule{global}, nil, nil)
	in.BarberID = strPtr("barber-6")
	hit, err := eng.HasBreakConflict(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, hit)

	// A break for barber 5 never touches barber 6.
	eng = newTestEngine([]models.BreakRule{scoped}, nil, nil)
	hit, err = eng.HasBreakConflict(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, hit)

	in.BarberID = strPtr("barber-5")
	hit, err = eng.HasBreakConflict(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestTimeBlockBarberScoping(t *testing.T) {
	start := time.Date(2026, 2, 2, 15, 0, 0, 0, time.UTC)
	block := models.TimeBlock{
		ID:              "blk-1",
		EstablishmentID: "est-1",
		BarberID:        strPtr("barber-5"),
		Title:           "dentist",
		BlockType:       models.BlockTypeAbsence,
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
	}
	eng := newTestEngine(nil, []models.TimeBlock{block}, nil)

	in := CheckInput{
		EstablishmentID: "est-1",
		Start:           start.Add(15 * time.Minute),
		DurationMin:     30,
		BarberID:        strPtr("barber-6"),
	}
	hit, err := eng.HasTimeBlockConflict(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, hit)

	in.BarberID = strPtr("barber-5")
	hit, err = eng.HasTimeBlockConflict(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, hit)

	// Establishment-wide block hits every barber.
	block.BarberID = nil
	eng = newTestEngine(nil, []models.TimeBlock{block}, nil)
	in.BarberID = strPtr("barber-6")
	hit, err = eng.HasTimeBlockConflict(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestAppointmentConflictOverlapAndScope(t *testing.T) {
	// Confirmed appointment 10:00-10:30 for barber 1.
	existing := confirmedAppt("apt-1", strPtr("barber-1"),
		time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC), 30)
	eng := newTestEngine(nil, nil, []models.Appointment{existing})

	// 10:15 proposal for the same barber overlaps.
	in := CheckInput{
		EstablishmentID: "est-1",
		Start:           time.Date(2026, 2, 2, 10, 15, 0, 0, time.UTC),
		DurationMin:     30,
		BarberID:        strPtr("barber-1"),
	}
	hit, err := eng.HasAppointmentConflict(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, hit)

	// Same time for barber 2 is free; appointment conflicts are barber-scoped.
	in.BarberID = strPtr("barber-2")
	hit, err = eng.HasAppointmentConflict(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, hit)

	// Without a barber in the request the check spans the establishment.
	in.BarberID = nil
	hit, err = eng.HasAppointmentConflict(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, hit)

	// Adjacent proposal at 10:30 never conflicts.
	in.BarberID = strPtr("barber-1")
	in.Start = time.Date(2026, 2, 2, 10, 30, 0, 0, time.UTC)
	hit, err = eng.HasAppointmentConflict(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestAppointmentConflictStatusFiltering(t *testing.T) {
	start := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	in := CheckInput{
		EstablishmentID: "est-1",
		Start:           start,
		DurationMin:     30,
		BarberID:        strPtr("barber-1"),
	}

	for _, status := range []string{
		models.StatusPending, models.StatusCancelled, models.StatusCompleted, models.StatusNoShow,
	} {
		ap := confirmedAppt("apt-1", strPtr("barber-1"), start, 30)
		ap.Status = status
		eng := newTestEngine(nil, nil, []models.Appointment{ap})
		hit, err := eng.HasAppointmentConflict(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, hit, "status %s must not occupy the slot", status)
	}

	for _, status := range []string{models.StatusConfirmed, models.StatusInProgress} {
		ap := confirmedAppt("apt-1", strPtr("barber-1"), start, 30)
		ap.Status = status
		eng := newTestEngine(nil, nil, []models.Appointment{ap})
		hit, err := eng.HasAppointmentConflict(context.Background(), in)
		require.NoError(t, err)
		assert.True(t, hit, "status %s must occupy the slot", status)
	}
}

func TestAppointmentConflictExcludesSelfOnEdit(t *testing.T) {
	start := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	existing := confirmedAppt("apt-1", strPtr("barber-1"), start, 30)
	eng := newTestEngine(nil, nil, []models.Appointment{existing})

	in := CheckInput{
		EstablishmentID:      "est-1",
		Start:                start,
		DurationMin:          30,
		BarberID:             strPtr("barber-1"),
		ExcludeAppointmentID: "apt-1",
	}
	hit, err := eng.HasAppointmentConflict(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, hit, "an appointment must not conflict with itself while being edited")
}

func TestAppointmentConflictDerivesEndFromDuration(t *testing.T) {
	start := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	existing := confirmedAppt("apt-1", strPtr("barber-1"), start, 30)
	existing.EndTime = nil

	eng := newTestEngine(nil, nil, []models.Appointment{existing})
	hit, err := eng.HasAppointmentConflict(context.Background(), CheckInput{
		EstablishmentID: "est-1",
		Start:           start.Add(15 * time.Minute),
		DurationMin:     30,
		BarberID:        strPtr("barber-1"),
	})
	require.NoError(t, err)
	assert.True(t, hit)
}

func TestCheckAllConflictsMessagePrecedence(t *testing.T) {
	// Break and appointment both collide; the break message wins.
	start := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)
	existing := confirmedAppt("apt-1", strPtr("barber-1"), start, 30)
	eng := newTestEngine([]models.BreakRule{lunchBreak()}, nil, []models.Appointment{existing})

	res, err := eng.CheckAllConflicts(context.Background(), CheckInput{
		EstablishmentID: "est-1",
		Start:           start,
		DurationMin:     30,
		BarberID:        strPtr("barber-1"),
	})
	require.NoError(t, err)
	assert.True(t, res.HasBreakConflict)
	assert.True(t, res.HasAppointmentConflict)
	assert.Equal(t, MsgBreakConflict, res.Message)

	// Time block beats appointment when no break is involved.
	block := models.TimeBlock{
		ID:              "blk-1",
		EstablishmentID: "est-1",
		BlockType:       models.BlockTypeMaintenance,
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
	}
	eng = newTestEngine(nil, []models.TimeBlock{block}, []models.Appointment{existing})
	res, err = eng.CheckAllConflicts(context.Background(), CheckInput{
		EstablishmentID: "est-1",
		Start:           start,
		DurationMin:     30,
		BarberID:        strPtr("barber-1"),
	})
	require.NoError(t, err)
	assert.Equal(t, MsgTimeBlockConflict, res.Message)
}

func TestCheckAllConflictsFailsClosedOnSourceError(t *testing.T) {
	boom := errors.New("storage unavailable")
	start := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	in := CheckInput{EstablishmentID: "est-1", Start: start, DurationMin: 30}

	cases := []*Engine{
		{Breaks: &fakeBreakSource{err: boom}, TimeBlocks: &fakeBlockSource{}, Appointments: &fakeApptSource{}},
		{Breaks: &fakeBreakSource{}, TimeBlocks: &fakeBlockSource{err: boom}, Appointments: &fakeApptSource{}},
		{Breaks: &fakeBreakSource{}, TimeBlocks: &fakeBlockSource{}, Appointments: &fakeApptSource{err: boom}},
	}
	for i, eng := range cases {
		_, err := eng.CheckAllConflicts(context.Background(), in)
		require.Error(t, err, "source %d", i)
		assert.ErrorIs(t, err, boom, "the storage error must propagate, not read as availability")
	}
}

func TestCheckAllConflictsRejectsBadInput(t *testing.T) {
	eng := newTestEngine(nil, nil, nil)
	start := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)

	_, err := eng.CheckAllConflicts(context.Background(), CheckInput{Start: start, DurationMin: 30})
	assert.True(t, IsValidation(err))

	_, err = eng.CheckAllConflicts(context.Background(), CheckInput{EstablishmentID: "est-1", DurationMin: 30})
	assert.True(t, IsValidation(err))

	_, err = eng.CheckAllConflicts(context.Background(), CheckInput{EstablishmentID: "est-1", Start: start, DurationMin: -5})
	assert.True(t, IsValidation(err))
}
