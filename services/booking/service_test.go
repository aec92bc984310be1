package booking

import (
	"context"
	"testing"
	"time"

	"barberbook/models"
	"barberbook/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeApptRepo struct {
	appts    []models.Appointment
	inserted []*models.Appointment
	updates  []string
	queued   int64
}

func (f *fakeApptRepo) AppointmentsInRange(_ context.Context, _ scheduling.AppointmentQuery) ([]models.Appointment, error) {
	return f.appts, nil
}

func (f *fakeApptRepo) Insert(_ context.Context, appt *models.Appointment) error {
	f.inserted = append(f.inserted, appt)
	return nil
}

func (f *fakeApptRepo) GetByID(_ context.Context, _, id string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].ID == id {
			return &f.appts[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeApptRepo) UpdateStatus(_ context.Context, _, id, status string) error {
	f.updates = append(f.updates, id+":"+status)
	return nil
}

func (f *fakeApptRepo) UpdateSchedule(_ context.Context, _, id string, start, _ time.Time) error {
	f.updates = append(f.updates, id+"@"+start.Format("15:04"))
	return nil
}

func (f *fakeApptRepo) ListByEstablishmentAndDay(_ context.Context, _ string, _ time.Time) ([]models.Appointment, error) {
	return f.appts, nil
}

func (f *fakeApptRepo) CountQueued(_ context.Context, _ string) (int64, error) {
	return f.queued, nil
}

func (f *fakeApptRepo) NextQueued(_ context.Context, _ string) (*models.Appointment, error) {
	for i := range f.appts {
		if f.appts[i].Type == models.TypeQueue && f.appts[i].Status == models.StatusPending {
			return &f.appts[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeApptRepo) MarkNoShows(_ context.Context, _ time.Time) (int64, error) { return 0, nil }

func (f *fakeApptRepo) EnsureIndexes(_ context.Context) error { return nil }

type fakeOfferingRepo struct {
	offering *models.Offering
}

func (f *fakeOfferingRepo) Create(_ context.Context, _ *models.Offering) error { return nil }
func (f *fakeOfferingRepo) Update(_ context.Context, _ *models.Offering) error { return nil }
func (f *fakeOfferingRepo) Deactivate(_ context.Context, _, _ string) error    { return nil }
func (f *fakeOfferingRepo) GetByID(_ context.Context, _, _ string) (*models.Offering, error) {
	if f.offering == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.offering, nil
}
func (f *fakeOfferingRepo) ListByEstablishment(_ context.Context, _ string) ([]models.Offering, error) {
	return nil, nil
}

type fakeLocker struct {
	denied   bool
	acquired []string
	released []string
}

func (f *fakeLocker) Acquire(_ context.Context, key string, _ time.Duration) (bool, error) {
	if f.denied {
		return false, nil
	}
	f.acquired = append(f.acquired, key)
	return true, nil
}

func (f *fakeLocker) Release(_ context.Context, key string) error {
	f.released = append(f.released, key)
	return nil
}

type emptyBreakSource struct{}

func (emptyBreakSource) ActiveBreaks(_ context.Context, _ scheduling.BreakQuery) ([]models.BreakRule, error) {
	return nil, nil
}

type emptyBlockSource struct{}

func (emptyBlockSource) BlocksInRange(_ context.Context, _ scheduling.TimeBlockQuery) ([]models.TimeBlock, error) {
	return nil, nil
}

func newService(repo *fakeApptRepo, locker *fakeLocker) *DefaultBookingService {
	return &DefaultBookingService{
		Engine: &scheduling.Engine{
			Breaks:       emptyBreakSource{},
			TimeBlocks:   emptyBlockSource{},
			Appointments: repo,
		},
		Appointments: repo,
		Offerings:    &fakeOfferingRepo{offering: &models.Offering{ID: "off-1", DurationMin: 30}},
		Locker:       locker,
	}
}

func barber(id string) *string { return &id }

func occupying(id string, start time.Time) models.Appointment {
	end := start.Add(30 * time.Minute)
	return models.Appointment{
		ID:              id,
		EstablishmentID: "est-1",
		ClientID:        "cli-1",
		BarberID:        barber("barber-1"),
		Type:            models.TypeScheduled,
		ScheduledTime:   &start,
		EndTime:         &end,
		DurationMin:     30,
		Status:          models.StatusConfirmed,
	}
}

func TestCreateBooksFreeSlot(t *testing.T) {
	repo := &fakeApptRepo{}
	locker := &fakeLocker{}
	svc := newService(repo, locker)

	start := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	appt, err := svc.Create(context.Background(), CreateInput{
		EstablishmentID: "est-1",
		ClientID:        "cli-1",
		BarberID:        barber("barber-1"),
		OfferingID:      "off-1",
		Start:           start,
		DurationMin:     30,
	})
	require.NoError(t, err)
	require.Len(t, repo.inserted, 1)
	assert.Equal(t, models.StatusConfirmed, appt.Status)
	assert.Equal(t, models.TypeScheduled, appt.Type)
	require.NotNil(t, appt.EndTime)
	assert.Equal(t, start.Add(30*time.Minute), *appt.EndTime)
	assert.NotEmpty(t, appt.ID)

	// The critical section wrapped the whole operation.
	require.Len(t, locker.acquired, 1)
	assert.Equal(t, locker.acquired, locker.released)
}

func TestCreateRejectsConflictAtCommitTime(t *testing.T) {
	start := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	repo := &fakeApptRepo{appts: []models.Appointment{occupying("apt-1", start)}}
	svc := newService(repo, &fakeLocker{})

	// Overlapping proposal: the in-lock re-check must refuse it even though
	// an earlier availability read could have said yes.
	_, err := svc.Create(context.Background(), CreateInput{
		EstablishmentID: "est-1",
		ClientID:        "cli-2",
		BarberID:        barber("barber-1"),
		OfferingID:      "off-1",
		Start:           start.Add(15 * time.Minute),
		DurationMin:     30,
	})
	require.Error(t, err)
	assert.True(t, scheduling.IsConflict(err))
	assert.Empty(t, repo.inserted, "nothing may be written on conflict")
}

func TestCreateWhenLockContended(t *testing.T) {
	repo := &fakeApptRepo{}
	svc := newService(repo, &fakeLocker{denied: true})

	_, err := svc.Create(context.Background(), CreateInput{
		EstablishmentID: "est-1",
		ClientID:        "cli-1",
		OfferingID:      "off-1",
		Start:           time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC),
		DurationMin:     30,
	})
	assert.ErrorIs(t, err, ErrSlotBusy)
	assert.Empty(t, repo.inserted)
}

func TestCreateResolvesDurationFromOffering(t *testing.T) {
	repo := &fakeApptRepo{}
	svc := newService(repo, &fakeLocker{})

	appt, err := svc.Create(context.Background(), CreateInput{
		EstablishmentID: "est-1",
		ClientID:        "cli-1",
		OfferingID:      "off-1",
		Start:           time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 30, appt.DurationMin)
}

func TestRescheduleExcludesOwnRecord(t *testing.T) {
	start := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	repo := &fakeApptRepo{appts: []models.Appointment{occupying("apt-1", start)}}
	svc := newService(repo, &fakeLocker{})

	// Moving apt-1 by 15 minutes overlaps only its own old interval.
	_, err := svc.Reschedule(context.Background(), "est-1", "apt-1", start.Add(15*time.Minute))
	require.NoError(t, err)
	assert.Contains(t, repo.updates, "apt-1@10:15")
}

func TestRescheduleRefusesCancelled(t *testing.T) {
	start := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	appt := occupying("apt-1", start)
	appt.Status = models.StatusCancelled
	repo := &fakeApptRepo{appts: []models.Appointment{appt}}
	svc := newService(repo, &fakeLocker{})

	_, err := svc.Reschedule(context.Background(), "est-1", "apt-1", start.Add(time.Hour))
	assert.True(t, scheduling.IsValidation(err))
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := newService(&fakeApptRepo{}, &fakeLocker{})
	err := svc.UpdateStatus(context.Background(), "est-1", "apt-1", "postponed")
	assert.True(t, scheduling.IsValidation(err))
}

func TestEnqueueAssignsNextPosition(t *testing.T) {
	repo := &fakeApptRepo{queued: 2}
	svc := newService(repo, &fakeLocker{})

	appt, err := svc.Enqueue(context.Background(), EnqueueInput{
		EstablishmentID: "est-1",
		ClientID:        "cli-1",
		OfferingID:      "off-1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TypeQueue, appt.Type)
	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, 3, appt.QueuePosition)
	assert.Nil(t, appt.ScheduledTime, "queue entries occupy no time window")
}

func TestCallNextPromotesOldestEntry(t *testing.T) {
	waiting := models.Appointment{
		ID:              "apt-q1",
		EstablishmentID: "est-1",
		ClientID:        "cli-1",
		Type:            models.TypeQueue,
		Status:          models.StatusPending,
		QueuePosition:   1,
	}
	repo := &fakeApptRepo{appts: []models.Appointment{waiting}}
	svc := newService(repo, &fakeLocker{})

	appt, err := svc.CallNext(context.Background(), "est-1", barber("barber-2"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, appt.Status)
	assert.Equal(t, "barber-2", *appt.BarberID)
	assert.Contains(t, repo.updates, "apt-q1:in_progress")
}
