package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "barberbook/database/repository/appointment"
	offeringRepo "barberbook/database/repository/offering"
	"barberbook/models"
	"barberbook/services/notification"
	"barberbook/services/scheduling"
	"barberbook/utils"
)

// ErrSlotBusy means another booking for the same barber is mid-flight; the
// caller should simply retry.
var ErrSlotBusy = errors.New("slot is being booked by another request, try again")

// lockTTL bounds how long a crashed request can hold a booking lock.
const lockTTL = 5 * time.Second

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Engine       *scheduling.Engine
	Appointments appointmentRepo.AppointmentRepository
	Offerings    offeringRepo.OfferingRepository
	Locker       Locker
	Notifier     notification.Dispatcher
}

// Create books a scheduled appointment. The conflict check runs inside the
// lock even when the caller already saw the slot as available: the earlier
// read is advisory, the one in here is authoritative.
func (svc *DefaultBookingService) Create(ctx context.Context, in CreateInput) (*models.Appointment, error) {
	duration, err := svc.resolveDuration(ctx, in.EstablishmentID, in.OfferingID, in.DurationMin)
	if err != nil {
		return nil, err
	}
	if in.ClientID == "" {
		return nil, &scheduling.ValidationError{Field: "clientId", Reason: "must not be empty"}
	}

	key := lockKey(in.EstablishmentID, in.BarberID)
	ok, err := svc.Locker.Acquire(ctx, key, lockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSlotBusy
	}
	defer func() {
		if err := svc.Locker.Release(context.Background(), key); err != nil {
			utils.GetLogger().Warn("failed to release booking lock", zap.String("key", key), zap.Error(err))
		}
	}()

	res, err := svc.Engine.CheckAllConflicts(ctx, scheduling.CheckInput{
		EstablishmentID: in.EstablishmentID,
		Start:           in.Start,
		DurationMin:     duration,
		BarberID:        in.BarberID,
	})
	if err != nil {
		return nil, err
	}
	if res.HasAnyConflict {
		return nil, &scheduling.ConflictError{Result: res}
	}

	start := in.Start
	end := start.Add(time.Duration(duration) * time.Minute)
	appt := &models.Appointment{
		ID:              uuid.New().String(),
		EstablishmentID: in.EstablishmentID,
		ClientID:        in.ClientID,
		BarberID:        in.BarberID,
		OfferingID:      in.OfferingID,
		Type:            models.TypeScheduled,
		ScheduledTime:   &start,
		EndTime:         &end,
		DurationMin:     duration,
		Status:          models.StatusConfirmed,
		Notes:           in.Notes,
	}
	if err := svc.Appointments.Insert(ctx, appt); err != nil {
		return nil, fmt.Errorf("saving appointment: %w", err)
	}

	svc.notify(ctx, appt)
	return appt, nil
}

// Reschedule moves an existing appointment, excluding its own record from the
// conflict check so it never collides with itself.
func (svc *DefaultBookingService) Reschedule(ctx context.Context, establishmentID, id string, newStart time.Time) (*models.Appointment, error) {
	appt, err := svc.Appointments.GetByID(ctx, establishmentID, id)
	if err != nil {
		return nil, err
	}
	if appt.Status == models.StatusCancelled || appt.Status == models.StatusCompleted {
		return nil, &scheduling.ValidationError{Field: "status", Reason: "cannot reschedule a " + appt.Status + " appointment"}
	}

	key := lockKey(establishmentID, appt.BarberID)
	ok, err := svc.Locker.Acquire(ctx, key, lockTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrSlotBusy
	}
	defer func() {
		if err := svc.Locker.Release(context.Background(), key); err != nil {
			utils.GetLogger().Warn("failed to release booking lock", zap.String("key", key), zap.Error(err))
		}
	}()

	res, err := svc.Engine.CheckAllConflicts(ctx, scheduling.CheckInput{
		EstablishmentID:      establishmentID,
		Start:                newStart,
		DurationMin:          appt.DurationMin,
		BarberID:             appt.BarberID,
		ExcludeAppointmentID: appt.ID,
	})
	if err != nil {
		return nil, err
	}
	if res.HasAnyConflict {
		return nil, &scheduling.ConflictError{Result: res}
	}

	newEnd := newStart.Add(time.Duration(appt.DurationMin) * time.Minute)
	if err := svc.Appointments.UpdateSchedule(ctx, establishmentID, id, newStart, newEnd); err != nil {
		return nil, err
	}
	appt.ScheduledTime = &newStart
	appt.EndTime = &newEnd
	appt.Type = models.TypeScheduled
	return appt, nil
}

func (svc *DefaultBookingService) Cancel(ctx context.Context, establishmentID, id string) error {
	return svc.UpdateStatus(ctx, establishmentID, id, models.StatusCancelled)
}

func (svc *DefaultBookingService) UpdateStatus(ctx context.Context, establishmentID, id, status string) error {
	switch status {
	case models.StatusPending, models.StatusConfirmed, models.StatusInProgress,
		models.StatusCompleted, models.StatusCancelled, models.StatusNoShow:
	default:
		return &scheduling.ValidationError{Field: "status", Reason: "unknown status " + status}
	}
	return svc.Appointments.UpdateStatus(ctx, establishmentID, id, status)
}

// Enqueue parks a walk-in client in the virtual queue. Queue entries occupy
// no time window until they are called.
func (svc *DefaultBookingService) Enqueue(ctx context.Context, in EnqueueInput) (*models.Appointment, error) {
	if in.ClientID == "" {
		return nil, &scheduling.ValidationError{Field: "clientId", Reason: "must not be empty"}
	}
	duration, err := svc.resolveDuration(ctx, in.EstablishmentID, in.OfferingID, 0)
	if err != nil {
		return nil, err
	}
	queued, err := svc.Appointments.CountQueued(ctx, in.EstablishmentID)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:              uuid.New().String(),
		EstablishmentID: in.EstablishmentID,
		ClientID:        in.ClientID,
		BarberID:        in.BarberID,
		OfferingID:      in.OfferingID,
		Type:            models.TypeQueue,
		DurationMin:     duration,
		Status:          models.StatusPending,
		QueuePosition:   int(queued) + 1,
		Notes:           in.Notes,
	}
	if err := svc.Appointments.Insert(ctx, appt); err != nil {
		return nil, fmt.Errorf("saving queue entry: %w", err)
	}
	return appt, nil
}

// CallNext promotes the oldest waiting queue entry to in-progress.
func (svc *DefaultBookingService) CallNext(ctx context.Context, establishmentID string, barberID *string) (*models.Appointment, error) {
	appt, err := svc.Appointments.NextQueued(ctx, establishmentID)
	if err != nil {
		return nil, err
	}
	if err := svc.Appointments.UpdateStatus(ctx, establishmentID, appt.ID, models.StatusInProgress); err != nil {
		return nil, err
	}
	appt.Status = models.StatusInProgress
	if barberID != nil {
		appt.BarberID = barberID
	}
	if svc.Notifier != nil {
		if err := svc.Notifier.QueueCalled(ctx, appt); err != nil {
			utils.GetLogger().Warn("failed to enqueue queue-called message",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	return appt, nil
}

// resolveDuration prefers an explicit duration, falling back to the offering.
func (svc *DefaultBookingService) resolveDuration(ctx context.Context, establishmentID, offeringID string, durationMin int) (int, error) {
	if durationMin > 0 {
		return durationMin, nil
	}
	if durationMin < 0 {
		return 0, &scheduling.ValidationError{Field: "durationMin", Reason: "must be positive"}
	}
	if offeringID == "" {
		return 0, &scheduling.ValidationError{Field: "offeringId", Reason: "required when no duration is given"}
	}
	offering, err := svc.Offerings.GetByID(ctx, establishmentID, offeringID)
	if err != nil {
		return 0, err
	}
	if offering.DurationMin <= 0 {
		return 0, &scheduling.ValidationError{Field: "offering", Reason: "offering has no duration configured"}
	}
	return offering.DurationMin, nil
}

// notify is best-effort: a failed notification never rolls back a booking.
func (svc *DefaultBookingService) notify(ctx context.Context, appt *models.Appointment) {
	if svc.Notifier == nil {
		return
	}
	logger := utils.GetLogger()
	if err := svc.Notifier.AppointmentConfirmed(ctx, appt); err != nil {
		logger.Warn("failed to enqueue confirmation", zap.String("appointmentId", appt.ID), zap.Error(err))
	}
	if err := svc.Notifier.ScheduleReminder(ctx, appt); err != nil {
		logger.Warn("failed to enqueue reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
