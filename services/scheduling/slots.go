package scheduling

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
)

// Fallback business hours for establishments that have not configured their
// own, and the standard grid step.
const (
	DefaultOpenTime        = "09:00"
	DefaultCloseTime       = "18:00"
	DefaultSlotDurationMin = 30
)

// SlotRequest describes one day grid. OpenTime/CloseTime take the
// establishment's configured hours; when empty the defaults above apply.
type SlotRequest struct {
	EstablishmentID string
	Date            time.Time
	SlotDurationMin int
	BarberID        *string
	OpenTime        string
	CloseTime       string
}

// AvailableSlots walks the business day in fixed-size steps and marks each
// step available unless it conflicts with a break, a time block or an
// occupying appointment. The day's records are fetched once up front, so
// every slot in one response is judged against the same snapshot and the
// output is a pure function of the inputs.
func (e *Engine) AvailableSlots(ctx context.Context, req SlotRequest) ([]models.Slot, error) {
	if req.EstablishmentID == "" {
		return nil, &ValidationError{Field: "establishmentId", Reason: "must not be empty"}
	}
	if req.Date.IsZero() {
		return nil, &ValidationError{Field: "date", Reason: "must be set"}
	}
	duration := req.SlotDurationMin
	if duration == 0 {
		duration = DefaultSlotDurationMin
	}
	if duration < 0 {
		return nil, &ValidationError{Field: "slotDurationMin", Reason: "must be positive"}
	}

	openClock := req.OpenTime
	if openClock == "" {
		openClock = DefaultOpenTime
	}
	closeClock := req.CloseTime
	if closeClock == "" {
		closeClock = DefaultCloseTime
	}
	openMin, err := ToMinutes(openClock)
	if err != nil {
		return nil, err
	}
	closeMin, err := ToMinutes(closeClock)
	if err != nil {
		return nil, err
	}
	if openMin >= closeMin {
		return nil, &ValidationError{Field: "openTime", Reason: "must be before closeTime"}
	}

	dayOpen := atMinute(req.Date, openMin)
	dayClose := atMinute(req.Date, closeMin)

	breaks, err := e.Breaks.ActiveBreaks(ctx, BreakQuery{
		EstablishmentID: req.EstablishmentID,
		BarberID:        req.BarberID,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch active breaks: %w", err)
	}
	blocks, err := e.TimeBlocks.BlocksInRange(ctx, TimeBlockQuery{
		EstablishmentID: req.EstablishmentID,
		BarberID:        req.BarberID,
		From:            dayOpen,
		To:              dayClose,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch time blocks: %w", err)
	}
	appts, err := e.Appointments.AppointmentsInRange(ctx, AppointmentQuery{
		EstablishmentID: req.EstablishmentID,
		BarberID:        req.BarberID,
		From:            dayOpen,
		To:              dayClose,
		Statuses:        models.OccupyingStatuses,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch appointments: %w", err)
	}

	var slots []models.Slot
	for m := openMin; m+duration <= closeMin; m += duration {
		start := atMinute(req.Date, m)
		end := atMinute(req.Date, m+duration)

		conflict := anyBreakConflict(breaks, req.Date, m, m+duration, req.BarberID) ||
			anyBlockConflict(blocks, start, end, req.BarberID) ||
			anyAppointmentConflict(appts, start, end, req.BarberID, "")

		slots = append(slots, models.Slot{
			StartTime: start,
			EndTime:   end,
			Available: !conflict,
		})
	}
	return slots, nil
}
