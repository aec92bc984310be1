package scheduling

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
)

// Conflict messages, in precedence order.
const (
	MsgBreakConflict       = "conflicts with a scheduled break"
	MsgTimeBlockConflict   = "conflicts with a time block"
	MsgAppointmentConflict = "conflicts with another appointment"
)

// Engine decides whether a proposed interval is legal and enumerates the legal
// slots of a day. It only ever reads; the sources are injected so the engine
// stays testable with fakes.
type Engine struct {
	Breaks       BreakSource
	TimeBlocks   TimeBlockSource
	Appointments AppointmentSource
}

// CheckInput describes a proposed appointment interval.
type CheckInput struct {
	EstablishmentID string
	Start           time.Time
	DurationMin     int
	BarberID        *string
	// ExcludeAppointmentID skips one appointment's own record, for the
	// "editing an existing appointment" case.
	ExcludeAppointmentID string
}

func (in CheckInput) validate() error {
	if in.EstablishmentID == "" {
		return &ValidationError{Field: "establishmentId", Reason: "must not be empty"}
	}
	if in.Start.IsZero() {
		return &ValidationError{Field: "start", Reason: "must be set"}
	}
	if in.DurationMin <= 0 {
		return &ValidationError{Field: "durationMin", Reason: "must be positive"}
	}
	return nil
}

// HasBreakConflict reports whether the interval hits an active break rule that
// recurs on the interval's weekday. Establishment-wide rules (nil barberId)
// apply to every barber.
func (e *Engine) HasBreakConflict(ctx context.Context, in CheckInput) (bool, error) {
	if err := in.validate(); err != nil {
		return false, err
	}
	breaks, err := e.Breaks.ActiveBreaks(ctx, BreakQuery{
		EstablishmentID: in.EstablishmentID,
		BarberID:        in.BarberID,
	})
	if err != nil {
		return false, fmt.Errorf("fetch active breaks: %w", err)
	}
	startMin := MinuteOfDay(in.Start)
	return anyBreakConflict(breaks, in.Start, startMin, startMin+in.DurationMin, in.BarberID), nil
}

// HasTimeBlockConflict reports whether the interval hits a time block. Blocks
// work in absolute timestamps, not time-of-day.
func (e *Engine) HasTimeBlockConflict(ctx context.Context, in CheckInput) (bool, error) {
	if err := in.validate(); err != nil {
		return false, err
	}
	end := in.Start.Add(time.Duration(in.DurationMin) * time.Minute)
	blocks, err := e.TimeBlocks.BlocksInRange(ctx, TimeBlockQuery{
		EstablishmentID: in.EstablishmentID,
		BarberID:        in.BarberID,
		From:            in.Start,
		To:              end,
	})
	if err != nil {
		return false, fmt.Errorf("fetch time blocks: %w", err)
	}
	return anyBlockConflict(blocks, in.Start, end, in.BarberID), nil
}

// HasAppointmentConflict reports whether the interval hits an occupying
// (confirmed or in-progress) appointment. BarberID is an exact match when
// set; when nil the check spans every appointment of the establishment.
func (e *Engine) HasAppointmentConflict(ctx context.Context, in CheckInput) (bool, error) {
	if err := in.validate(); err != nil {
		return false, err
	}
	end := in.Start.Add(time.Duration(in.DurationMin) * time.Minute)
	appts, err := e.Appointments.AppointmentsInRange(ctx, AppointmentQuery{
		EstablishmentID: in.EstablishmentID,
		BarberID:        in.BarberID,
		From:            in.Start,
		To:              end,
		Statuses:        models.OccupyingStatuses,
	})
	if err != nil {
		return false, fmt.Errorf("fetch appointments: %w", err)
	}
	return anyAppointmentConflict(appts, in.Start, end, in.BarberID, in.ExcludeAppointmentID), nil
}

// CheckAllConflicts evaluates all three conflict sources. All of them run
// even after a hit, so the result carries accurate per-source flags. Any
// source error fails the whole check; storage trouble must never read as
// availability.
func (e *Engine) CheckAllConflicts(ctx context.Context, in CheckInput) (models.ConflictResult, error) {
	if err := in.validate(); err != nil {
		return models.ConflictResult{}, err
	}

	breakHit, err := e.HasBreakConflict(ctx, in)
	if err != nil {
		return models.ConflictResult{}, err
	}
	blockHit, err := e.HasTimeBlockConflict(ctx, in)
	if err != nil {
		return models.ConflictResult{}, err
	}
	apptHit, err := e.HasAppointmentConflict(ctx, in)
	if err != nil {
		return models.ConflictResult{}, err
	}

	return buildResult(breakHit, blockHit, apptHit), nil
}

// buildResult combines the three flags with fixed message precedence:
// break over time block over appointment.
func buildResult(breakHit, blockHit, apptHit bool) models.ConflictResult {
	res := models.ConflictResult{
		HasBreakConflict:       breakHit,
		HasTimeBlockConflict:   blockHit,
		HasAppointmentConflict: apptHit,
		HasAnyConflict:         breakHit || blockHit || apptHit,
	}
	switch {
	case breakHit:
		res.Message = MsgBreakConflict
	case blockHit:
		res.Message = MsgTimeBlockConflict
	case apptHit:
		res.Message = MsgAppointmentConflict
	}
	return res
}

// sharedScopeMatches is the barber scoping for breaks and time blocks: a nil
// barberId on the record means establishment-wide, conflicting with every
// barber.
func sharedScopeMatches(recordBarber, queryBarber *string) bool {
	if recordBarber == nil || queryBarber == nil {
		return true
	}
	return *recordBarber == *queryBarber
}

// exactScopeMatches is the barber scoping for appointments: with a barber in
// the query only that barber's appointments conflict; with no barber the
// check spans the whole establishment.
func exactScopeMatches(recordBarber, queryBarber *string) bool {
	if queryBarber == nil {
		return true
	}
	return recordBarber != nil && *recordBarber == *queryBarber
}

func anyBreakConflict(breaks []models.BreakRule, date time.Time, startMin, endMin int, barberID *string) bool {
	for _, br := range breaks {
		if !br.Active {
			continue
		}
		if !sharedScopeMatches(br.BarberID, barberID) {
			continue
		}
		// A rule with no weekday set can never match a date; such rules are
		// skipped rather than treated as always-on.
		if !AppliesOn(br.DaysOfWeek, date) {
			continue
		}
		brStart, err := ToMinutes(br.StartTime)
		if err != nil {
			continue
		}
		brEnd, err := ToMinutes(br.EndTime)
		if err != nil {
			continue
		}
		if Overlaps(startMin, endMin, brStart, brEnd) {
			return true
		}
	}
	return false
}

func anyBlockConflict(blocks []models.TimeBlock, start, end time.Time, barberID *string) bool {
	for _, bl := range blocks {
		if !sharedScopeMatches(bl.BarberID, barberID) {
			continue
		}
		if OverlapsAt(start, end, bl.StartTime, bl.EndTime) {
			return true
		}
	}
	return false
}

func anyAppointmentConflict(appts []models.Appointment, start, end time.Time, barberID *string, excludeID string) bool {
	for i := range appts {
		ap := &appts[i]
		if excludeID != "" && ap.ID == excludeID {
			continue
		}
		if !ap.Occupies() {
			continue
		}
		if !exactScopeMatches(ap.BarberID, barberID) {
			continue
		}
		if ap.ScheduledTime == nil {
			continue
		}
		apEnd := ap.EndTime
		if apEnd == nil {
			derived := ap.ScheduledTime.Add(time.Duration(ap.DurationMin) * time.Minute)
			apEnd = &derived
		}
		if OverlapsAt(start, end, *ap.ScheduledTime, *apEnd) {
			return true
		}
	}
	return false
}
