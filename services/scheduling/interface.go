package scheduling

import (
	"context"
	"time"

	"barberbook/models"
)

// BreakQuery selects the active break rules relevant to a conflict check. A
// nil BarberID asks for establishment-wide rules only; a concrete BarberID
// asks for that barber's rules plus the establishment-wide ones.
type BreakQuery struct {
	EstablishmentID string
	BarberID        *string
}

// TimeBlockQuery selects time blocks whose interval intersects [From, To).
type TimeBlockQuery struct {
	EstablishmentID string
	BarberID        *string
	From            time.Time
	To              time.Time
}

// AppointmentQuery selects appointments in the given statuses whose occupied
// interval intersects [From, To). BarberID is an exact match when set; when
// nil the query spans every barber of the establishment.
type AppointmentQuery struct {
	EstablishmentID string
	BarberID        *string
	From            time.Time
	To              time.Time
	Statuses        []string
}

// BreakSource is the read contract for break rules.
type BreakSource interface {
	ActiveBreaks(ctx context.Context, q BreakQuery) ([]models.BreakRule, error)
}

// TimeBlockSource is the read contract for time blocks.
type TimeBlockSource interface {
	BlocksInRange(ctx context.Context, q TimeBlockQuery) ([]models.TimeBlock, error)
}

// AppointmentSource is the read contract for appointments.
type AppointmentSource interface {
	AppointmentsInRange(ctx context.Context, q AppointmentQuery) ([]models.Appointment, error)
}
