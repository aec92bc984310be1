package booking

import (
	"context"
	"time"

	"barberbook/models"
)

// CreateInput describes a scheduled booking proposal.
type CreateInput struct {
	EstablishmentID string
	ClientID        string
	BarberID        *string
	OfferingID      string
	Start           time.Time
	// DurationMin overrides the offering's duration when positive; zero means
	// "use the offering's duration".
	DurationMin int
	Notes       string
}

// EnqueueInput describes a walk-in joining the virtual queue.
type EnqueueInput struct {
	EstablishmentID string
	ClientID        string
	BarberID        *string
	OfferingID      string
	Notes           string
}

// BookingService owns the appointment lifecycle. Every write that occupies
// time re-runs the conflict check inside a lock, so an interval can never be
// double-booked between the availability read and the insert.
type BookingService interface {
	Create(ctx context.Context, in CreateInput) (*models.Appointment, error)
	Reschedule(ctx context.Context, establishmentID, id string, newStart time.Time) (*models.Appointment, error)
	Cancel(ctx context.Context, establishmentID, id string) error
	UpdateStatus(ctx context.Context, establishmentID, id, status string) error
	Enqueue(ctx context.Context, in EnqueueInput) (*models.Appointment, error)
	CallNext(ctx context.Context, establishmentID string, barberID *string) (*models.Appointment, error)
}
