package models

import "time"

// Appointment statuses.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
	StatusNoShow     = "no_show"
)

// Appointment types.
const (
	TypeScheduled = "scheduled"
	TypeQueue     = "queue"
)

// OccupyingStatuses are the statuses that make an appointment count against a
// barber's time. Pending, cancelled, completed and no-show appointments never
// block new bookings.
var OccupyingStatuses = []string{StatusConfirmed, StatusInProgress}

// Appointment is a client booking, either scheduled at a fixed time or parked
// in the walk-in queue (nil ScheduledTime). EndTime is derived from
// ScheduledTime plus DurationMin at insert and kept alongside it so overlap
// queries stay index-friendly.
type Appointment struct {
	ID              string     `bson:"id" json:"id"`
	EstablishmentID string     `bson:"establishmentId" json:"establishmentId"`
	ClientID        string     `bson:"clientId" json:"clientId"`
	BarberID        *string    `bson:"barberId,omitempty" json:"barberId,omitempty"`
	OfferingID      string     `bson:"offeringId" json:"offeringId"`
	Type            string     `bson:"type" json:"type"` // scheduled or queue
	ScheduledTime   *time.Time `bson:"scheduledTime,omitempty" json:"scheduledTime,omitempty"`
	EndTime         *time.Time `bson:"endTime,omitempty" json:"endTime,omitempty"`
	DurationMin     int        `bson:"durationMin" json:"durationMin"`
	Status          string     `bson:"status" json:"status"`
	QueuePosition   int        `bson:"queuePosition,omitempty" json:"queuePosition,omitempty"`
	Notes           string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Occupies reports whether the appointment holds its time window.
func (a *Appointment) Occupies() bool {
	return a.Status == StatusConfirmed || a.Status == StatusInProgress
}
