package models

import "time"

// BreakRule is a weekly-recurring unavailability window ("Almoço", cleaning,
// shift change). A nil BarberID means the break applies to every barber of the
// establishment.
type BreakRule struct {
	ID              string    `bson:"id" json:"id"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	BarberID        *string   `bson:"barberId,omitempty" json:"barberId,omitempty"`
	Name            string    `bson:"name" json:"name"`
	StartTime       string    `bson:"startTime" json:"startTime"` // "12:00"
	EndTime         string    `bson:"endTime" json:"endTime"`     // "13:00"
	DaysOfWeek      []int     `bson:"daysOfWeek,omitempty" json:"daysOfWeek,omitempty"` // 0=Sunday..6=Saturday
	Recurring       bool      `bson:"recurring" json:"recurring"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
