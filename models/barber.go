package models

import "time"

// Barber belongs to exactly one establishment. Appointments, breaks and time
// blocks may be scoped to a barber or apply establishment-wide.
type Barber struct {
	ID              string    `bson:"id" json:"id"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	Name            string    `bson:"name" json:"name"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialties     []string  `bson:"specialties,omitempty" json:"specialties,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
