package models

import "time"

// Offering is a bookable service of an establishment (haircut, beard trim).
// DurationMin drives the length of the interval an appointment occupies.
type Offering struct {
	ID              string    `bson:"id" json:"id"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	Name            string    `bson:"name" json:"name"`
	DurationMin     int       `bson:"durationMin" json:"durationMin"`
	Price           float64   `bson:"price" json:"price"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
