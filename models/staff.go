package models

import "time"

// StaffUser is an establishment operator account for the management API.
type StaffUser struct {
	ID              string    `bson:"id" json:"id"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	Name            string    `bson:"name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	PasswordHash    string    `bson:"passwordHash" json:"-"`
	Role            string    `bson:"role" json:"role"` // owner or staff
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
