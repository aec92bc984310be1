package models

import "time"

// Client is an end customer of an establishment. Phone is the WhatsApp number
// used by the messaging collaborator.
type Client struct {
	ID              string    `bson:"id" json:"id"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	Name            string    `bson:"name" json:"name"`
	Phone           string    `bson:"phone" json:"phone"`
	Email           string    `bson:"email,omitempty" json:"email,omitempty"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
