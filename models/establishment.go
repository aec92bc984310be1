package models

import "time"

// Establishment is a tenant business (barbershop/salon) owning barbers,
// offerings and schedules.
type Establishment struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    string    `bson:"address,omitempty" json:"address,omitempty"`
	OpenTime   string    `bson:"openTime,omitempty" json:"openTime,omitempty"`   // "09:00"
	CloseTime  string    `bson:"closeTime,omitempty" json:"closeTime,omitempty"` // "18:00"
	ClosedDays []int     `bson:"closedDays,omitempty" json:"closedDays,omitempty"` // 0=Sunday..6=Saturday
	Active     bool      `bson:"active" json:"active"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
