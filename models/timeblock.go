package models

import "time"

// Time block types.
const (
	BlockTypeMaintenance = "maintenance"
	BlockTypeAbsence     = "absence"
	BlockTypeClosed      = "closed"
	BlockTypeCustom      = "custom"
)

// TimeBlock is an absolute-time unavailability window, e.g. maintenance or a
// barber's absence. Unlike BreakRule it is anchored to timestamps, not
// time-of-day recurrence. A nil BarberID blocks the whole establishment.
type TimeBlock struct {
	ID              string    `bson:"id" json:"id"`
	EstablishmentID string    `bson:"establishmentId" json:"establishmentId"`
	BarberID        *string   `bson:"barberId,omitempty" json:"barberId,omitempty"`
	Title           string    `bson:"title" json:"title"`
	BlockType       string    `bson:"blockType" json:"blockType"` // maintenance, absence, closed, custom
	StartTime       time.Time `bson:"startTime" json:"startTime"`
	EndTime         time.Time `bson:"endTime" json:"endTime"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}
