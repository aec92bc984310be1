package models

import "time"

// Slot is one step of a day grid: a fixed-duration candidate window and
// whether it is free of conflicts. Slots are derived values, never persisted.
type Slot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
}

// ConflictResult is the aggregated outcome of checking a proposed interval
// against breaks, time blocks and occupying appointments.
type ConflictResult struct {
	HasBreakConflict       bool   `json:"hasBreakConflict"`
	HasTimeBlockConflict   bool   `json:"hasTimeBlockConflict"`
	HasAppointmentConflict bool   `json:"hasAppointmentConflict"`
	HasAnyConflict         bool   `json:"hasAnyConflict"`
	Message                string `json:"message,omitempty"`
}
