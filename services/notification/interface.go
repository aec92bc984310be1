package notification

import (
	"context"

	"barberbook/models"
)

// ClientMessenger delivers a text to a client's phone. The production
// implementation (WhatsApp/Evolution API) lives outside this repo; LogMessenger
// stands in for it.
type ClientMessenger interface {
	SendText(ctx context.Context, phone, body string) error
}

// Dispatcher queues client-facing notifications for async delivery.
type Dispatcher interface {
	AppointmentConfirmed(ctx context.Context, appt *models.Appointment) error
	ScheduleReminder(ctx context.Context, appt *models.Appointment) error
	QueueCalled(ctx context.Context, appt *models.Appointment) error
}
