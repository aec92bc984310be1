package notification

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"
	"barberbook/services/tasks"
	"barberbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultDispatcher enqueues asynq tasks; the worker in cron/ performs the
// actual delivery through a ClientMessenger.
type DefaultDispatcher struct {
	Tasks *asynq.Client
	// ReminderLead is how long before the scheduled time the reminder fires.
	ReminderLead time.Duration
}

func (d *DefaultDispatcher) AppointmentConfirmed(ctx context.Context, appt *models.Appointment) error {
	when := ""
	if appt.ScheduledTime != nil {
		when = appt.ScheduledTime.Format("02/01 15:04")
	}
	payload := models.MessagePayload{
		EstablishmentID: appt.EstablishmentID,
		AppointmentID:   appt.ID,
		ClientID:        appt.ClientID,
		Kind:            "confirmation",
		Body:            fmt.Sprintf("Your appointment is confirmed for %s.", when),
	}
	task, opts, err := tasks.NewConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("building confirmation task: %w", err)
	}
	if _, err := d.Tasks.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueueing confirmation for appointment %s: %w", appt.ID, err)
	}
	return nil
}

func (d *DefaultDispatcher) ScheduleReminder(ctx context.Context, appt *models.Appointment) error {
	if appt.ScheduledTime == nil {
		return nil
	}
	fireAt := appt.ScheduledTime.Add(-d.ReminderLead)
	if fireAt.Before(time.Now()) {
		// Too close to the appointment for a reminder to be useful.
		return nil
	}
	payload := models.MessagePayload{
		EstablishmentID: appt.EstablishmentID,
		AppointmentID:   appt.ID,
		ClientID:        appt.ClientID,
		Kind:            "reminder",
		Body:            fmt.Sprintf("Reminder: your appointment starts at %s.", appt.ScheduledTime.Format("15:04")),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("building reminder task: %w", err)
	}
	if _, err := d.Tasks.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueueing reminder for appointment %s: %w", appt.ID, err)
	}
	return nil
}

func (d *DefaultDispatcher) QueueCalled(ctx context.Context, appt *models.Appointment) error {
	payload := models.MessagePayload{
		EstablishmentID: appt.EstablishmentID,
		AppointmentID:   appt.ID,
		ClientID:        appt.ClientID,
		Kind:            "confirmation",
		Body:            "It's your turn! Please head to the counter.",
	}
	task, opts, err := tasks.NewConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("building queue-called task: %w", err)
	}
	if _, err := d.Tasks.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueueing queue-called message for appointment %s: %w", appt.ID, err)
	}
	return nil
}

// LogMessenger writes messages to the application log instead of a real
// channel. The WhatsApp integration satisfies ClientMessenger in its place.
type LogMessenger struct{}

func (LogMessenger) SendText(_ context.Context, phone, body string) error {
	utils.GetLogger().Info("outbound client message",
		zap.String("phone", phone),
		zap.String("body", body))
	return nil
}
