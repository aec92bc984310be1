package tasks

import (
	"encoding/json"
	"time"

	"barberbook/models"

	"github.com/hibiken/asynq"
)

// Task type names consumed by the notification worker.
const (
	TypeSendConfirmation = "message:confirmation"
	TypeSendReminder     = "message:reminder"
)

// NewConfirmationTask builds an immediate confirmation message task.
func NewConfirmationTask(payload models.MessagePayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	return asynq.NewTask(TypeSendConfirmation, b), nil, nil
}

// NewReminderTask builds a reminder message task scheduled for fireAt.
func NewReminderTask(payload models.MessagePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return asynq.NewTask(TypeSendReminder, b), opts, nil
}
