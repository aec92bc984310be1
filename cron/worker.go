package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"barberbook/config"
	clientRepo "barberbook/database/repository/client"
	"barberbook/models"
	"barberbook/services/notification"
	"barberbook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async delivery worker in the background.
// Tasks carry the message body; the worker only resolves the client's phone
// and hands the text to the messenger.
func InitNotificationWorker(clients clientRepo.ClientRepository, messenger notification.ClientMessenger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	deliver := handleMessageTask(clients, messenger)
	mux.HandleFunc(tasks.TypeSendConfirmation, deliver)
	mux.HandleFunc(tasks.TypeSendReminder, deliver)

	// Start async worker with retry logic.
	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleMessageTask(clients clientRepo.ClientRepository, messenger notification.ClientMessenger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.MessagePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotificationWorker] invalid payload: %v", err)
			return err
		}

		client, err := clients.GetByID(ctx, p.EstablishmentID, p.ClientID)
		if err != nil {
			log.Printf("[NotificationWorker] could not resolve client %s: %v", p.ClientID, err)
			return err
		}

		log.Printf("[NotificationWorker] delivering %s for appointment %s", p.Kind, p.AppointmentID)
		return messenger.SendText(ctx, client.Phone, p.Body)
	}
}
