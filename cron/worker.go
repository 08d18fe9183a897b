package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"servehub/config"
	"servehub/models"
	"servehub/services/tasks"
	"servehub/services/user"

	"github.com/hibiken/asynq"
)

// InitConfirmationWorker runs the async worker in background. It consumes
// booking-confirmation tasks and writes in-app notifications.
func InitConfirmationWorker(userSvc user.UserService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeBookingConfirmed, handleBookingConfirmedTask(userSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[ConfirmationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingConfirmedTask(userSvc user.UserService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingConfirmedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationWorker] Invalid payload: %v", err)
			return err
		}

		notification := models.Notification{
			Type: "booking_confirmed",
			Message: fmt.Sprintf("Your booking for %s at %s is confirmed (%s %.2f).",
				p.Date, p.TimeSlot, p.Currency, p.Amount),
			Data: map[string]string{
				"bookingId":  p.BookingID,
				"providerId": p.ProviderID,
				"date":       p.Date,
				"timeSlot":   p.TimeSlot,
			},
		}

		if err := userSvc.AddNotification(ctx, p.UserID, notification); err != nil {
			log.Printf("[ConfirmationWorker] Failed to store notification for user %s: %v", p.UserID, err)
			return err
		}
		return nil
	}
}
