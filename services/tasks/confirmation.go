package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"servehub/config"
	"servehub/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmed = "booking:confirmed"

// BookingConfirmedPayload is the task payload for a confirmed booking.
type BookingConfirmedPayload struct {
	BookingID  string  `json:"bookingId"`
	UserID     string  `json:"userId"`
	ProviderID string  `json:"providerId"`
	Date       string  `json:"date"`
	TimeSlot   string  `json:"timeSlot"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

// NewBookingConfirmedTask builds the asynq task for a confirmed booking.
func NewBookingConfirmedTask(payload BookingConfirmedPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmed, b), nil
}

// Notifier enqueues booking-confirmation tasks on the queue Redis DB.
// It implements booking.ConfirmationNotifier.
type Notifier struct {
	client *asynq.Client
}

// NewNotifier constructs a Notifier from the configured queue Redis DB.
func NewNotifier() *Notifier {
	return &Notifier{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPass,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// BookingConfirmed enqueues the confirmation notification for the booking.
func (n *Notifier) BookingConfirmed(ctx context.Context, booking *models.Booking) error {
	task, err := NewBookingConfirmedTask(BookingConfirmedPayload{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		ProviderID: booking.ProviderID,
		Date:       booking.Date,
		TimeSlot:   booking.TimeSlot,
		Amount:     booking.Amount,
		Currency:   booking.Currency,
	})
	if err != nil {
		return err
	}
	if _, err := n.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (n *Notifier) Close() error {
	return n.client.Close()
}
