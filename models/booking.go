package models

import "time"

// Booking lifecycle statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
	BookingStatusFailed    = "failed"
)

// ActiveBookingStatuses are the statuses that hold a slot. Cancelled and
// failed bookings release theirs and may coexist with a later booking for
// the same provider, date and slot.
var ActiveBookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCompleted,
}

// Booking represents a reservation of a single time slot with a provider.
type Booking struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"userId"`
	ProviderID string    `bson:"provider_id" json:"providerId"`
	Date       string    `bson:"date" json:"date"`          // "YYYY-MM-DD", no time-zone component
	TimeSlot   string    `bson:"time_slot" json:"timeSlot"` // e.g. "09:00-10:00"
	Amount     float64   `bson:"amount" json:"amount"`      // major currency units
	Currency   string    `bson:"currency" json:"currency"`
	Status     string    `bson:"status" json:"status"`

	// Gateway correlation identifiers.
	RazorpayOrderID   string `bson:"razorpay_order_id,omitempty" json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string `bson:"razorpay_payment_id,omitempty" json:"razorpayPaymentId,omitempty"`
	RazorpaySignature string `bson:"razorpay_signature,omitempty" json:"-"`

	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// HoldsSlot reports whether the booking's status occupies its slot.
func (b *Booking) HoldsSlot() bool {
	for _, s := range ActiveBookingStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}
