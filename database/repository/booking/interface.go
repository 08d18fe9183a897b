package bookingRepo

import (
	"context"
	"errors"

	"servehub/models"
)

// ErrDuplicateSlot is returned by InsertConfirmedBooking when the ledger's
// uniqueness constraint rejects the write because a concurrent insert
// already holds the (provider, date, slot) triple.
var ErrDuplicateSlot = errors.New("slot already booked")

// BookingRepository is the persistence contract for the booking ledger.
type BookingRepository interface {
	// FindActiveBooking returns the booking holding (provider, date, slot),
	// or nil when the slot is free.
	FindActiveBooking(ctx context.Context, providerID, date, slot string) (*models.Booking, error)

	// FindActiveBookingsByDate returns all slot-holding bookings for a
	// provider on a date.
	FindActiveBookingsByDate(ctx context.Context, providerID, date string) ([]models.Booking, error)

	// InsertConfirmedBooking persists a new booking. It fails with
	// ErrDuplicateSlot if an active booking for the same triple already
	// exists; the constraint is enforced by the storage layer, not by the
	// caller's pre-check.
	InsertConfirmedBooking(ctx context.Context, booking *models.Booking) error

	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)
}
