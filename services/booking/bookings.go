package booking

import (
	"context"

	"servehub/models"
)

// MyBookings returns the user's bookings, newest first.
func (s *DefaultBookingService) MyBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if userID == "" {
		return nil, newError(KindInvalidInput, "Please provide userId")
	}
	return s.Repo.ListByUser(ctx, userID)
}

// ProviderBookings returns a provider's bookings, newest first.
func (s *DefaultBookingService) ProviderBookings(ctx context.Context, providerID string) ([]models.Booking, error) {
	if providerID == "" {
		return nil, newError(KindInvalidInput, "Please provide providerId")
	}
	return s.Repo.ListByProvider(ctx, providerID)
}
