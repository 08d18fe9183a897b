package booking

import (
	"context"

	bookingRepo "servehub/database/repository/booking"
	providerRepo "servehub/database/repository/provider"
	"servehub/models"

	"go.uber.org/zap"
)

// BookingService exposes the slot-reservation and payment-confirmation
// protocol plus booking listings.
type BookingService interface {
	// CheckAvailability returns the full catalog-ordered availability
	// vector for a provider and date. Advisory: it never reserves.
	CheckAvailability(ctx context.Context, providerID, date string) ([]models.SlotAvailability, error)

	// CreateOrder opens a payment intent with the gateway after a
	// best-effort availability check. No ledger write occurs.
	CreateOrder(ctx context.Context, userID string, input models.CreateOrderInput) (*models.OrderDetails, error)

	// VerifyPayment validates the gateway callback, re-checks
	// availability and commits the booking. The single point where a
	// booking row is created.
	VerifyPayment(ctx context.Context, userID string, input models.VerifyPaymentInput) (*models.Booking, error)

	MyBookings(ctx context.Context, userID string) ([]models.Booking, error)
	ProviderBookings(ctx context.Context, providerID string) ([]models.Booking, error)
}

// ConfirmationNotifier delivers a post-commit booking notification out of
// band. Failures are logged, never surfaced to the booking caller.
type ConfirmationNotifier interface {
	BookingConfirmed(ctx context.Context, booking *models.Booking) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	Gateway      PaymentGateway
	Notifier     ConfirmationNotifier // optional
	Logger       *zap.Logger
}

const defaultCurrency = "INR"

// approvedProvider fetches the provider and enforces the approval gate
// shared by every operation in this service.
func (s *DefaultBookingService) approvedProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	provider, err := s.ProviderRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil || !provider.IsApproved() {
		return nil, newError(KindNotFound, "Provider not found")
	}
	return provider, nil
}

// validateAmount rejects a client-supplied amount that contradicts the
// provider's authoritative rate. Providers without a parseable rate accept
// the amount as-is.
func validateAmount(provider *models.Provider, amount float64) error {
	if amount <= 0 {
		return newError(KindInvalidInput, "Amount must be positive")
	}
	if rate, ok := RateFromPricing(provider.Pricing); ok && amount != rate {
		return newError(KindInvalidInput, "Amount does not match provider pricing")
	}
	return nil
}
