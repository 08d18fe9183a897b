package booking

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"servehub/models"

	"go.uber.org/zap"
)

// CreateOrder opens a payment intent with the gateway for one provider,
// date and slot. Preconditions run in order; the first failure wins.
// Nothing is written to the ledger: the availability check here is
// best-effort only, because the slot can still be taken between this call
// and the confirmation. VerifyPayment closes that race.
func (s *DefaultBookingService) CreateOrder(ctx context.Context, userID string, input models.CreateOrderInput) (*models.OrderDetails, error) {
	if input.ProviderID == "" || input.Date == "" || input.TimeSlot == "" || input.Amount == 0 {
		return nil, newError(KindInvalidInput, "Please provide providerId, date, timeSlot and amount")
	}
	if !ValidSlot(input.TimeSlot) {
		return nil, newError(KindInvalidInput, "Invalid time slot")
	}
	dateStr, err := normalizeDate(input.Date)
	if err != nil {
		return nil, err
	}

	provider, err := s.approvedProvider(ctx, input.ProviderID)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(provider, input.Amount); err != nil {
		return nil, err
	}

	if !s.Gateway.Configured() {
		return nil, newError(KindServiceUnavailable, "Payment is not configured")
	}

	existing, err := s.Repo.FindActiveBooking(ctx, input.ProviderID, dateStr, input.TimeSlot)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newError(KindConflict, "This slot is already occupied. Please choose a different date or time.")
	}

	amountMinor := int64(math.Round(input.Amount * 100))
	receipt := buildReceipt(userID, time.Now())

	orderID, err := s.Gateway.CreateOrder(ctx, amountMinor, defaultCurrency, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	s.Logger.Info("payment order created",
		zap.String("orderId", orderID),
		zap.String("providerId", input.ProviderID),
		zap.String("date", dateStr),
		zap.String("slot", input.TimeSlot),
		zap.Int64("amountMinor", amountMinor),
	)

	return &models.OrderDetails{
		OrderID:  orderID,
		Amount:   amountMinor,
		Currency: defaultCurrency,
		Key:      s.Gateway.KeyID(),
	}, nil
}

// buildReceipt derives a gateway receipt id from the requesting user and
// the current time. Collision avoidance, not uniqueness.
func buildReceipt(userID string, now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return "bk" + tail(userID, 10) + tail(ms, 8)
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
