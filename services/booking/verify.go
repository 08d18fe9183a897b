package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "servehub/database/repository/booking"
	"servehub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VerifyPayment validates the gateway's signed callback and commits the
// booking. This is the only code path that creates a booking row.
//
// The availability re-check closes the window between CreateOrder and the
// callback, but it is not the authority: the ledger's uniqueness
// constraint is. A concurrent confirmation that slips past the pre-check
// is rejected by the insert and surfaced as the same Conflict.
func (s *DefaultBookingService) VerifyPayment(ctx context.Context, userID string, input models.VerifyPaymentInput) (*models.Booking, error) {
	if input.RazorpayOrderID == "" || input.RazorpayPaymentID == "" || input.RazorpaySignature == "" ||
		input.ProviderID == "" || input.Date == "" || input.TimeSlot == "" || input.Amount == 0 {
		return nil, newError(KindInvalidInput, "Missing payment verification details")
	}
	if !ValidSlot(input.TimeSlot) {
		return nil, newError(KindInvalidInput, "Invalid time slot")
	}
	dateStr, err := normalizeDate(input.Date)
	if err != nil {
		return nil, err
	}

	if !s.Gateway.VerifySignature(input.RazorpayOrderID, input.RazorpayPaymentID, input.RazorpaySignature) {
		s.Logger.Warn("payment signature mismatch",
			zap.String("orderId", input.RazorpayOrderID),
			zap.String("paymentId", input.RazorpayPaymentID),
		)
		return nil, newError(KindPaymentVerificationFailed, "Payment verification failed")
	}

	provider, err := s.approvedProvider(ctx, input.ProviderID)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(provider, input.Amount); err != nil {
		return nil, err
	}

	// Slot could have been taken between create-order and payment.
	existing, err := s.Repo.FindActiveBooking(ctx, input.ProviderID, dateStr, input.TimeSlot)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, newError(KindConflict, "This slot is no longer available. Please choose another.")
	}

	bk := &models.Booking{
		ID:                uuid.New().String(),
		UserID:            userID,
		ProviderID:        input.ProviderID,
		Date:              dateStr,
		TimeSlot:          input.TimeSlot,
		Amount:            input.Amount,
		Currency:          defaultCurrency,
		Status:            models.BookingStatusConfirmed,
		RazorpayOrderID:   input.RazorpayOrderID,
		RazorpayPaymentID: input.RazorpayPaymentID,
		RazorpaySignature: input.RazorpaySignature,
		Notes:             input.Notes,
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.Repo.InsertConfirmedBooking(ctx, bk); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			// A concurrent confirmation won the slot after our pre-check.
			return nil, newError(KindConflict, "This slot is no longer available. Please choose another.")
		}
		return nil, err
	}

	s.Logger.Info("booking confirmed",
		zap.String("bookingId", bk.ID),
		zap.String("providerId", bk.ProviderID),
		zap.String("date", bk.Date),
		zap.String("slot", bk.TimeSlot),
	)

	if s.Notifier != nil {
		if err := s.Notifier.BookingConfirmed(ctx, bk); err != nil {
			s.Logger.Warn("failed to enqueue confirmation notification",
				zap.String("bookingId", bk.ID), zap.Error(err))
		}
	}

	return bk, nil
}
