package booking

import (
	"context"

	"servehub/models"
)

// CheckAvailability reads all slot-holding bookings for (provider, date)
// in one snapshot and returns a (slot, available) pair for every catalog
// slot, in catalog order. The result is a point-in-time hint; the commit
// gate lives in VerifyPayment and the ledger's uniqueness constraint.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, providerID, date string) ([]models.SlotAvailability, error) {
	if providerID == "" {
		return nil, newError(KindInvalidInput, "Please provide providerId")
	}
	if date == "" {
		return nil, newError(KindInvalidInput, "Please provide date (YYYY-MM-DD)")
	}
	dateStr, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}

	if _, err := s.approvedProvider(ctx, providerID); err != nil {
		return nil, err
	}

	booked, err := s.Repo.FindActiveBookingsByDate(ctx, providerID, dateStr)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]bool, len(booked))
	for _, b := range booked {
		occupied[b.TimeSlot] = true
	}

	slots := make([]models.SlotAvailability, 0, len(timeSlots))
	for _, slot := range timeSlots {
		slots = append(slots, models.SlotAvailability{
			Slot:      slot,
			Available: !occupied[slot],
		})
	}
	return slots, nil
}
