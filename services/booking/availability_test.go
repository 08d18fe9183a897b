package booking

import (
	"context"
	"testing"

	"servehub/models"
)

func TestCheckAvailabilityAllFree(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestService()

	slots, err := svc.CheckAvailability(context.Background(), testProviderID, testDate)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if len(slots) != 9 {
		t.Fatalf("expected 9 slots, got %d", len(slots))
	}
	for i, s := range slots {
		if !s.Available {
			t.Errorf("slot %s should be available", s.Slot)
		}
		if s.Slot != TimeSlots()[i] {
			t.Errorf("slot %d out of catalog order: %s", i, s.Slot)
		}
	}
}

func TestCheckAvailabilityMarksOccupiedSlot(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newTestService()
	repo.bookings = append(repo.bookings, models.Booking{
		ID:         "bk-1",
		ProviderID: testProviderID,
		Date:       testDate,
		TimeSlot:   "10:00-11:00",
		Status:     models.BookingStatusConfirmed,
	})

	slots, err := svc.CheckAvailability(context.Background(), testProviderID, testDate)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	for _, s := range slots {
		wantAvailable := s.Slot != "10:00-11:00"
		if s.Available != wantAvailable {
			t.Errorf("slot %s: available=%v, want %v", s.Slot, s.Available, wantAvailable)
		}
	}
}

func TestCheckAvailabilityIgnoresReleasedBookings(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newTestService()
	for _, status := range []string{models.BookingStatusCancelled, models.BookingStatusFailed} {
		repo.bookings = append(repo.bookings, models.Booking{
			ProviderID: testProviderID,
			Date:       testDate,
			TimeSlot:   "09:00-10:00",
			Status:     status,
		})
	}

	slots, err := svc.CheckAvailability(context.Background(), testProviderID, testDate)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if !slots[0].Available {
		t.Error("cancelled/failed bookings must not hold the slot")
	}
}

func TestCheckAvailabilityCatalogLengthIsInvariant(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newTestService()
	for _, slot := range TimeSlots() {
		repo.bookings = append(repo.bookings, models.Booking{
			ProviderID: testProviderID,
			Date:       testDate,
			TimeSlot:   slot,
			Status:     models.BookingStatusConfirmed,
		})
	}

	slots, err := svc.CheckAvailability(context.Background(), testProviderID, testDate)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if len(slots) != len(TimeSlots()) {
		t.Fatalf("availability vector length %d != catalog length %d", len(slots), len(TimeSlots()))
	}
	for _, s := range slots {
		if s.Available {
			t.Errorf("slot %s should be occupied", s.Slot)
		}
	}
}

func TestCheckAvailabilityUnknownProvider(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newTestService()

	_, err := svc.CheckAvailability(context.Background(), "missing", testDate)
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestCheckAvailabilityUnapprovedProvider(t *testing.T) {
	t.Parallel()
	svc, _, provRepo, _ := newTestService()
	provRepo.providers["pending-1"] = &models.Provider{
		ID:     "pending-1",
		Status: models.ProviderStatusPending,
	}

	_, err := svc.CheckAvailability(context.Background(), "pending-1", testDate)
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected NotFound for unapproved provider, got %v", err)
	}
}

func TestCheckAvailabilityDateHandling(t *testing.T) {
	t.Parallel()
	svc, repo, _, _ := newTestService()
	repo.bookings = append(repo.bookings, models.Booking{
		ProviderID: testProviderID,
		Date:       testDate,
		TimeSlot:   "09:00-10:00",
		Status:     models.BookingStatusConfirmed,
	})

	// A trailing time component is truncated before the ledger read.
	slots, err := svc.CheckAvailability(context.Background(), testProviderID, testDate+"T15:04:05Z")
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if slots[0].Available {
		t.Error("timestamped date must resolve to the same calendar day")
	}

	_, err = svc.CheckAvailability(context.Background(), testProviderID, "not-a-date")
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("expected InvalidInput for malformed date, got %v", err)
	}

	_, err = svc.CheckAvailability(context.Background(), testProviderID, "")
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("expected InvalidInput for empty date, got %v", err)
	}
}
