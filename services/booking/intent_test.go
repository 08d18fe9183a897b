package booking

import (
	"context"
	"strings"
	"testing"
	"time"

	"servehub/models"
)

func validOrderInput() models.CreateOrderInput {
	return models.CreateOrderInput{
		ProviderID: testProviderID,
		Date:       testDate,
		TimeSlot:   "10:00-11:00",
		Amount:     500,
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	t.Parallel()
	svc, repo, _, gw := newTestService()

	order, err := svc.CreateOrder(context.Background(), testUserID, validOrderInput())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.OrderID == "" {
		t.Error("expected an order id")
	}
	if order.Amount != 50000 {
		t.Errorf("expected 50000 paise, got %d", order.Amount)
	}
	if order.Currency != "INR" {
		t.Errorf("expected INR, got %s", order.Currency)
	}
	if order.Key != gw.KeyID() {
		t.Errorf("expected gateway key handle, got %s", order.Key)
	}
	// No ledger write happens at intent time.
	if repo.count() != 0 {
		t.Errorf("issuer must not write to the ledger, found %d bookings", repo.count())
	}
}

func TestCreateOrderPreconditionOrder(t *testing.T) {
	t.Parallel()
	svc, repo, _, gw := newTestService()
	gw.configured = false
	repo.bookings = append(repo.bookings, models.Booking{
		ProviderID: testProviderID,
		Date:       testDate,
		TimeSlot:   "10:00-11:00",
		Status:     models.BookingStatusConfirmed,
	})

	// Missing fields outrank everything else.
	_, err := svc.CreateOrder(context.Background(), testUserID, models.CreateOrderInput{})
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("expected InvalidInput for empty input, got %v", err)
	}

	// A non-catalog slot outranks the provider check.
	input := validOrderInput()
	input.ProviderID = "missing"
	input.TimeSlot = "23:00-24:00"
	_, err = svc.CreateOrder(context.Background(), testUserID, input)
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("expected InvalidInput for bad slot, got %v", err)
	}

	// An unknown provider outranks gateway configuration.
	input = validOrderInput()
	input.ProviderID = "missing"
	_, err = svc.CreateOrder(context.Background(), testUserID, input)
	if KindOf(err) != KindNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}

	// An unconfigured gateway outranks the occupied slot.
	_, err = svc.CreateOrder(context.Background(), testUserID, validOrderInput())
	if KindOf(err) != KindServiceUnavailable {
		t.Fatalf("expected ServiceUnavailable, got %v", err)
	}

	// With the gateway back, the occupied slot surfaces.
	gw.configured = true
	_, err = svc.CreateOrder(context.Background(), testUserID, validOrderInput())
	if KindOf(err) != KindConflict {
		t.Fatalf("expected Conflict, got %v", err)
	}
	if gw.orderCount() != 0 {
		t.Errorf("no gateway order may be created on conflict, got %d", gw.orderCount())
	}
}

func TestCreateOrderAmountValidation(t *testing.T) {
	t.Parallel()
	svc, _, provRepo, gw := newTestService()

	// Provider pricing is ₹500; a different amount is rejected.
	input := validOrderInput()
	input.Amount = 9999
	_, err := svc.CreateOrder(context.Background(), testUserID, input)
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("expected InvalidInput for amount mismatch, got %v", err)
	}
	if gw.orderCount() != 0 {
		t.Error("no gateway order may be created for a mismatched amount")
	}

	// Without a parseable rate the client amount is accepted.
	provRepo.providers[testProviderID].Pricing = "negotiable"
	order, err := svc.CreateOrder(context.Background(), testUserID, input)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Amount != 999900 {
		t.Errorf("expected 999900 paise, got %d", order.Amount)
	}
}

func TestCreateOrderMinorUnitRounding(t *testing.T) {
	t.Parallel()
	svc, _, provRepo, _ := newTestService()
	provRepo.providers[testProviderID].Pricing = ""

	input := validOrderInput()
	input.Amount = 123.456
	order, err := svc.CreateOrder(context.Background(), testUserID, input)
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Amount != 12346 {
		t.Errorf("expected rounding to 12346 paise, got %d", order.Amount)
	}
}

func TestBuildReceipt(t *testing.T) {
	t.Parallel()
	now := time.Now()
	receipt := buildReceipt(testUserID, now)

	if !strings.HasPrefix(receipt, "bk") {
		t.Errorf("receipt %q must start with bk", receipt)
	}
	if !strings.Contains(receipt, tail(testUserID, 10)) {
		t.Errorf("receipt %q must carry the user id tail", receipt)
	}
	if len(receipt) > 2+10+8 {
		t.Errorf("receipt %q longer than bk + 10 + 8 chars", receipt)
	}

	// Short user ids are used whole.
	if got := buildReceipt("u1", now); !strings.HasPrefix(got, "bku1") {
		t.Errorf("short user id mangled: %q", got)
	}
}
