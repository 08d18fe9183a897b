package booking

import (
	"context"
	"fmt"
	"sync"

	bookingRepo "servehub/database/repository/booking"
	"servehub/models"

	"go.uber.org/zap"
)

func newNopLogger() *zap.Logger { return zap.NewNop() }

// stubBookingRepo is an in-memory BookingRepository. Insert enforces the
// same active-status uniqueness the Mongo partial index provides, under a
// single mutex, so racing inserts resolve to exactly one winner.
type stubBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (r *stubBookingRepo) FindActiveBooking(ctx context.Context, providerID, date, slot string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		b := r.bookings[i]
		if b.ProviderID == providerID && b.Date == date && b.TimeSlot == slot && b.HoldsSlot() {
			return &b, nil
		}
	}
	return nil, nil
}

func (r *stubBookingRepo) FindActiveBookingsByDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID && b.Date == date && b.HoldsSlot() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) InsertConfirmedBooking(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ProviderID == booking.ProviderID && b.Date == booking.Date &&
			b.TimeSlot == booking.TimeSlot && b.HoldsSlot() {
			return bookingRepo.ErrDuplicateSlot
		}
	}
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *stubBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBookingRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

// stubProviderRepo is an in-memory ProviderRepository.
type stubProviderRepo struct {
	providers map[string]*models.Provider
}

func (r *stubProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	r.providers[provider.ID] = provider
	return nil
}

func (r *stubProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return r.providers[id], nil
}

func (r *stubProviderRepo) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
	for _, p := range r.providers {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubProviderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	p, ok := r.providers[id]
	if !ok {
		return fmt.Errorf("provider %s not found", id)
	}
	p.Status = status
	return nil
}

// fakeGateway implements PaymentGateway with a known secret and counts
// the orders it opens.
type fakeGateway struct {
	mu         sync.Mutex
	configured bool
	secret     string
	orders     int
	createErr  error
}

func (g *fakeGateway) Configured() bool { return g.configured }
func (g *fakeGateway) KeyID() string    { return "rzp_test_key" }

func (g *fakeGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return "", g.createErr
	}
	g.orders++
	return fmt.Sprintf("order_test_%d", g.orders), nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return SignatureMatches(orderID, paymentID, signature, g.secret)
}

func (g *fakeGateway) orderCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.orders
}

const (
	testSecret     = "test_key_secret"
	testProviderID = "prov-1"
	testUserID     = "user-1234567890abc"
	testDate       = "2024-06-01"
)

// newTestService wires a DefaultBookingService over the stubs with one
// approved provider.
func newTestService() (*DefaultBookingService, *stubBookingRepo, *stubProviderRepo, *fakeGateway) {
	repo := &stubBookingRepo{}
	provRepo := &stubProviderRepo{providers: map[string]*models.Provider{
		testProviderID: {
			ID:          testProviderID,
			ServiceName: "Sparkle Cleaning",
			OwnerName:   "Asha",
			Pricing:     "₹500 per hour",
			Status:      models.ProviderStatusApproved,
		},
	}}
	gw := &fakeGateway{configured: true, secret: testSecret}
	svc := &DefaultBookingService{
		Repo:         repo,
		ProviderRepo: provRepo,
		Gateway:      gw,
		Logger:       newNopLogger(),
	}
	return svc, repo, provRepo, gw
}
