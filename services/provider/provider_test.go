package provider

import (
	"context"
	"errors"
	"testing"

	"servehub/models"
)

func TestApproveTransitionsStatus(t *testing.T) {
	t.Parallel()
	repo := newStubProviderRepo()
	repo.providers["prov-1"] = &models.Provider{
		ID:     "prov-1",
		Status: models.ProviderStatusPending,
	}
	svc := &DefaultProviderService{Repo: repo}

	if err := svc.Approve(context.Background(), "prov-1"); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got := repo.providers["prov-1"].Status; got != models.ProviderStatusApproved {
		t.Errorf("expected approved status, got %s", got)
	}
}

func TestApproveMissingProvider(t *testing.T) {
	t.Parallel()
	svc := &DefaultProviderService{Repo: newStubProviderRepo()}

	err := svc.Approve(context.Background(), "missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetProviderByIDMissing(t *testing.T) {
	t.Parallel()
	svc := &DefaultProviderService{Repo: newStubProviderRepo()}

	_, err := svc.GetProviderByID(context.Background(), "missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	repo := newStubProviderRepo()
	repo.providers["prov-1"] = &models.Provider{
		ID:    "prov-1",
		Email: "taken@example.com",
	}
	svc := &DefaultProviderService{Repo: repo}

	_, err := svc.Register(context.Background(), RegisterInput{
		ServiceName: "Sparkle Cleaning",
		OwnerName:   "Asha",
		Email:       "Taken@example.com",
		Password:    "secret",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterStartsPending(t *testing.T) {
	t.Parallel()
	svc := &DefaultProviderService{Repo: newStubProviderRepo()}

	prov, err := svc.Register(context.Background(), RegisterInput{
		ServiceName: "Sparkle Cleaning",
		OwnerName:   "Asha",
		Email:       "asha@example.com",
		Password:    "secret",
		Pricing:     "₹500 per hour",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if prov.Status != models.ProviderStatusPending {
		t.Errorf("new provider must start pending, got %s", prov.Status)
	}
	if prov.IsApproved() {
		t.Error("new provider must not be bookable before approval")
	}
}
