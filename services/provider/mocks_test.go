package provider

import (
	"context"

	providerRepo "servehub/database/repository/provider"
	"servehub/models"
)

// stubProviderRepo is an in-memory ProviderRepository.
type stubProviderRepo struct {
	providers map[string]*models.Provider
}

func newStubProviderRepo() *stubProviderRepo {
	return &stubProviderRepo{providers: map[string]*models.Provider{}}
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
		return providerRepo.ErrNotFound
	}
	p.Status = status
	return nil
}
