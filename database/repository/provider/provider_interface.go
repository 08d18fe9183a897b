package providerRepo

import (
	"context"
	"errors"

	"servehub/models"
)

// ErrNotFound is returned by updates that matched no provider document.
var ErrNotFound = errors.New("provider not found")

// ProviderRepository is the persistence contract for provider profiles.
// Lookups return (nil, nil) when no provider matches.
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	GetByEmail(ctx context.Context, email string) (*models.Provider, error)
	// UpdateStatus returns ErrNotFound when the id matches no provider.
	UpdateStatus(ctx context.Context, id, status string) error
}
