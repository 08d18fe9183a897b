package provider

import (
	"context"
	"errors"

	providerRepo "servehub/database/repository/provider"
	"servehub/models"
)

// Domain-level error values returned by the provider service.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("provider not found")
)

// ProviderService manages provider profiles and their approval lifecycle.
type ProviderService interface {
	Register(ctx context.Context, input RegisterInput) (*models.Provider, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	GetProviderByID(ctx context.Context, id string) (*models.Provider, error)
	// Approve transitions a provider to the approved status. Admin only;
	// bookings and availability queries require an approved provider.
	Approve(ctx context.Context, id string) error
}

// RegisterInput carries a new provider profile's fields.
type RegisterInput struct {
	ServiceName string `json:"serviceName"`
	OwnerName   string `json:"ownerName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Pricing     string `json:"pricing"`
}

// AuthResult is returned on successful sign-in.
type AuthResult struct {
	Provider *models.Provider `json:"provider"`
	Token    string           `json:"token"`
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}
