package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	providerRepo "servehub/database/repository/provider"
	"servehub/models"
	"servehub/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Register creates a provider profile in the pending status. A provider
// becomes bookable only after an admin approves it.
func (s *DefaultProviderService) Register(ctx context.Context, input RegisterInput) (*models.Provider, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.ServiceName == "" || input.OwnerName == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("serviceName, ownerName, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	prov := &models.Provider{
		ID:           uuid.New().String(),
		ServiceName:  input.ServiceName,
		OwnerName:    input.OwnerName,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Phone:        input.Phone,
		Address:      input.Address,
		Pricing:      input.Pricing,
		Status:       models.ProviderStatusPending,
	}
	if err := s.Repo.Create(ctx, prov); err != nil {
		return nil, err
	}
	return prov, nil
}

// SignIn verifies credentials and issues a bearer token with the provider role.
func (s *DefaultProviderService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	prov, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(prov.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(prov.ID, "provider", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + prov.ID
	if err := authCache.Set(ctx, cacheKey, utils.HashToken(token), time.Hour).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to cache auth token for provider %s: %v", prov.ID, err)
	}

	return &AuthResult{Provider: prov, Token: token}, nil
}

// GetProviderByID fetches a provider profile.
func (s *DefaultProviderService) GetProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	prov, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prov == nil {
		return nil, ErrNotFound
	}
	return prov, nil
}

// Approve marks the provider approved.
func (s *DefaultProviderService) Approve(ctx context.Context, id string) error {
	if err := s.Repo.UpdateStatus(ctx, id, models.ProviderStatusApproved); err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
