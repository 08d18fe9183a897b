package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"servehub/models"
	"servehub/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Register creates a new user account after a duplicate email check.
func (s *DefaultUserService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, fmt.Errorf("name, email and password are required")
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

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Phone:        input.Phone,
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

// SignIn verifies credentials, issues a bearer token and caches its hash
// for fast middleware validation.
func (s *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(usr.ID, "user", tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + usr.ID
	if err := authCache.Set(ctx, cacheKey, utils.HashToken(token), time.Hour).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to cache auth token for user %s: %v", usr.ID, err)
	}

	return &AuthResult{User: usr, Token: token}, nil
}

// GetUserByID fetches a user account.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrNotFound
	}
	return usr, nil
}

// AddNotification appends an in-app notification to the user document.
func (s *DefaultUserService) AddNotification(ctx context.Context, userID string, notification models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}
	return s.Repo.AppendNotification(ctx, userID, notification)
}
