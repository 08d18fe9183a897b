package user

import (
	"context"
	"errors"

	userRepo "servehub/database/repository/user"
	"servehub/models"
)

// Domain-level error values returned by the user service.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
)

// UserService manages customer accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	AddNotification(ctx context.Context, userID string, notification models.Notification) error
}

// RegisterInput carries a new account's fields.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// AuthResult is returned on successful sign-in.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
