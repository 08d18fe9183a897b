package userRepo

import (
	"context"

	"servehub/models"
)

// UserRepository is the persistence contract for user accounts.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	AppendNotification(ctx context.Context, userID string, notification models.Notification) error
}
