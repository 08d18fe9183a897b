package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"servehub/config"
	"servehub/utils"
)

// ErrInvalidCredentials is returned for a wrong email/password pair and
// when no admin account is configured.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Subject is the token subject of the bootstrap admin account.
const Subject = "admin"

const tokenTTL = 24 * time.Hour

// AdminService signs in the configuration-bootstrapped admin account.
// There is no admin collection; provider approval requires this account.
type AdminService interface {
	SignIn(ctx context.Context, email, password string) (string, error)
}

// DefaultAdminService implements AdminService over config.AppConfig.
type DefaultAdminService struct{}

// SignIn checks the credentials against ADMIN_EMAIL/ADMIN_PASSWORD and
// issues a bearer token with the admin role.
func (s *DefaultAdminService) SignIn(ctx context.Context, email, password string) (string, error) {
	cfgEmail := strings.ToLower(strings.TrimSpace(config.AppConfig.AdminEmail))
	cfgPassword := config.AppConfig.AdminPassword
	if cfgEmail == "" || cfgPassword == "" {
		return "", ErrInvalidCredentials
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != cfgEmail || subtle.ConstantTimeCompare([]byte(password), []byte(cfgPassword)) != 1 {
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(Subject, "admin", tokenTTL)
	if err != nil {
		return "", err
	}

	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + Subject
	if err := authCache.Set(ctx, cacheKey, utils.HashToken(token), time.Hour).Err(); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to cache auth token for admin: %v", err)
	}

	return token, nil
}
