package handlers

import (
	"context"
	"errors"
	"net/http"

	"servehub/middleware"
	"servehub/services/admin"
	"servehub/services/provider"
	"servehub/services/user"
	"servehub/utils"

	"github.com/gin-gonic/gin"
)

// TokenRevoker invalidates a subject's cached bearer token.
type TokenRevoker interface {
	Revoke(ctx context.Context, subjectID string) error
}

// AuthHandler exposes registration, sign-in and sign-out for users,
// providers and the bootstrap admin account.
type AuthHandler struct {
	Users     user.UserService
	Providers provider.ProviderService
	Admins    admin.AdminService
	Tokens    TokenRevoker
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users user.UserService, providers provider.ProviderService, admins admin.AdminService, tokens TokenRevoker) *AuthHandler {
	return &AuthHandler{Users: users, Providers: providers, Admins: admins, Tokens: tokens}
}

type registerRequest struct {
	Role string `json:"role"` // "user" (default) or "provider"

	// User fields.
	Name string `json:"name"`

	// Provider fields.
	ServiceName string `json:"serviceName"`
	OwnerName   string `json:"ownerName"`
	Address     string `json:"address"`
	Pricing     string `json:"pricing"`

	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	switch req.Role {
	case "provider":
		prov, err := h.Providers.Register(c.Request.Context(), provider.RegisterInput{
			ServiceName: req.ServiceName,
			OwnerName:   req.OwnerName,
			Email:       req.Email,
			Password:    req.Password,
			Phone:       req.Phone,
			Address:     req.Address,
			Pricing:     req.Pricing,
		})
		if err != nil {
			if errors.Is(err, provider.ErrEmailTaken) {
				utils.JSONError(c, http.StatusConflict, "Email already registered", "")
				return
			}
			utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": prov})

	case "", "user":
		usr, err := h.Users.Register(c.Request.Context(), user.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
		})
		if err != nil {
			if errors.Is(err, user.ErrEmailTaken) {
				utils.JSONError(c, http.StatusConflict, "Email already registered", "")
				return
			}
			utils.JSONError(c, http.StatusBadRequest, "Registration failed", err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": usr})

	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid role", "role must be \"user\" or \"provider\"")
	}
}

type loginRequest struct {
	Role     string `json:"role"` // "user" (default), "provider" or "admin"
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	switch req.Role {
	case "admin":
		token, err := h.Admins.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, admin.ErrInvalidCredentials) {
				utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Sign-in failed", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"token": token}})

	case "provider":
		res, err := h.Providers.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, provider.ErrInvalidCredentials) {
				utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Sign-in failed", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": res})

	case "", "user":
		res, err := h.Users.SignIn(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, user.ErrInvalidCredentials) {
				utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
				return
			}
			utils.JSONError(c, http.StatusInternalServerError, "Sign-in failed", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": res})

	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid role", "role must be \"user\", \"provider\" or \"admin\"")
	}
}

// Logout handles POST /api/auth/logout. It revokes the caller's cached
// token; the auth middleware then rejects it until the next sign-in.
func (h *AuthHandler) Logout(c *gin.Context) {
	subject := middleware.SubjectID(c)
	if subject == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}
	if err := h.Tokens.Revoke(c.Request.Context(), subject); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
