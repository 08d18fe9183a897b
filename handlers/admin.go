package handlers

import (
	"errors"
	"net/http"

	"servehub/services/provider"
	"servehub/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes administrative operations.
type AdminHandler struct {
	Providers provider.ProviderService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(providers provider.ProviderService) *AdminHandler {
	return &AdminHandler{Providers: providers}
}

// ApproveProvider handles PUT /api/admin/providers/:id/approve.
func (h *AdminHandler) ApproveProvider(c *gin.Context) {
	id := c.Param("id")
	if err := h.Providers.Approve(c.Request.Context(), id); err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Provider not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to approve provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Provider approved"})
}

// GetProvider handles GET /api/admin/providers/:id.
func (h *AdminHandler) GetProvider(c *gin.Context) {
	prov, err := h.Providers.GetProviderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Provider not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": prov})
}
