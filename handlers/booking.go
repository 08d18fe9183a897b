package handlers

import (
	"net/http"

	"servehub/middleware"
	"servehub/models"
	"servehub/services/booking"
	"servehub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking protocol over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// statusForKind maps service error kinds to HTTP statuses. Conflict is
// deliberately distinct from verification failure so the client can prompt
// for a different slot instead of reporting a payment problem.
func statusForKind(kind booking.Kind) int {
	switch kind {
	case booking.KindInvalidInput:
		return http.StatusBadRequest
	case booking.KindNotFound:
		return http.StatusNotFound
	case booking.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case booking.KindConflict:
		return http.StatusConflict
	case booking.KindPaymentVerificationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	kind := booking.KindOf(err)
	if kind == booking.KindUnknown {
		h.Logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(statusForKind(kind), gin.H{"success": false, "message": err.Error()})
}

// CheckAvailability handles GET /api/booking/availability/:providerId?date=YYYY-MM-DD.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	providerID := c.Param("providerId")
	date := c.Query("date")

	slots, err := h.Service.CheckAvailability(c.Request.Context(), providerID, date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": slots})
}

// CreateOrder handles POST /api/booking/create-order.
func (h *BookingHandler) CreateOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	order, err := h.Service.CreateOrder(c.Request.Context(), middleware.SubjectID(c), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
}

// VerifyPayment handles POST /api/booking/verify-payment.
func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	var input models.VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	bk, err := h.Service.VerifyPayment(c.Request.Context(), middleware.SubjectID(c), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment verified and booking confirmed",
		"data":    bk,
	})
}

// MyBookings handles GET /api/booking/my-bookings.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := h.Service.MyBookings(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}

// ProviderBookings handles GET /api/booking/provider-bookings.
func (h *BookingHandler) ProviderBookings(c *gin.Context) {
	bookings, err := h.Service.ProviderBookings(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": bookings})
}
