package routes

import (
	"net/http"
	"time"

	"servehub/handlers"
	"servehub/middleware"
	"servehub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Auth    *handlers.AuthHandler
	Booking *handlers.BookingHandler
	Admin   *handlers.AdminHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerHealthRoute(r)
	registerAuthRoutes(r, hb)
	registerBookingRoutes(r, hb)
	registerAdminRoutes(r, hb)
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

func registerAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
		api.POST("/logout", middleware.JWTAuthMiddleware(""), hb.Auth.Logout)
	}
}

// registerBookingRoutes sets up the endpoints for the booking engine.
func registerBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		// Availability is readable by any authenticated caller.
		api.GET("/availability/:providerId", middleware.JWTAuthMiddleware(""), hb.Booking.CheckAvailability)

		// The two-phase payment flow and listings are user-only.
		userOnly := api.Group("")
		userOnly.Use(middleware.JWTAuthMiddleware("user"))
		userOnly.POST("/create-order", hb.Booking.CreateOrder)
		userOnly.POST("/verify-payment", hb.Booking.VerifyPayment)
		userOnly.GET("/my-bookings", hb.Booking.MyBookings)

		providerOnly := api.Group("")
		providerOnly.Use(middleware.JWTAuthMiddleware("provider"))
		providerOnly.GET("/provider-bookings", hb.Booking.ProviderBookings)
	}
}

func registerAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware("admin"))
		api.GET("/providers/:id", hb.Admin.GetProvider)
		api.PUT("/providers/:id/approve", hb.Admin.ApproveProvider)
	}
}
