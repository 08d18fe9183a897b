// File: servehub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servehub/config"
	"servehub/cron"
	"servehub/database"
	bookingRepo "servehub/database/repository/booking"
	providerRepo "servehub/database/repository/provider"
	userRepoPkg "servehub/database/repository/user"
	"servehub/handlers"
	"servehub/middleware"
	"servehub/routes"
	"servehub/services/admin"
	"servehub/services/booking"
	"servehub/services/provider"
	"servehub/services/tasks"
	"servehub/services/user"
	"servehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bkRepo := bookingRepo.NewMongoBookingRepo()
	provRepo := providerRepo.NewMongoProviderRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	providerService := &provider.DefaultProviderService{Repo: provRepo}
	adminService := &admin.DefaultAdminService{}
	if config.AppConfig.AdminEmail == "" || config.AppConfig.AdminPassword == "" {
		logger.Sugar().Warn("main: admin credentials missing; provider approval is disabled")
	}

	gateway := booking.NewRazorpayGateway(
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
	)
	if !gateway.Configured() {
		logger.Sugar().Warn("main: razorpay credentials missing; payment endpoints will return 503")
	}

	notifier := tasks.NewNotifier()
	bookingService := &booking.DefaultBookingService{
		Repo:         bkRepo,
		ProviderRepo: provRepo,
		Gateway:      gateway,
		Notifier:     notifier,
		Logger:       logger,
	}

	// Background worker for confirmation notifications.
	cron.InitConfirmationWorker(userService)

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService, providerService, adminService, utils.AuthTokenStore{}),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Admin:   handlers.NewAdminHandler(providerService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache": utils.GetCacheClient(),
			"auth":  utils.GetAuthCacheClient(),
			"queue": utils.NewQueueRedisClient(),
		},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	if err := notifier.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close task client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
