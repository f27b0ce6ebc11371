package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hackathon-backend/internal/api/routes"
	"hackathon-backend/internal/config"
	"hackathon-backend/internal/database"
	"hackathon-backend/internal/identity"
	"hackathon-backend/internal/logger"
	"hackathon-backend/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"

	_ "hackathon-backend/docs" // This is needed for swag
)

//	@title			Hackathon Backend API
//	@version		1.0
//	@description	Backend API for running hackathons: users, teams, hackathons, registrations and identity provider sync.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:4000
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.LogLevel)

	dbOpts := &database.Options{}
	if cfg.LogLevel == "debug" {
		dbOpts.LogLevel = gormlogger.Info
	}
	db, err := database.Initialize(cfg.DatabaseURL, dbOpts)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	provider, err := identity.NewClerkProvider(identity.Options{
		WebhookSecret: cfg.ClerkWebhookSecret,
		SecretKey:     cfg.ClerkSecretKey,
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize identity provider: %v", err)
	}
	if cfg.ClerkWebhookSecret == "" {
		logrus.Warn("CLERK_WEBHOOK_SECRET is not set, webhook deliveries will be rejected")
	}

	metrics.Register()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg, provider)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	if err := database.Close(db); err != nil {
		logrus.Errorf("Failed to close database: %v", err)
	}

	logrus.Info("Server exited")
}
