package main

import (
	"os"
	"os/signal"
	"syscall"

	"tendertrack/internal/adapters/http/middleware"
	"tendertrack/internal/adapters/http/routes"
	"tendertrack/internal/adapters/persistence/models"
	"tendertrack/internal/adapters/persistence/repositories"
	"tendertrack/internal/config"
	"tendertrack/internal/core/services"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// @title TenderTrack API
// @version 1.0
// @description Role-based workflow tracker for public procurement tenders

// @contact.name API Support

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Info("✅ Database migration completed")

	// Seed baseline data
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Warnf("⚠️ Failed to seed data: %v", err)
	}

	// Start cron jobs
	cronService := services.NewCronService(repositories.NewRefreshTokenRepository(db))
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start cron service: %v", err)
	}
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "TenderTrack API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Infof("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Errorf("❌ Error during shutdown: %v", err)
	}
	log.Info("✅ Server stopped gracefully")
}
