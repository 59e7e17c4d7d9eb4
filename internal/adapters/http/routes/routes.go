package routes

import (
	"tendertrack/internal/adapters/http/handlers"
	"tendertrack/internal/adapters/http/middleware"
	"tendertrack/internal/adapters/persistence/repositories"
	"tendertrack/internal/config"
	"tendertrack/internal/core/authz"
	"tendertrack/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	deptRepo := repositories.NewDepartmentRepository(db)
	tenderRepo := repositories.NewTenderRepository(db)
	contractRepo := repositories.NewContractRepository(db)
	orderRepo := repositories.NewServiceOrderRepository(db)
	activityRepo := repositories.NewActivityRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, deptRepo, activityRepo, cfg)
	userService := services.NewUserService(userRepo)
	deptService := services.NewDepartmentService(deptRepo, activityRepo)
	tenderService := services.NewTenderService(tenderRepo, deptRepo, activityRepo)
	contractService := services.NewContractService(contractRepo, tenderRepo, activityRepo)
	orderService := services.NewServiceOrderService(orderRepo, contractRepo, deptRepo, activityRepo)
	activityService := services.NewActivityService(activityRepo)
	statsService := services.NewStatsService(tenderRepo, contractRepo, deptRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	deptHandler := handlers.NewDepartmentHandler(deptService)
	tenderHandler := handlers.NewTenderHandler(tenderService)
	contractHandler := handlers.NewContractHandler(contractService)
	orderHandler := handlers.NewServiceOrderHandler(orderService)
	activityHandler := handlers.NewActivityHandler(activityService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshToken)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)
	authRoutes.Post("/logout-all", middleware.AuthMiddleware(cfg), authHandler.LogoutAll)

	// Department routes
	deptRoutes := apiV1.Group("/departments")
	deptRoutes.Use(middleware.AuthMiddleware(cfg))
	deptRoutes.Get("/", deptHandler.List)
	deptRoutes.Get("/:id", deptHandler.Get)
	deptRoutes.Post("/", middleware.Require(authz.OpDepartmentCreate), deptHandler.Create)
	deptRoutes.Put("/:id", middleware.Require(authz.OpDepartmentUpdate), deptHandler.Update)

	// Tender routes; creation and updates are open to all authenticated
	// users, the workflow itself decides who may move a tender
	tenderRoutes := apiV1.Group("/tenders")
	tenderRoutes.Use(middleware.AuthMiddleware(cfg))
	tenderRoutes.Get("/", tenderHandler.List)
	tenderRoutes.Get("/:id", tenderHandler.Get)
	tenderRoutes.Post("/", tenderHandler.Create)
	tenderRoutes.Put("/:id", tenderHandler.Update)
	tenderRoutes.Post("/:id/status", tenderHandler.ChangeStatus)
	tenderRoutes.Get("/:id/activities", tenderHandler.Activities)

	// Contract routes
	contractRoutes := apiV1.Group("/contracts")
	contractRoutes.Use(middleware.AuthMiddleware(cfg))
	contractRoutes.Get("/", contractHandler.List)
	contractRoutes.Get("/:id", contractHandler.Get)
	contractRoutes.Post("/", middleware.Require(authz.OpContractCreate), contractHandler.Create)
	contractRoutes.Put("/:id", middleware.Require(authz.OpContractUpdate), contractHandler.Update)

	// Service order routes
	orderRoutes := apiV1.Group("/service-orders")
	orderRoutes.Use(middleware.AuthMiddleware(cfg))
	orderRoutes.Get("/", orderHandler.List)
	orderRoutes.Get("/:id", orderHandler.Get)
	orderRoutes.Post("/", middleware.Require(authz.OpServiceOrderCreate), orderHandler.Create)
	orderRoutes.Put("/:id", middleware.Require(authz.OpServiceOrderUpdate), orderHandler.Update)

	// Activity routes
	activityRoutes := apiV1.Group("/activities")
	activityRoutes.Use(middleware.AuthMiddleware(cfg))
	activityRoutes.Get("/", activityHandler.Recent)
	activityRoutes.Get("/:type/:id", activityHandler.ByEntity)

	// User management routes
	userRoutes := apiV1.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.Require(authz.OpUserList))
	userRoutes.Get("/", userHandler.List)
	userRoutes.Get("/:id", userHandler.Get)

	// Stats routes
	statsRoutes := apiV1.Group("/stats")
	statsRoutes.Use(middleware.AuthMiddleware(cfg))
	statsRoutes.Get("/", statsHandler.Get)
}
