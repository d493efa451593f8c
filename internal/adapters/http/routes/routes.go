package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ayushbite/LoanAppBackend/internal/adapters/http/handlers"
	"github.com/ayushbite/LoanAppBackend/internal/adapters/http/middleware"
	"github.com/ayushbite/LoanAppBackend/internal/adapters/persistence/repositories"
	"github.com/ayushbite/LoanAppBackend/internal/config"
	"github.com/ayushbite/LoanAppBackend/internal/core/services"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	centerRepo := repositories.NewCenterRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg)
	ledgerService := services.NewLedgerService(centerRepo, memberRepo, loanRepo)
	overviewService := services.NewOverviewService(centerRepo, memberRepo, loanRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	centerHandler := handlers.NewCenterHandler(ledgerService)
	memberHandler := handlers.NewMemberHandler(ledgerService)
	loanHandler := handlers.NewLoanHandler(ledgerService, overviewService)
	paymentHandler := handlers.NewPaymentHandler(ledgerService, overviewService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Access gate: token verification then role check, evaluated on
	// every request in that order
	authenticated := middleware.Protected(cfg, userRepo)
	adminOnly := middleware.AdminOnly()

	api := app.Group("/api", middleware.NoStore())

	// Public auth routes (stricter rate limit)
	api.Post("/signup", middleware.AuthRateLimiter(), authHandler.SignUp)
	api.Post("/signin", middleware.AuthRateLimiter(), authHandler.SignIn)

	// Admin routes
	api.Post("/center", authenticated, adminOnly, centerHandler.Create)
	api.Get("/center", authenticated, adminOnly, centerHandler.List)
	api.Post("/member", authenticated, adminOnly, memberHandler.Create)
	api.Get("/members", authenticated, adminOnly, memberHandler.List)
	api.Post("/loan", authenticated, adminOnly, loanHandler.Create)
	api.Get("/loan", authenticated, adminOnly, loanHandler.Overview)

	// Routes for any authenticated identity (admin or customer)
	api.Get("/payment", authenticated, paymentHandler.Overview)
	api.Post("/payment", authenticated, paymentHandler.Append)
}
