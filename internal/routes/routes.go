// Package routes defines the API routing configuration.
package routes

import (
	"moneta/internal/handlers"
	"moneta/internal/middleware"
	"moneta/internal/repositories"
	"moneta/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services, and handlers onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	transactionRepo := repositories.NewTransactionRepository(db)

	var summaryCache ledger.SummaryCache
	if repositories.CacheService != nil {
		summaryCache = repositories.CacheService
	}

	ledgerService := ledger.NewService(transactionRepo, summaryCache)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	setupTransactionRoutes(api, transactionHandler)
}

func setupTransactionRoutes(router fiber.Router, h *handlers.TransactionHandler) {
	transactions := router.Group("/transactions")

	// Create is deliberately unguarded: it mints the session when absent.
	transactions.Post("/", h.Create)

	transactions.Get("/", middleware.RequireSession, h.List)
	// /summary is registered before /:id so the literal segment wins.
	transactions.Get("/summary", middleware.RequireSession, h.Summary)
	transactions.Get("/:id", middleware.RequireSession, h.GetByID)
}
