// Package routes wires repositories, services and handlers onto the fiber
// application.
package routes

import (
	"finledger/internal/handlers"
	"finledger/internal/repositories"
	"finledger/internal/services/ledger"
	"finledger/internal/services/summary"
	"finledger/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	transactionRepo := repositories.NewTransactionRepository(db)
	userRepo := repositories.NewUserRepository(db)

	ledgerService := ledger.NewService(transactionRepo, nil)
	summaryService := summary.NewService(transactionRepo)
	userService := user.NewService(userRepo, nil)

	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	userHandler := handlers.NewUserHandler(userService)
	healthHandler := handlers.NewHealthHandler(db)

	app.Get("/health", healthHandler.Check)

	api := app.Group("/api/v1")

	transactions := api.Group("/transactions")
	transactions.Get("/", transactionHandler.GetTransactions)
	transactions.Post("/", transactionHandler.AddTransaction)
	transactions.Get("/high-volume/:threshold", transactionHandler.GetHighVolumeTransactions)
	transactions.Get("/summary/by-type", summaryHandler.ByTransactionType)
	transactions.Get("/summary/by-user", summaryHandler.ByUser)
	transactions.Get("/:id", transactionHandler.GetTransactionByID)
	transactions.Put("/:id", transactionHandler.UpdateTransaction)
	transactions.Delete("/:id", transactionHandler.DeleteTransaction)

	users := api.Group("/users")
	users.Get("/", userHandler.GetUsers)
	users.Post("/", userHandler.AddUser)
	users.Get("/:id", userHandler.GetUserByID)
	users.Put("/:id", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)
}
