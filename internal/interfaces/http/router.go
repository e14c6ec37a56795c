package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zewarhq/zewar-api/internal/application/analytics"
	"github.com/zewarhq/zewar-api/internal/application/auth"
	"github.com/zewarhq/zewar-api/internal/application/inventory"
	"github.com/zewarhq/zewar-api/internal/application/sales"
	"github.com/zewarhq/zewar-api/internal/application/usecase"
	"github.com/zewarhq/zewar-api/internal/domain/entity"
)

// RouterDeps holds the dependencies for the router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ItemUC       *usecase.ItemUseCase
	CategoryUC   *usecase.CategoryUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	GoldRateUC   *usecase.GoldRateUseCase
	InventoryUC  *inventory.UseCase
	SaleUC       *sales.UseCase
	InvoicePDFUC *sales.InvoicePDFUseCase
	DashboardUC  *analytics.DashboardUseCase
	JWTSecret    string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items catalog (protected)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", RequireRole(entity.RoleAdmin), itemHandler.Delete)

	// Categories (protected)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Expenses (protected)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/export", expenseHandler.ExportCSV)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Gold rates (protected)
	goldRates := protected.Group("/gold-rates")
	goldRateHandler := NewGoldRateHandler(deps.GoldRateUC)
	goldRates.Post("/", goldRateHandler.Save)
	goldRates.Get("/", goldRateHandler.History)
	goldRates.Get("/latest", goldRateHandler.Latest)

	// Inventory units (protected)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/", inventoryHandler.Create)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/images", inventoryHandler.UploadImage)
	invGroup.Get("/tag/:tag", inventoryHandler.GetByTagNumber)
	invGroup.Get("/:id/tag.pdf", inventoryHandler.TagPDF)
	invGroup.Get("/:id", inventoryHandler.GetByID)
	invGroup.Put("/:id", inventoryHandler.Update)

	// Sales (protected)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.InvoicePDFUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/export", saleHandler.ExportCSV)
	salesGroup.Get("/:id/invoice.pdf", saleHandler.InvoicePDF)
	salesGroup.Get("/:id", saleHandler.GetByID)

	// Dashboard (protected)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
