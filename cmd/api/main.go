package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/zewarhq/zewar-api/internal/application/analytics"
	"github.com/zewarhq/zewar-api/internal/application/auth"
	"github.com/zewarhq/zewar-api/internal/application/inventory"
	"github.com/zewarhq/zewar-api/internal/application/sales"
	"github.com/zewarhq/zewar-api/internal/application/usecase"
	infrapdf "github.com/zewarhq/zewar-api/internal/infrastructure/pdf"
	"github.com/zewarhq/zewar-api/internal/infrastructure/postgres"
	"github.com/zewarhq/zewar-api/internal/infrastructure/storage"
	httpRouter "github.com/zewarhq/zewar-api/internal/interfaces/http"
	"github.com/zewarhq/zewar-api/pkg/config"
	"github.com/zewarhq/zewar-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	goldRateRepo := postgres.NewGoldRateRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Blob store for inventory images; disabled unless a bucket is configured.
	var blobs inventory.BlobStore
	if cfg.Storage.Bucket != "" {
		gcs, err := storage.NewGCSStore(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("GCS bucket")
		}
		defer gcs.Close()
		blobs = gcs
	} else {
		log.Warn().Msg("GCS_BUCKET not set, image uploads disabled")
	}

	pdfGenerator := infrapdf.NewMarotoGenerator()

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := usecase.NewItemUseCase(itemRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, categoryRepo)
	goldRateUC := usecase.NewGoldRateUseCase(goldRateRepo)
	inventoryUC := inventory.NewUseCase(inventoryRepo, itemRepo, blobs, pdfGenerator)
	saleUC := sales.NewUseCase(txRunner, saleRepo, inventoryRepo, itemRepo)
	invoicePDFUC := sales.NewInvoicePDFUseCase(saleRepo, inventoryRepo, itemRepo, pdfGenerator, sales.ShopInfo{
		Name:    cfg.Shop.Name,
		Phone:   cfg.Shop.Phone,
		Address: cfg.Shop.Address,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Zewar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ItemUC:       itemUC,
		CategoryUC:   categoryUC,
		ExpenseUC:    expenseUC,
		GoldRateUC:   goldRateUC,
		InventoryUC:  inventoryUC,
		SaleUC:       saleUC,
		InvoicePDFUC: invoicePDFUC,
		DashboardUC:  dashboardUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
