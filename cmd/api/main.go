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

	"github.com/usahakita/backoffice-api/internal/application/auth"
	"github.com/usahakita/backoffice-api/internal/application/billing"
	"github.com/usahakita/backoffice-api/internal/application/brands"
	"github.com/usahakita/backoffice-api/internal/application/expenses"
	"github.com/usahakita/backoffice-api/internal/application/orders"
	"github.com/usahakita/backoffice-api/internal/application/payments"
	"github.com/usahakita/backoffice-api/internal/application/products"
	"github.com/usahakita/backoffice-api/internal/application/purchases"
	"github.com/usahakita/backoffice-api/internal/application/stock"
	"github.com/usahakita/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/usahakita/backoffice-api/internal/interfaces/http"
	"github.com/usahakita/backoffice-api/pkg/config"
	"github.com/usahakita/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load konfigurasi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("memulai aplikasi")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("koneksi PostgreSQL")
	}
	defer pool.Close()

	// Repo terikat pool: untuk read dan operasi single-statement.
	// Write multi-step lewat TxRunner dengan repo terikat transaksi.
	brandRepo := postgres.NewBrandRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	mutationRepo := postgres.NewStockMutationRepository(pool)
	orderRepo := postgres.NewSalesOrderRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := stock.NewEngine()

	authUC := auth.NewUseCase(userRepo, cfg.JWT, log)
	brandUC := brands.NewUseCase(brandRepo, log)
	productUC := products.NewUseCase(productRepo, mutationRepo, log)
	orderUC := orders.NewUseCase(txRunner, orderRepo, mutationRepo, engine, log)
	purchaseUC := purchases.NewUseCase(txRunner, purchaseRepo, mutationRepo, engine, log)
	invoiceUC := billing.NewUseCase(txRunner, invoiceRepo, log)
	expenseUC := expenses.NewUseCase(expenseRepo, log)
	recordPaymentUC := payments.NewRecordPaymentUseCase(txRunner, orderRepo, invoiceRepo, purchaseRepo, expenseRepo, log)
	paymentQueryUC := payments.NewQueryUseCase(paymentRepo, receiptRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI lokal: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		BrandUC:       brandUC,
		ProductUC:     productUC,
		OrderUC:       orderUC,
		PurchaseUC:    purchaseUC,
		InvoiceUC:     invoiceUC,
		ExpenseUC:     expenseUC,
		RecordPayment: recordPaymentUC,
		PaymentQuery:  paymentQueryUC,
		BrandRepo:     brandRepo,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP berhenti")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinyal shutdown diterima, menutup server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown server")
	}

	log.Info().Msg("aplikasi berhenti")
}
