package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/usahakita/backoffice-api/internal/application/auth"
	"github.com/usahakita/backoffice-api/internal/application/billing"
	"github.com/usahakita/backoffice-api/internal/application/brands"
	"github.com/usahakita/backoffice-api/internal/application/expenses"
	"github.com/usahakita/backoffice-api/internal/application/orders"
	"github.com/usahakita/backoffice-api/internal/application/payments"
	"github.com/usahakita/backoffice-api/internal/application/products"
	"github.com/usahakita/backoffice-api/internal/application/purchases"
	"github.com/usahakita/backoffice-api/internal/domain/entity"
	"github.com/usahakita/backoffice-api/internal/domain/repository"
)

// RouterDeps dependensi router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	BrandUC       *brands.UseCase
	ProductUC     *products.UseCase
	OrderUC       *orders.UseCase
	PurchaseUC    *purchases.UseCase
	InvoiceUC     *billing.UseCase
	ExpenseUC     *expenses.UseCase
	RecordPayment *payments.RecordPaymentUseCase
	PaymentQuery  *payments.QueryUseCase
	BrandRepo     repository.BrandRepository
	JWTSecret     string
}

// Router mendaftarkan semua route API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (publik)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Route terproteksi: Bearer token + resolusi tenant per request.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Brands (admin saja; tanpa BrandMiddleware — brand adalah resource-nya)
	brandGroup := protected.Group("/brands", RequireRole(entity.RoleAdmin))
	brandHandler := NewBrandHandler(deps.BrandUC)
	brandGroup.Post("/", brandHandler.Create)
	brandGroup.Get("/", brandHandler.List)
	brandGroup.Get("/active", brandHandler.GetActive)
	brandGroup.Get("/:id", brandHandler.GetByID)
	brandGroup.Post("/:id/activate", brandHandler.SetActive)

	// Semua route di bawah ini di-scope tenant.
	tenant := protected.Group("/", BrandMiddleware(deps.BrandRepo))

	// Products
	productGroup := tenant.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	productGroup.Post("/", RequireRole(entity.RoleAdmin, entity.RoleGudang), productHandler.Create)
	productGroup.Get("/", productHandler.List)
	productGroup.Get("/:id", productHandler.GetByID)
	productGroup.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleGudang), productHandler.Update)
	productGroup.Get("/:id/mutations", productHandler.Mutations)

	// Sales orders
	orderGroup := tenant.Group("/sales-orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orderGroup.Post("/", orderHandler.Create)
	orderGroup.Get("/", orderHandler.List)
	orderGroup.Get("/:id", orderHandler.GetByID)
	orderGroup.Get("/:id/mutations", orderHandler.Mutations)
	orderGroup.Patch("/:id/status", RequireRole(entity.RoleAdmin, entity.RoleGudang), orderHandler.UpdateStatus)

	// Purchases
	purchaseGroup := tenant.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchaseGroup.Post("/", purchaseHandler.Create)
	purchaseGroup.Get("/", purchaseHandler.List)
	purchaseGroup.Get("/:id", purchaseHandler.GetByID)
	purchaseGroup.Get("/:id/mutations", purchaseHandler.Mutations)
	purchaseGroup.Post("/:id/receive", RequireRole(entity.RoleAdmin, entity.RoleGudang), purchaseHandler.Receive)
	purchaseGroup.Delete("/:id", RequireRole(entity.RoleAdmin), purchaseHandler.Delete)

	// Invoices
	invoiceGroup := tenant.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoiceGroup.Post("/", invoiceHandler.Create)
	invoiceGroup.Get("/", invoiceHandler.List)
	invoiceGroup.Get("/:id", invoiceHandler.GetByID)

	// Expenses
	expenseGroup := tenant.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenseGroup.Post("/", expenseHandler.Create)
	expenseGroup.Get("/", expenseHandler.List)
	expenseGroup.Get("/:id", expenseHandler.GetByID)

	// Payments + receipts
	paymentHandler := NewPaymentHandler(deps.RecordPayment, deps.PaymentQuery)
	paymentGroup := tenant.Group("/payments")
	paymentGroup.Post("/", RequireRole(entity.RoleAdmin, entity.RoleKasir), paymentHandler.Record)
	paymentGroup.Get("/", paymentHandler.List)
	paymentGroup.Get("/:id", paymentHandler.GetByID)
	tenant.Get("/receipts", paymentHandler.ListReceipts)
	tenant.Get("/receipts/:id", paymentHandler.GetReceipt)
}
