package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Estibas-api/internal/application/auth"
	"github.com/jhoicas/Estibas-api/internal/application/usecase"
	"github.com/jhoicas/Estibas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	PaymentUC  *usecase.PaymentUseCase
	ReceiptUC  *usecase.ReceiptUseCase
	PalletUC   *usecase.PalletUseCase
	BillingSvc *usecase.BillingService
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies: administración de tenants, solo admin. Las lecturas llevan
	// el estado de facturación recalculado.
	companies := protected.Group("/companies", RequireRole(entity.RoleAdmin))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Deactivate)

	// Payments: libro de pagos, solo admin. Registrar un pago es lo único
	// que desbloquea una empresa vencida, así que NO pasa por el guard.
	payments := protected.Group("/payments", RequireRole(entity.RoleAdmin))
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.ReceiptUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.ListByCompany)
	payments.Patch("/:id", paymentHandler.Correct)
	payments.Get("/:id/receipt", paymentHandler.Receipt)

	// Pallets: operación diaria del tenant. Bloqueadas cuando la facturación
	// está vencida (el guard recalcula en cada petición).
	pallets := protected.Group("/pallets", RequireBillingCurrent(deps.BillingSvc))
	palletHandler := NewPalletHandler(deps.PalletUC)
	pallets.Get("/", palletHandler.List)
	pallets.Get("/:id", palletHandler.GetByID)
	pallets.Post("/", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), palletHandler.Create)
	pallets.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), palletHandler.Update)
}
