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

	_ "github.com/jhoicas/Estibas-api/docs"
	"github.com/jhoicas/Estibas-api/internal/application/auth"
	"github.com/jhoicas/Estibas-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Estibas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Estibas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Estibas-api/internal/interfaces/http"
	"github.com/jhoicas/Estibas-api/pkg/config"
	"github.com/jhoicas/Estibas-api/pkg/logger"
)

// @title        Estibas API
// @version      1.0
// @description  Backend multi-tenant de gestión de estibas con bloqueo por ciclo de facturación.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	palletRepo := postgres.NewPalletRepository(pool)

	// BillingService: estado derivado, recalculado en cada lectura.
	billingSvc := usecase.NewBillingService(companyRepo, paymentRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, billingSvc)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, companyRepo)
	palletUC := usecase.NewPalletUseCase(palletRepo)

	// PDF: representación gráfica del recibo de pago
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := usecase.NewReceiptUseCase(paymentRepo, companyRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estibas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		PaymentUC:  paymentUC,
		ReceiptUC:  receiptUC,
		PalletUC:   palletUC,
		BillingSvc: billingSvc,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
