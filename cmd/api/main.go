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

	"github.com/akax-pajomel/ventas-api/internal/application/auth"
	"github.com/akax-pajomel/ventas-api/internal/application/clients"
	"github.com/akax-pajomel/ventas-api/internal/application/reports"
	"github.com/akax-pajomel/ventas-api/internal/application/sales"
	"github.com/akax-pajomel/ventas-api/internal/infrastructure/export"
	infrapdf "github.com/akax-pajomel/ventas-api/internal/infrastructure/pdf"
	"github.com/akax-pajomel/ventas-api/internal/infrastructure/postgres"
	"github.com/akax-pajomel/ventas-api/internal/infrastructure/scheduler"
	httpRouter "github.com/akax-pajomel/ventas-api/internal/interfaces/http"
	"github.com/akax-pajomel/ventas-api/pkg/config"
	"github.com/akax-pajomel/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authorizer := httpRouter.NewRoleAuthorizer(auth.RoleAdmin)

	authUC := auth.NewUseCase(cfg.Admin, cfg.JWT, log)
	clientUC := clients.NewUseCase(clientRepo, authorizer, log)
	saleUC := sales.NewUseCase(saleRepo, clientRepo, txRunner, authorizer, log)
	reportUC := reports.NewUseCase(saleRepo, log)

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.Business)
	receiptUC := sales.NewReceiptPDFUseCase(saleRepo, receiptGen, log)

	// Recordatorio diario de cuentas por cobrar
	reminder := scheduler.NewReminder(saleRepo, log)
	if err := reminder.Start(); err != nil {
		log.Fatal().Err(err).Msg("arrancar scheduler")
	}
	defer reminder.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas Pajomel API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ClientUC:   clientUC,
		SaleUC:     saleUC,
		ReceiptUC:  receiptUC,
		ReportUC:   reportUC,
		CSVExport:  export.NewCSVExporter(),
		XLSXExport: export.NewXLSXExporter(),
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
