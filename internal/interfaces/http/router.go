package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akax-pajomel/ventas-api/internal/application/auth"
	"github.com/akax-pajomel/ventas-api/internal/application/clients"
	"github.com/akax-pajomel/ventas-api/internal/application/reports"
	"github.com/akax-pajomel/ventas-api/internal/application/sales"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	ClientUC   *clients.UseCase
	SaleUC     *sales.UseCase
	ReceiptUC  *sales.ReceiptPDFUseCase
	ReportUC   *reports.UseCase
	CSVExport  reports.Exporter
	XLSXExport reports.Exporter
	JWTSecret  string
}

// Router registra las rutas de la API. Todo va detrás del token salvo el
// login y el health check; el rol admin se exige más adentro, en los casos
// de uso que mutan.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Group("/auth").Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients
	clientsGroup := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clientsGroup.Post("/", clientHandler.Create)
	clientsGroup.Get("/", clientHandler.List)
	clientsGroup.Get("/:id", clientHandler.GetByID)
	clientsGroup.Put("/:id", clientHandler.Update)
	clientsGroup.Delete("/:id", clientHandler.Delete)

	// Sales
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReceiptUC, deps.CSVExport, deps.XLSXExport)
	// Las rutas fijas van antes de /:id para que Fiber no las capture como parámetro.
	salesGroup.Get("/receipt-suggestion", saleHandler.ReceiptSuggestion)
	salesGroup.Get("/receipt-available", saleHandler.ReceiptAvailable)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", saleHandler.Delete)
	salesGroup.Post("/:id/payments", saleHandler.RegisterPayment)
	salesGroup.Get("/:id/receipt.pdf", reportHandler.ReceiptPDF)

	// Reports + dashboard
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/", reportHandler.Generate)
	reportsGroup.Get("/export.csv", reportHandler.ExportCSV)
	reportsGroup.Get("/export.xlsx", reportHandler.ExportXLSX)
	protected.Get("/dashboard", reportHandler.Dashboard)
}
