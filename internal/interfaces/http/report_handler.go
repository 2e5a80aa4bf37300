package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akax-pajomel/ventas-api/internal/application/reports"
	"github.com/akax-pajomel/ventas-api/internal/application/sales"
)

// ReportHandler maneja informes, dashboard y descargas.
type ReportHandler struct {
	uc         *reports.UseCase
	receiptUC  *sales.ReceiptPDFUseCase
	csvExport  reports.Exporter
	xlsxExport reports.Exporter
}

// NewReportHandler construye el handler.
func NewReportHandler(
	uc *reports.UseCase,
	receiptUC *sales.ReceiptPDFUseCase,
	csvExport, xlsxExport reports.Exporter,
) *ReportHandler {
	return &ReportHandler{uc: uc, receiptUC: receiptUC, csvExport: csvExport, xlsxExport: xlsxExport}
}

func filterFromQuery(c *fiber.Ctx) reports.Filter {
	return reports.Filter{
		Period:  c.Query("period", "mes"),
		From:    c.Query("from"),
		To:      c.Query("to"),
		Product: c.Query("product"),
		Status:  c.Query("status"),
	}
}

// Generate GET /api/reports?period=mes&from=&to=&product=&status=
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	resp, err := h.uc.Generate(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// Dashboard GET /api/dashboard?period=hoy
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	resp, err := h.uc.Dashboard(c.UserContext(), c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// ExportCSV GET /api/reports/export.csv
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	data, name, err := h.uc.Export(c.UserContext(), filterFromQuery(c), h.csvExport)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`.csv"`)
	return c.Send(data)
}

// ExportXLSX GET /api/reports/export.xlsx
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	data, name, err := h.uc.Export(c.UserContext(), filterFromQuery(c), h.xlsxExport)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`.xlsx"`)
	return c.Send(data)
}

// ReceiptPDF GET /api/sales/:id/receipt.pdf
func (h *ReportHandler) ReceiptPDF(c *fiber.Ctx) error {
	data, filename, err := h.receiptUC.Generate(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(data)
}
