// Package export genera las descargas del informe de ventas: CSV plano y
// libro XLSX. Ambos comparten las mismas columnas, en el mismo orden.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
)

// encabezados columnas del informe, en orden fijo.
var encabezados = []string{
	"Fecha", "Cliente", "Hongo", "Cantidad", "Unidad",
	"Precio Unit.", "Método Pago", "Estado",
	"Subtotal", "Descuento", "Total",
}

func saleRow(v *entity.Sale) []string {
	return []string{
		v.Date.Format("2006-01-02"),
		nonEmpty(v.ClientName, "Cliente General"),
		v.ProductType,
		v.Quantity.StringFixed(2),
		v.Unit,
		v.UnitPrice.StringFixed(2),
		v.PaymentMethod,
		string(v.PaymentStatus),
		v.Subtotal.StringFixed(2),
		v.DiscountAmount.StringFixed(2),
		v.Total.StringFixed(2),
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// CSVExporter genera el informe como CSV (UTF-8, coma).
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// Export escribe el listado con cabecera y una fila por venta.
func (e *CSVExporter) Export(ventas []entity.Sale) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(encabezados); err != nil {
		return nil, fmt.Errorf("csv: escribir cabecera: %w", err)
	}
	for i := range ventas {
		if err := w.Write(saleRow(&ventas[i])); err != nil {
			return nil, fmt.Errorf("csv: escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}
