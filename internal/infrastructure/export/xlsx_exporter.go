package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
)

// sheetName nombre de la hoja del informe.
const sheetName = "Informe de Ventas"

// anchos de columna, alineados con encabezados.
var colWidths = []float64{12, 25, 15, 10, 10, 12, 15, 12, 12, 12, 12}

// XLSXExporter genera el informe como libro de Excel.
type XLSXExporter struct{}

// NewXLSXExporter construye el exportador.
func NewXLSXExporter() *XLSXExporter { return &XLSXExporter{} }

// Export escribe el listado en una hoja con cabecera en negrita y montos
// como números (no texto) para que Excel pueda sumar.
func (e *XLSXExporter) Export(ventas []entity.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx: borrar hoja inicial: %w", err)
	}

	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	for i, h := range encabezados {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, boldStyle); err != nil {
			return nil, fmt.Errorf("xlsx: estilo: %w", err)
		}
	}

	for rowIdx := range ventas {
		v := &ventas[rowIdx]
		cantidad, _ := v.Quantity.Float64()
		precio, _ := v.UnitPrice.Float64()
		subtotal, _ := v.Subtotal.Float64()
		descuento, _ := v.DiscountAmount.Float64()
		total, _ := v.Total.Float64()

		valores := []any{
			v.Date.Format("2006-01-02"),
			nonEmpty(v.ClientName, "Cliente General"),
			v.ProductType,
			cantidad,
			v.Unit,
			precio,
			v.PaymentMethod,
			string(v.PaymentStatus),
			subtotal,
			descuento,
			total,
		}
		for colIdx, val := range valores {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", rowIdx+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
