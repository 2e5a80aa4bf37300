package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/domain/report"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fecha(dia int) time.Time {
	return time.Date(2026, time.March, dia, 12, 0, 0, 0, time.Local)
}

func ventasDeEjemplo() []entity.Sale {
	return []entity.Sale{
		{
			ClientID: "c1", ClientName: "María", ProductType: "Ostra",
			Quantity: dec("10"), UnitPrice: dec("15"), DiscountAmount: dec("15"),
			Total: dec("135"), PaymentStatus: entity.StatusPaid,
			PaymentMethod: entity.MethodCash, Date: fecha(10),
		},
		{
			ClientID: "c2", ClientName: "Pedro", ProductType: "Shiitake",
			Quantity: dec("5"), UnitPrice: dec("25"), DiscountAmount: decimal.Zero,
			Total: dec("125"), PaymentStatus: entity.StatusPending,
			PaymentMethod: entity.MethodTransfer, Date: fecha(12),
		},
		{
			ClientID: "c1", ClientName: "María", ProductType: "Ostra",
			Quantity: dec("4"), UnitPrice: dec("15"), DiscountAmount: decimal.Zero,
			Total: dec("60"), PaymentStatus: entity.StatusPartial,
			PaymentMethod: entity.MethodCash, Date: fecha(14),
		},
	}
}

func TestSummarize(t *testing.T) {
	s := report.Summarize(ventasDeEjemplo(), 30)

	assert.Equal(t, 3, s.SaleCount)
	assert.True(t, s.TotalRevenue.Equal(dec("320")), "ingresos: %s", s.TotalRevenue)
	assert.True(t, s.TotalQuantity.Equal(dec("19")))
	assert.True(t, s.AverageTicket.Equal(dec("106.67")), "ticket promedio: %s", s.AverageTicket)
	assert.True(t, s.MinTicket.Equal(dec("60")))
	assert.True(t, s.MaxTicket.Equal(dec("135")))
	assert.True(t, s.RevenuePerDay.Equal(dec("10.67")), "ingreso diario: %s", s.RevenuePerDay)
	assert.True(t, s.SalesPerDay.Equal(dec("0.1")))
}

func TestSummarize_Vacio(t *testing.T) {
	s := report.Summarize(nil, 30)
	assert.Equal(t, 0, s.SaleCount)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.True(t, s.AverageTicket.IsZero(), "sin ventas no hay división entre cero")
}

func TestBreakdownByStatus(t *testing.T) {
	b := report.BreakdownByStatus(ventasDeEjemplo())

	assert.True(t, b.PaidAmount.Equal(dec("135")))
	assert.True(t, b.PendingAmount.Equal(dec("125")))
	assert.True(t, b.PartialAmount.Equal(dec("60")))
	// 135 / 320 = 42.1875% -> 42.2
	assert.True(t, b.CollectionRate.Equal(dec("42.2")), "tasa de cobro: %s", b.CollectionRate)
}

func TestBreakdownByStatus_SinVentas(t *testing.T) {
	b := report.BreakdownByStatus(nil)
	assert.True(t, b.CollectionRate.IsZero())
}

func TestTopProduct(t *testing.T) {
	top, ok := report.TopProduct(ventasDeEjemplo())
	require.True(t, ok)
	assert.Equal(t, "Ostra", top.Name)
	assert.Equal(t, 2, top.Count)
}

func TestTopProduct_EmpatePorPrimeraAparicion(t *testing.T) {
	ventas := []entity.Sale{
		{ProductType: "Shiitake", Total: dec("10")},
		{ProductType: "Ostra", Total: dec("10")},
	}
	top, ok := report.TopProduct(ventas)
	require.True(t, ok)
	assert.Equal(t, "Shiitake", top.Name, "empate lo gana el primero en aparecer")
}

func TestTopProduct_SinProductoNiVentas(t *testing.T) {
	_, ok := report.TopProduct(nil)
	assert.False(t, ok)

	top, ok := report.TopProduct([]entity.Sale{{ProductType: ""}})
	require.True(t, ok)
	assert.Equal(t, "Sin especificar", top.Name)
}

func TestTopClients(t *testing.T) {
	stats := report.TopClients(ventasDeEjemplo(), 10)
	require.Len(t, stats, 2)

	// María: 135 + 60 = 195 > Pedro: 125
	assert.Equal(t, "María", stats[0].Name)
	assert.Equal(t, 2, stats[0].PurchaseCount)
	assert.True(t, stats[0].TotalSpent.Equal(dec("195")))
	assert.True(t, stats[0].AverageTicket.Equal(dec("97.50")))
	assert.Equal(t, fecha(14), stats[0].LastPurchase)

	assert.Equal(t, "Pedro", stats[1].Name)
}

func TestTopClients_LimiteYFallbacks(t *testing.T) {
	var ventas []entity.Sale
	for i := 0; i < 15; i++ {
		ventas = append(ventas, entity.Sale{
			ClientID: string(rune('a' + i)), ClientName: "Cliente",
			Total: decimal.NewFromInt(int64(i + 1)), Date: fecha(1),
		})
	}
	stats := report.TopClients(ventas, 0) // 0 usa el límite por defecto
	assert.Len(t, stats, 10)

	stats = report.TopClients([]entity.Sale{{Total: dec("5"), Date: fecha(1)}}, 10)
	require.Len(t, stats, 1)
	assert.Equal(t, "sin-id", stats[0].ClientID)
	assert.Equal(t, "Cliente General", stats[0].Name)
}

func TestByProduct(t *testing.T) {
	buckets := report.ByProduct(ventasDeEjemplo())
	require.Len(t, buckets, 2)

	// Ostra: 195 de 320 = 60.9%; Shiitake: 125 de 320 = 39.1%
	assert.Equal(t, "Ostra", buckets[0].Key)
	assert.Equal(t, 2, buckets[0].Count)
	assert.True(t, buckets[0].Quantity.Equal(dec("14")))
	assert.True(t, buckets[0].Total.Equal(dec("195")))
	assert.True(t, buckets[0].Percent.Equal(dec("60.9")), "porcentaje: %s", buckets[0].Percent)

	assert.Equal(t, "Shiitake", buckets[1].Key)
	assert.True(t, buckets[1].Percent.Equal(dec("39.1")))
}

func TestByPaymentMethod(t *testing.T) {
	buckets := report.ByPaymentMethod(ventasDeEjemplo())
	require.Len(t, buckets, 2)
	assert.Equal(t, entity.MethodCash, buckets[0].Key, "efectivo suma más")
	assert.True(t, buckets[0].Total.Equal(dec("195")))
}

func TestAverages(t *testing.T) {
	ventas := ventasDeEjemplo()
	// (15 + 25 + 15) / 3
	assert.True(t, report.AverageUnitPrice(ventas).Equal(dec("18.33")))
	// (15 + 0 + 0) / 3
	assert.True(t, report.AverageDiscount(ventas).Equal(dec("5")))
}

func TestHistoryOrdered(t *testing.T) {
	ventas := ventasDeEjemplo()
	out := report.HistoryOrdered(ventas)

	require.Len(t, out, 3)
	assert.Equal(t, fecha(14), out[0].Date)
	assert.Equal(t, fecha(12), out[1].Date)
	assert.Equal(t, fecha(10), out[2].Date)
	// la entrada no se muta
	assert.Equal(t, fecha(10), ventas[0].Date)
}

// Mismo día: el orden relativo original se conserva (orden estable).
func TestHistoryOrdered_EstableEnEmpates(t *testing.T) {
	ventas := []entity.Sale{
		{ID: "a", Date: fecha(10)},
		{ID: "b", Date: fecha(10)},
		{ID: "c", Date: fecha(11)},
	}
	out := report.HistoryOrdered(ventas)
	assert.Equal(t, []string{"c", "a", "b"}, []string{out[0].ID, out[1].ID, out[2].ID})
}

// Agregar es determinista: dos corridas sobre la misma entrada coinciden.
func TestAggregates_Deterministas(t *testing.T) {
	ventas := ventasDeEjemplo()
	first := report.TopClients(ventas, 10)
	second := report.TopClients(ventas, 10)
	assert.Equal(t, first, second)

	b1 := report.ByProduct(ventas)
	b2 := report.ByProduct(ventas)
	assert.Equal(t, b1, b2)
}
