// Package report calcula los agregados de los informes de ventas. Todas las
// funciones son puras: reciben el listado ya filtrado, no mutan la entrada y
// producen el mismo resultado para la misma entrada.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/pkg/money"
)

// DefaultRangeDays días asumidos para promedios diarios cuando el informe no
// tiene un rango de fechas explícito.
const DefaultRangeDays = 30

// Summary resumen general del período.
type Summary struct {
	TotalRevenue  decimal.Decimal
	SaleCount     int
	TotalQuantity decimal.Decimal
	AverageTicket decimal.Decimal
	MinTicket     decimal.Decimal
	MaxTicket     decimal.Decimal

	// Promedios por día sobre los días del rango activo.
	RevenuePerDay  decimal.Decimal
	SalesPerDay    decimal.Decimal
	QuantityPerDay decimal.Decimal
}

// Summarize calcula el resumen general. days es el número de días del rango
// activo (inclusive); usar DefaultRangeDays si no hay rango explícito.
func Summarize(ventas []entity.Sale, days int) Summary {
	if days < 1 {
		days = 1
	}
	d := decimal.NewFromInt(int64(days))

	s := Summary{}
	for i, v := range ventas {
		s.TotalRevenue = s.TotalRevenue.Add(v.Total)
		s.TotalQuantity = s.TotalQuantity.Add(v.Quantity)
		if i == 0 || v.Total.LessThan(s.MinTicket) {
			s.MinTicket = v.Total
		}
		if v.Total.GreaterThan(s.MaxTicket) {
			s.MaxTicket = v.Total
		}
	}
	s.SaleCount = len(ventas)
	s.AverageTicket = money.SafeDiv(s.TotalRevenue, decimal.NewFromInt(int64(s.SaleCount))).Round(2)
	s.RevenuePerDay = s.TotalRevenue.Div(d).Round(2)
	s.SalesPerDay = decimal.NewFromInt(int64(s.SaleCount)).Div(d).Round(1)
	s.QuantityPerDay = s.TotalQuantity.Div(d).Round(1)
	return s
}

// PaymentBreakdown montos agrupados por estado de pago.
type PaymentBreakdown struct {
	PaidAmount     decimal.Decimal
	PendingAmount  decimal.Decimal
	PartialAmount  decimal.Decimal
	CollectionRate decimal.Decimal // porcentaje de lo pagado sobre el total
}

// BreakdownByStatus agrupa los totales por estado de pago y calcula la tasa
// de cobro (pagado / total general, en porcentaje; 0 si no hay ventas).
func BreakdownByStatus(ventas []entity.Sale) PaymentBreakdown {
	b := PaymentBreakdown{}
	for _, v := range ventas {
		switch v.PaymentStatus {
		case entity.StatusPaid:
			b.PaidAmount = b.PaidAmount.Add(v.Total)
		case entity.StatusPending:
			b.PendingAmount = b.PendingAmount.Add(v.Total)
		case entity.StatusPartial:
			b.PartialAmount = b.PartialAmount.Add(v.Total)
		}
	}
	grand := b.PaidAmount.Add(b.PendingAmount).Add(b.PartialAmount)
	b.CollectionRate = money.SafeDiv(b.PaidAmount.Mul(decimal.NewFromInt(100)), grand).Round(1)
	return b
}

// ProductCount producto más vendido por número de ventas.
type ProductCount struct {
	Name  string
	Count int
}

// TopProduct devuelve el producto con más ventas. Empates se resuelven por
// orden de primera aparición en la entrada. ok=false si la lista está vacía.
func TopProduct(ventas []entity.Sale) (ProductCount, bool) {
	counts := map[string]int{}
	var order []string
	for _, v := range ventas {
		name := v.ProductType
		if name == "" {
			name = "Sin especificar"
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}
	top := ProductCount{}
	for _, name := range order {
		if counts[name] > top.Count {
			top = ProductCount{Name: name, Count: counts[name]}
		}
	}
	return top, top.Count > 0
}

// ClientStat acumulado por cliente para el ranking de mejores clientes.
type ClientStat struct {
	ClientID      string
	Name          string
	PurchaseCount int
	TotalSpent    decimal.Decimal
	AverageTicket decimal.Decimal
	LastPurchase  time.Time
}

// TopClients agrupa por cliente, acumula compras, gasto y última compra, y
// devuelve los limit mejores ordenados por gasto descendente. El orden entre
// empatados conserva el orden de primera aparición (sort estable).
func TopClients(ventas []entity.Sale, limit int) []ClientStat {
	if limit <= 0 {
		limit = 10
	}
	byID := map[string]*ClientStat{}
	var order []string
	for _, v := range ventas {
		id := v.ClientID
		if id == "" {
			id = "sin-id"
		}
		st, ok := byID[id]
		if !ok {
			name := v.ClientName
			if name == "" {
				name = "Cliente General"
			}
			st = &ClientStat{ClientID: id, Name: name, LastPurchase: v.Date}
			byID[id] = st
			order = append(order, id)
		}
		st.PurchaseCount++
		st.TotalSpent = st.TotalSpent.Add(v.Total)
		if v.Date.After(st.LastPurchase) {
			st.LastPurchase = v.Date
		}
	}

	out := make([]ClientStat, 0, len(order))
	for _, id := range order {
		st := byID[id]
		st.AverageTicket = money.SafeDiv(st.TotalSpent, decimal.NewFromInt(int64(st.PurchaseCount))).Round(2)
		out = append(out, *st)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpent.GreaterThan(out[j].TotalSpent)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// BucketStat acumulado por producto o por método de pago.
type BucketStat struct {
	Key      string
	Quantity decimal.Decimal
	Count    int
	Total    decimal.Decimal
	Percent  decimal.Decimal // porcentaje del total general del período
}

// ByProduct agrupa las ventas por tipo de producto, ordenado por total
// descendente (estable).
func ByProduct(ventas []entity.Sale) []BucketStat {
	return bucketize(ventas, func(v entity.Sale) string {
		if v.ProductType == "" {
			return "Sin especificar"
		}
		return v.ProductType
	})
}

// ByPaymentMethod agrupa las ventas por método de pago, ordenado por total
// descendente (estable).
func ByPaymentMethod(ventas []entity.Sale) []BucketStat {
	return bucketize(ventas, func(v entity.Sale) string {
		if v.PaymentMethod == "" {
			return "No especificado"
		}
		return v.PaymentMethod
	})
}

func bucketize(ventas []entity.Sale, key func(entity.Sale) string) []BucketStat {
	grand := decimal.Zero
	for _, v := range ventas {
		grand = grand.Add(v.Total)
	}

	byKey := map[string]*BucketStat{}
	var order []string
	for _, v := range ventas {
		k := key(v)
		b, ok := byKey[k]
		if !ok {
			b = &BucketStat{Key: k}
			byKey[k] = b
			order = append(order, k)
		}
		b.Quantity = b.Quantity.Add(v.Quantity)
		b.Count++
		b.Total = b.Total.Add(v.Total)
	}

	out := make([]BucketStat, 0, len(order))
	for _, k := range order {
		b := byKey[k]
		b.Percent = money.SafeDiv(b.Total.Mul(decimal.NewFromInt(100)), grand).Round(1)
		out = append(out, *b)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total.GreaterThan(out[j].Total)
	})
	return out
}

// AverageUnitPrice promedio simple del precio unitario del período.
func AverageUnitPrice(ventas []entity.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range ventas {
		sum = sum.Add(v.UnitPrice)
	}
	return money.SafeDiv(sum, decimal.NewFromInt(int64(len(ventas)))).Round(2)
}

// AverageDiscount promedio simple del descuento aplicado en el período.
func AverageDiscount(ventas []entity.Sale) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range ventas {
		sum = sum.Add(v.DiscountAmount)
	}
	return money.SafeDiv(sum, decimal.NewFromInt(int64(len(ventas)))).Round(2)
}

// HistoryOrdered devuelve una copia ordenada por fecha descendente; ventas
// con la misma fecha conservan su orden relativo original.
func HistoryOrdered(ventas []entity.Sale) []entity.Sale {
	out := make([]entity.Sale, len(ventas))
	copy(out, ventas)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
