// Package reports arma los informes de ventas: resuelve el período pedido,
// filtra el listado y delega los cálculos al paquete de agregados.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	"github.com/akax-pajomel/ventas-api/internal/application/sales"
	"github.com/akax-pajomel/ventas-api/internal/domain"
	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/domain/period"
	"github.com/akax-pajomel/ventas-api/internal/domain/report"
	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
	"github.com/akax-pajomel/ventas-api/pkg/logger"
)

const dayFormat = "2006-01-02"

const storeTimeout = 5 * time.Second

// topClientsLimit filas del ranking de mejores clientes en el informe.
const topClientsLimit = 10

// recentSalesLimit ventas recientes mostradas en el dashboard.
const recentSalesLimit = 5

// Filter criterios de un informe. Period es un token ("hoy", "mes"…); From y
// To, si ambos vienen, definen un rango explícito que manda sobre el token.
// Product y Status acotan además por tipo de hongo y estado de pago.
type Filter struct {
	Period  string
	From    string
	To      string
	Product string
	Status  string
}

// UseCase casos de uso de informes.
type UseCase struct {
	saleRepo repository.SaleRepository
	log      *logger.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso. now permite fijar el reloj en pruebas.
func NewUseCase(saleRepo repository.SaleRepository, log *logger.Logger) *UseCase {
	return &UseCase{saleRepo: saleRepo, log: log, now: time.Now}
}

// resolveRange traduce el filtro a un rango concreto. Un rango explícito
// completo (from y to) manda; si falta alguno se usa el token de período.
// Devuelve nil cuando el filtro no acota fechas ("todo" o token desconocido).
func (uc *UseCase) resolveRange(f Filter) (*period.DateRange, error) {
	if f.From != "" && f.To != "" {
		from, err := time.ParseInLocation(dayFormat, f.From, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha desde %q", domain.ErrInvalidInput, f.From)
		}
		to, err := time.ParseInLocation(dayFormat, f.To, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha hasta %q", domain.ErrInvalidInput, f.To)
		}
		if f.To < f.From {
			return nil, fmt.Errorf("%w: el rango termina antes de empezar", domain.ErrInvalidInput)
		}
		return &period.DateRange{From: from, To: to.Add(24*time.Hour - time.Millisecond)}, nil
	}
	return period.ResolveRange(f.Period, uc.now()), nil
}

// matchFilter aplica los criterios de producto y estado, preservando el orden.
func matchFilter(ventas []entity.Sale, f Filter) []entity.Sale {
	if f.Product == "" && f.Status == "" {
		return ventas
	}
	out := make([]entity.Sale, 0, len(ventas))
	for _, v := range ventas {
		if f.Product != "" && v.ProductType != f.Product {
			continue
		}
		if f.Status != "" && string(v.PaymentStatus) != f.Status {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Load devuelve las ventas que cumplen el filtro, en el orden del libro, y el
// número de días del rango activo. Lo comparten Generate y los exportadores.
func (uc *UseCase) Load(ctx context.Context, f Filter) ([]entity.Sale, *period.DateRange, error) {
	rango, err := uc.resolveRange(f)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	ventas, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listar ventas para informe: %w", err)
	}
	ventas = period.FilterByRange(ventas, rango)
	ventas = matchFilter(ventas, f)
	return ventas, rango, nil
}

// Generate arma el informe completo del período: resumen, desglose de pagos,
// métricas de producto, ranking de clientes y el historial ordenado.
func (uc *UseCase) Generate(ctx context.Context, f Filter) (*dto.ReportResponse, error) {
	ventas, rango, err := uc.Load(ctx, f)
	if err != nil {
		return nil, err
	}

	days := report.DefaultRangeDays
	if rango != nil {
		days = rango.Days()
	}

	resp := &dto.ReportResponse{Days: days}
	if rango != nil {
		resp.From = rango.From.Format(dayFormat)
		resp.To = rango.To.Format(dayFormat)
	}

	s := report.Summarize(ventas, days)
	resp.Summary = dto.ReportSummaryDTO{
		TotalRevenue:   s.TotalRevenue,
		SaleCount:      s.SaleCount,
		TotalQuantity:  s.TotalQuantity,
		AverageTicket:  s.AverageTicket,
		MinTicket:      s.MinTicket,
		MaxTicket:      s.MaxTicket,
		RevenuePerDay:  s.RevenuePerDay,
		SalesPerDay:    s.SalesPerDay,
		QuantityPerDay: s.QuantityPerDay,
	}

	b := report.BreakdownByStatus(ventas)
	resp.Payments = dto.PaymentBreakdownDTO{
		PaidAmount:     b.PaidAmount,
		PendingAmount:  b.PendingAmount,
		PartialAmount:  b.PartialAmount,
		CollectionRate: b.CollectionRate,
	}

	resp.Products = dto.ProductMetricsDTO{
		AverageUnitPrice: report.AverageUnitPrice(ventas),
		AverageDiscount:  report.AverageDiscount(ventas),
	}
	if top, ok := report.TopProduct(ventas); ok {
		resp.Products.TopProduct = top.Name
		resp.Products.TopProductCount = top.Count
	}

	for _, st := range report.TopClients(ventas, topClientsLimit) {
		resp.TopClient = append(resp.TopClient, dto.ClientStatDTO{
			ClientID:      st.ClientID,
			Name:          st.Name,
			PurchaseCount: st.PurchaseCount,
			TotalSpent:    st.TotalSpent,
			AverageTicket: st.AverageTicket,
			LastPurchase:  st.LastPurchase.Format(dayFormat),
		})
	}

	resp.ByProduct = mapBuckets(report.ByProduct(ventas))
	resp.ByMethod = mapBuckets(report.ByPaymentMethod(ventas))

	for _, v := range report.HistoryOrdered(ventas) {
		resp.History = append(resp.History, *sales.MapSale(&v))
	}

	uc.log.Info().
		Str("periodo", f.Period).
		Int("ventas", len(ventas)).
		Msg("Informe generado")
	return resp, nil
}

// Dashboard resumen ligero para la pantalla de inicio. token vacío = "hoy".
func (uc *UseCase) Dashboard(ctx context.Context, token string) (*dto.DashboardResponse, error) {
	if token == "" {
		token = period.Today
	}
	ventas, rango, err := uc.Load(ctx, Filter{Period: token})
	if err != nil {
		return nil, err
	}

	days := report.DefaultRangeDays
	if rango != nil {
		days = rango.Days()
	}
	s := report.Summarize(ventas, days)

	resp := &dto.DashboardResponse{
		Period:        token,
		TotalRevenue:  s.TotalRevenue,
		SaleCount:     s.SaleCount,
		TotalQuantity: s.TotalQuantity,
		AverageTicket: s.AverageTicket,
	}
	if rango != nil {
		resp.From = rango.From.Format(dayFormat)
		resp.To = rango.To.Format(dayFormat)
	}

	recientes := report.HistoryOrdered(ventas)
	if len(recientes) > recentSalesLimit {
		recientes = recientes[:recentSalesLimit]
	}
	for i := range recientes {
		resp.RecentSales = append(resp.RecentSales, *sales.MapSale(&recientes[i]))
	}
	return resp, nil
}

func mapBuckets(buckets []report.BucketStat) []dto.BucketStatDTO {
	out := make([]dto.BucketStatDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.BucketStatDTO{
			Key:      b.Key,
			Quantity: b.Quantity,
			Count:    b.Count,
			Total:    b.Total,
			Percent:  b.Percent,
		})
	}
	return out
}
