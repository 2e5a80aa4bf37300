// Package sales implementa los casos de uso del libro de ventas: alta,
// edición, eliminación, registro de abonos y numeración de recibos.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	"github.com/akax-pajomel/ventas-api/internal/domain"
	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
	"github.com/akax-pajomel/ventas-api/pkg/logger"
)

// dayFormat fechas de calendario en la API (sin hora).
const dayFormat = "2006-01-02"

// storeTimeout límite por llamada al almacén; una operación falla antes que
// colgar al llamador.
const storeTimeout = 5 * time.Second

// UseCase casos de uso del libro de ventas.
type UseCase struct {
	saleRepo   repository.SaleRepository
	clientRepo repository.ClientRepository
	txRunner   TxRunner
	auth       Authorizer
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	txRunner TxRunner,
	auth Authorizer,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		saleRepo:   saleRepo,
		clientRepo: clientRepo,
		txRunner:   txRunner,
		auth:       auth,
		log:        log,
	}
}

// List devuelve todas las ventas, fecha descendente.
func (uc *UseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	ventas, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	out := make([]dto.SaleResponse, 0, len(ventas))
	for i := range ventas {
		out = append(out, *MapSale(&ventas[i]))
	}
	return out, nil
}

// GetByID devuelve una venta con su historial de abonos.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	venta, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	return MapSale(venta), nil
}

// parseDay interpreta una fecha YYYY-MM-DD y la ancla a mediodía local para
// que cambios de zona horaria no corran el día.
func parseDay(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q", domain.ErrInvalidInput, s)
	}
	return d.Add(12 * time.Hour), nil
}

// afterToday compara a granularidad de día de calendario.
func afterToday(t time.Time) bool {
	return t.Format(dayFormat) > time.Now().Format(dayFormat)
}

func mapPayment(p *entity.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		Amount:     p.Amount,
		Method:     p.Method,
		Date:       p.Date.Format(dayFormat),
		Notes:      p.Notes,
		RecordedAt: p.RecordedAt.Format(time.RFC3339),
	}
}

// MapSale convierte la entidad al DTO de respuesta. Lo reutiliza el paquete
// de informes para el historial.
func MapSale(v *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:             v.ID,
		Date:           v.Date.Format(dayFormat),
		ClientID:       v.ClientID,
		ClientName:     v.ClientName,
		ClientPhone:    v.ClientPhone,
		ClientEmail:    v.ClientEmail,
		ProductType:    v.ProductType,
		Quantity:       v.Quantity,
		Unit:           v.Unit,
		UnitPrice:      v.UnitPrice,
		Subtotal:       v.Subtotal,
		DiscountAmount: v.DiscountAmount,
		Total:          v.Total,
		PaymentMethod:  v.PaymentMethod,
		PaymentStatus:  string(v.PaymentStatus),
		AmountPaid:     v.AmountPaid,
		PendingBalance: v.PendingBalance,
		ReceiptNumber:  v.ReceiptNumber,
		Notes:          v.Notes,
		CreatedAt:      v.CreatedAt.Format(time.RFC3339),
	}
	if !v.LastModifiedAt.IsZero() {
		resp.LastModifiedAt = v.LastModifiedAt.Format(time.RFC3339)
	}
	if !v.LastPaymentAt.IsZero() {
		resp.LastPaymentAt = v.LastPaymentAt.Format(time.RFC3339)
	}
	for i := range v.PaymentHistory {
		resp.PaymentHistory = append(resp.PaymentHistory, mapPayment(&v.PaymentHistory[i]))
	}
	return resp
}
