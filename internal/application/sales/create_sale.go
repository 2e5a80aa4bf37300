package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	"github.com/akax-pajomel/ventas-api/internal/domain"
	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	domsales "github.com/akax-pajomel/ventas-api/internal/domain/sales"
)

// fallbackClientName nombre usado cuando la venta referencia un cliente que
// ya no existe en el registro.
const fallbackClientName = "Cliente General"

// Create registra una venta nueva con totales calculados y estado de pago
// inicial. El número de recibo, si viene, debe ser único: se re-verifica justo
// antes de insertar (check-then-act, sin reserva transaccional).
func (uc *UseCase) Create(ctx context.Context, in dto.SaleRequest) (*dto.SaleResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	venta, err := uc.buildSale(in)
	if err != nil {
		return nil, err
	}

	// Doble validación del recibo justo antes de guardar: otra venta pudo
	// haber tomado el número entre la sugerencia y el submit.
	if venta.ReceiptNumber != "" {
		existing, err := uc.saleRepo.FindByReceiptNumber(ctx, venta.ReceiptNumber)
		if err != nil {
			return nil, fmt.Errorf("verificar recibo: %w", err)
		}
		if existing != nil {
			return nil, domain.ErrDuplicateReceipt
		}
	}

	uc.snapshotClient(ctx, venta)

	now := time.Now()
	venta.ID = uuid.New().String()
	venta.CreatedAt = now
	venta.LastModifiedAt = now

	if err := uc.saleRepo.Create(ctx, venta); err != nil {
		return nil, fmt.Errorf("guardar venta: %w", err)
	}

	uc.log.Info().
		Str("sale_id", venta.ID).
		Str("cliente", venta.ClientName).
		Str("estado", string(venta.PaymentStatus)).
		Str("total", venta.Total.StringFixed(2)).
		Msg("venta registrada")

	return MapSale(venta), nil
}

// buildSale valida la captura y calcula los campos derivados. No toca el
// almacén; lo comparten Create y Update.
func (uc *UseCase) buildSale(in dto.SaleRequest) (*entity.Sale, error) {
	if in.ClientID == "" {
		return nil, fmt.Errorf("%w: selecciona un cliente", domain.ErrInvalidInput)
	}
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}

	date := time.Now()
	if in.Date != "" {
		var err error
		if date, err = parseDay(in.Date); err != nil {
			return nil, err
		}
	}
	if afterToday(date) {
		return nil, domain.ErrFutureDate
	}

	status := entity.PaymentStatus(in.PaymentStatus)
	if in.PaymentStatus == "" {
		status = entity.StatusPaid
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado de pago %q", domain.ErrInvalidInput, in.PaymentStatus)
	}

	mode := entity.DiscountMode(in.DiscountMode)
	if mode != entity.DiscountPercent {
		mode = entity.DiscountFlat
	}
	if in.Discount.IsNegative() {
		return nil, fmt.Errorf("%w: el descuento no puede ser negativo", domain.ErrInvalidInput)
	}

	subtotal, discount, total := domsales.ComputeTotals(in.Quantity, in.UnitPrice, in.Discount, mode)
	paid, pending := domsales.DerivePaymentState(status, total, in.AmountPaid)

	unit := in.Unit
	if unit == "" {
		unit = entity.DefaultUnit
	}
	method := in.PaymentMethod
	if method == "" {
		method = entity.MethodCash
	}

	return &entity.Sale{
		Date:           date,
		ClientID:       in.ClientID,
		ProductType:    strings.TrimSpace(in.ProductType),
		Quantity:       in.Quantity,
		Unit:           unit,
		UnitPrice:      in.UnitPrice.Round(2),
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Total:          total,
		PaymentMethod:  method,
		PaymentStatus:  status,
		AmountPaid:     paid,
		PendingBalance: pending,
		ReceiptNumber:  strings.TrimSpace(in.ReceiptNumber),
		Notes:          strings.TrimSpace(in.Notes),
	}, nil
}

// snapshotClient congela nombre, teléfono y email del cliente en la venta.
// Si el cliente ya no existe se registra como "Cliente General": la venta es
// un registro histórico y no exige integridad referencial.
func (uc *UseCase) snapshotClient(ctx context.Context, venta *entity.Sale) {
	client, err := uc.clientRepo.GetByID(ctx, venta.ClientID)
	if err != nil || client == nil {
		if err != nil {
			uc.log.Warn().Err(err).Str("client_id", venta.ClientID).Msg("snapshot de cliente no disponible")
		}
		venta.ClientName = fallbackClientName
		return
	}
	venta.ClientName = client.Name
	venta.ClientPhone = client.Phone
	venta.ClientEmail = client.Email
}
