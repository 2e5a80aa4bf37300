package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	"github.com/akax-pajomel/ventas-api/internal/domain"
	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
	domsales "github.com/akax-pajomel/ventas-api/internal/domain/sales"
	"github.com/akax-pajomel/ventas-api/pkg/money"
)

// RegisterPayment abona un monto al saldo pendiente de una venta.
//
// Es la única operación que mueve montoPagado/saldoPendiente después del
// alta, y es monótona: el saldo solo baja y el historial solo crece. Un abono
// mayor al saldo pendiente falla con ErrOverpayment. Requiere autorización
// elevada.
func (uc *UseCase) RegisterPayment(ctx context.Context, saleID string, in dto.PaymentRequest) (*dto.SaleResponse, error) {
	if err := uc.auth.CanMutate(ctx); err != nil {
		return nil, err
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: el monto del abono debe ser mayor a 0", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	venta, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	if in.Amount.GreaterThan(venta.PendingBalance) {
		return nil, domain.ErrOverpayment
	}

	now := time.Now()
	payDate := now
	if in.Date != "" {
		if payDate, err = parseDay(in.Date); err != nil {
			return nil, err
		}
	}
	method := in.Method
	if method == "" {
		method = venta.PaymentMethod
	}

	pago := entity.Payment{
		Amount:     in.Amount.Round(2),
		Method:     method,
		Date:       payDate,
		Notes:      in.Notes,
		RecordedAt: now,
	}

	venta.AmountPaid = venta.AmountPaid.Add(pago.Amount).Round(2)
	venta.PendingBalance = money.ClampMin(venta.Total.Sub(venta.AmountPaid), decimal.Zero)
	venta.PaymentStatus = domsales.SettleStatus(venta.PendingBalance)
	venta.PaymentMethod = method
	venta.LastPaymentAt = now
	venta.LastModifiedAt = now

	position := len(venta.PaymentHistory)
	err = uc.txRunner.Run(ctx, func(saleRepo repository.SaleRepository) error {
		if err := saleRepo.UpdatePaymentState(ctx, venta); err != nil {
			return err
		}
		return saleRepo.InsertPayment(ctx, venta.ID, position, pago)
	})
	if err != nil {
		return nil, fmt.Errorf("registrar abono: %w", err)
	}

	venta.PaymentHistory = append(venta.PaymentHistory, pago)

	evt := uc.log.Info().
		Str("sale_id", venta.ID).
		Str("monto", pago.Amount.StringFixed(2)).
		Str("saldo", venta.PendingBalance.StringFixed(2))
	if venta.PaymentStatus == entity.StatusPaid {
		evt.Msg("pago completado")
	} else {
		evt.Msg("abono registrado")
	}

	return MapSale(venta), nil
}
