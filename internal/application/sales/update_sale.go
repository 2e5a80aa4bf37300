package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	"github.com/akax-pajomel/ventas-api/internal/domain"
)

// Update edita una venta existente y recalcula subtotal, descuento y total.
// No toca montoPagado, saldoPendiente ni el historial de abonos: esos campos
// solo los mueve RegisterPayment. Requiere autorización elevada.
//
// El snapshot del cliente se refresca completo (nombre, teléfono y email)
// cuando el cliente referenciado todavía existe; si ya fue eliminado se
// conserva el snapshot anterior.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.SaleRequest) (*dto.SaleResponse, error) {
	if err := uc.auth.CanMutate(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	current, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener venta: %w", err)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}

	edited, err := uc.buildSale(in)
	if err != nil {
		return nil, err
	}

	// Cambio de recibo: verificar unicidad contra cualquier otra venta.
	if edited.ReceiptNumber != "" && edited.ReceiptNumber != current.ReceiptNumber {
		existing, err := uc.saleRepo.FindByReceiptNumber(ctx, edited.ReceiptNumber)
		if err != nil {
			return nil, fmt.Errorf("verificar recibo: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicateReceipt
		}
	}
	if edited.ReceiptNumber == "" {
		edited.ReceiptNumber = current.ReceiptNumber
	}

	// Conservar identidad, estado de pago e historial.
	edited.ID = current.ID
	edited.AmountPaid = current.AmountPaid
	edited.PendingBalance = current.PendingBalance
	edited.PaymentHistory = current.PaymentHistory
	edited.CreatedAt = current.CreatedAt
	edited.LastPaymentAt = current.LastPaymentAt
	edited.LastModifiedAt = time.Now()

	// Refresco del snapshot solo si el cliente sigue existiendo.
	edited.ClientName = current.ClientName
	edited.ClientPhone = current.ClientPhone
	edited.ClientEmail = current.ClientEmail
	if client, err := uc.clientRepo.GetByID(ctx, edited.ClientID); err == nil && client != nil {
		edited.ClientName = client.Name
		edited.ClientPhone = client.Phone
		edited.ClientEmail = client.Email
	}

	if err := uc.saleRepo.Update(ctx, edited); err != nil {
		return nil, fmt.Errorf("actualizar venta: %w", err)
	}

	uc.log.Info().Str("sale_id", id).Str("total", edited.Total.StringFixed(2)).Msg("venta actualizada")
	return MapSale(edited), nil
}

// Delete elimina una venta de forma irreversible (sin papelera ni undo).
// Requiere autorización elevada.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := uc.auth.CanMutate(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	venta, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("obtener venta: %w", err)
	}
	if venta == nil {
		return domain.ErrNotFound
	}
	if err := uc.saleRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar venta: %w", err)
	}

	uc.log.Info().Str("sale_id", id).Str("cliente", venta.ClientName).Msg("venta eliminada")
	return nil
}
