package sales

import (
	"github.com/shopspring/decimal"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/pkg/money"
)

// ComputeTotals calcula subtotal, descuento aplicado y total de una venta.
//
//	subtotal  = cantidad * precioUnitario
//	descuento = monto fijo, o porcentaje del subtotal; acotado a [0, subtotal]
//	total     = max(0, subtotal - descuento)
func ComputeTotals(quantity, unitPrice, discountInput decimal.Decimal, mode entity.DiscountMode) (subtotal, discount, total decimal.Decimal) {
	subtotal = quantity.Mul(unitPrice).Round(2)

	discount = discountInput
	if mode == entity.DiscountPercent {
		discount = money.Percent(subtotal, discountInput)
	}
	discount = money.ClampRange(discount.Round(2), decimal.Zero, subtotal)

	total = money.ClampMin(subtotal.Sub(discount), decimal.Zero).Round(2)
	return subtotal, discount, total
}

// DerivePaymentState deriva montoPagado y saldoPendiente al crear la venta.
//
//	Pagado    -> pagado = total, saldo = 0
//	Pendiente -> pagado = 0,     saldo = total
//	Parcial   -> pagado = valor capturado (>= 0), saldo = max(0, total - pagado)
func DerivePaymentState(status entity.PaymentStatus, total, amountPaid decimal.Decimal) (paid, pending decimal.Decimal) {
	switch status {
	case entity.StatusPaid:
		return total, decimal.Zero
	case entity.StatusPending:
		return decimal.Zero, total
	default: // Parcial
		paid = money.ClampMin(amountPaid, decimal.Zero).Round(2)
		pending = money.ClampMin(total.Sub(paid), decimal.Zero).Round(2)
		return paid, pending
	}
}

// SettleStatus decide el nuevo estado después de un abono: Pagado si el
// saldo quedó dentro de la tolerancia de 0.01, si no Parcial.
func SettleStatus(pending decimal.Decimal) entity.PaymentStatus {
	if pending.LessThanOrEqual(entity.PaidTolerance) {
		return entity.StatusPaid
	}
	return entity.StatusPartial
}
