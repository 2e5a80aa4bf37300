package repository

import (
	"context"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Los métodos Get/Find devuelven (nil, nil) cuando no hay registro.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context) ([]entity.Sale, error) // fecha descendente
	// Update reemplaza los campos editables de la cabecera. No toca
	// montoPagado, saldoPendiente ni el historial de abonos.
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id string) error

	// FindByReceiptNumber busca coincidencia exacta del número de recibo.
	FindByReceiptNumber(ctx context.Context, value string) (*entity.Sale, error)
	// FindMostRecent devuelve la venta registrada más recientemente
	// (por fecha de creación, no por fecha de venta).
	FindMostRecent(ctx context.Context) (*entity.Sale, error)

	// UpdatePaymentState persiste montoPagado, saldoPendiente, estado,
	// método y marcas de tiempo tras registrar un abono.
	UpdatePaymentState(ctx context.Context, sale *entity.Sale) error
	// InsertPayment agrega un abono al historial. position es el índice de
	// inserción (0 = el más antiguo) y fija el orden de lectura.
	InsertPayment(ctx context.Context, saleID string, position int, p entity.Payment) error
}
