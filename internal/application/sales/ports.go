package sales

import (
	"context"

	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
)

// Authorizer capacidad de autorización para mutaciones sensibles (editar,
// eliminar, registrar abonos). La inyecta la aplicación anfitriona; el core
// solo exige que exista. Devuelve domain.ErrForbidden cuando no hay permiso.
type Authorizer interface {
	CanMutate(ctx context.Context) error
}

// TxRunner ejecuta un callback con un SaleRepository atado a una transacción.
// Registrar un abono escribe la cabecera y el historial juntos; o entra todo
// o no entra nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}
