package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akax-pajomel/ventas-api/internal/application/sales"
	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un SaleRepository atado a la tx
// y hace Commit o Rollback. Registrar un abono escribe cabecera e historial
// juntos; o entra todo o no entra nada.
func (r *TxRunner) Run(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storeError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return storeError("commit transaction", err)
	}
	return nil
}
