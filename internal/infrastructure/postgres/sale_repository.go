package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/akax-pajomel/ventas-api/internal/domain"
	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// fecha se guarda como DATE y se lee como texto YYYY-MM-DD; la hora se
// reconstruye anclada a mediodía local para que la zona horaria no corra
// el día de calendario.
const saleColumns = `
	id, fecha::text, client_id, client_name, client_phone, client_email,
	product_type, quantity, unit, unit_price,
	subtotal, discount_amount, total,
	payment_method, payment_status, amount_paid, pending_balance,
	receipt_number, notes, created_at, last_modified_at, last_payment_at`

func anchorDay(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return d.Add(12 * time.Hour)
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullIfZero(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

type scannable interface {
	Scan(dest ...any) error
}

func scanSale(row scannable) (*entity.Sale, error) {
	var (
		v              entity.Sale
		fecha          string
		receipt        *string
		lastModifiedAt *time.Time
		lastPaymentAt  *time.Time
	)
	err := row.Scan(
		&v.ID, &fecha, &v.ClientID, &v.ClientName, &v.ClientPhone, &v.ClientEmail,
		&v.ProductType, &v.Quantity, &v.Unit, &v.UnitPrice,
		&v.Subtotal, &v.DiscountAmount, &v.Total,
		&v.PaymentMethod, &v.PaymentStatus, &v.AmountPaid, &v.PendingBalance,
		&receipt, &v.Notes, &v.CreatedAt, &lastModifiedAt, &lastPaymentAt,
	)
	if err != nil {
		return nil, err
	}
	v.Date = anchorDay(fecha)
	if receipt != nil {
		v.ReceiptNumber = *receipt
	}
	if lastModifiedAt != nil {
		v.LastModifiedAt = *lastModifiedAt
	}
	if lastPaymentAt != nil {
		v.LastPaymentAt = *lastPaymentAt
	}
	return &v, nil
}

// Create persiste una nueva venta. El número de recibo tiene constraint único
// parcial; una carrera entre la verificación previa y el insert termina aquí
// como ErrDuplicateReceipt.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (
			id, fecha, client_id, client_name, client_phone, client_email,
			product_type, quantity, unit, unit_price,
			subtotal, discount_amount, total,
			payment_method, payment_status, amount_paid, pending_balance,
			receipt_number, notes, created_at, last_modified_at, last_payment_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Date.Format("2006-01-02"), sale.ClientID, sale.ClientName, sale.ClientPhone, sale.ClientEmail,
		sale.ProductType, sale.Quantity, sale.Unit, sale.UnitPrice,
		sale.Subtotal, sale.DiscountAmount, sale.Total,
		sale.PaymentMethod, string(sale.PaymentStatus), sale.AmountPaid, sale.PendingBalance,
		nullIfEmpty(sale.ReceiptNumber), sale.Notes, sale.CreatedAt,
		nullIfZero(sale.LastModifiedAt), nullIfZero(sale.LastPaymentAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReceipt
		}
		return storeError("insert venta", err)
	}
	return nil
}

// GetByID obtiene una venta con su historial de abonos. (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	venta, err := scanSale(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("get venta", err)
	}
	venta.PaymentHistory, err = r.loadPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	return venta, nil
}

// List lista todas las ventas, fecha descendente (las del mismo día, la más
// reciente primero), con sus historiales de abonos.
func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY fecha DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storeError("list ventas", err)
	}
	defer rows.Close()

	var list []entity.Sale
	for rows.Next() {
		v, err := scanSale(rows)
		if err != nil {
			return nil, storeError("scan venta", err)
		}
		list = append(list, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list ventas", err)
	}

	historial, err := r.loadAllPayments(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].PaymentHistory = historial[list[i].ID]
	}
	return list, nil
}

// Update reemplaza los campos editables de la cabecera. No toca montoPagado,
// saldoPendiente ni el historial.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales SET
			fecha = $2, client_id = $3, client_name = $4, client_phone = $5, client_email = $6,
			product_type = $7, quantity = $8, unit = $9, unit_price = $10,
			subtotal = $11, discount_amount = $12, total = $13,
			payment_method = $14, payment_status = $15,
			receipt_number = $16, notes = $17, last_modified_at = $18
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.Date.Format("2006-01-02"), sale.ClientID, sale.ClientName, sale.ClientPhone, sale.ClientEmail,
		sale.ProductType, sale.Quantity, sale.Unit, sale.UnitPrice,
		sale.Subtotal, sale.DiscountAmount, sale.Total,
		sale.PaymentMethod, string(sale.PaymentStatus),
		nullIfEmpty(sale.ReceiptNumber), sale.Notes, nullIfZero(sale.LastModifiedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateReceipt
		}
		return storeError("update venta", err)
	}
	return nil
}

// Delete elimina la venta; los abonos caen por cascada.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return storeError("delete venta", err)
	}
	return nil
}

// FindByReceiptNumber busca coincidencia exacta del número de recibo.
// Devuelve solo la cabecera; para chequear existencia basta.
func (r *SaleRepo) FindByReceiptNumber(ctx context.Context, value string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE receipt_number = $1`
	venta, err := scanSale(r.q.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("buscar recibo", err)
	}
	return venta, nil
}

// FindMostRecent devuelve la venta registrada más recientemente (por fecha
// de creación, no por fecha de venta).
func (r *SaleRepo) FindMostRecent(ctx context.Context) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY created_at DESC LIMIT 1`
	venta, err := scanSale(r.q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeError("venta más reciente", err)
	}
	return venta, nil
}

// UpdatePaymentState persiste el estado de cobro tras registrar un abono.
func (r *SaleRepo) UpdatePaymentState(ctx context.Context, sale *entity.Sale) error {
	query := `
		UPDATE sales SET
			amount_paid = $2, pending_balance = $3, payment_status = $4,
			payment_method = $5, last_payment_at = $6, last_modified_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.AmountPaid, sale.PendingBalance, string(sale.PaymentStatus),
		sale.PaymentMethod, nullIfZero(sale.LastPaymentAt), nullIfZero(sale.LastModifiedAt),
	)
	if err != nil {
		return storeError("update estado de pago", err)
	}
	return nil
}

// InsertPayment agrega un abono al historial en la posición dada.
func (r *SaleRepo) InsertPayment(ctx context.Context, saleID string, position int, p entity.Payment) error {
	query := `
		INSERT INTO sale_payments (sale_id, position, amount, method, fecha, notes, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		saleID, position, p.Amount, p.Method, p.Date.Format("2006-01-02"), p.Notes, p.RecordedAt,
	)
	if err != nil {
		return storeError("insert abono", err)
	}
	return nil
}

func (r *SaleRepo) loadPayments(ctx context.Context, saleID string) ([]entity.Payment, error) {
	query := `
		SELECT amount, method, fecha::text, notes, recorded_at
		FROM sale_payments WHERE sale_id = $1 ORDER BY position`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, storeError("list abonos", err)
	}
	defer rows.Close()

	var pagos []entity.Payment
	for rows.Next() {
		var (
			p     entity.Payment
			fecha string
		)
		if err := rows.Scan(&p.Amount, &p.Method, &fecha, &p.Notes, &p.RecordedAt); err != nil {
			return nil, storeError("scan abono", err)
		}
		p.Date = anchorDay(fecha)
		pagos = append(pagos, p)
	}
	return pagos, rows.Err()
}

// loadAllPayments trae todos los historiales en una sola consulta para no
// hacer N+1 al listar ventas.
func (r *SaleRepo) loadAllPayments(ctx context.Context) (map[string][]entity.Payment, error) {
	query := `
		SELECT sale_id, amount, method, fecha::text, notes, recorded_at
		FROM sale_payments ORDER BY sale_id, position`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, storeError("list abonos", err)
	}
	defer rows.Close()

	out := map[string][]entity.Payment{}
	for rows.Next() {
		var (
			saleID string
			p      entity.Payment
			fecha  string
		)
		if err := rows.Scan(&saleID, &p.Amount, &p.Method, &fecha, &p.Notes, &p.RecordedAt); err != nil {
			return nil, storeError("scan abono", err)
		}
		p.Date = anchorDay(fecha)
		out[saleID] = append(out[saleID], p)
	}
	return out, rows.Err()
}
