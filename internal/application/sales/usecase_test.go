package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akax-pajomel/ventas-api/internal/application/dto"
	appsales "github.com/akax-pajomel/ventas-api/internal/application/sales"
	"github.com/akax-pajomel/ventas-api/internal/domain"
	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	"github.com/akax-pajomel/ventas-api/internal/domain/repository"
	"github.com/akax-pajomel/ventas-api/pkg/logger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	ventas []*entity.Sale
}

func (r *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	cp := *sale
	r.ventas = append(r.ventas, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, v := range r.ventas {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) List(_ context.Context) ([]entity.Sale, error) {
	out := make([]entity.Sale, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *fakeSaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	for i, v := range r.ventas {
		if v.ID == sale.ID {
			cp := *sale
			r.ventas[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSaleRepo) Delete(_ context.Context, id string) error {
	for i, v := range r.ventas {
		if v.ID == id {
			r.ventas = append(r.ventas[:i], r.ventas[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSaleRepo) FindByReceiptNumber(_ context.Context, value string) (*entity.Sale, error) {
	for _, v := range r.ventas {
		if v.ReceiptNumber == value {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) FindMostRecent(_ context.Context) (*entity.Sale, error) {
	var latest *entity.Sale
	for _, v := range r.ventas {
		if latest == nil || v.CreatedAt.After(latest.CreatedAt) {
			latest = v
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeSaleRepo) UpdatePaymentState(_ context.Context, sale *entity.Sale) error {
	for _, v := range r.ventas {
		if v.ID == sale.ID {
			v.AmountPaid = sale.AmountPaid
			v.PendingBalance = sale.PendingBalance
			v.PaymentStatus = sale.PaymentStatus
			v.PaymentMethod = sale.PaymentMethod
			v.LastPaymentAt = sale.LastPaymentAt
			v.LastModifiedAt = sale.LastModifiedAt
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeSaleRepo) InsertPayment(_ context.Context, saleID string, position int, p entity.Payment) error {
	for _, v := range r.ventas {
		if v.ID == saleID {
			_ = position // el fake conserva el orden de inserción
			v.PaymentHistory = append(v.PaymentHistory, p)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeClientRepo struct {
	clientes map[string]*entity.Client
}

func (r *fakeClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) List(_ context.Context) ([]entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.clientes[c.ID] = c
	return nil
}
func (r *fakeClientRepo) Delete(_ context.Context, id string) error {
	delete(r.clientes, id)
	return nil
}

// fakeTxRunner ejecuta el callback directo contra el repo, sin transacción.
type fakeTxRunner struct {
	repo repository.SaleRepository
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(saleRepo repository.SaleRepository) error) error {
	return fn(r.repo)
}

// allowAll autoriza todas las mutaciones.
type allowAll struct{}

func (allowAll) CanMutate(context.Context) error { return nil }

// denyAll las rechaza todas.
type denyAll struct{}

func (denyAll) CanMutate(context.Context) error { return domain.ErrForbidden }

func newTestUseCase(t *testing.T) (*appsales.UseCase, *fakeSaleRepo, *fakeClientRepo) {
	t.Helper()
	saleRepo := &fakeSaleRepo{}
	clientRepo := &fakeClientRepo{clientes: map[string]*entity.Client{
		"c1": {ID: "c1", Name: "María López", Phone: "5555-1234", Email: "maria@example.com"},
	}}
	uc := appsales.NewUseCase(saleRepo, clientRepo, &fakeTxRunner{repo: saleRepo}, allowAll{}, logger.Nop())
	return uc, saleRepo, clientRepo
}

func saleRequest() dto.SaleRequest {
	return dto.SaleRequest{
		ClientID:      "c1",
		Date:          time.Now().Format("2006-01-02"),
		ProductType:   "Ostra",
		Quantity:      dec("10"),
		UnitPrice:     dec("15"),
		Discount:      dec("10"),
		DiscountMode:  "Porcentaje",
		PaymentStatus: "Parcial",
		AmountPaid:    dec("50"),
		ReceiptNumber: "REC-1042",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CalculaTotalesYSnapshot(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	venta, err := uc.Create(context.Background(), saleRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, venta.ID)
	assert.True(t, venta.Subtotal.Equal(dec("150.00")))
	assert.True(t, venta.DiscountAmount.Equal(dec("15.00")))
	assert.True(t, venta.Total.Equal(dec("135.00")))
	assert.True(t, venta.AmountPaid.Equal(dec("50.00")))
	assert.True(t, venta.PendingBalance.Equal(dec("85.00")))
	assert.Equal(t, "Parcial", venta.PaymentStatus)

	// snapshot del cliente congelado en la venta
	assert.Equal(t, "María López", venta.ClientName)
	assert.Equal(t, "5555-1234", venta.ClientPhone)
	assert.Equal(t, "libras", venta.Unit, "unidad por defecto")
	assert.Equal(t, "Efectivo", venta.PaymentMethod, "método por defecto")
}

func TestCreate_ClienteInexistenteUsaFallback(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	in := saleRequest()
	in.ClientID = "no-existe"
	in.ReceiptNumber = ""

	venta, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Cliente General", venta.ClientName)
}

func TestCreate_Validaciones(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	cases := []struct {
		name   string
		mutate func(*dto.SaleRequest)
		want   error
	}{
		{"sin cliente", func(r *dto.SaleRequest) { r.ClientID = "" }, domain.ErrInvalidInput},
		{"cantidad cero", func(r *dto.SaleRequest) { r.Quantity = decimal.Zero }, domain.ErrInvalidInput},
		{"cantidad negativa", func(r *dto.SaleRequest) { r.Quantity = dec("-1") }, domain.ErrInvalidInput},
		{"precio negativo", func(r *dto.SaleRequest) { r.UnitPrice = dec("-5") }, domain.ErrInvalidInput},
		{"descuento negativo", func(r *dto.SaleRequest) { r.Discount = dec("-5") }, domain.ErrInvalidInput},
		{"fecha malformada", func(r *dto.SaleRequest) { r.Date = "15/04/2026" }, domain.ErrInvalidInput},
		{"estado desconocido", func(r *dto.SaleRequest) { r.PaymentStatus = "Fiado" }, domain.ErrInvalidInput},
		{"fecha futura", func(r *dto.SaleRequest) {
			r.Date = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		}, domain.ErrFutureDate},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := saleRequest()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreate_ReciboDuplicado(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	_, err := uc.Create(context.Background(), saleRequest())
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), saleRequest())
	assert.ErrorIs(t, err, domain.ErrDuplicateReceipt)
}

func TestCreate_EstadoPorDefectoPagado(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	in := saleRequest()
	in.PaymentStatus = ""
	in.ReceiptNumber = ""

	venta, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Pagado", venta.PaymentStatus)
	assert.True(t, venta.AmountPaid.Equal(dec("135.00")))
	assert.True(t, venta.PendingBalance.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterPayment
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterPayment_AbonoParcialYLiquidacion(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	venta, err := uc.Create(context.Background(), saleRequest()) // saldo 85.00
	require.NoError(t, err)

	// primer abono: 35 -> saldo 50, sigue Parcial
	resp, err := uc.RegisterPayment(context.Background(), venta.ID, dto.PaymentRequest{Amount: dec("35")})
	require.NoError(t, err)
	assert.True(t, resp.AmountPaid.Equal(dec("85.00")))
	assert.True(t, resp.PendingBalance.Equal(dec("50.00")))
	assert.Equal(t, "Parcial", resp.PaymentStatus)
	require.Len(t, resp.PaymentHistory, 1)

	// segundo abono: exactamente el saldo -> Pagado
	resp, err = uc.RegisterPayment(context.Background(), venta.ID, dto.PaymentRequest{Amount: dec("50")})
	require.NoError(t, err)
	assert.True(t, resp.PendingBalance.IsZero())
	assert.Equal(t, "Pagado", resp.PaymentStatus)
	require.Len(t, resp.PaymentHistory, 2)
	assert.NotEmpty(t, resp.LastPaymentAt)
}

func TestRegisterPayment_SobrepagoRechazado(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	venta, err := uc.Create(context.Background(), saleRequest()) // saldo 85.00
	require.NoError(t, err)

	_, err = uc.RegisterPayment(context.Background(), venta.ID, dto.PaymentRequest{Amount: dec("90")})
	assert.ErrorIs(t, err, domain.ErrOverpayment)

	// el estado no cambió
	after, err := uc.GetByID(context.Background(), venta.ID)
	require.NoError(t, err)
	assert.True(t, after.PendingBalance.Equal(dec("85.00")))
	assert.Empty(t, after.PaymentHistory)
}

func TestRegisterPayment_MontoInvalidoYVentaInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	venta, err := uc.Create(context.Background(), saleRequest())
	require.NoError(t, err)

	_, err = uc.RegisterPayment(context.Background(), venta.ID, dto.PaymentRequest{Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegisterPayment(context.Background(), "no-existe", dto.PaymentRequest{Amount: dec("10")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterPayment_MetodoPorDefectoElDeLaVenta(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	in := saleRequest()
	in.PaymentMethod = "Transferencia"
	venta, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	resp, err := uc.RegisterPayment(context.Background(), venta.ID, dto.PaymentRequest{Amount: dec("10")})
	require.NoError(t, err)
	require.Len(t, resp.PaymentHistory, 1)
	assert.Equal(t, "Transferencia", resp.PaymentHistory[0].Method)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_RecalculaSinTocarPagos(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	venta, err := uc.Create(context.Background(), saleRequest()) // pagado 50, saldo 85
	require.NoError(t, err)

	in := saleRequest()
	in.Quantity = dec("20") // subtotal 300, descuento 30, total 270
	resp, err := uc.Update(context.Background(), venta.ID, in)
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(dec("270.00")))
	assert.True(t, resp.AmountPaid.Equal(dec("50.00")), "editar no toca el monto pagado")
	assert.True(t, resp.PendingBalance.Equal(dec("85.00")), "editar no recalcula el saldo")
	assert.Equal(t, venta.CreatedAt, resp.CreatedAt)
}

func TestUpdate_ReciboDuplicadoConOtraVenta(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	_, err := uc.Create(context.Background(), saleRequest()) // toma REC-1042
	require.NoError(t, err)

	in2 := saleRequest()
	in2.ReceiptNumber = "REC-1043"
	venta2, err := uc.Create(context.Background(), in2)
	require.NoError(t, err)

	edit := saleRequest()
	edit.ReceiptNumber = "REC-1042" // ya lo tiene la primera
	_, err = uc.Update(context.Background(), venta2.ID, edit)
	assert.ErrorIs(t, err, domain.ErrDuplicateReceipt)

	// conservar su propio recibo no es colisión
	edit.ReceiptNumber = "REC-1043"
	_, err = uc.Update(context.Background(), venta2.ID, edit)
	assert.NoError(t, err)
}

func TestUpdate_VentaInexistente(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	_, err := uc.Update(context.Background(), "no-existe", saleRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	uc, repo, _ := newTestUseCase(t)
	venta, err := uc.Create(context.Background(), saleRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), venta.ID))
	assert.Empty(t, repo.ventas)

	assert.ErrorIs(t, uc.Delete(context.Background(), venta.ID), domain.ErrNotFound)
}

func TestMutacionesRequierenAutorizacion(t *testing.T) {
	saleRepo := &fakeSaleRepo{}
	clientRepo := &fakeClientRepo{clientes: map[string]*entity.Client{}}
	uc := appsales.NewUseCase(saleRepo, clientRepo, &fakeTxRunner{repo: saleRepo}, denyAll{}, logger.Nop())

	_, err := uc.Update(context.Background(), "x", saleRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, uc.Delete(context.Background(), "x"), domain.ErrForbidden)

	_, err = uc.RegisterPayment(context.Background(), "x", dto.PaymentRequest{Amount: dec("1")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Recibos
// ──────────────────────────────────────────────────────────────────────────────

func TestSuggestNextReceiptNumber(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	// libro vacío: arranca en 1
	resp, err := uc.SuggestNextReceiptNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", resp.Suggestion)

	_, err = uc.Create(context.Background(), saleRequest()) // REC-1042
	require.NoError(t, err)

	resp, err = uc.SuggestNextReceiptNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "REC-1043", resp.Suggestion)

	// consultar no reserva: la sugerencia no cambia entre lecturas
	again, err := uc.SuggestNextReceiptNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, resp.Suggestion, again.Suggestion)
}

func TestCheckReceiptAvailable(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	_, err := uc.Create(context.Background(), saleRequest()) // REC-1042
	require.NoError(t, err)

	resp, err := uc.CheckReceiptAvailable(context.Background(), "REC-1042")
	require.NoError(t, err)
	assert.False(t, resp.Available)

	resp, err = uc.CheckReceiptAvailable(context.Background(), "REC-9999")
	require.NoError(t, err)
	assert.True(t, resp.Available)

	resp, err = uc.CheckReceiptAvailable(context.Background(), "  ")
	require.NoError(t, err)
	assert.True(t, resp.Available, "recibo vacío siempre disponible")
}
