package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus estado de pago de una venta. Tipo cerrado para evitar
// strings libres ("Pagado " con espacio, typos, etc.).
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "Pagado"
	StatusPending PaymentStatus = "Pendiente"
	StatusPartial PaymentStatus = "Parcial"
)

// Valid reporta si el estado es uno de los tres conocidos.
func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPaid, StatusPending, StatusPartial:
		return true
	}
	return false
}

// DiscountMode cómo se interpreta el descuento capturado: monto fijo o
// porcentaje sobre el subtotal.
type DiscountMode string

const (
	DiscountFlat    DiscountMode = "Monto"
	DiscountPercent DiscountMode = "Porcentaje"
)

// Métodos de pago habituales. El campo acepta texto libre; estos son los
// valores que ofrece la UI.
const (
	MethodCash     = "Efectivo"
	MethodTransfer = "Transferencia"
	MethodCard     = "Tarjeta"
	MethodCheck    = "Cheque"
	MethodOther    = "Otro"
)

// Unidad de medida por defecto.
const DefaultUnit = "libras"

// PaidTolerance margen en quetzales bajo el cual un saldo se considera
// liquidado (evita residuos de centavos por redondeo).
var PaidTolerance = decimal.NewFromFloat(0.01)

// Payment un abono registrado sobre una venta. Vive embebido en la venta,
// nunca como entidad independiente.
type Payment struct {
	Amount     decimal.Decimal
	Method     string
	Date       time.Time
	Notes      string
	RecordedAt time.Time
}

// Sale representa una venta de hongos. Los datos del cliente se congelan
// al momento de la venta (snapshot desnormalizado): ediciones posteriores
// del cliente NO se propagan — la venta es un registro histórico.
type Sale struct {
	ID   string
	Date time.Time // anclada a mediodía local, la hora no es significativa

	ClientID    string
	ClientName  string
	ClientPhone string
	ClientEmail string

	ProductType string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal

	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal

	PaymentMethod  string
	PaymentStatus  PaymentStatus
	AmountPaid     decimal.Decimal
	PendingBalance decimal.Decimal
	PaymentHistory []Payment // orden de inserción, el más antiguo primero

	ReceiptNumber string // único cuando no está vacío
	Notes         string

	CreatedAt      time.Time
	LastModifiedAt time.Time
	LastPaymentAt  time.Time
}

// IsSettled reporta si el saldo pendiente quedó dentro de la tolerancia.
func (s *Sale) IsSettled() bool {
	return s.PendingBalance.LessThanOrEqual(PaidTolerance)
}
