package dto

import "github.com/shopspring/decimal"

// SaleRequest body para POST /api/sales y PUT /api/sales/:id.
// Date va en formato YYYY-MM-DD (día de calendario, sin hora).
type SaleRequest struct {
	ClientID      string          `json:"client_id"`
	Date          string          `json:"date"`
	ProductType   string          `json:"product_type"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Discount      decimal.Decimal `json:"discount"`
	DiscountMode  string          `json:"discount_mode,omitempty"` // Monto | Porcentaje
	PaymentMethod string          `json:"payment_method,omitempty"`
	PaymentStatus string          `json:"payment_status"` // Pagado | Pendiente | Parcial
	AmountPaid    decimal.Decimal `json:"amount_paid,omitempty"`
	ReceiptNumber string          `json:"receipt_number,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// PaymentRequest body para POST /api/sales/:id/payments.
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method,omitempty"`
	Date   string          `json:"date,omitempty"` // YYYY-MM-DD; hoy si va vacío
	Notes  string          `json:"notes,omitempty"`
}

// PaymentResponse abono en respuestas, el más antiguo primero.
type PaymentResponse struct {
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Date       string          `json:"date"`
	Notes      string          `json:"notes,omitempty"`
	RecordedAt string          `json:"recorded_at"`
}

// SaleResponse venta completa en respuestas.
type SaleResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`

	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`

	ProductType string          `json:"product_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`

	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Total          decimal.Decimal `json:"total"`

	PaymentMethod  string            `json:"payment_method"`
	PaymentStatus  string            `json:"payment_status"`
	AmountPaid     decimal.Decimal   `json:"amount_paid"`
	PendingBalance decimal.Decimal   `json:"pending_balance"`
	PaymentHistory []PaymentResponse `json:"payment_history,omitempty"`

	ReceiptNumber string `json:"receipt_number,omitempty"`
	Notes         string `json:"notes,omitempty"`

	CreatedAt      string `json:"created_at"`
	LastModifiedAt string `json:"last_modified_at,omitempty"`
	LastPaymentAt  string `json:"last_payment_at,omitempty"`
}

// ReceiptSuggestionResponse respuesta de GET /api/sales/receipt-suggestion.
type ReceiptSuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

// ReceiptAvailableResponse respuesta de GET /api/sales/receipt-available.
type ReceiptAvailableResponse struct {
	Available bool `json:"available"`
}
