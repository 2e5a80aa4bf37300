package dto

import "github.com/shopspring/decimal"

// ReportResponse informe completo del período para GET /api/reports.
type ReportResponse struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Days int    `json:"days"`

	Summary   ReportSummaryDTO    `json:"summary"`
	Payments  PaymentBreakdownDTO `json:"payments"`
	Products  ProductMetricsDTO   `json:"products"`
	TopClient []ClientStatDTO     `json:"top_clients"`
	ByProduct []BucketStatDTO     `json:"by_product"`
	ByMethod  []BucketStatDTO     `json:"by_payment_method"`
	History   []SaleResponse      `json:"history"`
}

// ReportSummaryDTO resumen general.
type ReportSummaryDTO struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	SaleCount      int             `json:"sale_count"`
	TotalQuantity  decimal.Decimal `json:"total_quantity"`
	AverageTicket  decimal.Decimal `json:"average_ticket"`
	MinTicket      decimal.Decimal `json:"min_ticket"`
	MaxTicket      decimal.Decimal `json:"max_ticket"`
	RevenuePerDay  decimal.Decimal `json:"revenue_per_day"`
	SalesPerDay    decimal.Decimal `json:"sales_per_day"`
	QuantityPerDay decimal.Decimal `json:"quantity_per_day"`
}

// PaymentBreakdownDTO montos por estado de pago y tasa de cobro.
type PaymentBreakdownDTO struct {
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	PartialAmount  decimal.Decimal `json:"partial_amount"`
	CollectionRate decimal.Decimal `json:"collection_rate"`
}

// ProductMetricsDTO métricas de producto del período.
type ProductMetricsDTO struct {
	TopProduct       string          `json:"top_product,omitempty"`
	TopProductCount  int             `json:"top_product_count,omitempty"`
	AverageUnitPrice decimal.Decimal `json:"average_unit_price"`
	AverageDiscount  decimal.Decimal `json:"average_discount"`
}

// ClientStatDTO fila del ranking de mejores clientes.
type ClientStatDTO struct {
	ClientID      string          `json:"client_id"`
	Name          string          `json:"name"`
	PurchaseCount int             `json:"purchase_count"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	LastPurchase  string          `json:"last_purchase"`
}

// BucketStatDTO fila de desglose por producto o método de pago.
type BucketStatDTO struct {
	Key      string          `json:"key"`
	Quantity decimal.Decimal `json:"quantity"`
	Count    int             `json:"count"`
	Total    decimal.Decimal `json:"total"`
	Percent  decimal.Decimal `json:"percent"`
}

// DashboardResponse resumen ligero para la pantalla de inicio.
type DashboardResponse struct {
	Period        string           `json:"period"`
	From          string           `json:"from,omitempty"`
	To            string           `json:"to,omitempty"`
	TotalRevenue  decimal.Decimal  `json:"total_revenue"`
	SaleCount     int              `json:"sale_count"`
	TotalQuantity decimal.Decimal  `json:"total_quantity"`
	AverageTicket decimal.Decimal  `json:"average_ticket"`
	RecentSales   []SaleResponse   `json:"recent_sales"`
}
