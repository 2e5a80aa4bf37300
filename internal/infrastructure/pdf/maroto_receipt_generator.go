// Package pdf genera el recibo de venta en PDF con Maroto v2.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Negocio + dirección │ N° Recibo/Fecha │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE: nombre + teléfono + email            │
//	│  ───────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Importe     │
//	│  ───────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / TOTAL         │
//	│  PAGO: estado, método, abonado y saldo         │
//	│  FOOTER: notas + agradecimiento                │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/akax-pajomel/ventas-api/internal/domain/entity"
	domsales "github.com/akax-pajomel/ventas-api/internal/domain/sales"
	appconfig "github.com/akax-pajomel/ventas-api/pkg/config"
)

var (
	colorBrown = &props.Color{Red: 121, Green: 85, Blue: 61}
	colorGray  = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReceiptGenerator genera recibos de venta usando Maroto v2.
type MarotoReceiptGenerator struct {
	business appconfig.BusinessConfig
}

// NewMarotoReceiptGenerator construye el generador con los datos del negocio.
func NewMarotoReceiptGenerator(business appconfig.BusinessConfig) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{business: business}
}

// GenerateReceipt genera el recibo de una venta y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceipt(_ context.Context, venta *entity.Sale) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Venta", true).
		WithAuthor(g.business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrown, Thickness: 0.5}))
	m.AddRows(g.clientRow(venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrown, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	m.AddRows(g.itemRow(venta))
	m.AddRows(line.NewRow(1, props.Line{Color: colorBrown, Thickness: 0.3}))
	m.AddRows(g.totalsRow(venta))
	m.AddRows(g.paymentRow(venta))
	for _, r := range g.footerRows(venta) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReceiptGenerator) money(d decimal.Decimal) string {
	return g.business.Currency + " " + d.StringFixed(2)
}

func (g *MarotoReceiptGenerator) headerRow(venta *entity.Sale) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(g.business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorBrown, Top: 1,
			}),
			text.New(g.business.Address, props.Text{Size: 8, Top: 9, Color: colorGray}),
			text.New("Tel: "+g.business.Phone, props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("RECIBO DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorBrown, Top: 1,
			}),
			text.New(domsales.ReceiptLabel(venta.ReceiptNumber, venta.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 8,
			}),
			text.New("Fecha: "+venta.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

func (g *MarotoReceiptGenerator) clientRow(venta *entity.Sale) core.Row {
	contacto := ""
	if venta.ClientPhone != "" {
		contacto = "Tel: " + venta.ClientPhone
	}
	if venta.ClientEmail != "" {
		if contacto != "" {
			contacto += "   |   "
		}
		contacto += "Email: " + venta.ClientEmail
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorBrown, Top: 1,
			}),
			text.New(nonEmpty(venta.ClientName, "Cliente General"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contacto, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorBrown, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

func (g *MarotoReceiptGenerator) itemRow(venta *entity.Sale) core.Row {
	cantidad := venta.Quantity.String() + " " + nonEmpty(venta.Unit, entity.DefaultUnit)
	return row.New(7).Add(
		col.New(2).Add(text.New(cantidad, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(5).Add(text.New(
			nonEmpty(venta.ProductType, "Sin especificar"),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(g.money(venta.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(3).Add(text.New(g.money(venta.Subtotal), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func (g *MarotoReceiptGenerator) totalsRow(venta *entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	left := col.New(6)
	labels := []core.Component{label("Subtotal:")}
	values := []core.Component{value(g.money(venta.Subtotal))}
	if venta.DiscountAmount.IsPositive() {
		labels = append(labels, label("Descuento:"))
		values = append(values, value("- "+g.money(venta.DiscountAmount)))
	}
	labels = append(labels, text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorBrown, Right: 2,
	}))
	values = append(values, text.New(g.money(venta.Total), props.Text{
		Style: fontstyle.Bold, Size: 11, Align: align.Right, Color: colorBrown, Right: 1,
	}))

	return row.New(22).Add(left, col.New(3).Add(labels...), col.New(3).Add(values...))
}

func (g *MarotoReceiptGenerator) paymentRow(venta *entity.Sale) core.Row {
	estado := fmt.Sprintf("Estado: %s   |   Método: %s",
		venta.PaymentStatus, nonEmpty(venta.PaymentMethod, entity.MethodCash))
	detalle := ""
	if venta.PaymentStatus != entity.StatusPaid {
		detalle = fmt.Sprintf("Abonado: %s   |   Saldo pendiente: %s",
			g.money(venta.AmountPaid), g.money(venta.PendingBalance))
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("PAGO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorBrown, Top: 1}),
			text.New(estado, props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(detalle, props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

func (g *MarotoReceiptGenerator) footerRows(venta *entity.Sale) []core.Row {
	rows := []core.Row{line.NewRow(2)}
	if venta.Notes != "" {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New("Notas: "+venta.Notes, props.Text{Size: 8, Color: colorGray, Top: 1}),
		)))
	}
	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New("¡Gracias por su compra!", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center, Color: colorBrown, Top: 3,
		}),
	)))
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
