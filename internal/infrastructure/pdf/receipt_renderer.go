// Package pdf implementa la versión PDF del recibo de venta con Maroto v2.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: Negocio + dirección │ Factura + Fecha│
//	│  ─────────────────────────────────────────── │
//	│  CLIENTE: nombre / teléfono  │ Moneda / Pago │
//	│  ─────────────────────────────────────────── │
//	│  TABLA: Producto | Cant | Precio | Total     │
//	│  ─────────────────────────────────────────── │
//	│  TOTALES: Subtotal / Descuento / Total       │
//	│  Gracias por su compra.                      │
//	└──────────────────────────────────────────────┘
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

	"github.com/jhoicas/pos-api/internal/application/receipt"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 17, Green: 17, Blue: 17}
	colorGray    = &props.Color{Red: 85, Green: 85, Blue: 85}
	colorLine    = &props.Color{Red: 229, Green: 231, Blue: 235}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

var _ receipt.Renderer = (*ReceiptRenderer)(nil)

// ReceiptRenderer implementa receipt.Renderer usando Maroto v2.
type ReceiptRenderer struct{}

// NewReceiptRenderer construye el renderer.
func NewReceiptRenderer() *ReceiptRenderer { return &ReceiptRenderer{} }

// ContentType del documento generado.
func (ReceiptRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (ReceiptRenderer) Render(_ context.Context, doc *receipt.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura "+doc.ReceiptNumber, true).
		WithAuthor(doc.BusinessLine, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorLine, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(doc.Lines)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorLine, Thickness: 0.3}))
	m.AddRows(totalsRow(doc))
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New(receipt.ThanksLine, props.Text{Size: 8, Color: colorGray, Top: 4}),
	)))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: negocio (izq) y número + fecha (der).
func headerRow(doc *receipt.Document) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(doc.BusinessLine, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New(doc.Address, props.Text{Size: 8, Top: 8, Color: colorGray}),
			text.New(doc.Phone, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Factura", props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 1,
			}),
			text.New(doc.ReceiptNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 5,
			}),
			text.New(doc.Date, props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

// customerRow: cliente y condiciones de pago.
func customerRow(doc *receipt.Document) core.Row {
	muted := func(s string, top float64, a align.Type) core.Component {
		return text.New(s, props.Text{Size: 8, Top: top, Align: a, Color: colorGray})
	}
	return row.New(12).Add(
		col.New(7).Add(
			muted("Cliente: "+doc.CustomerName, 2, align.Left),
			muted("Teléfono: "+doc.CustomerPhone, 6, align.Left),
		),
		col.New(5).Add(
			muted("Moneda: "+doc.Currency, 2, align.Right),
			muted("Pago: "+doc.PaymentLabel, 6, align.Right),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorGray, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 6, align.Left),
		h("Cant", 2, align.Right),
		h("Precio", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableRows: una fila por línea del recibo.
func tableRows(lines []receipt.Line) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.Qty, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.UnitPrice, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(l.LineTotal, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(doc *receipt.Document) core.Row {
	label := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 2, Top: top, Color: colorGray})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Right: 1, Top: 12,
		})
	}

	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal", 1),
			label("Descuento", 6),
			grand("Total"),
		),
		col.New(3).Add(
			value(doc.Subtotal, 1),
			value("- "+doc.Discount, 6),
			grand(doc.Total),
		),
	)
}
