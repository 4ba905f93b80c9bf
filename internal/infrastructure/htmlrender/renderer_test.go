package htmlrender

import (
	"context"
	"testing"

	"github.com/jhoicas/pos-api/internal/application/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDoc() *receipt.Document {
	return &receipt.Document{
		ReceiptNumber: "R-000007",
		Date:          "09/03/2026 10:15",
		Currency:      "COP",
		BusinessLine:  "Tienda <Acme>",
		PaymentLabel:  receipt.Placeholder,
		CustomerName:  receipt.DefaultCustomer,
		CustomerPhone: receipt.Placeholder,
		Lines: []receipt.Line{
			{ProductName: `Pan "tajado" & <b>`, Qty: "2", UnitPrice: "50 COP", LineTotal: "100 COP"},
		},
		Subtotal: "100 COP",
		Discount: "0 COP",
		Total:    "100 COP",
	}
}

func TestRender_ContenidoYEscape(t *testing.T) {
	out, err := NewReceiptRenderer().Render(context.Background(), sampleDoc())
	require.NoError(t, err)
	html := string(out)

	assert.Contains(t, html, "<title>Factura R-000007</title>")
	assert.Contains(t, html, "Cliente: Consumidor final")
	assert.Contains(t, html, "Pago: —")
	assert.Contains(t, html, "- 0 COP")
	assert.Contains(t, html, "Gracias por su compra.")
	assert.Contains(t, html, "Tienda &lt;Acme&gt;")
	assert.NotContains(t, html, "<b>\"", "el nombre del producto se escapa")
	assert.Contains(t, html, "&amp;")
	assert.NotContains(t, html, "<img", "sin logo no hay imagen")
}

func TestRender_LogoInseguroSeNeutraliza(t *testing.T) {
	doc := sampleDoc()
	doc.LogoURL = "javascript:alert(1)"
	out, err := NewReceiptRenderer().Render(context.Background(), doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<img")
	assert.NotContains(t, string(out), "javascript:")
}

func TestRender_Determinista(t *testing.T) {
	r := NewReceiptRenderer()
	a, err := r.Render(context.Background(), sampleDoc())
	require.NoError(t, err)
	b, err := r.Render(context.Background(), sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
