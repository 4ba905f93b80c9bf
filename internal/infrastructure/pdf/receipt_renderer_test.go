package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/jhoicas/pos-api/internal/application/receipt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiptRenderer_GeneraPDF(t *testing.T) {
	doc := &receipt.Document{
		ReceiptNumber: "R-000001",
		Date:          "09/03/2026 10:15",
		Currency:      "COP",
		BusinessLine:  "Acme",
		PaymentLabel:  "Efectivo",
		CustomerName:  receipt.DefaultCustomer,
		CustomerPhone: receipt.Placeholder,
		Lines: []receipt.Line{
			{ProductName: "Pan", Qty: "2", UnitPrice: "50 COP", LineTotal: "100 COP"},
			{ProductName: "Leche", Qty: "1", UnitPrice: "30 COP", LineTotal: "30 COP"},
		},
		Subtotal: "130 COP",
		Discount: "10 COP",
		Total:    "120 COP",
	}

	r := NewReceiptRenderer()
	out, err := r.Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
	assert.Equal(t, "application/pdf", r.ContentType())
}

func TestReceiptRenderer_SinLineas(t *testing.T) {
	out, err := NewReceiptRenderer().Render(context.Background(), &receipt.Document{ReceiptNumber: "R-000002"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
