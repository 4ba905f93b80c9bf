// Package htmlrender genera la versión imprimible (HTML) del recibo.
package htmlrender

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/jhoicas/pos-api/internal/application/receipt"
)

//go:embed templates/receipt.html
var templatesFS embed.FS

var receiptTmpl = template.Must(template.ParseFS(templatesFS, "templates/receipt.html"))

var _ receipt.Renderer = (*ReceiptRenderer)(nil)

// ReceiptRenderer implementa receipt.Renderer con html/template (escapa todo el contenido del usuario).
type ReceiptRenderer struct{}

// NewReceiptRenderer construye el renderer.
func NewReceiptRenderer() *ReceiptRenderer { return &ReceiptRenderer{} }

type view struct {
	*receipt.Document
	Thanks string
}

// Render ejecuta la plantilla.
func (ReceiptRenderer) Render(_ context.Context, doc *receipt.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, view{Document: doc, Thanks: receipt.ThanksLine}); err != nil {
		return nil, fmt.Errorf("html: ejecutar plantilla: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentType del documento generado.
func (ReceiptRenderer) ContentType() string { return "text/html; charset=utf-8" }
