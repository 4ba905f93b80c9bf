// Package receipt proyecta una venta en el documento de recibo y delega el formato (HTML o PDF).
package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/money"
)

// Format formato de salida del recibo.
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// Textos fijos del recibo.
const (
	Placeholder     = "—"
	DefaultCustomer = "Consumidor final"
	ThanksLine      = "Gracias por su compra."
	DateLayout      = "02/01/2006 15:04"
)

// Line línea ya formateada.
type Line struct {
	ProductName string
	Qty         string
	UnitPrice   string
	LineTotal   string
}

// Document todo lo que imprime un recibo, ya resuelto y formateado.
type Document struct {
	ReceiptNumber string
	Date          string
	Currency      string
	LogoURL       string
	BusinessLine  string
	Address       string
	Phone         string
	PaymentLabel  string
	CustomerName  string
	CustomerPhone string
	Lines         []Line
	Subtotal      string
	Discount      string
	Total         string
}

// Renderer convierte un Document en bytes.
type Renderer interface {
	Render(ctx context.Context, doc *Document) ([]byte, error)
	ContentType() string
}

// Output recibo listo para responder.
type Output struct {
	Body        []byte
	ContentType string
	Filename    string
}

// ReceiptUseCase arma recibos a partir de venta, perfil del tenant y líneas.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	tenantRepo  repository.TenantRepository
	paymentRepo repository.PaymentMethodRepository
	renderers   map[Format]Renderer
	loc         *time.Location
}

// NewReceiptUseCase construye el caso de uso. Las fechas se muestran en hora local del servidor.
func NewReceiptUseCase(saleRepo repository.SaleRepository, tenantRepo repository.TenantRepository, paymentRepo repository.PaymentMethodRepository, renderers map[Format]Renderer) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:    saleRepo,
		tenantRepo:  tenantRepo,
		paymentRepo: paymentRepo,
		renderers:   renderers,
		loc:         time.Local,
	}
}

// Build devuelve el documento del recibo. domain.ErrNotFound si la venta no es del tenant.
// El nombre de cada producto es el actual, no el del momento de la venta.
func (uc *ReceiptUseCase) Build(ctx context.Context, tenantID, saleID string) (*Document, error) {
	sale, err := uc.saleRepo.GetByID(ctx, tenantID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	tenant, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.saleRepo.GetReceiptLines(ctx, sale.ID)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		ReceiptNumber: sale.ReceiptNumber,
		Date:          sale.CreatedAt.In(uc.loc).Format(DateLayout),
		Currency:      string(sale.Currency),
		PaymentLabel:  Placeholder,
		CustomerName:  orDefault(sale.CustomerName, DefaultCustomer),
		CustomerPhone: orDefault(sale.CustomerPhone, Placeholder),
		Subtotal:      money.Format(sale.Currency, sale.Subtotal),
		Discount:      money.Format(sale.Currency, sale.Discount),
		Total:         money.Format(sale.Currency, sale.Total),
		Lines:         make([]Line, 0, len(lines)),
	}
	if tenant != nil {
		doc.BusinessLine = tenant.DisplayName()
		doc.LogoURL = orDefault(tenant.LogoURL, "")
		doc.Address = orDefault(tenant.Address, "")
		doc.Phone = orDefault(tenant.Phone, "")
	}
	if sale.PaymentMethodID != nil {
		pm, err := uc.paymentRepo.GetByID(ctx, tenantID, *sale.PaymentMethodID)
		if err != nil {
			return nil, err
		}
		if pm != nil {
			doc.PaymentLabel = pm.Label
		}
	}
	for _, l := range lines {
		doc.Lines = append(doc.Lines, Line{
			ProductName: l.ProductName,
			Qty:         money.Qty(l.Qty),
			UnitPrice:   money.Format(sale.Currency, l.UnitPrice),
			LineTotal:   money.Format(sale.Currency, l.LineTotal),
		})
	}
	return doc, nil
}

// Render arma el documento y lo entrega en el formato pedido.
func (uc *ReceiptUseCase) Render(ctx context.Context, tenantID, saleID string, format Format) (*Output, error) {
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato de recibo %q no soportado", domain.ErrInvalidInput, format)
	}
	doc, err := uc.Build(ctx, tenantID, saleID)
	if err != nil {
		return nil, err
	}
	body, err := r.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("recibo %s: %w", doc.ReceiptNumber, err)
	}
	return &Output{
		Body:        body,
		ContentType: r.ContentType(),
		Filename:    fmt.Sprintf("recibo-%s.%s", doc.ReceiptNumber, format),
	}, nil
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
