package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/application/receipt"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// ReceiptHandler recibo imprimible de una venta.
type ReceiptHandler struct {
	uc  *receipt.ReceiptUseCase
	log *logger.Logger
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipt.ReceiptUseCase, log *logger.Logger) *ReceiptHandler {
	return &ReceiptHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Recibo de venta
// @Description  HTML imprimible por defecto; ?format=pdf devuelve el PDF.
// @Tags         sales
// @Produce      html
// @Produce      application/pdf
// @Param        id      path   string  true   "ID de la venta"
// @Param        format  query  string  false  "html | pdf"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receipt/{id} [get]
func (h *ReceiptHandler) Get(c *fiber.Ctx) error {
	format := receipt.Format(strings.ToLower(c.Query("format", string(receipt.FormatHTML))))
	out, err := h.uc.Render(c.Context(), GetTenantID(c), c.Params("id"), format)
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c, msgSaleNotFound)
	}
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	if format == receipt.FormatPDF {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, out.Filename))
	}
	return c.Send(out.Body)
}
