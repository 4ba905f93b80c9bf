package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-api/internal/infrastructure/realtime"
)

// WSHandler canal de eventos en vivo del tenant (ventas nuevas).
type WSHandler struct {
	hub *realtime.Hub
}

// NewWSHandler construye el handler.
func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// Upgrade rechaza peticiones que no piden websocket.
func (h *WSHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Stream godoc
// @Summary      Eventos en vivo (websocket)
// @Description  Emite {type:"sale.created", tenant_id, data} por cada venta confirmada del tenant.
// @Tags         realtime
// @Router       /api/ws [get]
func (h *WSHandler) Stream() fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		tenantID, _ := c.Locals(LocalTenantID).(string)
		h.hub.Register(tenantID, c)
		defer h.hub.Unregister(tenantID, c)

		for {
			// el cliente no envía nada útil; leer detecta el cierre
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	})
}
