// Package realtime mantiene las conexiones websocket por tenant y les difunde eventos de venta.
package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/jhoicas/pos-api/internal/application/sales"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// EventSaleCreated tipo del evento emitido tras confirmar una venta.
const EventSaleCreated = "sale.created"

const (
	defaultSendBuffer   = 16
	defaultWriteTimeout = 5 * time.Second
)

// Event sobre que recibe el cliente.
type Event struct {
	Type     string `json:"type"`
	TenantID string `json:"tenant_id"`
	Data     any    `json:"data"`
}

// Conn lo que el hub necesita de una conexión (*websocket.Conn lo cumple).
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

var _ sales.EventPublisher = (*Hub)(nil)
var _ Conn = (*websocket.Conn)(nil)

// client cola de salida propia; solo su writer escribe en la conexión.
type client struct {
	conn Conn
	send chan []byte
}

// Hub registro de clientes agrupados por tenant. Publicar nunca bloquea:
// un cliente con la cola llena se descarta.
type Hub struct {
	mu           sync.Mutex
	clients      map[string]map[Conn]*client
	sendBuffer   int
	writeTimeout time.Duration
	log          *logger.Logger
}

// NewHub construye un hub vacío.
func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{
		clients:      make(map[string]map[Conn]*client),
		sendBuffer:   defaultSendBuffer,
		writeTimeout: defaultWriteTimeout,
		log:          log.Component("realtime"),
	}
}

// Register agrega la conexión al tenant y arranca su writer.
func (h *Hub) Register(tenantID string, c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[tenantID]
	if !ok {
		set = make(map[Conn]*client)
		h.clients[tenantID] = set
	}
	if _, dup := set[c]; dup {
		return
	}
	cl := &client{conn: c, send: make(chan []byte, h.sendBuffer)}
	set[c] = cl
	go h.writeLoop(tenantID, cl)
	h.log.Debug().Str("tenant_id", tenantID).Int("clients", len(set)).Msg("cliente ws conectado")
}

func (h *Hub) writeLoop(tenantID string, cl *client) {
	for payload := range cl.send {
		_ = cl.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
		if err := cl.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Debug().Err(err).Str("tenant_id", tenantID).Msg("cliente ws descartado")
			h.Unregister(tenantID, cl.conn)
			return
		}
	}
}

// Unregister quita y cierra la conexión. Idempotente.
func (h *Hub) Unregister(tenantID string, c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.drop(tenantID, c)
}

// drop requiere h.mu tomado.
func (h *Hub) drop(tenantID string, c Conn) {
	set, ok := h.clients[tenantID]
	if !ok {
		return
	}
	cl, ok := set[c]
	if !ok {
		return
	}
	delete(set, c)
	close(cl.send)
	// cerrar desbloquea una escritura en curso
	_ = c.Close()
	if len(set) == 0 {
		delete(h.clients, tenantID)
	}
}

// Clients cantidad de conexiones abiertas del tenant.
func (h *Hub) Clients(tenantID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[tenantID])
}

// Broadcast encola el evento para todos los clientes del tenant.
func (h *Hub) Broadcast(evt Event) {
	payload, err := json.Marshal(evt)
	if err != nil {
		h.log.Error().Err(err).Str("type", evt.Type).Msg("serializar evento")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c, cl := range h.clients[evt.TenantID] {
		select {
		case cl.send <- payload:
		default:
			h.log.Warn().Str("tenant_id", evt.TenantID).Msg("cliente ws lento descartado")
			h.drop(evt.TenantID, c)
		}
	}
}

// PublishSaleCreated implementa sales.EventPublisher.
func (h *Hub) PublishSaleCreated(tenantID string, evt sales.SaleCreatedEvent) {
	h.Broadcast(Event{Type: EventSaleCreated, TenantID: tenantID, Data: evt})
}
