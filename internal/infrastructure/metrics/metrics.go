// Package metrics expone contadores Prometheus del servicio (HTTP, ventas, logins fallidos).
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/sales"
)

var (
	_ auth.FailureCounter = (*Metrics)(nil)
	_ sales.SaleCounter   = (*Metrics)(nil)
)

// Metrics agrupa los collectors sobre un registry propio.
type Metrics struct {
	registry      *prometheus.Registry
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	salesTotal    *prometheus.CounterVec
	loginFailures prometheus.Counter
}

// New registra los collectors del servicio y los de proceso/runtime.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_http_requests_total",
			Help: "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pos_http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		salesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_sales_total",
			Help: "Ventas confirmadas por moneda.",
		}, []string{"currency"}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_login_failures_total",
			Help: "Intentos de login rechazados.",
		}),
	}
	m.registry.MustRegister(
		m.httpRequests, m.httpDuration, m.salesTotal, m.loginFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry para tests y exposiciones adicionales.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler http.Handler de /metrics (se monta en fiber con adaptor).
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// LoginFailed implementa auth.FailureCounter.
func (m *Metrics) LoginFailed() { m.loginFailures.Inc() }

// SaleCreated implementa sales.SaleCounter.
func (m *Metrics) SaleCreated(currency string) { m.salesTotal.WithLabelValues(currency).Inc() }

// Middleware cuenta peticiones por ruta registrada (no por path crudo, para acotar cardinalidad).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		m.httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
