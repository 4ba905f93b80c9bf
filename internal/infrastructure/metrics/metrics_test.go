package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.LoginFailed()
	m.LoginFailed()
	m.SaleCreated("COP")
	m.SaleCreated("USD")
	m.SaleCreated("COP")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.loginFailures))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.salesTotal.WithLabelValues("COP")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.salesTotal.WithLabelValues("USD")))
}

func TestMiddleware_CuentaPorRuta(t *testing.T) {
	m := New()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/products/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/products/"+id, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/products/:id", "204")))
}
