package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations(t *testing.T) {
	ms, err := LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, ms)
	assert.Equal(t, "0001_init", ms[0].Version)

	for _, table := range []string{"tenants", "users", "sessions", "products", "payment_methods", "sales", "sale_items", "counters"} {
		assert.True(t, strings.Contains(ms[0].SQL, "CREATE TABLE IF NOT EXISTS "+table+" "), table)
	}
	assert.Contains(t, ms[0].SQL, "UNIQUE (tenant_id, receipt_number)")
}
