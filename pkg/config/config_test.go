package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, 30*24*time.Hour, cfg.Session.TTL())
	assert.True(t, cfg.Sales.AllowOversell, "la sobreventa está permitida por defecto")
	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 30*time.Second, cfg.Redis.DashboardTTL())
	require.NoError(t, cfg.Validate())
}

func TestFromViper_LeeValoresComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("SALES_ALLOW_OVERSELL", "false")
	v.Set("STORE_DRIVER", "MEMORY")

	cfg := fromViper(v)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Sales.AllowOversell)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
}

func TestValidate_RechazaDriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "sqlite")
	assert.Error(t, fromViper(v).Validate())
}

func TestValidate_RechazaTTLNoPositivo(t *testing.T) {
	v := viper.New()
	v.Set("SESSION_TTL_HOURS", "0")
	assert.Error(t, fromViper(v).Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss:word", DBName: "pos", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss%3Aword@db:5432/pos?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("APP_NAME", "tienda-test")
	t.Setenv("SESSION_TTL_HOURS", "48")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tienda-test", cfg.App.Name)
	assert.Equal(t, 48*time.Hour, cfg.Session.TTL())
}
