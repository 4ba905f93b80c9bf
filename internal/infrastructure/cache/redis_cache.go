package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/pos-api/internal/application/analytics"
	"github.com/jhoicas/pos-api/internal/application/dto"
)

var _ analytics.DashboardCache = (*RedisDashboardCache)(nil)

const keyPrefix = "pos:dashboard:"

// Key clave del resumen de un tenant.
func Key(tenantID string) string {
	return keyPrefix + tenantID
}

// RedisDashboardCache guarda el DashboardSummaryDTO como JSON con TTL.
type RedisDashboardCache struct {
	client *redis.Client
}

// NewRedisDashboardCache abre el cliente; la conexión se valida con Ping.
func NewRedisDashboardCache(addr, password string, db int) *RedisDashboardCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisDashboardCache{client: client}
}

func (c *RedisDashboardCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisDashboardCache) Close() error {
	return c.client.Close()
}

func (c *RedisDashboardCache) Get(ctx context.Context, tenantID string) (*dto.DashboardSummaryDTO, bool, error) {
	val, err := c.client.Get(ctx, Key(tenantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var out dto.DashboardSummaryDTO
	if err := json.Unmarshal(val, &out); err != nil {
		return nil, false, fmt.Errorf("redis decode: %w", err)
	}
	return &out, true, nil
}

func (c *RedisDashboardCache) Set(ctx context.Context, tenantID string, value *dto.DashboardSummaryDTO, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key(tenantID), payload, ttl).Err()
}

// Invalidate borra la entrada; no falla si no existe.
func (c *RedisDashboardCache) Invalidate(ctx context.Context, tenantID string) error {
	return c.client.Del(ctx, Key(tenantID)).Err()
}
