package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo contadores por (tenant, key). Dentro de una tx, el UPDATE bloquea la fila
// hasta el commit: dos ventas del mismo tenant nunca obtienen el mismo valor.
type CounterRepo struct {
	q Querier
}

// NewCounterRepository construye el adaptador.
func NewCounterRepository(q Querier) *CounterRepo {
	return &CounterRepo{q: q}
}

func (r *CounterRepo) Increment(ctx context.Context, tenantID, key string) (int64, bool, error) {
	var value int64
	err := r.q.QueryRow(ctx,
		`UPDATE counters SET value = value + 1 WHERE tenant_id = $1 AND key = $2 RETURNING value`,
		tenantID, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("increment counter: %w", err)
	}
	return value, true, nil
}

func (r *CounterRepo) EnsureExists(ctx context.Context, tenantID, key string) error {
	if _, err := r.q.Exec(ctx,
		`INSERT INTO counters (tenant_id, key, value) VALUES ($1, $2, 0) ON CONFLICT (tenant_id, key) DO NOTHING`,
		tenantID, key,
	); err != nil {
		return fmt.Errorf("ensure counter: %w", err)
	}
	return nil
}
