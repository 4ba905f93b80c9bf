package memory

import (
	"context"

	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.CounterRepository = (*CounterRepo)(nil)

// CounterRepo contadores en memoria.
type CounterRepo struct {
	v view
}

func (r *CounterRepo) Increment(_ context.Context, tenantID, key string) (int64, bool, error) {
	var (
		value int64
		found bool
	)
	err := r.v.with(func(st *state) error {
		k := counterKey{tenantID: tenantID, key: key}
		cur, ok := st.counters[k]
		if !ok {
			return nil
		}
		value, found = cur+1, true
		st.counters[k] = value
		return nil
	})
	return value, found, err
}

func (r *CounterRepo) EnsureExists(_ context.Context, tenantID, key string) error {
	return r.v.with(func(st *state) error {
		k := counterKey{tenantID: tenantID, key: key}
		if _, ok := st.counters[k]; !ok {
			st.counters[k] = 0
		}
		return nil
	})
}
