package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo medios de pago por tenant.
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

const paymentMethodColumns = `id, tenant_id, label, is_active, sort_order, created_at, updated_at`

func scanPaymentMethod(row pgx.Row) (*entity.PaymentMethod, error) {
	var pm entity.PaymentMethod
	if err := row.Scan(&pm.ID, &pm.TenantID, &pm.Label, &pm.IsActive, &pm.SortOrder, &pm.CreatedAt, &pm.UpdatedAt); err != nil {
		return nil, err
	}
	return &pm, nil
}

func (r *PaymentMethodRepo) Create(ctx context.Context, pm *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (` + paymentMethodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.q.Exec(ctx, query,
		pm.ID, pm.TenantID, pm.Label, pm.IsActive, pm.SortOrder, pm.CreatedAt, pm.UpdatedAt,
	); err != nil {
		return fmt.Errorf("insert payment method: %w", err)
	}
	return nil
}

func (r *PaymentMethodRepo) GetByID(ctx context.Context, tenantID, id string) (*entity.PaymentMethod, error) {
	pm, err := scanPaymentMethod(r.q.QueryRow(ctx,
		`SELECT `+paymentMethodColumns+` FROM payment_methods WHERE tenant_id = $1 AND id = $2`, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return pm, nil
}

func (r *PaymentMethodRepo) Update(ctx context.Context, pm *entity.PaymentMethod, fields ...repository.PaymentMethodField) error {
	if len(fields) == 0 {
		fields = repository.AllPaymentMethodFields
	}
	sets := make([]assignment, 0, len(fields)+1)
	for _, f := range fields {
		var v any
		switch f {
		case repository.PaymentMethodLabel:
			v = pm.Label
		case repository.PaymentMethodIsActive:
			v = pm.IsActive
		case repository.PaymentMethodSortOrder:
			v = pm.SortOrder
		default:
			return fmt.Errorf("update payment method: campo desconocido %q", f)
		}
		sets = append(sets, assignment{column: string(f), value: v})
	}
	sets = append(sets, assignment{column: "updated_at", value: pm.UpdatedAt})

	query, args := updateStatement("payment_methods", "tenant_id = $1 AND id = $2", []any{pm.TenantID, pm.ID}, sets)
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update payment method: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PaymentMethodRepo) ListByTenant(ctx context.Context, tenantID string) ([]*entity.PaymentMethod, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+paymentMethodColumns+` FROM payment_methods WHERE tenant_id = $1 ORDER BY sort_order ASC, label ASC`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		pm, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, pm)
	}
	return list, rows.Err()
}
