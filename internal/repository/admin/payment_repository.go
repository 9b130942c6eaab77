package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
)

type PaymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{pool: pool}
}

// List returns subscription payments, newest first.
func (r *PaymentRepository) List(ctx context.Context, limit int) ([]adminModels.Payment, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT sp.id, sp.platform_id, p.name, sp.amount, sp.currency, sp.method,
		       sp.transaction_id, sp.status, sp.paid_at, sp.created_at
		FROM subscription_payments sp
		JOIN platforms p ON p.id = sp.platform_id
		ORDER BY sp.created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []adminModels.Payment
	for rows.Next() {
		var p adminModels.Payment
		if err := rows.Scan(
			&p.ID,
			&p.PlatformID,
			&p.PlatformName,
			&p.Amount,
			&p.Currency,
			&p.Method,
			&p.TransactionID,
			&p.Status,
			&p.PaidAt,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	if payments == nil {
		payments = []adminModels.Payment{}
	}
	return payments, nil
}
