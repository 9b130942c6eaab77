package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
)

type PlatformRepository struct {
	pool *pgxpool.Pool
}

func NewPlatformRepository(pool *pgxpool.Pool) *PlatformRepository {
	return &PlatformRepository{pool: pool}
}

const platformColumns = `
	id, name, owner_name, phone, subdomain, logo_url, status, plan,
	subscription_status, subscription_ends_at, total_orders, total_revenue,
	created_at, updated_at`

// List retrieves all platforms, newest first.
func (r *PlatformRepository) List(ctx context.Context) ([]adminModels.Platform, error) {
	query := `SELECT ` + platformColumns + ` FROM platforms ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []adminModels.Platform
	for rows.Next() {
		var p adminModels.Platform
		if err := scanPlatform(rows, &p); err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating platforms: %w", err)
	}

	if platforms == nil {
		platforms = []adminModels.Platform{}
	}
	return platforms, nil
}

// GetByID retrieves a platform by id.
func (r *PlatformRepository) GetByID(ctx context.Context, id uuid.UUID) (*adminModels.Platform, error) {
	query := `SELECT ` + platformColumns + ` FROM platforms WHERE id = $1`

	p := &adminModels.Platform{}
	if err := scanPlatform(r.pool.QueryRow(ctx, query, id), p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetBySubdomain retrieves a platform by its public subdomain.
func (r *PlatformRepository) GetBySubdomain(ctx context.Context, subdomain string) (*adminModels.Platform, error) {
	query := `SELECT ` + platformColumns + ` FROM platforms WHERE subdomain = $1`

	p := &adminModels.Platform{}
	if err := scanPlatform(r.pool.QueryRow(ctx, query, subdomain), p); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateStatus sets the platform lifecycle status.
func (r *PlatformRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status shared.PlatformStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE platforms SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update platform status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("platform %s not found", id)
	}
	return nil
}

// ExtendSubscription pushes the subscription end date forward by days,
// starting from the current end date when it is still in the future,
// otherwise from now. Optionally changes the plan.
func (r *PlatformRepository) ExtendSubscription(ctx context.Context, id uuid.UUID, days int, plan *string) (*adminModels.Platform, error) {
	query := `
		UPDATE platforms
		SET subscription_ends_at = GREATEST(COALESCE(subscription_ends_at, NOW()), NOW()) + make_interval(days => $2),
		    subscription_status = 'active',
		    plan = COALESCE($3, plan),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + platformColumns

	p := &adminModels.Platform{}
	if err := scanPlatform(r.pool.QueryRow(ctx, query, id, days, plan), p); err != nil {
		return nil, err
	}
	return p, nil
}

// IncrementOrderStats bumps the platform's order/revenue counters after a
// landing-page order is placed.
func (r *PlatformRepository) IncrementOrderStats(ctx context.Context, id uuid.UUID, revenue float64) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE platforms
		SET total_orders = total_orders + 1,
		    total_revenue = total_revenue + $2,
		    updated_at = NOW()
		WHERE id = $1`,
		id, revenue,
	)
	if err != nil {
		return fmt.Errorf("failed to increment order stats: %w", err)
	}
	return nil
}

// ListSubscriptions builds the read-only billing view joined with the most
// recent completed payment.
func (r *PlatformRepository) ListSubscriptions(ctx context.Context) ([]adminModels.Subscription, error) {
	query := `
		SELECT p.id, p.name, p.subdomain, p.plan, p.subscription_status,
		       p.created_at, p.subscription_ends_at,
		       (SELECT sp.transaction_id FROM subscription_payments sp
		        WHERE sp.platform_id = p.id AND sp.status = 'completed'
		        ORDER BY sp.created_at DESC LIMIT 1)
		FROM platforms p
		ORDER BY p.subscription_ends_at ASC NULLS LAST`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	now := time.Now()
	var subs []adminModels.Subscription
	for rows.Next() {
		var s adminModels.Subscription
		if err := rows.Scan(
			&s.PlatformID,
			&s.PlatformName,
			&s.Subdomain,
			&s.Plan,
			&s.Status,
			&s.StartedAt,
			&s.EndsAt,
			&s.TransactionID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		if s.EndsAt != nil {
			if d := int(s.EndsAt.Sub(now).Hours() / 24); d > 0 {
				s.DaysRemaining = d
			}
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	if subs == nil {
		subs = []adminModels.Subscription{}
	}
	return subs, nil
}

// GetStats aggregates the dashboard overview numbers.
func (r *PlatformRepository) GetStats(ctx context.Context, expiryWarningDays int) (*adminModels.DashboardStats, error) {
	stats := &adminModels.DashboardStats{}

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'suspended'),
			COUNT(*) FILTER (WHERE status = 'active'
				AND subscription_ends_at IS NOT NULL
				AND subscription_ends_at < NOW() + make_interval(days => $1)),
			COALESCE(SUM(total_orders), 0),
			COALESCE(SUM(total_revenue), 0)
		FROM platforms`

	err := r.pool.QueryRow(ctx, query, expiryWarningDays).Scan(
		&stats.TotalPlatforms,
		&stats.ActivePlatforms,
		&stats.SuspendedPlatforms,
		&stats.ExpiringSoon,
		&stats.TotalOrders,
		&stats.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform stats: %w", err)
	}

	paymentsQuery := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE status = 'completed'), 0),
			COALESCE(SUM(amount) FILTER (WHERE status = 'completed'
				AND created_at >= date_trunc('month', NOW())), 0)
		FROM subscription_payments`

	err = r.pool.QueryRow(ctx, paymentsQuery).Scan(
		&stats.TotalPayments,
		&stats.PaymentsThisMonth,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment stats: %w", err)
	}

	return stats, nil
}

func scanPlatform(row row, p *adminModels.Platform) error {
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.OwnerName,
		&p.Phone,
		&p.Subdomain,
		&p.LogoURL,
		&p.Status,
		&p.Plan,
		&p.SubscriptionStatus,
		&p.SubscriptionEndsAt,
		&p.TotalOrders,
		&p.TotalRevenue,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to scan platform: %w", err)
	}
	return nil
}
