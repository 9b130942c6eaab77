package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
)

// SettingsRepository manages the single system_settings row.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// Get loads the settings row with defaults applied. A missing row is not an
// error: a zero record with defaults is returned.
func (r *SettingsRepository) Get(ctx context.Context) (*adminModels.SystemSettings, error) {
	s := &adminModels.SystemSettings{}

	query := `
		SELECT default_subscription_days, expiry_warning_days, support_email,
		       support_phone, maintenance_mode, updated_at
		FROM system_settings
		WHERE id = 1`

	err := r.pool.QueryRow(ctx, query).Scan(
		&s.DefaultSubscriptionDays,
		&s.ExpiryWarningDays,
		&s.SupportEmail,
		&s.SupportPhone,
		&s.MaintenanceMode,
		&s.UpdatedAt,
	)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("failed to get system settings: %w", err)
	}

	s.ApplyDefaults()
	return s, nil
}

// Update upserts the settings row, touching only non-nil fields.
func (r *SettingsRepository) Update(ctx context.Context, req *adminModels.UpdateSettingsRequest) (*adminModels.SystemSettings, error) {
	query := `
		INSERT INTO system_settings (id, default_subscription_days, expiry_warning_days,
		                             support_email, support_phone, maintenance_mode, updated_at)
		VALUES (1, COALESCE($1, 0), COALESCE($2, 0), COALESCE($3, ''), COALESCE($4, ''), COALESCE($5, FALSE), NOW())
		ON CONFLICT (id) DO UPDATE SET
			default_subscription_days = COALESCE($1, system_settings.default_subscription_days),
			expiry_warning_days = COALESCE($2, system_settings.expiry_warning_days),
			support_email = COALESCE($3, system_settings.support_email),
			support_phone = COALESCE($4, system_settings.support_phone),
			maintenance_mode = COALESCE($5, system_settings.maintenance_mode),
			updated_at = NOW()
		RETURNING default_subscription_days, expiry_warning_days, support_email,
		          support_phone, maintenance_mode, updated_at`

	s := &adminModels.SystemSettings{}
	err := r.pool.QueryRow(ctx, query,
		req.DefaultSubscriptionDays,
		req.ExpiryWarningDays,
		req.SupportEmail,
		req.SupportPhone,
		req.MaintenanceMode,
	).Scan(
		&s.DefaultSubscriptionDays,
		&s.ExpiryWarningDays,
		&s.SupportEmail,
		&s.SupportPhone,
		&s.MaintenanceMode,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update system settings: %w", err)
	}

	s.ApplyDefaults()
	return s, nil
}
