package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
)

type FeatureRepository struct {
	pool *pgxpool.Pool
}

func NewFeatureRepository(pool *pgxpool.Pool) *FeatureRepository {
	return &FeatureRepository{pool: pool}
}

const featureColumns = `id, plan, feature_key, enabled, limit_value, description, created_at, updated_at`

// GetAll lists every plan feature flag.
func (r *FeatureRepository) GetAll(ctx context.Context) ([]adminModels.SubscriptionFeature, error) {
	query := `SELECT ` + featureColumns + ` FROM subscription_features ORDER BY plan, feature_key`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	defer rows.Close()

	var features []adminModels.SubscriptionFeature
	for rows.Next() {
		var f adminModels.SubscriptionFeature
		if err := scanFeature(rows, &f); err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating features: %w", err)
	}

	if features == nil {
		features = []adminModels.SubscriptionFeature{}
	}
	return features, nil
}

// GetByID retrieves one feature flag.
func (r *FeatureRepository) GetByID(ctx context.Context, id uuid.UUID) (*adminModels.SubscriptionFeature, error) {
	query := `SELECT ` + featureColumns + ` FROM subscription_features WHERE id = $1`

	f := &adminModels.SubscriptionFeature{}
	if err := scanFeature(r.pool.QueryRow(ctx, query, id), f); err != nil {
		return nil, err
	}
	return f, nil
}

// Create adds a feature flag to a plan. (plan, feature_key) is unique.
func (r *FeatureRepository) Create(ctx context.Context, req *adminModels.CreateFeatureRequest) (*adminModels.SubscriptionFeature, error) {
	query := `
		INSERT INTO subscription_features (plan, feature_key, enabled, limit_value, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + featureColumns

	f := &adminModels.SubscriptionFeature{}
	err := scanFeature(
		r.pool.QueryRow(ctx, query, req.Plan, req.FeatureKey, req.Enabled, req.LimitValue, req.Description),
		f,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create feature: %w", err)
	}
	return f, nil
}

// Update applies non-nil fields to a feature flag.
func (r *FeatureRepository) Update(ctx context.Context, id uuid.UUID, req *adminModels.UpdateFeatureRequest) (*adminModels.SubscriptionFeature, error) {
	query := `
		UPDATE subscription_features
		SET enabled = COALESCE($2, enabled),
		    limit_value = COALESCE($3, limit_value),
		    description = COALESCE($4, description),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + featureColumns

	f := &adminModels.SubscriptionFeature{}
	err := scanFeature(r.pool.QueryRow(ctx, query, id, req.Enabled, req.LimitValue, req.Description), f)
	if err != nil {
		return nil, fmt.Errorf("failed to update feature: %w", err)
	}
	return f, nil
}

// Delete removes a feature flag.
func (r *FeatureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM subscription_features WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feature: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("feature %s not found", id)
	}
	return nil
}

func scanFeature(row row, f *adminModels.SubscriptionFeature) error {
	err := row.Scan(
		&f.ID,
		&f.Plan,
		&f.FeatureKey,
		&f.Enabled,
		&f.LimitValue,
		&f.Description,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to scan feature: %w", err)
	}
	return nil
}
