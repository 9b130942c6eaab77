package admin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
)

type ActionRepository struct {
	pool *pgxpool.Pool
}

func NewActionRepository(pool *pgxpool.Pool) *ActionRepository {
	return &ActionRepository{pool: pool}
}

// Record writes one audit row. Audit failures must not fail the mutation
// they describe; callers log the error and continue.
func (r *ActionRepository) Record(ctx context.Context, adminID uuid.UUID, action, targetType string, targetID *uuid.UUID, details map[string]interface{}) error {
	var detailsJSON []byte
	if details != nil {
		var err error
		detailsJSON, err = json.Marshal(details)
		if err != nil {
			return fmt.Errorf("failed to encode action details: %w", err)
		}
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO admin_actions (admin_id, action, target_type, target_id, details)
		VALUES ($1, $2, $3, $4, $5)`,
		adminID, action, targetType, targetID, detailsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to record admin action: %w", err)
	}
	return nil
}

// List returns the most recent audit entries joined with the acting admin.
func (r *ActionRepository) List(ctx context.Context, limit int) ([]adminModels.AdminAction, error) {
	if limit < 1 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT a.id, a.admin_id, u.email, a.action, a.target_type, a.target_id,
		       a.details, a.created_at
		FROM admin_actions a
		JOIN admin_users u ON u.id = a.admin_id
		ORDER BY a.created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin actions: %w", err)
	}
	defer rows.Close()

	var actions []adminModels.AdminAction
	for rows.Next() {
		var a adminModels.AdminAction
		var detailsJSON []byte
		if err := rows.Scan(
			&a.ID,
			&a.AdminID,
			&a.AdminEmail,
			&a.Action,
			&a.TargetType,
			&a.TargetID,
			&detailsJSON,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan admin action: %w", err)
		}
		if len(detailsJSON) > 0 {
			if err := json.Unmarshal(detailsJSON, &a.Details); err != nil {
				return nil, fmt.Errorf("failed to decode action details: %w", err)
			}
		}
		actions = append(actions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admin actions: %w", err)
	}

	if actions == nil {
		actions = []adminModels.AdminAction{}
	}
	return actions, nil
}
