package admin

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
)

type featureStore interface {
	GetAll(ctx context.Context) ([]adminModels.SubscriptionFeature, error)
	Create(ctx context.Context, req *adminModels.CreateFeatureRequest) (*adminModels.SubscriptionFeature, error)
	Update(ctx context.Context, id uuid.UUID, req *adminModels.UpdateFeatureRequest) (*adminModels.SubscriptionFeature, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeatureService manages the per-plan feature flags. Every mutation writes an
// audit row so the actions feed reflects flag changes alongside the platform
// lifecycle actions.
type FeatureService struct {
	features featureStore
	actions  auditSink
	logger   *zap.Logger
}

func NewFeatureService(features featureStore, actions auditSink, logger *zap.Logger) *FeatureService {
	return &FeatureService{features: features, actions: actions, logger: logger}
}

func (s *FeatureService) List(ctx context.Context) ([]adminModels.SubscriptionFeature, error) {
	return s.features.GetAll(ctx)
}

func (s *FeatureService) Create(ctx context.Context, adminID uuid.UUID, req *adminModels.CreateFeatureRequest) (*adminModels.SubscriptionFeature, error) {
	feature, err := s.features.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, adminID, "create_feature", feature.ID, map[string]interface{}{
		"plan":        feature.Plan,
		"feature_key": feature.FeatureKey,
	})

	return feature, nil
}

func (s *FeatureService) Update(ctx context.Context, adminID uuid.UUID, id uuid.UUID, req *adminModels.UpdateFeatureRequest) (*adminModels.SubscriptionFeature, error) {
	feature, err := s.features.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, adminID, "update_feature", feature.ID, map[string]interface{}{
		"plan":        feature.Plan,
		"feature_key": feature.FeatureKey,
	})

	return feature, nil
}

func (s *FeatureService) Delete(ctx context.Context, adminID uuid.UUID, id uuid.UUID) error {
	if err := s.features.Delete(ctx, id); err != nil {
		return err
	}

	s.audit(ctx, adminID, "delete_feature", id, nil)
	return nil
}

func (s *FeatureService) audit(ctx context.Context, adminID uuid.UUID, action string, featureID uuid.UUID, details map[string]interface{}) {
	if err := s.actions.Record(ctx, adminID, action, "feature", &featureID, details); err != nil {
		s.logger.Error("failed to record admin action",
			zap.String("action", action),
			zap.String("feature_id", featureID.String()),
			zap.Error(err),
		)
	}
}
