package admin

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
)

type settingsStore interface {
	Get(ctx context.Context) (*adminModels.SystemSettings, error)
	Update(ctx context.Context, req *adminModels.UpdateSettingsRequest) (*adminModels.SystemSettings, error)
}

// SettingsService serves and saves the single system settings record. Saves
// are audited like every other admin mutation.
type SettingsService struct {
	settings settingsStore
	actions  auditSink
	logger   *zap.Logger
}

func NewSettingsService(settings settingsStore, actions auditSink, logger *zap.Logger) *SettingsService {
	return &SettingsService{settings: settings, actions: actions, logger: logger}
}

func (s *SettingsService) Get(ctx context.Context) (*adminModels.SystemSettings, error) {
	return s.settings.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, adminID uuid.UUID, req *adminModels.UpdateSettingsRequest) (*adminModels.SystemSettings, error) {
	settings, err := s.settings.Update(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.actions.Record(ctx, adminID, "update_settings", "settings", nil, nil); err != nil {
		s.logger.Error("failed to record admin action",
			zap.String("action", "update_settings"),
			zap.Error(err),
		)
	}

	return settings, nil
}
