package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
)

type platformStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*adminModels.Platform, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status shared.PlatformStatus) error
	ExtendSubscription(ctx context.Context, id uuid.UUID, days int, plan *string) (*adminModels.Platform, error)
}

type settingsSource interface {
	Get(ctx context.Context) (*adminModels.SystemSettings, error)
}

type auditSink interface {
	Record(ctx context.Context, adminID uuid.UUID, action, targetType string, targetID *uuid.UUID, details map[string]interface{}) error
}

type platformInvalidator interface {
	InvalidatePlatform(ctx context.Context, subdomain, platformID string) error
}

// SubscriptionService performs the platform lifecycle mutations: extending
// subscriptions, suspending and re-activating stores. Every mutation is
// audited and invalidates the platform's Redis entries so the storefront
// sees the change on the next request.
type SubscriptionService struct {
	platforms platformStore
	settings  settingsSource
	actions   auditSink
	redis     platformInvalidator
	logger    *zap.Logger
}

func NewSubscriptionService(
	platforms platformStore,
	settings settingsSource,
	actions auditSink,
	redisClient platformInvalidator,
	logger *zap.Logger,
) *SubscriptionService {
	return &SubscriptionService{
		platforms: platforms,
		settings:  settings,
		actions:   actions,
		redis:     redisClient,
		logger:    logger,
	}
}

// Extend pushes a platform's subscription end date forward. When the request
// omits the day count, the system default applies.
func (s *SubscriptionService) Extend(ctx context.Context, adminID uuid.UUID, req *adminModels.ExtendSubscriptionRequest) (*adminModels.Platform, error) {
	days := 0
	if req.Days != nil {
		days = *req.Days
	}
	if days <= 0 {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default duration: %w", err)
		}
		days = settings.DefaultSubscriptionDays
	}

	platform, err := s.platforms.ExtendSubscription(ctx, req.PlatformID, days, req.Plan)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, adminID, "extend_subscription", platform.ID, map[string]interface{}{
		"days": days,
		"plan": platform.Plan,
	})
	s.invalidate(ctx, platform)

	return platform, nil
}

// Suspend takes a platform offline. Its landing pages return 403 until it is
// re-activated.
func (s *SubscriptionService) Suspend(ctx context.Context, adminID uuid.UUID, req *adminModels.SuspendPlatformRequest) (*adminModels.Platform, error) {
	if err := s.platforms.UpdateStatus(ctx, req.PlatformID, shared.PlatformSuspended); err != nil {
		return nil, err
	}

	platform, err := s.platforms.GetByID(ctx, req.PlatformID)
	if err != nil {
		return nil, err
	}

	details := map[string]interface{}{}
	if req.Reason != "" {
		details["reason"] = req.Reason
	}
	s.audit(ctx, adminID, "suspend_platform", platform.ID, details)
	s.invalidate(ctx, platform)

	return platform, nil
}

// Activate brings a suspended platform back online.
func (s *SubscriptionService) Activate(ctx context.Context, adminID uuid.UUID, req *adminModels.ActivatePlatformRequest) (*adminModels.Platform, error) {
	if err := s.platforms.UpdateStatus(ctx, req.PlatformID, shared.PlatformActive); err != nil {
		return nil, err
	}

	platform, err := s.platforms.GetByID(ctx, req.PlatformID)
	if err != nil {
		return nil, err
	}

	s.audit(ctx, adminID, "activate_platform", platform.ID, nil)
	s.invalidate(ctx, platform)

	return platform, nil
}

func (s *SubscriptionService) audit(ctx context.Context, adminID uuid.UUID, action string, platformID uuid.UUID, details map[string]interface{}) {
	if err := s.actions.Record(ctx, adminID, action, "platform", &platformID, details); err != nil {
		s.logger.Error("failed to record admin action",
			zap.String("action", action),
			zap.String("platform_id", platformID.String()),
			zap.Error(err),
		)
	}
}

func (s *SubscriptionService) invalidate(ctx context.Context, platform *adminModels.Platform) {
	if err := s.redis.InvalidatePlatform(ctx, platform.Subdomain, platform.ID.String()); err != nil {
		s.logger.Error("failed to invalidate platform cache",
			zap.String("platform_id", platform.ID.String()),
			zap.Error(err),
		)
	}
}
