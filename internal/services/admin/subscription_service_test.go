package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
)

type fakePlatformStore struct {
	platform     *adminModels.Platform
	extendedDays int
	status       shared.PlatformStatus
}

func (f *fakePlatformStore) GetByID(ctx context.Context, id uuid.UUID) (*adminModels.Platform, error) {
	return f.platform, nil
}

func (f *fakePlatformStore) UpdateStatus(ctx context.Context, id uuid.UUID, status shared.PlatformStatus) error {
	f.status = status
	f.platform.Status = status
	return nil
}

func (f *fakePlatformStore) ExtendSubscription(ctx context.Context, id uuid.UUID, days int, plan *string) (*adminModels.Platform, error) {
	f.extendedDays = days
	if plan != nil {
		f.platform.Plan = *plan
	}
	return f.platform, nil
}

type fakeSettingsSource struct {
	settings adminModels.SystemSettings
}

func (f *fakeSettingsSource) Get(ctx context.Context) (*adminModels.SystemSettings, error) {
	s := f.settings
	s.ApplyDefaults()
	return &s, nil
}

type recordedAction struct {
	adminID    uuid.UUID
	action     string
	targetType string
	targetID   *uuid.UUID
	details    map[string]interface{}
}

type fakeAudit struct {
	actions []recordedAction
}

func (f *fakeAudit) Record(ctx context.Context, adminID uuid.UUID, action, targetType string, targetID *uuid.UUID, details map[string]interface{}) error {
	f.actions = append(f.actions, recordedAction{adminID, action, targetType, targetID, details})
	return nil
}

type fakeInvalidator struct {
	subdomains []string
}

func (f *fakeInvalidator) InvalidatePlatform(ctx context.Context, subdomain, platformID string) error {
	f.subdomains = append(f.subdomains, subdomain)
	return nil
}

func testSubscriptionFixture() (*SubscriptionService, *fakePlatformStore, *fakeAudit, *fakeInvalidator) {
	platforms := &fakePlatformStore{
		platform: &adminModels.Platform{
			ID:        uuid.New(),
			Name:      "متجر الياس",
			Subdomain: "alyas",
			Plan:      "basic",
			Status:    shared.PlatformActive,
		},
	}
	audit := &fakeAudit{}
	invalidator := &fakeInvalidator{}

	svc := NewSubscriptionService(platforms, &fakeSettingsSource{}, audit, invalidator, zap.NewNop())
	return svc, platforms, audit, invalidator
}

func TestExtendFallsBackToDefaultDays(t *testing.T) {
	svc, platforms, audit, _ := testSubscriptionFixture()
	adminID := uuid.New()

	_, err := svc.Extend(context.Background(), adminID, &adminModels.ExtendSubscriptionRequest{
		PlatformID: platforms.platform.ID,
	})
	if err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	if platforms.extendedDays != 365 {
		t.Fatalf("expected the 365-day default when days is omitted, got %d", platforms.extendedDays)
	}
	if len(audit.actions) != 1 || audit.actions[0].details["days"] != 365 {
		t.Fatalf("expected the audit row to carry the resolved day count: %+v", audit.actions)
	}
}

func TestExtendUsesRequestedDays(t *testing.T) {
	svc, platforms, audit, invalidator := testSubscriptionFixture()

	days := 30
	_, err := svc.Extend(context.Background(), uuid.New(), &adminModels.ExtendSubscriptionRequest{
		PlatformID: platforms.platform.ID,
		Days:       &days,
	})
	if err != nil {
		t.Fatalf("Extend failed: %v", err)
	}

	if platforms.extendedDays != 30 {
		t.Fatalf("expected 30 days, got %d", platforms.extendedDays)
	}
	if len(audit.actions) != 1 || audit.actions[0].action != "extend_subscription" {
		t.Fatalf("expected one extend_subscription audit row: %+v", audit.actions)
	}
	if len(invalidator.subdomains) != 1 || invalidator.subdomains[0] != "alyas" {
		t.Fatalf("expected the platform cache to be invalidated, got %v", invalidator.subdomains)
	}
}

func TestSuspendAuditsAndInvalidates(t *testing.T) {
	svc, platforms, audit, invalidator := testSubscriptionFixture()
	adminID := uuid.New()

	platform, err := svc.Suspend(context.Background(), adminID, &adminModels.SuspendPlatformRequest{
		PlatformID: platforms.platform.ID,
		Reason:     "مخالفة الشروط",
	})
	if err != nil {
		t.Fatalf("Suspend failed: %v", err)
	}

	if platform.Status != shared.PlatformSuspended {
		t.Fatalf("expected suspended status, got %s", platform.Status)
	}
	if len(audit.actions) != 1 {
		t.Fatalf("expected one audit row, got %d", len(audit.actions))
	}
	row := audit.actions[0]
	if row.action != "suspend_platform" || row.adminID != adminID {
		t.Fatalf("unexpected audit row: %+v", row)
	}
	if row.details["reason"] != "مخالفة الشروط" {
		t.Fatalf("expected the suspension reason in the audit details: %+v", row.details)
	}
	if len(invalidator.subdomains) != 1 {
		t.Fatalf("expected the platform cache to be invalidated")
	}
}

func TestActivateAuditsAndInvalidates(t *testing.T) {
	svc, platforms, audit, invalidator := testSubscriptionFixture()
	platforms.platform.Status = shared.PlatformSuspended

	platform, err := svc.Activate(context.Background(), uuid.New(), &adminModels.ActivatePlatformRequest{
		PlatformID: platforms.platform.ID,
	})
	if err != nil {
		t.Fatalf("Activate failed: %v", err)
	}

	if platform.Status != shared.PlatformActive {
		t.Fatalf("expected active status, got %s", platform.Status)
	}
	if len(audit.actions) != 1 || audit.actions[0].action != "activate_platform" {
		t.Fatalf("expected one activate_platform audit row: %+v", audit.actions)
	}
	if len(invalidator.subdomains) != 1 {
		t.Fatalf("expected the platform cache to be invalidated")
	}
}
