package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
)

type fakeSettingsStore struct {
	settings adminModels.SystemSettings
}

func (f *fakeSettingsStore) Get(ctx context.Context) (*adminModels.SystemSettings, error) {
	s := f.settings
	s.ApplyDefaults()
	return &s, nil
}

func (f *fakeSettingsStore) Update(ctx context.Context, req *adminModels.UpdateSettingsRequest) (*adminModels.SystemSettings, error) {
	if req.DefaultSubscriptionDays != nil {
		f.settings.DefaultSubscriptionDays = *req.DefaultSubscriptionDays
	}
	if req.ExpiryWarningDays != nil {
		f.settings.ExpiryWarningDays = *req.ExpiryWarningDays
	}
	s := f.settings
	s.ApplyDefaults()
	return &s, nil
}

func TestUpdateSettingsWritesAuditRow(t *testing.T) {
	audit := &fakeAudit{}
	svc := NewSettingsService(&fakeSettingsStore{}, audit, zap.NewNop())
	adminID := uuid.New()

	days := 180
	settings, err := svc.Update(context.Background(), adminID, &adminModels.UpdateSettingsRequest{
		DefaultSubscriptionDays: &days,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if settings.DefaultSubscriptionDays != 180 {
		t.Fatalf("expected 180 days, got %d", settings.DefaultSubscriptionDays)
	}
	if len(audit.actions) != 1 {
		t.Fatalf("expected one audit row, got %d", len(audit.actions))
	}
	row := audit.actions[0]
	if row.action != "update_settings" || row.adminID != adminID {
		t.Fatalf("unexpected audit row: %+v", row)
	}
}

func TestGetSettingsAppliesDefaults(t *testing.T) {
	svc := NewSettingsService(&fakeSettingsStore{}, &fakeAudit{}, zap.NewNop())

	settings, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if settings.DefaultSubscriptionDays != 365 {
		t.Fatalf("expected the 365-day default, got %d", settings.DefaultSubscriptionDays)
	}
}
