package admin

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
)

type fakeFeatureStore struct {
	features map[uuid.UUID]*adminModels.SubscriptionFeature
}

func (f *fakeFeatureStore) GetAll(ctx context.Context) ([]adminModels.SubscriptionFeature, error) {
	var result []adminModels.SubscriptionFeature
	for _, feature := range f.features {
		result = append(result, *feature)
	}
	return result, nil
}

func (f *fakeFeatureStore) Create(ctx context.Context, req *adminModels.CreateFeatureRequest) (*adminModels.SubscriptionFeature, error) {
	feature := &adminModels.SubscriptionFeature{
		ID:         uuid.New(),
		Plan:       req.Plan,
		FeatureKey: req.FeatureKey,
		Enabled:    req.Enabled,
		LimitValue: req.LimitValue,
		CreatedAt:  time.Now(),
	}
	f.features[feature.ID] = feature
	return feature, nil
}

func (f *fakeFeatureStore) Update(ctx context.Context, id uuid.UUID, req *adminModels.UpdateFeatureRequest) (*adminModels.SubscriptionFeature, error) {
	feature := f.features[id]
	if req.Enabled != nil {
		feature.Enabled = *req.Enabled
	}
	if req.LimitValue != nil {
		feature.LimitValue = *req.LimitValue
	}
	return feature, nil
}

func (f *fakeFeatureStore) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.features, id)
	return nil
}

func testFeatureFixture() (*FeatureService, *fakeFeatureStore, *fakeAudit) {
	store := &fakeFeatureStore{features: map[uuid.UUID]*adminModels.SubscriptionFeature{}}
	audit := &fakeAudit{}
	return NewFeatureService(store, audit, zap.NewNop()), store, audit
}

func TestCreateFeatureWritesAuditRow(t *testing.T) {
	svc, _, audit := testFeatureFixture()
	adminID := uuid.New()

	feature, err := svc.Create(context.Background(), adminID, &adminModels.CreateFeatureRequest{
		Plan:       "pro",
		FeatureKey: "max_products",
		Enabled:    true,
		LimitValue: 500,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(audit.actions) != 1 {
		t.Fatalf("expected one audit row, got %d", len(audit.actions))
	}
	row := audit.actions[0]
	if row.action != "create_feature" || row.targetType != "feature" || row.adminID != adminID {
		t.Fatalf("unexpected audit row: %+v", row)
	}
	if row.targetID == nil || *row.targetID != feature.ID {
		t.Fatalf("audit row must target the created feature")
	}
	if row.details["feature_key"] != "max_products" {
		t.Fatalf("expected the feature key in the audit details: %+v", row.details)
	}
}

func TestUpdateFeatureWritesAuditRow(t *testing.T) {
	svc, _, audit := testFeatureFixture()

	feature, err := svc.Create(context.Background(), uuid.New(), &adminModels.CreateFeatureRequest{
		Plan:       "basic",
		FeatureKey: "max_products",
		LimitValue: 50,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	enabled := true
	if _, err := svc.Update(context.Background(), uuid.New(), feature.ID, &adminModels.UpdateFeatureRequest{
		Enabled: &enabled,
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if len(audit.actions) != 2 || audit.actions[1].action != "update_feature" {
		t.Fatalf("expected an update_feature audit row: %+v", audit.actions)
	}
}

func TestDeleteFeatureWritesAuditRow(t *testing.T) {
	svc, store, audit := testFeatureFixture()

	feature, err := svc.Create(context.Background(), uuid.New(), &adminModels.CreateFeatureRequest{
		Plan:       "basic",
		FeatureKey: "max_products",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), uuid.New(), feature.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, ok := store.features[feature.ID]; ok {
		t.Fatalf("expected the feature to be removed")
	}
	if len(audit.actions) != 2 || audit.actions[1].action != "delete_feature" {
		t.Fatalf("expected a delete_feature audit row: %+v", audit.actions)
	}
}
