package admin

import "testing"

func TestApplyDefaults(t *testing.T) {
	s := &SystemSettings{}
	s.ApplyDefaults()

	if s.DefaultSubscriptionDays != 365 {
		t.Fatalf("expected default subscription days 365, got %d", s.DefaultSubscriptionDays)
	}
	if s.ExpiryWarningDays != 7 {
		t.Fatalf("expected default expiry warning days 7, got %d", s.ExpiryWarningDays)
	}
}

func TestApplyDefaultsKeepsSetValues(t *testing.T) {
	s := &SystemSettings{DefaultSubscriptionDays: 90, ExpiryWarningDays: 14}
	s.ApplyDefaults()

	if s.DefaultSubscriptionDays != 90 || s.ExpiryWarningDays != 14 {
		t.Fatalf("defaults overwrote configured values: %+v", s)
	}
}
