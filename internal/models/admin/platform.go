package admin

import (
	"time"

	"github.com/google/uuid"

	"github.com/hanootc/yasir-platform-sub002/internal/models/shared"
)

// Platform is a tenant store in the master DB (control plane).
type Platform struct {
	ID                 uuid.UUID                 `json:"id"`
	Name               string                    `json:"name"`
	OwnerName          string                    `json:"owner_name"`
	Phone              string                    `json:"phone,omitempty"`
	Subdomain          string                    `json:"subdomain"`
	LogoURL            *string                   `json:"logo_url,omitempty"`
	Status             shared.PlatformStatus     `json:"status"`
	Plan               string                    `json:"plan"`
	SubscriptionStatus shared.SubscriptionStatus `json:"subscription_status"`
	SubscriptionEndsAt *time.Time                `json:"subscription_ends_at,omitempty"`
	TotalOrders        int                       `json:"total_orders"`
	TotalRevenue       float64                   `json:"total_revenue"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

// DaysRemaining reports how many full days of subscription are left, zero
// when already past the end date or when no end date is set.
func (p *Platform) DaysRemaining(now time.Time) int {
	if p.SubscriptionEndsAt == nil {
		return 0
	}
	d := int(p.SubscriptionEndsAt.Sub(now).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// Subscription is the read-only billing view rendered on the dashboard.
type Subscription struct {
	PlatformID    uuid.UUID                 `json:"platform_id"`
	PlatformName  string                    `json:"platform_name"`
	Subdomain     string                    `json:"subdomain"`
	Plan          string                    `json:"plan"`
	Status        shared.SubscriptionStatus `json:"status"`
	StartedAt     time.Time                 `json:"started_at"`
	EndsAt        *time.Time                `json:"ends_at,omitempty"`
	DaysRemaining int                       `json:"days_remaining"`
	TransactionID *string                   `json:"transaction_id,omitempty"`
}

// Payment is a subscription payment record.
type Payment struct {
	ID            uuid.UUID            `json:"id"`
	PlatformID    uuid.UUID            `json:"platform_id"`
	PlatformName  string               `json:"platform_name"`
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	Method        string               `json:"method"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	Status        shared.PaymentStatus `json:"status"`
	PaidAt        *time.Time           `json:"paid_at,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
}

// SubscriptionFeature is a per-plan feature flag. LimitValue -1 means
// unlimited, 0 means disabled.
type SubscriptionFeature struct {
	ID          uuid.UUID `json:"id"`
	Plan        string    `json:"plan"`
	FeatureKey  string    `json:"feature_key"`
	Enabled     bool      `json:"enabled"`
	LimitValue  int       `json:"limit_value"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdminAction is one audit-log row written for every admin mutation.
type AdminAction struct {
	ID         uuid.UUID              `json:"id"`
	AdminID    uuid.UUID              `json:"admin_id"`
	AdminEmail string                 `json:"admin_email,omitempty"`
	Action     string                 `json:"action"`
	TargetType string                 `json:"target_type"`
	TargetID   *uuid.UUID             `json:"target_id,omitempty"`
	Details    map[string]interface{} `json:"details,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// DashboardStats aggregates the numbers shown on the dashboard overview tab.
type DashboardStats struct {
	TotalPlatforms     int     `json:"total_platforms"`
	ActivePlatforms    int     `json:"active_platforms"`
	SuspendedPlatforms int     `json:"suspended_platforms"`
	ExpiringSoon       int     `json:"expiring_soon"`
	TotalOrders        int     `json:"total_orders"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalPayments      float64 `json:"total_payments"`
	PaymentsThisMonth  float64 `json:"payments_this_month"`
}
