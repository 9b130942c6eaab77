package admin

import "github.com/google/uuid"

// LoginRequest authenticates an administrator.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse carries the session token back to the dashboard.
type LoginResponse struct {
	Token string    `json:"token"`
	Admin AdminUser `json:"admin"`
}

// ExtendSubscriptionRequest extends a platform subscription. When Days is
// omitted the system default applies.
type ExtendSubscriptionRequest struct {
	PlatformID uuid.UUID `json:"platform_id" binding:"required"`
	Days       *int      `json:"days,omitempty" binding:"omitempty,min=1"`
	Plan       *string   `json:"plan,omitempty"`
}

// SuspendPlatformRequest suspends a platform.
type SuspendPlatformRequest struct {
	PlatformID uuid.UUID `json:"platform_id" binding:"required"`
	Reason     string    `json:"reason,omitempty"`
}

// ActivatePlatformRequest re-activates a suspended platform.
type ActivatePlatformRequest struct {
	PlatformID uuid.UUID `json:"platform_id" binding:"required"`
}

// CreateFeatureRequest adds a feature flag to a plan.
type CreateFeatureRequest struct {
	Plan        string  `json:"plan" binding:"required"`
	FeatureKey  string  `json:"feature_key" binding:"required"`
	Enabled     bool    `json:"enabled"`
	LimitValue  int     `json:"limit_value" binding:"min=-1"`
	Description *string `json:"description,omitempty"`
}

// UpdateFeatureRequest updates a feature flag. Nil fields are untouched.
type UpdateFeatureRequest struct {
	Enabled     *bool   `json:"enabled,omitempty"`
	LimitValue  *int    `json:"limit_value,omitempty" binding:"omitempty,min=-1"`
	Description *string `json:"description,omitempty"`
}

// UpdateSettingsRequest saves the system settings form.
type UpdateSettingsRequest struct {
	DefaultSubscriptionDays *int    `json:"default_subscription_days,omitempty" binding:"omitempty,min=1"`
	ExpiryWarningDays       *int    `json:"expiry_warning_days,omitempty" binding:"omitempty,min=1"`
	SupportEmail            *string `json:"support_email,omitempty" binding:"omitempty,email"`
	SupportPhone            *string `json:"support_phone,omitempty"`
	MaintenanceMode         *bool   `json:"maintenance_mode,omitempty"`
}

// UpdateProfileRequest updates the authenticated admin's profile.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty" binding:"omitempty,min=2,max=120"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
}
