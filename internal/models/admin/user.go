package admin

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a platform administrator account.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Phone        *string   `json:"phone,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SystemSettings is the single-row global configuration record. Zero values
// mean "unset"; ApplyDefaults fills them before the record is served.
type SystemSettings struct {
	DefaultSubscriptionDays int       `json:"default_subscription_days"`
	ExpiryWarningDays       int       `json:"expiry_warning_days"`
	SupportEmail            string    `json:"support_email,omitempty"`
	SupportPhone            string    `json:"support_phone,omitempty"`
	MaintenanceMode         bool      `json:"maintenance_mode"`
	UpdatedAt               time.Time `json:"updated_at"`
}

// ApplyDefaults fills unset settings with their platform defaults.
func (s *SystemSettings) ApplyDefaults() {
	if s.DefaultSubscriptionDays <= 0 {
		s.DefaultSubscriptionDays = 365
	}
	if s.ExpiryWarningDays <= 0 {
		s.ExpiryWarningDays = 7
	}
}
