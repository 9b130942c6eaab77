// Package session is the single source of truth for admin sessions. The
// idle-timeout policy that used to live in the browser is enforced here, so
// a stale dashboard can never act on an expired session.
package session

import (
	"time"

	"github.com/google/uuid"
)

// DefaultIdleTimeout is the sliding inactivity window.
const DefaultIdleTimeout = 30 * time.Minute

// Session is one admin login. LastActivity slides forward on every
// authenticated request.
type Session struct {
	ID           uuid.UUID `json:"id"`
	AdminID      uuid.UUID `json:"admin_id"`
	Email        string    `json:"email"`
	LoginTime    time.Time `json:"login_time"`
	LastActivity time.Time `json:"last_activity"`
}

// IsExpired reports whether the session has been idle longer than timeout.
func (s *Session) IsExpired(now time.Time, timeout time.Duration) bool {
	return now.Sub(s.LastActivity) > timeout
}

// Touch refreshes the activity timestamp.
func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
}
