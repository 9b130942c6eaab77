package session

import (
	"testing"
	"time"
)

func TestIsExpired(t *testing.T) {
	now := time.Now().UTC()

	cases := []struct {
		idle time.Duration
		want bool
	}{
		{31 * time.Minute, true},
		{29 * time.Minute, false},
		{30 * time.Minute, false},
		{0, false},
	}

	for _, tc := range cases {
		s := &Session{LastActivity: now.Add(-tc.idle)}
		if got := s.IsExpired(now, DefaultIdleTimeout); got != tc.want {
			t.Fatalf("idle %v: IsExpired = %v, want %v", tc.idle, got, tc.want)
		}
	}
}

func TestTouchSlidesWindow(t *testing.T) {
	now := time.Now().UTC()
	s := &Session{LastActivity: now.Add(-29 * time.Minute)}

	s.Touch(now)

	later := now.Add(29 * time.Minute)
	if s.IsExpired(later, DefaultIdleTimeout) {
		t.Fatalf("session touched at %v should still be alive at %v", now, later)
	}
}
