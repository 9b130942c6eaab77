package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
	adminRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/admin"
	"github.com/hanootc/yasir-platform-sub002/internal/session"
	"github.com/hanootc/yasir-platform-sub002/internal/utils"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike; login never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles admin login and the session lifecycle.
type AuthService struct {
	admins    *adminRepo.AdminUserRepository
	sessions  *session.Store
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthService(admins *adminRepo.AdminUserRepository, sessions *session.Store, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{
		admins:    admins,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Login verifies credentials, opens a session and issues a token bound to it.
func (s *AuthService) Login(ctx context.Context, req *adminModels.LoginRequest) (*adminModels.LoginResponse, error) {
	user, err := s.admins.GetByEmail(ctx, utils.NormalizeEmail(req.Email))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	token, err := utils.GenerateAdminJWT(user.ID, sess.ID, s.jwtSecret)
	if err != nil {
		_ = s.sessions.Revoke(ctx, sess.ID)
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("admin logged in", zap.String("admin_id", user.ID.String()))

	user.PasswordHash = ""
	return &adminModels.LoginResponse{Token: token, Admin: *user}, nil
}

// Logout revokes the session behind the token.
func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// Session loads the live session for the status endpoint.
func (s *AuthService) Session(ctx context.Context, sessionID uuid.UUID) (*session.Session, error) {
	return s.sessions.Get(ctx, sessionID)
}
