package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/cache"
	"github.com/hanootc/yasir-platform-sub002/internal/images"
	adminModels "github.com/hanootc/yasir-platform-sub002/internal/models/admin"
	adminRepo "github.com/hanootc/yasir-platform-sub002/internal/repository/admin"
	"github.com/hanootc/yasir-platform-sub002/internal/storage"
	"github.com/hanootc/yasir-platform-sub002/internal/utils"
)

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

// ProfileService manages the authenticated admin's own record: profile
// fields and the avatar image.
type ProfileService struct {
	admins       *adminRepo.AdminUserRepository
	store        storage.Driver
	redis        *cache.Client
	imageChannel string
	logger       *zap.Logger
}

func NewProfileService(admins *adminRepo.AdminUserRepository, store storage.Driver, redisClient *cache.Client, imageChannel string, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		admins:       admins,
		store:        store,
		redis:        redisClient,
		imageChannel: imageChannel,
		logger:       logger,
	}
}

// Get loads the admin's profile, without the password hash.
func (s *ProfileService) Get(ctx context.Context, adminID uuid.UUID) (*adminModels.AdminUser, error) {
	user, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Update applies the profile form fields.
func (s *ProfileService) Update(ctx context.Context, adminID uuid.UUID, req *adminModels.UpdateProfileRequest) (*adminModels.AdminUser, error) {
	if req.Email != nil {
		normalized := utils.NormalizeEmail(*req.Email)
		req.Email = &normalized
	}

	user, err := s.admins.UpdateProfile(ctx, adminID, req)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// UploadAvatar stores the new avatar, points the profile at it and queues
// the thumbnail job. The raw upload is served until the worker catches up.
func (s *ProfileService) UploadAvatar(ctx context.Context, adminID uuid.UUID, file io.Reader, filename string) (string, error) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || !allowedImageExts[strings.ToLower(filename[idx:])] {
		return "", fmt.Errorf("unsupported image type")
	}

	storagePath := storage.AvatarPath(adminID, filename)
	storedPath, publicURL, err := s.store.Upload(ctx, file, storagePath)
	if err != nil {
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.admins.UpdateAvatar(ctx, adminID, publicURL); err != nil {
		return "", err
	}

	s.queueImageJob(ctx, images.KindAvatar, storedPath)
	return publicURL, nil
}

func (s *ProfileService) queueImageJob(ctx context.Context, kind images.JobKind, path string) {
	payload, err := json.Marshal(&images.Job{Kind: kind, Path: path})
	if err != nil {
		return
	}
	if err := s.redis.Publish(ctx, s.imageChannel, payload); err != nil {
		s.logger.Warn("failed to queue image job", zap.String("path", path), zap.Error(err))
	}
}
