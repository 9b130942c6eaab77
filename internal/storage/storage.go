// Package storage abstracts where uploaded media lives: local disk in
// development, S3 or Cloudflare R2 in production. Product images and admin
// avatars go through the same driver.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Driver is a storage backend for uploaded media.
type Driver interface {
	// Upload stores the file and returns its storage path and public URL.
	Upload(ctx context.Context, file io.Reader, storagePath string) (storedPath string, publicURL string, err error)

	// Delete removes a file.
	Delete(ctx context.Context, storagePath string) error

	// GetPublicURL returns the public URL for a stored file.
	GetPublicURL(storagePath string) string

	// GetReader opens a stored file for processing (image worker).
	GetReader(ctx context.Context, storagePath string) (io.ReadCloser, error)
}

// Config selects and configures a driver.
type Config struct {
	Driver string // local, s3, r2

	UploadsPath string

	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	AWSBucket          string

	R2AccessKeyID     string
	R2SecretAccessKey string
	R2AccountID       string
	R2Bucket          string
	R2PublicURL       string
}

// New creates a storage driver based on configuration.
func New(cfg *Config) (Driver, error) {
	switch cfg.Driver {
	case "local", "":
		uploadsPath := cfg.UploadsPath
		if uploadsPath == "" {
			uploadsPath = "./uploads"
		}
		return NewLocalDriver(uploadsPath), nil
	case "s3":
		return NewS3Driver(cfg)
	case "r2":
		return NewR2Driver(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

// ProductImagePath builds the canonical path for a product image upload.
func ProductImagePath(platformID *uuid.UUID, filename string) string {
	scope := "global"
	if platformID != nil {
		scope = platformID.String()
	}
	return path.Join("products", scope, timestamped(filename))
}

// AvatarPath builds the canonical path for an admin avatar upload.
func AvatarPath(adminID uuid.UUID, filename string) string {
	return path.Join("avatars", adminID.String(), timestamped(filename))
}

func timestamped(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

// contentType maps a file extension to its MIME type.
func contentType(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".ico":
		return "image/x-icon"
	default:
		return "application/octet-stream"
	}
}
