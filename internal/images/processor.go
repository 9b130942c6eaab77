package images

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/storage"
)

// Processor downloads an original upload, derives the bounded variants and
// stores them next to it. Derived files are always JPEG.
type Processor struct {
	store          storage.Driver
	maxWidth       int
	thumbnailWidth int
	logger         *zap.Logger
}

func NewProcessor(store storage.Driver, maxWidth, thumbnailWidth int, logger *zap.Logger) *Processor {
	if maxWidth <= 0 {
		maxWidth = 1600
	}
	if thumbnailWidth <= 0 {
		thumbnailWidth = 400
	}
	return &Processor{
		store:          store,
		maxWidth:       maxWidth,
		thumbnailWidth: thumbnailWidth,
		logger:         logger,
	}
}

// Process handles one job. Failures leave the original untouched; the page
// keeps serving the unprocessed upload.
func (p *Processor) Process(ctx context.Context, job *Job) error {
	reader, err := p.store.GetReader(ctx, job.Path)
	if err != nil {
		return fmt.Errorf("failed to open original %s: %w", job.Path, err)
	}
	defer reader.Close()

	var img image.Image
	img, err = imaging.Decode(reader, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", job.Path, err)
	}

	switch job.Kind {
	case KindAvatar:
		avatar := imaging.Fill(img, p.thumbnailWidth, p.thumbnailWidth, imaging.Center, imaging.Lanczos)
		if err := p.save(ctx, avatar, derivedPath(job.Path, "thumb")); err != nil {
			return err
		}
	default:
		if img.Bounds().Dx() > p.maxWidth {
			img = imaging.Resize(img, p.maxWidth, 0, imaging.Lanczos)
		}
		if err := p.save(ctx, img, derivedPath(job.Path, "web")); err != nil {
			return err
		}

		thumb := imaging.Resize(img, p.thumbnailWidth, 0, imaging.Lanczos)
		if err := p.save(ctx, thumb, derivedPath(job.Path, "thumb")); err != nil {
			return err
		}
	}

	p.logger.Info("processed image", zap.String("path", job.Path), zap.String("kind", string(job.Kind)))
	return nil
}

func (p *Processor) save(ctx context.Context, img image.Image, storagePath string) error {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return fmt.Errorf("failed to encode %s: %w", storagePath, err)
	}
	if _, _, err := p.store.Upload(ctx, &buf, storagePath); err != nil {
		return fmt.Errorf("failed to store %s: %w", storagePath, err)
	}
	return nil
}

// derivedPath turns products/x/123_ab.png into products/x/123_ab_web.jpg.
func derivedPath(original, suffix string) string {
	ext := path.Ext(original)
	base := strings.TrimSuffix(original, ext)
	return fmt.Sprintf("%s_%s.jpg", base, suffix)
}
