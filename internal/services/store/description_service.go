package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hanootc/yasir-platform-sub002/internal/config"
)

// DescriptionService proposes a product description from the product name.
// It calls the configured generation backend and falls back to a local
// template when the backend is unreachable, so the form button always
// produces something. Nothing is persisted here.
type DescriptionService struct {
	cfg    config.DescribeConfig
	client *http.Client
	logger *zap.Logger
}

func NewDescriptionService(cfg config.DescribeConfig, logger *zap.Logger) *DescriptionService {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &DescriptionService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Generate returns a proposed description for the product name.
func (s *DescriptionService) Generate(ctx context.Context, name string) (string, error) {
	if s.cfg.URL == "" {
		return fallbackDescription(name), nil
	}

	description, err := s.callBackend(ctx, name)
	if err != nil {
		s.logger.Warn("description backend unavailable, using fallback", zap.Error(err))
		return fallbackDescription(name), nil
	}
	return description, nil
}

func (s *DescriptionService) callBackend(ctx context.Context, name string) (string, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var payload struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if payload.Description == "" {
		return "", fmt.Errorf("backend returned an empty description")
	}

	return payload.Description, nil
}

func fallbackDescription(name string) string {
	return fmt.Sprintf(
		"%s منتج عالي الجودة بمواصفات ممتازة وسعر مناسب. متوفر الآن مع خدمة التوصيل لجميع المحافظات والدفع عند الاستلام. اطلبه اليوم قبل نفاد الكمية.",
		name,
	)
}
