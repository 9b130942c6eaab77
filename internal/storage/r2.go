package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Driver stores media in a Cloudflare R2 bucket (S3-compatible API).
// Public access goes through the configured CDN URL, not the API endpoint.
type R2Driver struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewR2Driver(cfg *Config) (*R2Driver, error) {
	if cfg.R2Bucket == "" {
		return nil, fmt.Errorf("R2 bucket name is required")
	}
	if cfg.R2AccessKeyID == "" || cfg.R2SecretAccessKey == "" {
		return nil, fmt.Errorf("R2 credentials are required")
	}
	if cfg.R2AccountID == "" {
		return nil, fmt.Errorf("R2 account ID is required")
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2AccessKeyID,
			cfg.R2SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		// R2 requires path-style URLs
		o.UsePathStyle = true
	})

	return &R2Driver{
		client:    client,
		bucket:    cfg.R2Bucket,
		publicURL: strings.TrimSuffix(cfg.R2PublicURL, "/"),
	}, nil
}

func (d *R2Driver) Upload(ctx context.Context, file io.Reader, storagePath string) (string, string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file: %w", err)
	}

	storagePath = strings.TrimPrefix(storagePath, "/")

	_, err = d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(storagePath),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType(storagePath)),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to R2: %w", err)
	}

	return storagePath, d.GetPublicURL(storagePath), nil
}

func (d *R2Driver) Delete(ctx context.Context, storagePath string) error {
	storagePath = strings.TrimPrefix(storagePath, "/")

	_, err := d.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(storagePath),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from R2: %w", err)
	}
	return nil
}

func (d *R2Driver) GetPublicURL(storagePath string) string {
	storagePath = strings.TrimPrefix(storagePath, "/")
	if d.publicURL != "" {
		return fmt.Sprintf("%s/%s", d.publicURL, storagePath)
	}
	return fmt.Sprintf("/%s/%s", d.bucket, storagePath)
}

func (d *R2Driver) GetReader(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	storagePath = strings.TrimPrefix(storagePath, "/")

	result, err := d.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(storagePath),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from R2: %w", err)
	}
	return result.Body, nil
}
