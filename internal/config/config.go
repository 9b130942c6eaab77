package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	AdminAPI      APIConfig
	StorefrontAPI APIConfig
	MasterDB      DatabaseConfig
	StoreDB       DatabaseConfig
	Redis         RedisConfig
	Session       SessionConfig
	Pixel         PixelConfig
	Describe      DescribeConfig
	Images        ImagesConfig
	Storage       StorageConfig
	App           AppConfig
}

type APIConfig struct {
	Port      string
	JWTSecret string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// SessionConfig controls the admin idle-session policy.
type SessionConfig struct {
	IdleTimeoutMinutes int
}

// PixelConfig holds the ad-platform server-events endpoint the pixel worker
// forwards conversion events to. An empty endpoint disables forwarding.
type PixelConfig struct {
	Endpoint    string
	AccessToken string
	Channel     string
}

// DescribeConfig points at the description-generation backend. When the URL
// is empty the service falls back to a local template.
type DescribeConfig struct {
	URL     string
	APIKey  string
	Timeout int
}

// ImagesConfig drives the image worker: the Redis channel it consumes and
// the sizes it produces.
type ImagesConfig struct {
	Channel        string
	MaxWidth       int
	ThumbnailWidth int
}

type StorageConfig struct {
	Driver      string
	UploadsPath string
	// AWS S3
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	AWSBucket          string
	// Cloudflare R2
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2AccountID       string
	R2Bucket          string
	R2PublicURL       string
}

type AppConfig struct {
	Env     string
	GinMode string
	BaseURL string
}

// Load reads configuration from the environment, with an optional .env file
// picked up from the working directory or its parents.
func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.SetDefault("ADMIN_API_PORT", "8080")
	viper.SetDefault("STOREFRONT_API_PORT", "8081")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SESSION_IDLE_TIMEOUT_MINUTES", 30)
	viper.SetDefault("PIXEL_CHANNEL", "pixel:events")
	viper.SetDefault("DESCRIBE_TIMEOUT_SECONDS", 20)
	viper.SetDefault("IMAGE_JOBS_CHANNEL", "image:jobs")
	viper.SetDefault("IMAGE_MAX_WIDTH", 1600)
	viper.SetDefault("IMAGE_THUMBNAIL_WIDTH", 400)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("UPLOADS_PATH", "./uploads")
	viper.SetDefault("AWS_REGION", "us-east-1")

	cfg := &Config{
		AdminAPI: APIConfig{
			Port:      viper.GetString("ADMIN_API_PORT"),
			JWTSecret: getString("ADMIN_JWT_SECRET", "admin-super-secret-jwt-key-change-in-production"),
		},
		StorefrontAPI: APIConfig{
			Port:      viper.GetString("STOREFRONT_API_PORT"),
			JWTSecret: getString("STOREFRONT_JWT_SECRET", "storefront-super-secret-jwt-key-change-in-production"),
		},
		MasterDB: DatabaseConfig{
			Host:     getString("MASTER_DB_HOST", "localhost"),
			Port:     getString("MASTER_DB_PORT", "5432"),
			User:     getString("MASTER_DB_USER", "postgres"),
			Password: getString("MASTER_DB_PASSWORD", "postgres"),
			DBName:   getString("MASTER_DB_NAME", "platform_master"),
			SSLMode:  getString("MASTER_DB_SSLMODE", "disable"),
		},
		StoreDB: DatabaseConfig{
			Host:     getString("STORE_DB_HOST", "localhost"),
			Port:     getString("STORE_DB_PORT", "5432"),
			User:     getString("STORE_DB_USER", "postgres"),
			Password: getString("STORE_DB_PASSWORD", "postgres"),
			DBName:   getString("STORE_DB_NAME", "platform_store"),
			SSLMode:  getString("STORE_DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			IdleTimeoutMinutes: viper.GetInt("SESSION_IDLE_TIMEOUT_MINUTES"),
		},
		Pixel: PixelConfig{
			Endpoint:    viper.GetString("PIXEL_EVENTS_ENDPOINT"),
			AccessToken: viper.GetString("PIXEL_ACCESS_TOKEN"),
			Channel:     viper.GetString("PIXEL_CHANNEL"),
		},
		Describe: DescribeConfig{
			URL:     viper.GetString("DESCRIBE_API_URL"),
			APIKey:  viper.GetString("DESCRIBE_API_KEY"),
			Timeout: viper.GetInt("DESCRIBE_TIMEOUT_SECONDS"),
		},
		Images: ImagesConfig{
			Channel:        viper.GetString("IMAGE_JOBS_CHANNEL"),
			MaxWidth:       viper.GetInt("IMAGE_MAX_WIDTH"),
			ThumbnailWidth: viper.GetInt("IMAGE_THUMBNAIL_WIDTH"),
		},
		Storage: StorageConfig{
			Driver:             viper.GetString("STORAGE_DRIVER"),
			UploadsPath:        viper.GetString("UPLOADS_PATH"),
			AWSAccessKeyID:     viper.GetString("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
			AWSRegion:          viper.GetString("AWS_REGION"),
			AWSBucket:          viper.GetString("AWS_BUCKET"),
			R2AccessKeyID:      viper.GetString("R2_ACCESS_KEY_ID"),
			R2SecretAccessKey:  viper.GetString("R2_SECRET_ACCESS_KEY"),
			R2AccountID:        viper.GetString("R2_ACCOUNT_ID"),
			R2Bucket:           viper.GetString("R2_BUCKET"),
			R2PublicURL:        viper.GetString("R2_PUBLIC_URL"),
		},
		App: AppConfig{
			Env:     viper.GetString("APP_ENV"),
			GinMode: viper.GetString("GIN_MODE"),
			BaseURL: getString("APP_BASE_URL", "http://localhost:8081"),
		},
	}

	return cfg, nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}

func getString(key, defaultValue string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return defaultValue
}
