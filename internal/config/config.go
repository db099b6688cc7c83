package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App    AppConfig
	Redis  RedisConfig
	JWT    JWTConfig
	MinIO  MinIOConfig
	Export ExportConfig
	Job    JobConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	SessionTokenExpiry int // hours, matches the editing-session TTL
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string // minioadmin
	SecretKey string // minioadmin
	Bucket    string // reviewcard
	UseSSL    bool   // false for local
}

// ExportConfig tunes the capture/export pipeline.
type ExportConfig struct {
	SessionTTLHours int // card record lifetime in redis
	JobTTLHours     int // export job status lifetime in redis
	MaxUploadBytes  int64
}

// JobConfig tunes scheduled maintenance jobs.
type JobConfig struct {
	CleanupRetentionDays int // exported artifacts older than this get reaped
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ReviewCard API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			SessionTokenExpiry: getEnvInt("JWT_SESSION_EXPIRY", 24),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "reviewcard"),
			UseSSL:    false,
		},
		Export: ExportConfig{
			SessionTTLHours: getEnvInt("EXPORT_SESSION_TTL_HOURS", 24),
			JobTTLHours:     getEnvInt("EXPORT_JOB_TTL_HOURS", 24),
			MaxUploadBytes:  int64(getEnvInt("EXPORT_MAX_UPLOAD_MB", 5)) * 1024 * 1024,
		},
		Job: JobConfig{
			CleanupRetentionDays: getEnvInt("JOB_CLEANUP_RETENTION_DAYS", 2),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.App.Environment == "production" && c.JWT.Secret == "your-secret-key-change-in-production" {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.Export.SessionTTLHours < 1 {
		return fmt.Errorf("EXPORT_SESSION_TTL_HOURS must be at least 1")
	}
	return nil
}

// getEnv lấy environment variable với fallback default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
