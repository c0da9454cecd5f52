package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Optional; empty disables the field-list cache.
	RedisAddr string

	JWTSecret string

	// Where submitted files (photos, documents, extra files) land on disk.
	UploadDir string
	// Per-file upload cap in megabytes.
	MaxUploadMB int64
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "nazimweb"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		RedisAddr: get("REDIS_ADDR", ""),

		JWTSecret: get("JWT_SECRET", "dev-secret"),

		UploadDir:   get("UPLOAD_DIR", "uploads"),
		MaxUploadMB: 10,
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
