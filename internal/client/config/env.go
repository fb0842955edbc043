package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading an optional
// .env file first (path overridable via ENV_FILE). Missing variables leave
// the current values untouched.
func parseEnv(cfg *Config) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load(envFile)

	cfg.MetadataDSN = getEnv("DOCSHARE_METADATA_DSN", cfg.MetadataDSN)
	cfg.S3Endpoint = getEnv("DOCSHARE_S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3Region = getEnv("DOCSHARE_S3_REGION", cfg.S3Region)
	cfg.S3Bucket = getEnv("DOCSHARE_S3_BUCKET", cfg.S3Bucket)
	cfg.S3AccessKey = getEnv("DOCSHARE_S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv("DOCSHARE_S3_SECRET_KEY", cfg.S3SecretKey)
	cfg.PublicBaseURL = getEnv("DOCSHARE_PUBLIC_BASE_URL", cfg.PublicBaseURL)
	cfg.LocalDBFile = getEnv("DOCSHARE_LOCAL_DB", cfg.LocalDBFile)
}

// getEnv returns the env value by key, or the fallback when unset.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
