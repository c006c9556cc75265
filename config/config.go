package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	ModelPath         string
	ModelMetadataPath string
	JWTSecret         string
	StorageDir        string
	LogLevel          string
	MaxImageSizeMB    int
}

func Load() (*Config, error) {
	// Load the .env file (ignore the error if it does not exist).
	_ = godotenv.Load()

	cfg := &Config{
		Port:              envOr("PORT", "8080"),
		ModelPath:         envOr("MODEL_PATH", "models/densenet121_chex.onnx"),
		ModelMetadataPath: envOr("MODEL_METADATA_PATH", "models/densenet121_chex.json"),
		JWTSecret:         envOr("JWT_SECRET", "change-me-in-production"),
		StorageDir:        envOr("STORAGE_DIR", "data"),
		LogLevel:          envOr("LOG_LEVEL", "info"),
		MaxImageSizeMB:    envIntOr("MAX_IMAGE_SIZE_MB", 10),
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
