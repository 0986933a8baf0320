package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	LogLevel          string
	MaxUploadSize     int64
}

// Load reads configuration from the environment, with an optional .env
// file for local development.
func Load() *Config {
	_ = godotenv.Load()

	maxUpload, err := strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE_MB", "32"), 10, 64)
	if err != nil || maxUpload <= 0 {
		maxUpload = 32
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		MaxUploadSize:     maxUpload << 20,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
