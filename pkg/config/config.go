package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSSLMode         string
	DeviceJWTSecret   string
	DeviceTokenExpiry time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	tokenExpiry := 720 * time.Hour // 30 days
	if exp := os.Getenv("DEVICE_TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			tokenExpiry = parsed
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "safenest"),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		DeviceJWTSecret:   getEnv("DEVICE_JWT_SECRET", ""),
		DeviceTokenExpiry: tokenExpiry,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
