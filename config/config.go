package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	APP_ENV    string
	PORT       string
	DB_URL     string
	JWT_SECRET string

	REDIS_URL string

	SMTP_HOST     string
	SMTP_PORT     string
	SMTP_FROM     string
	SMTP_PASSWORD string

	ADMIN_EMAIL    string
	ADMIN_PASSWORD string

	CORS_ORIGIN string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	APP_ENV = getEnv("APP_ENV", "development")
	PORT = getEnv("PORT", "3333")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	REDIS_URL = getEnv("REDIS_URL", "redis://localhost:6379/0")

	SMTP_HOST = getEnv("SMTP_HOST", "")
	SMTP_PORT = getEnv("SMTP_PORT", "587")
	SMTP_FROM = getEnv("SMTP_FROM", "GymPoint Team <team@gympoint.com>")
	SMTP_PASSWORD = getEnv("SMTP_PASSWORD", "")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "admin@gympoint.com")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
