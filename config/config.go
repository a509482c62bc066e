package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string
	APP_URL    string

	GITHUB_CLIENT_ID         string
	GITHUB_CLIENT_SECRET     string
	GITHUB_REDIRECT_URL      string
	GITHUB_FRONTEND_REDIRECT string

	GOOGLE_CLIENT_ID     string
	GOOGLE_CLIENT_SECRET string
	GOOGLE_REDIRECT_URL  string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	APP_URL = getEnv("APP_URL", "https://graphql.guide")

	GITHUB_CLIENT_ID = mustEnv("GITHUB_CLIENT_ID")
	GITHUB_CLIENT_SECRET = mustEnv("GITHUB_CLIENT_SECRET")
	GITHUB_REDIRECT_URL = mustEnv("GITHUB_REDIRECT_URL")
	GITHUB_FRONTEND_REDIRECT = getEnv("GITHUB_FRONTEND_REDIRECT", "")

	// Google sign-in is optional; leave unset to disable the routes.
	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
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
