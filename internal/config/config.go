// Package config loads the service configuration from the environment.
// A .env file in the working directory is read first when present; every value
// has a default suitable for the docker-compose setup.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	LogLevel         string
	ServerRunAddress string
	DatabaseURI      string
	JWTSecret        string
	TokenTTL         time.Duration
	RequestTimeout   time.Duration
	BadgeBronze      int
	BadgeSilver      int
	BadgeGold        int
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	LogLevel = getEnv("LOG_LEVEL", "info")
	ServerRunAddress = getEnv("SERVER_RUN_ADDRESS", "0.0.0.0:8080")
	DatabaseURI = getEnv("DATABASE_URI", "host=db user=postgres password=password dbname=pustakdhaan sslmode=disable")
	JWTSecret = getEnv("JWT_SECRET", "pustakdhaan-dev-secret")
	TokenTTL = getEnvAsDuration("TOKEN_TTL", 3*time.Hour)
	RequestTimeout = getEnvAsDuration("REQUEST_TIMEOUT", 10*time.Second)

	// Badge thresholds: none below bronze, then bronze, silver, gold.
	BadgeBronze = getEnvAsInt("BADGE_BRONZE", 5)
	BadgeSilver = getEnvAsInt("BADGE_SILVER", 15)
	BadgeGold = getEnvAsInt("BADGE_GOLD", 30)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
