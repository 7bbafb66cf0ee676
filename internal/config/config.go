// Package config loads application settings from the environment.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs at startup.
type Config struct {
	Port      string
	DataDir   string
	JWTSecret string
}

// Load reads an optional .env file and resolves the configuration.
// Every value has a development default so the server runs out of the box.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      getenv("APP_PORT", "8080"),
		DataDir:   getenv("DATA_DIR", "data"),
		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-me"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
