// Package config loads server settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	DBPath    string
	JWTSecret string
	Env       string
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Addr:      ":" + getenv("PORT", "8080"),
		DBPath:    getenv("DB_PATH", "./data/kuu.db"),
		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-me"),
		Env:       getenv("APP_ENV", "development"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
