package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded bool

// Config returns the value of an environment variable, loading .env once.
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using environment variables")
		}
		loaded = true
	}
	return os.Getenv(key)
}

func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
