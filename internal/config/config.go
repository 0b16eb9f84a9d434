package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	CommerceBaseURL string
	PublishableKey  string
	JWTSecret       string
	AppPort         string
	AppEnv          string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		CommerceBaseURL: os.Getenv("COMMERCE_BASE_URL"),
		PublishableKey:  os.Getenv("COMMERCE_PUBLISHABLE_KEY"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		AppPort:         os.Getenv("APP_PORT"),
		AppEnv:          os.Getenv("APP_ENV"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	if cfg.CommerceBaseURL == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}
