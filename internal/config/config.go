package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DSN       string
	JWTSecret string
	APIKey    string
	AppPort   string
	UploadDir string
	TokenTTL  time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system environment variables")
	}

	cfg := Config{
		DSN:       os.Getenv("MYSQL_DSN"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		APIKey:    os.Getenv("API_KEY"),
		AppPort:   os.Getenv("APP_PORT"),
		UploadDir: os.Getenv("UPLOAD_DIR"),
		TokenTTL:  15 * time.Minute,
	}

	if cfg.DSN == "" {
		log.Fatal("MYSQL_DSN not set in environment")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-only"
	}
	if cfg.APIKey == "" {
		log.Fatal("API_KEY not set in environment")
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.TokenTTL = time.Duration(minutes) * time.Minute
		}
	}

	return cfg
}
