package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the process-wide configuration, read once at startup.
type Config struct {
	AppPort         string
	DatabaseURL     string
	JWTSecret       string
	RabbitMQURL     string
	DefaultImageURL string
}

// Load reads configuration from environment variables via Viper.
// DATABASE_URL and JWT_SECRET are mandatory: without a store or a signing
// secret the service cannot operate, so their absence is a startup error,
// never a per-request one. RABBITMQ_URL is optional; analytics publishing
// is disabled when it is empty.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("MOVIE_IMAGE_DEFAULT", "https://wallpapercave.com/wp/wp5338281.jpg")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:         viper.GetString("APP_PORT"),
		DatabaseURL:     viper.GetString("DATABASE_URL"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		RabbitMQURL:     viper.GetString("RABBITMQ_URL"),
		DefaultImageURL: viper.GetString("MOVIE_IMAGE_DEFAULT"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
