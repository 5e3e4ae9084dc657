package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Catalog  CatalogConfig
	Payment  PaymentConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CatalogConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	SearchCacheTTL time.Duration
}

type PaymentConfig struct {
	ClientID    string
	APIKey      string
	ChecksumKey string
	Provider    string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// A missing .env is fine in deployed environments; env vars still apply.
	_ = viper.ReadInConfig()

	viper.SetDefault("PORT", 8080)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("PLACES_REQUEST_TIMEOUT", "10s")
	viper.SetDefault("PLACES_SEARCH_CACHE_TTL", "15m")
	viper.SetDefault("PAYMENT_PROVIDER", "payos")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Database: DatabaseConfig{
			URL: viper.GetString("POSTGRES_URL"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Catalog: CatalogConfig{
			BaseURL:        viper.GetString("PLACES_BASE_URL"),
			APIKey:         viper.GetString("PLACES_API_KEY"),
			RequestTimeout: viper.GetDuration("PLACES_REQUEST_TIMEOUT"),
			SearchCacheTTL: viper.GetDuration("PLACES_SEARCH_CACHE_TTL"),
		},
		Payment: PaymentConfig{
			ClientID:    viper.GetString("PAYOS_CLIENT_ID"),
			APIKey:      viper.GetString("PAYOS_API_KEY"),
			ChecksumKey: viper.GetString("PAYOS_CHECKSUM_KEY"),
			Provider:    viper.GetString("PAYMENT_PROVIDER"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("POSTGRES_URL is required")
	}

	return cfg, nil
}
