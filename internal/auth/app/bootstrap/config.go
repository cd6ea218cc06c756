package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID string
	HTTPPort  int

	DatabaseURL string
	RedisURL    string

	JWTSecret string
	TokenTTL  time.Duration

	BcryptCost       int
	LockoutThreshold int
	LockoutWindow    time.Duration

	MaxDBConns int32
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL string `yaml:"postgres_url"`
		RedisURL    string `yaml:"redis_url"`
	} `yaml:"dependencies"`
	Auth struct {
		JWTSecret        string `yaml:"jwt_secret"`
		TokenTTLHours    int    `yaml:"token_ttl_hours"`
		BcryptCost       int    `yaml:"bcrypt_cost"`
		LockoutThreshold int    `yaml:"lockout_threshold"`
		LockoutWindowMin int    `yaml:"lockout_window_minutes"`
	} `yaml:"auth"`
}

// LoadConfig merges the optional YAML file over coded defaults, then applies
// environment overrides for deployment secrets.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:        "auth-service",
		HTTPPort:         4005,
		TokenTTL:         10 * time.Hour,
		MaxDBConns:       10,
		LockoutThreshold: 10,
		LockoutWindow:    15 * time.Minute,
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if f.Dependencies.PostgresURL != "" {
			cfg.DatabaseURL = f.Dependencies.PostgresURL
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if f.Auth.JWTSecret != "" {
			cfg.JWTSecret = f.Auth.JWTSecret
		}
		if f.Auth.TokenTTLHours > 0 {
			cfg.TokenTTL = time.Duration(f.Auth.TokenTTLHours) * time.Hour
		}
		if f.Auth.BcryptCost > 0 {
			cfg.BcryptCost = f.Auth.BcryptCost
		}
		if f.Auth.LockoutThreshold > 0 {
			cfg.LockoutThreshold = f.Auth.LockoutThreshold
		}
		if f.Auth.LockoutWindowMin > 0 {
			cfg.LockoutWindow = time.Duration(f.Auth.LockoutWindowMin) * time.Minute
		}
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, convErr := strconv.Atoi(v); convErr == nil && port > 0 {
			cfg.HTTPPort = port
		}
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret is required (config auth.jwt_secret or JWT_SECRET)")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url is required (config dependencies.postgres_url or DATABASE_URL)")
	}
	return cfg, nil
}
