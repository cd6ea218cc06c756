package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ramordeeple/patient-management/internal/gateway/proxy"
)

type Config struct {
	ServiceID string
	HTTPPort  int

	AuthServiceURL  string
	ValidateTimeout time.Duration

	Routes []proxy.Route
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		AuthServiceURL         string `yaml:"auth_service_url"`
		ValidateTimeoutSeconds int    `yaml:"validate_timeout_seconds"`
	} `yaml:"dependencies"`
	Routes []struct {
		Prefix      string `yaml:"prefix"`
		Target      string `yaml:"target"`
		StripPrefix bool   `yaml:"strip_prefix"`
		Protected   bool   `yaml:"protected"`
	} `yaml:"routes"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:       "api-gateway",
		HTTPPort:        4004,
		AuthServiceURL:  "http://localhost:4005",
		ValidateTimeout: 5 * time.Second,
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
		if f.Dependencies.AuthServiceURL != "" {
			cfg.AuthServiceURL = f.Dependencies.AuthServiceURL
		}
		if f.Dependencies.ValidateTimeoutSeconds > 0 {
			cfg.ValidateTimeout = time.Duration(f.Dependencies.ValidateTimeoutSeconds) * time.Second
		}
		for _, route := range f.Routes {
			cfg.Routes = append(cfg.Routes, proxy.Route{
				Prefix:      route.Prefix,
				Target:      route.Target,
				StripPrefix: route.StripPrefix,
				Protected:   route.Protected,
			})
		}
	}

	if v := os.Getenv("AUTH_SERVICE_URL"); v != "" {
		cfg.AuthServiceURL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, convErr := strconv.Atoi(v); convErr == nil && port > 0 {
			cfg.HTTPPort = port
		}
	}

	// Default topology: /auth passes through for login, /api/patients is
	// bearer-protected and lands on the patient service as /patients.
	if len(cfg.Routes) == 0 {
		cfg.Routes = []proxy.Route{
			{Prefix: "/auth", Target: cfg.AuthServiceURL, StripPrefix: true},
			{Prefix: "/api", Target: "http://localhost:4000", StripPrefix: true, Protected: true},
		}
	}
	return cfg, nil
}
