package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID string
	HTTPPort  int

	DatabaseURL string

	BillingGRPCURL     string
	BillingCallTimeout time.Duration

	KafkaBrokers      []string
	KafkaTopicPatient string

	MaxDBConns int32
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	Dependencies struct {
		PostgresURL              string   `yaml:"postgres_url"`
		BillingGRPCURL           string   `yaml:"billing_grpc_url"`
		BillingCallTimeoutSecond int      `yaml:"billing_call_timeout_seconds"`
		KafkaBrokers             []string `yaml:"kafka_brokers"`
		KafkaTopicPatient        string   `yaml:"kafka_topic_patient"`
	} `yaml:"dependencies"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:         "patient-service",
		HTTPPort:          4000,
		BillingGRPCURL:    "localhost:9001",
		KafkaTopicPatient: "patient",
		MaxDBConns:        20,
		// Zero means the provisioning call carries no deadline.
		BillingCallTimeout: 0,
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
		if f.Dependencies.BillingGRPCURL != "" {
			cfg.BillingGRPCURL = f.Dependencies.BillingGRPCURL
		}
		if f.Dependencies.BillingCallTimeoutSecond > 0 {
			cfg.BillingCallTimeout = time.Duration(f.Dependencies.BillingCallTimeoutSecond) * time.Second
		}
		if len(f.Dependencies.KafkaBrokers) > 0 {
			cfg.KafkaBrokers = trimNonEmpty(f.Dependencies.KafkaBrokers)
		}
		if f.Dependencies.KafkaTopicPatient != "" {
			cfg.KafkaTopicPatient = f.Dependencies.KafkaTopicPatient
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("BILLING_GRPC_URL"); v != "" {
		cfg.BillingGRPCURL = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = trimNonEmpty(strings.Split(v, ","))
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, convErr := strconv.Atoi(v); convErr == nil && port > 0 {
			cfg.HTTPPort = port
		}
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database url is required (config dependencies.postgres_url or DATABASE_URL)")
	}
	return cfg, nil
}

func trimNonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
