package bootstrap

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceID string
	HTTPPort  int
	GRPCPort  int
}

type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
		GRPCPort int    `yaml:"grpc_port"`
	} `yaml:"service"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID: "billing-service",
		HTTPPort:  4001,
		GRPCPort:  9001,
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
		if f.Service.GRPCPort > 0 {
			cfg.GRPCPort = f.Service.GRPCPort
		}
	}

	if v := os.Getenv("GRPC_PORT"); v != "" {
		if port, convErr := strconv.Atoi(v); convErr == nil && port > 0 {
			cfg.GRPCPort = port
		}
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		if port, convErr := strconv.Atoi(v); convErr == nil && port > 0 {
			cfg.HTTPPort = port
		}
	}
	return cfg, nil
}
