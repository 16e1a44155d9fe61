package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	S3 struct {
		Region          string `yaml:"region"`
		Endpoint        string `yaml:"endpoint"`
		AccessKeyID     string `yaml:"access_key_id"`
		SecretAccessKey string `yaml:"secret_access_key"`
	} `yaml:"s3"`
	MLService struct {
		URL                    string `yaml:"url"`
		ClassifyTimeoutSeconds int64  `yaml:"classify_timeout_seconds"`
		MaxConcurrency         int    `yaml:"max_concurrency"`
	} `yaml:"ml_service"`
}

// LoadConfig reads configuration from the specified YAML file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	// Classification calls must stay bounded even when the config omits them.
	if config.MLService.ClassifyTimeoutSeconds <= 0 {
		config.MLService.ClassifyTimeoutSeconds = 5
	}
	if config.MLService.MaxConcurrency <= 0 {
		config.MLService.MaxConcurrency = 4
	}

	return config, nil
}
