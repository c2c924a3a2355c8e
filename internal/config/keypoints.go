package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ai-toolkit/internal/usecase/summarize"
)

// keyPointFile is the layout of the key point YAML file:
//
//	key_points:
//	  keywords: [important, key, critical]
//	  connectives: [therefore, however]
//	  min_length: 20
//	  length_override_threshold: 100
//	  max_key_points: 5
//	  fallback_count: 3
//
// Omitted fields keep their defaults.
type keyPointFile struct {
	KeyPoints summarize.KeyPointConfig `yaml:"key_points"`
}

// LoadKeyPointConfig reads and validates a key point configuration file.
// The path comes from the operator's environment, not from request input.
func LoadKeyPointConfig(path string) (summarize.KeyPointConfig, error) {
	// #nosec G304 -- path is provided by trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return summarize.KeyPointConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	file := keyPointFile{KeyPoints: summarize.DefaultKeyPointConfig()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return summarize.KeyPointConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := file.KeyPoints.Validate(); err != nil {
		return summarize.KeyPointConfig{}, fmt.Errorf("config validation failed: %w", err)
	}
	return file.KeyPoints, nil
}
