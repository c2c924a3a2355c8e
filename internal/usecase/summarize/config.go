package summarize

import (
	"errors"
	"fmt"
	"strings"
)

// KeyPointConfig tunes the key point detector.
// It can be loaded from YAML (see internal/config) so the word lists and
// thresholds change without a rebuild.
type KeyPointConfig struct {
	// Keywords are salience words matched as case-insensitive substrings.
	Keywords []string `yaml:"keywords"`

	// Connectives are discourse connectives matched as case-sensitive substrings.
	Connectives []string `yaml:"connectives"`

	// MinLength is the trimmed length (in characters) a sentence must exceed
	// to be considered at all.
	MinLength int `yaml:"min_length"`

	// LengthOverrideThreshold marks any candidate longer than this as salient
	// regardless of its words.
	LengthOverrideThreshold int `yaml:"length_override_threshold"`

	// MaxKeyPoints caps the number of key points returned.
	MaxKeyPoints int `yaml:"max_key_points"`

	// FallbackCount is how many leading candidates are returned when nothing
	// matches the salience rules.
	FallbackCount int `yaml:"fallback_count"`
}

// DefaultKeyPointConfig returns the stock word lists and thresholds.
func DefaultKeyPointConfig() KeyPointConfig {
	return KeyPointConfig{
		Keywords: []string{
			"important", "significant", "key", "main", "primary",
			"essential", "crucial", "major", "fundamental", "critical",
		},
		Connectives:             []string{"therefore", "however", "moreover"},
		MinLength:               20,
		LengthOverrideThreshold: 100,
		MaxKeyPoints:            5,
		FallbackCount:           3,
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c KeyPointConfig) Validate() error {
	var errs []error

	if c.MinLength < 0 {
		errs = append(errs, fmt.Errorf("min_length must be non-negative, got %d", c.MinLength))
	}
	if c.LengthOverrideThreshold <= c.MinLength {
		errs = append(errs, fmt.Errorf("length_override_threshold (%d) must be greater than min_length (%d)",
			c.LengthOverrideThreshold, c.MinLength))
	}
	if c.MaxKeyPoints <= 0 {
		errs = append(errs, fmt.Errorf("max_key_points must be positive, got %d", c.MaxKeyPoints))
	}
	if c.FallbackCount < 0 {
		errs = append(errs, fmt.Errorf("fallback_count must be non-negative, got %d", c.FallbackCount))
	}
	if c.FallbackCount > c.MaxKeyPoints {
		errs = append(errs, fmt.Errorf("fallback_count (%d) cannot be greater than max_key_points (%d)",
			c.FallbackCount, c.MaxKeyPoints))
	}
	for _, kw := range c.Keywords {
		if strings.TrimSpace(kw) == "" {
			errs = append(errs, errors.New("keywords cannot contain empty entries"))
			break
		}
	}
	for _, conn := range c.Connectives {
		if strings.TrimSpace(conn) == "" {
			errs = append(errs, errors.New("connectives cannot contain empty entries"))
			break
		}
	}

	return errors.Join(errs...)
}
