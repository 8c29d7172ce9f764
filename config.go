package srs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config configures a Scheduler. It is immutable once the Scheduler is built.
// Start from DefaultConfig and override fields; zero values are taken
// literally (a zero NewPerDay means no new cards today).
type Config struct {
	NewPerDay      int             `yaml:"new_per_day" json:"new_per_day"`
	ReviewsPerDay  int             `yaml:"reviews_per_day" json:"reviews_per_day"`
	LearningSteps  []time.Duration `yaml:"learning_steps" json:"learning_steps"`
	InitialEase    float64         `yaml:"initial_ease" json:"initial_ease"`
	MinimumEase    float64         `yaml:"minimum_ease" json:"minimum_ease"`
	LeechThreshold int             `yaml:"leech_threshold" json:"leech_threshold"`

	// LeechSuspendDays is carried for compatibility with stored settings.
	// Leeches are only flagged, never suspended.
	LeechSuspendDays int `yaml:"leech_suspend_days" json:"leech_suspend_days"`

	// TargetRetrievability is informational and not read by the algorithm.
	TargetRetrievability map[string]float64 `yaml:"target_retrievability" json:"target_retrievability"`
}

// DefaultConfig returns the stock configuration: 20 new and 200 review
// cards a day, learning steps of 1 and 10 minutes, ease starting at 2.5
// with a 1.3 floor, and leeches flagged at 8 lapses.
func DefaultConfig() Config {
	return Config{
		NewPerDay:        20,
		ReviewsPerDay:    200,
		LearningSteps:    []time.Duration{time.Minute, 10 * time.Minute},
		InitialEase:      DefaultInitialEase,
		MinimumEase:      1.3,
		LeechThreshold:   8,
		LeechSuspendDays: 7,
		TargetRetrievability: map[string]float64{
			"learning": 0.85,
			"review":   0.9,
		},
	}
}

// Validate checks the configuration. Errors wrap ErrInvalidConfig.
func (c Config) Validate() error {
	if c.NewPerDay < 0 {
		return fmt.Errorf("%w: new_per_day %d is negative", ErrInvalidConfig, c.NewPerDay)
	}
	if c.ReviewsPerDay < 0 {
		return fmt.Errorf("%w: reviews_per_day %d is negative", ErrInvalidConfig, c.ReviewsPerDay)
	}
	if len(c.LearningSteps) == 0 {
		return fmt.Errorf("%w: at least one learning step is required", ErrInvalidConfig)
	}
	for i, d := range c.LearningSteps {
		if d <= 0 {
			return fmt.Errorf("%w: learning_steps[%d] = %s must be positive", ErrInvalidConfig, i, d)
		}
	}
	if c.MinimumEase <= 0 {
		return fmt.Errorf("%w: minimum_ease %g must be positive", ErrInvalidConfig, c.MinimumEase)
	}
	if c.InitialEase < c.MinimumEase {
		return fmt.Errorf("%w: initial_ease %g below minimum_ease %g", ErrInvalidConfig, c.InitialEase, c.MinimumEase)
	}
	if c.LeechThreshold < 1 {
		return fmt.Errorf("%w: leech_threshold %d must be at least 1", ErrInvalidConfig, c.LeechThreshold)
	}
	if c.LeechSuspendDays < 0 {
		return fmt.Errorf("%w: leech_suspend_days %d is negative", ErrInvalidConfig, c.LeechSuspendDays)
	}
	return nil
}

// clone returns a copy that shares no slices or maps with c.
func (c Config) clone() Config {
	out := c
	out.LearningSteps = append([]time.Duration(nil), c.LearningSteps...)
	if c.TargetRetrievability != nil {
		out.TargetRetrievability = make(map[string]float64, len(c.TargetRetrievability))
		for k, v := range c.TargetRetrievability {
			out.TargetRetrievability[k] = v
		}
	}
	return out
}

// LoadConfig decodes a YAML document over DefaultConfig and validates the
// result. Keys missing from the document keep their defaults; unknown keys
// are rejected. Learning steps are Go duration strings such as "10m".
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: parsing YAML: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
