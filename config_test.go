package srs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.NewPerDay)
	assert.Equal(t, 200, cfg.ReviewsPerDay)
	assert.Equal(t, []time.Duration{time.Minute, 10 * time.Minute}, cfg.LearningSteps)
	assert.Equal(t, 2.5, cfg.InitialEase)
	assert.Equal(t, 1.3, cfg.MinimumEase)
	assert.Equal(t, 8, cfg.LeechThreshold)
	assert.Equal(t, 7, cfg.LeechSuspendDays)
	assert.Equal(t, 0.9, cfg.TargetRetrievability["review"])
}

func TestDefaultConfigIndependent(t *testing.T) {
	a := DefaultConfig()
	a.LearningSteps[0] = time.Hour
	a.TargetRetrievability["review"] = 0.5

	b := DefaultConfig()
	assert.Equal(t, time.Minute, b.LearningSteps[0])
	assert.Equal(t, 0.9, b.TargetRetrievability["review"])
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"zero quotas", func(c *Config) { c.NewPerDay, c.ReviewsPerDay = 0, 0 }, true},
		{"single step", func(c *Config) { c.LearningSteps = []time.Duration{time.Hour} }, true},
		{"initial equals minimum", func(c *Config) { c.InitialEase = c.MinimumEase }, true},
		{"negative new quota", func(c *Config) { c.NewPerDay = -1 }, false},
		{"negative review quota", func(c *Config) { c.ReviewsPerDay = -1 }, false},
		{"no steps", func(c *Config) { c.LearningSteps = nil }, false},
		{"zero step", func(c *Config) { c.LearningSteps = []time.Duration{time.Minute, 0} }, false},
		{"negative step", func(c *Config) { c.LearningSteps = []time.Duration{-time.Minute} }, false},
		{"zero minimum ease", func(c *Config) { c.MinimumEase = 0 }, false},
		{"initial below minimum", func(c *Config) { c.InitialEase = 1.2 }, false},
		{"zero leech threshold", func(c *Config) { c.LeechThreshold = 0 }, false},
		{"negative suspend days", func(c *Config) { c.LeechSuspendDays = -2 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

// --- LoadConfig ---

func TestLoadConfigOverrides(t *testing.T) {
	doc := `
new_per_day: 5
reviews_per_day: 50
learning_steps: ["30s", "5m", "1h"]
leech_threshold: 4
target_retrievability:
  review: 0.92
`
	cfg, err := LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.NewPerDay)
	assert.Equal(t, 50, cfg.ReviewsPerDay)
	assert.Equal(t, []time.Duration{30 * time.Second, 5 * time.Minute, time.Hour}, cfg.LearningSteps)
	assert.Equal(t, 4, cfg.LeechThreshold)
	assert.Equal(t, 0.92, cfg.TargetRetrievability["review"])

	// Untouched keys keep their defaults.
	assert.Equal(t, 2.5, cfg.InitialEase)
	assert.Equal(t, 1.3, cfg.MinimumEase)
	assert.Equal(t, 0.85, cfg.TargetRetrievability["learning"])
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("new_cards: 5\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigBadDuration(t *testing.T) {
	_, err := LoadConfig(strings.NewReader(`learning_steps: ["soon"]`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigInvalidValue(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("minimum_ease: 3.0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig, "initial ease below minimum must be rejected")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("new_per_day: 12\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.NewPerDay)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reviews_per_day: -4\n"), 0o644))

	_, err := LoadConfigFile(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "deck.yaml")
}
