package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// RunRetentionDays is how many days to keep terminal scenario runs and
	// their request runs before soft-deleting them.
	RunRetentionDays int `yaml:"run_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RunRetentionDays: 365,
		CleanupInterval:  12 * time.Hour,
	}
}
