package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Redis broker configuration
	Redis *RedisConfig

	// Data retention and cleanup configuration
	Retention *RetentionConfig
}

// Initialize is defined in loader.go

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
