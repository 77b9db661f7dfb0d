package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ExileYAMLConfig represents the complete exile.yaml file structure
type ExileYAMLConfig struct {
	System *SystemYAMLConfig `yaml:"system"`
	Queue  *QueueConfig      `yaml:"queue"`
	Redis  *RedisConfig      `yaml:"redis"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load exile.yaml from configDir
//  2. Expand environment variables
//  3. Merge user YAML over built-in defaults
//  4. Validate all configuration
//  5. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"max_concurrent_runs", cfg.Queue.MaxConcurrentRuns,
		"queue_key", cfg.Redis.QueueKey)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	exileConfig, err := loader.loadExileYAML()
	if err != nil {
		return nil, NewLoadError("exile.yaml", err)
	}

	// Resolve queue config (merge user YAML with built-in defaults).
	// Start with defaults, then merge user config on top to preserve unset defaults.
	queueConfig := DefaultQueueConfig()
	if exileConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, exileConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	redisConfig := DefaultRedisConfig()
	if exileConfig.Redis != nil {
		if err := mergo.Merge(redisConfig, exileConfig.Redis, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge redis config: %w", err)
		}
	}

	retentionConfig := resolveRetentionConfig(exileConfig.System)

	return &Config{
		configDir: configDir,
		Queue:     queueConfig,
		Redis:     redisConfig,
		Retention: retentionConfig,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

// loadExileYAML reads exile.yaml. A missing file is not an error; the
// built-in defaults apply and environment variables cover secrets.
func (l *configLoader) loadExileYAML() (*ExileYAMLConfig, error) {
	var config ExileYAMLConfig

	if err := l.loadYAML("exile.yaml", &config); err != nil {
		if isConfigNotFound(err) {
			slog.Warn("exile.yaml not found, using built-in defaults", "config_dir", l.configDir)
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.RunRetentionDays > 0 {
		cfg.RunRetentionDays = r.RunRetentionDays
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}
