package config

// RedisConfig holds broker connection settings. The broker carries one
// queue of scenario-run messages plus a per-consumer processing list used
// for late acknowledgement.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`

	// QueueKey is the list scenario-run messages are pushed to.
	QueueKey string `yaml:"queue_key"`

	// ProcessingKey is the list in-flight messages are moved to until the
	// run is finalized. Entries found here at startup are requeued.
	ProcessingKey string `yaml:"processing_key"`
}

// DefaultRedisConfig returns the built-in broker defaults.
func DefaultRedisConfig() *RedisConfig {
	return &RedisConfig{
		Addr:          "localhost:6379",
		DB:            0,
		QueueKey:      "exile:scenario_run_queue",
		ProcessingKey: "exile:scenario_run_processing",
	}
}
