package config

// Config holds runtime configuration for the CLI.
type Config struct {
	Warlight WarlightConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Warlight: loadWarlight(),
		Logging:  loadLogging(),
		Metrics:  loadMetrics(),
	}
}
