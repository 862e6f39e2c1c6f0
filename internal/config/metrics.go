package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled bool
	// Textfile, when set, receives the metrics in node exporter textfile format on exit.
	Textfile string
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:  boolEnvOrDefault(envMetricsOn, false),
		Textfile: envOrDefault(envMetricsFile, ""),
	}
}
