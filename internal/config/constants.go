package config

import "time"

const (
	envBaseURL     = "WARLIGHT_BASE_URL"
	envEmail       = "WARLIGHT_EMAIL"
	envAPIToken    = "WARLIGHT_API_TOKEN"
	envPassword    = "WARLIGHT_PASSWORD"
	envHTTPTimeout = "WARLIGHT_HTTP_TIMEOUT"
	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"
	envMetricsOn   = "METRICS_ENABLED"
	envMetricsFile = "METRICS_TEXTFILE"

	defaultBaseURL     = "https://www.warlight.net/API"
	defaultHTTPTimeout = 30 * time.Second
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
)
