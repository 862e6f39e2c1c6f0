package config

import "time"

// WarlightConfig controls how we talk to the Warlight API.
type WarlightConfig struct {
	BaseURL  string
	Email    string
	APIToken string
	// Password is only used to fetch a token when APIToken is empty.
	Password    string
	HTTPTimeout time.Duration
}

// HasToken reports whether a token is configured.
func (c WarlightConfig) HasToken() bool {
	return c.APIToken != ""
}

func loadWarlight() WarlightConfig {
	return WarlightConfig{
		BaseURL:     envOrDefault(envBaseURL, defaultBaseURL),
		Email:       envOrDefault(envEmail, ""),
		APIToken:    envOrDefault(envAPIToken, ""),
		Password:    envOrDefault(envPassword, ""),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
	}
}
