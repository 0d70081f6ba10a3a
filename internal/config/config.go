package config

import "time"

// Config holds runtime configuration for a single CLI invocation.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Timezone string
	LogLevel string
}

// Load reads configuration from environment variables with sensible defaults.
// An empty Timezone means the process-local zone.
func Load() Config {
	return Config{
		BaseURL:  envOrDefault(envBaseURL, defaultBaseURL),
		Timeout:  durationEnvOrDefault(envTimeout, defaultTimeout),
		Timezone: envOrDefault(envTimezone, ""),
		LogLevel: envOrDefault(envLogLevel, defaultLogLevel),
	}
}
