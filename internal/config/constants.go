package config

import "time"

const (
	envBaseURL  = "MLB_API_BASE_URL"
	envTimeout  = "MLB_HTTP_TIMEOUT"
	envTimezone = "MLB_TIMEZONE"
	envLogLevel = "LOG_LEVEL"

	defaultBaseURL = "https://statsapi.mlb.com"
	// The upstream schedule endpoint can be slow on range queries.
	defaultTimeout  = 30 * time.Second
	defaultLogLevel = "warn"
)
