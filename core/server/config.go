package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080" validate:"required,numeric"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// CacheMaxAge is the max-age, in seconds, advertised on dashboard responses.
	CacheMaxAge int `mapstructure:"cache_max_age" default:"60" validate:"gte=0"`
	// CacheStale is the stale-while-revalidate window in seconds.
	CacheStale int `mapstructure:"cache_stale" default:"30" validate:"gte=0"`
}

// CacheControl renders the Cache-Control header for dashboard responses.
// A zero max-age disables caching.
func (c Config) CacheControl() string {
	if c.CacheMaxAge <= 0 {
		return "no-store"
	}
	if c.CacheStale <= 0 {
		return fmt.Sprintf("public, max-age=%d", c.CacheMaxAge)
	}
	return fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", c.CacheMaxAge, c.CacheStale)
}
