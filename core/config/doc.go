// Package config provides configuration management for the extension monitor.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file, with defaults taken from `default` struct tags and
// validation rules from `validate` struct tags.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, optional API key, cache hints
//   - Feed: upstream URL, User-Agent, registry key, timeout, rate limit
//   - Log: logging level and format
//
// Nested keys map to environment variables with underscores, so feed.url is
// read from FEED_URL.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
