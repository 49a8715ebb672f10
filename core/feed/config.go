package feed

// Config holds configuration for the upstream feed.
type Config struct {
	// URL is the JSON endpoint serving the store feed.
	URL string `mapstructure:"url" default:"" validate:"required,url"`
	// UserAgent is sent on every outbound request. Some upstreams block the Go default.
	UserAgent string `mapstructure:"user_agent" default:"Mozilla/5.0 (compatible; ExtensionMonitor/1.0)" validate:"required"`
	// SubmissionsKey is the reserved top-level key holding the submission registry.
	SubmissionsKey string `mapstructure:"submissions_key" default:"submissions" validate:"required"`
	// TimeoutSeconds bounds connection setup and the wait for response headers.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15" validate:"gte=0"`
	// RequestsPerMinute caps outbound fetches. Zero disables the limit.
	RequestsPerMinute int `mapstructure:"requests_per_minute" default:"60" validate:"gte=0"`
}
