package config

import "time"

// Default values applied when no other configuration source provides one.
// The upstream base URL deliberately has no default: aggregation is
// meaningless without a real tracking site to talk to.
const (
	// DefaultHTTPAddress is the fallback listen address of the HTTP server.
	DefaultHTTPAddress = "0.0.0.0:8080"

	// DefaultRequestTimeout is the fallback ceiling for inbound requests.
	DefaultRequestTimeout = 30 * time.Second

	// DefaultUpstreamTimeout is the fallback per-request ceiling for
	// outbound tracking-site calls.
	DefaultUpstreamTimeout = 10 * time.Second

	// DefaultUserAgent imitates a desktop browser so the tracking site
	// serves the same JSON its own frontend receives.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// DefaultCookieFile is the fallback path of the session cookie export.
	DefaultCookieFile = "cookies.json"

	// DefaultVersion marks builds that were not stamped by CI.
	DefaultVersion = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: DefaultVersion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Upstream: Upstream{
			RequestTimeout: DefaultUpstreamTimeout,
			UserAgent:      DefaultUserAgent,
		},
		Session: Session{
			CookieFile: DefaultCookieFile,
		},
	}
}
