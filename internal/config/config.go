// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// vesselwatch application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the inbound
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Upstream holds connection settings for the vessel-tracking site the
	// aggregator scrapes.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// Session holds settings for the locally stored upstream session.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Upstream holds connection settings for the tracking site.
type Upstream struct {
	// BaseURL is the root URL of the tracking site the per-vessel
	// endpoints are resolved against (e.g. "https://tracker.example.com").
	// Required; there is no default.
	// Env: UPSTREAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the fixed timeout applied to every outbound
	// request. A vessel aggregation never waits longer than this for any
	// single resource.
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent on every outbound request. The tracking site
	// serves its JSON endpoints to browsers, so the default imitates one.
	// Env: UPSTREAM_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Session holds settings for the locally stored upstream session.
type Session struct {
	// CookieFile is the path to the JSON cookie export used to
	// authenticate against the tracking site. The file is read once at
	// startup; a missing or malformed file downgrades requests to
	// unauthenticated rather than failing startup.
	// Env: SESSION_COOKIE_FILE
	CookieFile string `env:"COOKIE_FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
