package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidUpstreamConfigs indicates invalid tracking-site settings
	// (for example, a missing or non-http(s) base URL, or a zero timeout).
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, an empty listen address or a zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
