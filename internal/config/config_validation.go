// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The upstream base URL is the only setting with no usable fallback: it must
// be present and must be an http(s) URL. Listen address and timeouts are
// backfilled by [defaultConfig], so they only fail validation when a source
// explicitly supplies garbage.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Upstream.BaseURL == "" {
		return ErrInvalidUpstreamConfigs
	}

	if !strings.HasPrefix(cfg.Upstream.BaseURL, "http://") &&
		!strings.HasPrefix(cfg.Upstream.BaseURL, "https://") {
		return ErrInvalidUpstreamConfigs
	}

	if cfg.Upstream.RequestTimeout <= 0 {
		return ErrInvalidUpstreamConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
