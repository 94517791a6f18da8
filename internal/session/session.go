// Package session loads the locally stored tracking-site session.
//
// The tracking site has no API keys; access rides on a logged-in browser
// session exported to a JSON cookie file. The file is read once at startup
// and collapsed into a single Cookie header value for outbound requests.
// Session problems never stop the application: a missing or broken file
// only downgrades upstream calls to unauthenticated.
package session

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pmezhin/vesselwatch/internal/logger"
)

// Cookie is one entry of a browser cookie export. Exports carry more
// attributes (domain, path, expiry); only the pair that ends up on the
// wire is kept, the rest is ignored during decoding.
type Cookie struct {
	// Name is the cookie name.
	Name string `json:"name"`

	// Value is the cookie value.
	Value string `json:"value"`
}

// Session carries the upstream authentication state for the lifetime of
// the process. It is immutable after construction.
type Session struct {
	header string
	count  int
}

// New builds a session directly from cookie entries, skipping nameless
// ones. Callers that hold an export on disk should use Load instead.
func New(cookies []Cookie) *Session {
	pairs := make([]string, 0, len(cookies))
	for _, c := range cookies {
		if c.Name == "" {
			continue
		}
		pairs = append(pairs, c.Name+"="+c.Value)
	}

	return &Session{header: strings.Join(pairs, "; "), count: len(pairs)}
}

// Load reads the cookie export at path and builds the Cookie header value
// sent on every outbound request.
//
// Any failure (absent file, unreadable file, malformed JSON, no usable
// entries) is logged as a warning and yields an unauthenticated session
// with an empty header. Load never fails.
func Load(path string, log *logger.Logger) *Session {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).
			Msg("cookie file not readable, upstream requests will be unauthenticated")
		return &Session{}
	}

	var cookies []Cookie
	if err := json.Unmarshal(raw, &cookies); err != nil {
		log.Warn().Err(err).Str("path", path).
			Msg("cookie file is not a valid JSON cookie export, upstream requests will be unauthenticated")
		return &Session{}
	}

	s := New(cookies)
	if !s.Authenticated() {
		log.Warn().Str("path", path).
			Msg("cookie file contains no usable cookies, upstream requests will be unauthenticated")
		return s
	}

	log.Info().Str("path", path).Int("cookies", s.count).Msg("upstream session loaded")
	return s
}

// Header returns the Cookie header value. Empty when the session is
// unauthenticated.
func (s *Session) Header() string {
	return s.header
}

// Authenticated reports whether any cookies were loaded.
func (s *Session) Authenticated() bool {
	return s.header != ""
}
