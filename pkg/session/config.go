package session

import (
	"time"

	"github.com/dmitrymomot/filesession/pkg/cookie"
)

const (
	DefaultCookieName = "sess"
	DefaultDir        = "sess"
	DefaultTTL        = 30 * time.Minute

	// MaxTTL caps the logical session lifetime (370 days) so the server never
	// promises to keep a backing file around indefinitely.
	MaxTTL = 31968000 * time.Second

	// CookieMaxAge is the transport-level cookie lifetime in seconds
	// (400 days, the browser ceiling). It is independent of the TTL embedded
	// in the cookie value.
	CookieMaxAge = 34560000
)

// Config holds session configuration.
type Config struct {
	// CookieName is the name of the session cookie.
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sess"`

	// Dir is the storage directory. If it does not exist, a directory under
	// the OS temp dir is used instead (see ResolveDir).
	Dir string `env:"SESSION_DIR" envDefault:"sess"`

	// TTL is the sliding session lifetime, capped at MaxTTL.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	// Paths limits session handling to URL path prefixes. Empty means all.
	Paths []string `env:"SESSION_PATHS" envSeparator:","`

	// Cookie attributes. Max-Age and Expires are always pinned to CookieMaxAge.
	Cookie cookie.Config `envPrefix:"SESSION_COOKIE_"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName: DefaultCookieName,
		Dir:        DefaultDir,
		TTL:        DefaultTTL,
		Cookie:     cookie.DefaultConfig(),
	}
}

// normalize fills zero values with defaults and clamps the TTL.
func (c Config) normalize() Config {
	if c.CookieName == "" {
		c.CookieName = DefaultCookieName
	}
	if c.Dir == "" {
		c.Dir = DefaultDir
	}
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	c.TTL = min(c.TTL, MaxTTL)
	if c.Cookie == (cookie.Config{}) {
		c.Cookie = cookie.DefaultConfig()
	}
	c.Paths = append([]string(nil), c.Paths...)
	return c
}

// NewFromConfig creates a Manager from cfg followed by opts.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}
