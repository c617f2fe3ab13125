package cookie

import "net/http"

// Config holds cookie attributes loadable from the environment. Field tags
// carry no prefix so the struct can be embedded with envPrefix, e.g.
// `envPrefix:"SESSION_COOKIE_"`.
type Config struct {
	Path     string        `env:"PATH" envDefault:"/"`
	Domain   string        `env:"DOMAIN" envDefault:""`
	Secure   bool          `env:"SECURE" envDefault:"false"`
	HttpOnly bool          `env:"HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// DefaultConfig returns the same attributes New uses when given no options.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Options converts the config into cookie options. Zero Path and SameSite
// are left to the manager defaults.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 5)
	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.SameSite != 0 {
		opts = append(opts, WithSameSite(c.SameSite))
	}
	opts = append(opts, WithSecure(c.Secure), WithHTTPOnly(c.HttpOnly))
	return opts
}

// NewFromConfig creates a Manager from cfg followed by opts.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	return New(append(cfg.Options(), opts...)...)
}
