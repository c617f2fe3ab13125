package session

import (
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"github.com/dmitrymomot/filesession/pkg/cookie"
)

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithConfig replaces the whole configuration. Options applied after it still
// take effect.
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithCookieName sets the session cookie name.
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithDir sets the storage directory used by the default file store.
func WithDir(dir string) Option {
	return func(m *Manager) {
		m.config.Dir = dir
	}
}

// WithTTL sets the sliding session lifetime. Values above MaxTTL are capped.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.config.TTL = ttl
	}
}

// WithPaths limits session handling to the given URL path prefixes.
func WithPaths(paths ...string) Option {
	return func(m *Manager) {
		m.config.Paths = paths
	}
}

// WithCookieOptions adds cookie attributes on top of the configured ones.
// Max-Age cannot be overridden.
func WithCookieOptions(opts ...cookie.Option) Option {
	return func(m *Manager) {
		m.cookieOpts = append(m.cookieOpts, opts...)
	}
}

// WithStore replaces the default file store.
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithFs sets the filesystem for the default file store.
func WithFs(fsys afero.Fs) Option {
	return func(m *Manager) {
		m.fs = fsys
	}
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithMetrics enables lifecycle metrics.
func WithMetrics(metrics *Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// WithIDGenerator replaces GenerateID. Nil is ignored.
func WithIDGenerator(fn IDFunc) Option {
	return func(m *Manager) {
		if fn != nil {
			m.generateID = fn
		}
	}
}

// WithClock sets the time source used for cookie expiry. Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}
