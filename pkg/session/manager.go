package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/dmitrymomot/filesession/pkg/cookie"
	"github.com/dmitrymomot/filesession/pkg/hooks"
	"github.com/dmitrymomot/filesession/pkg/logger"
)

// Manager runs the session lifecycle around each request: BeforeHandler
// resolves the session from the cookie, AfterHandler persists changes.
type Manager struct {
	config     Config
	store      Store
	fs         afero.Fs
	cookies    *cookie.Manager
	cookieOpts []cookie.Option
	logger     *slog.Logger
	metrics    *Metrics
	generateID IDFunc
	now        func() time.Time
}

// New creates a manager. Without WithStore, sessions are kept as files in the
// directory returned by ResolveDir for the configured Dir.
func New(opts ...Option) (*Manager, error) {
	m := &Manager{
		config:     DefaultConfig(),
		logger:     logger.Discard(),
		generateID: GenerateID,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.config = m.config.normalize()
	m.cookies = cookie.NewFromConfig(m.config.Cookie, m.cookieOpts...)

	if m.store == nil {
		dir, err := ResolveDir(m.fs, m.config.Dir)
		if err != nil {
			return nil, err
		}
		m.store = NewFileStore(m.fs, dir)
	}

	return m, nil
}

// Config returns the effective configuration.
func (m *Manager) Config() Config {
	return m.config
}

// Store returns the backing store.
func (m *Manager) Store() Store {
	return m.store
}

// Register wires the request and response hooks into host.
func (m *Manager) Register(host hooks.Host) {
	host.OnRequest(m.BeforeHandler)
	host.OnResponse(m.AfterHandler)
}

// BeforeHandler is the request hook. For in-scope requests it disables
// caching and then:
//   - without a cookie, issues a new id and attaches no session;
//   - with an undecodable cookie, fails with ErrBadCookie;
//   - otherwise attaches a session to the returned request and refreshes the
//     cookie expiry.
//
// Expired cookies and corrupt stored data are replaced by a fresh session
// with a new id.
func (m *Manager) BeforeHandler(w http.ResponseWriter, r *http.Request) (*http.Request, error) {
	if !m.inScope(r.URL.Path) {
		return r, nil
	}

	setNoCacheHeaders(w.Header())

	ctx := r.Context()
	now := m.now()

	tok, err := m.readToken(r)
	if errors.Is(err, cookie.ErrCookieNotFound) {
		id, err := m.newID(ctx, r)
		if err != nil {
			return nil, err
		}
		m.writeToken(w, id, now)
		m.metrics.event(EventCreated)
		m.logger.DebugContext(ctx, "session cookie issued",
			logger.SessionID(id),
			logger.Component("session"),
		)
		return r, nil
	}
	if err != nil {
		m.metrics.event(EventBadCookie)
		m.logger.WarnContext(ctx, "rejected session cookie",
			logger.Error(err),
			logger.Path(r.URL.Path),
			logger.Component("session"),
		)
		return nil, err
	}

	sess, err := m.resolve(ctx, r, tok, now)
	if err != nil {
		return nil, err
	}

	m.writeToken(w, sess.id, now)
	return r.WithContext(WithSession(ctx, sess)), nil
}

// AfterHandler is the response hook. It saves the request's session if its
// data changed and it was not destroyed.
func (m *Manager) AfterHandler(_ http.ResponseWriter, r *http.Request) error {
	sess, ok := FromContext(r.Context())
	if !ok {
		return nil
	}
	return m.Save(context.WithoutCancel(r.Context()), sess)
}

// Save persists sess when its data differs from what was loaded.
// Destroyed sessions are skipped.
func (m *Manager) Save(ctx context.Context, sess *Session) error {
	if sess == nil || sess.deleted {
		return nil
	}

	modified, payload, err := sess.changes()
	if err != nil {
		m.logSaveFailure(ctx, sess, err)
		return errors.Join(ErrSaveSession, err)
	}
	if !modified {
		return nil
	}

	start := time.Now()
	if err := m.store.Save(ctx, sess.id, payload); err != nil {
		m.logSaveFailure(ctx, sess, err)
		return errors.Join(ErrSaveSession, err)
	}
	m.metrics.observeSave(time.Since(start))
	m.metrics.event(EventSaved)

	return nil
}

// resolve loads the session named by tok, or replaces it with a fresh one.
func (m *Manager) resolve(ctx context.Context, r *http.Request, tok Token, now time.Time) (*Session, error) {
	if tok.Expired(now) {
		if err := m.store.Delete(ctx, tok.ID); err != nil {
			m.logger.WarnContext(ctx, "failed to delete expired session",
				logger.SessionID(tok.ID),
				logger.Error(err),
				logger.Component("session"),
			)
		}
		m.metrics.event(EventExpired)
		m.logger.DebugContext(ctx, "session expired",
			logger.SessionID(tok.ID),
			logger.Component("session"),
		)
		return m.fresh(ctx, r)
	}

	payload, err := m.store.Load(ctx, tok.ID)
	if errors.Is(err, ErrSessionNotFound) {
		m.metrics.event(EventFresh)
		return m.bind(tok.ID, newValues())
	}
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to load session",
			logger.SessionID(tok.ID),
			logger.Error(err),
			logger.Component("session"),
		)
		return nil, errors.Join(ErrLoadSession, err)
	}

	data, err := decodeValues(payload)
	if err != nil {
		m.metrics.event(EventCorrupt)
		m.logger.WarnContext(ctx, "discarding corrupt session",
			logger.SessionID(tok.ID),
			logger.Path(m.store.Path(tok.ID)),
			logger.Error(err),
			logger.Component("session"),
		)
		if err := m.store.Delete(ctx, tok.ID); err != nil {
			m.logger.WarnContext(ctx, "failed to delete corrupt session",
				logger.SessionID(tok.ID),
				logger.Error(err),
				logger.Component("session"),
			)
		}
		return m.fresh(ctx, r)
	}

	m.metrics.event(EventLoaded)
	return m.bind(tok.ID, data)
}

// fresh creates an empty session under a newly generated id.
func (m *Manager) fresh(ctx context.Context, r *http.Request) (*Session, error) {
	id, err := m.newID(ctx, r)
	if err != nil {
		return nil, err
	}
	return m.bind(id, newValues())
}

func (m *Manager) bind(id string, data values) (*Session, error) {
	sess, err := newSession(id, m.store, data)
	if err != nil {
		return nil, errors.Join(ErrLoadSession, err)
	}
	sess.metrics = m.metrics
	return sess, nil
}

// inScope reports whether path falls under one of the configured prefixes.
// The path gets a trailing slash so a prefix "/app/" also matches "/app".
func (m *Manager) inScope(path string) bool {
	if len(m.config.Paths) == 0 {
		return true
	}
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	for _, prefix := range m.config.Paths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (m *Manager) logSaveFailure(ctx context.Context, sess *Session, err error) {
	m.logger.ErrorContext(ctx, "failed to save session",
		logger.SessionID(sess.id),
		logger.Path(sess.path),
		logger.Error(err),
		logger.Component("session"),
	)
}

func setNoCacheHeaders(h http.Header) {
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	h.Set("Pragma", "no-cache")
	h.Set("Expires", "Thu, 01 Jan 1970 00:00:00 GMT")
}
