// Package hooks adapts net/http to a "before handler / after handler" hook
// model. Components that need to run around every request (such as the
// session manager) register themselves on a Host instead of depending on a
// particular router.
package hooks

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/filesession/pkg/httperr"
	"github.com/dmitrymomot/filesession/pkg/logger"
)

// RequestHook runs before the handler. It may return a replacement request,
// typically one carrying additional context values. A non-nil error aborts the
// request: remaining request hooks, the handler and response hooks are skipped.
type RequestHook func(w http.ResponseWriter, r *http.Request) (*http.Request, error)

// ResponseHook runs after the handler returned. It receives the request as
// seen by the handler.
type ResponseHook func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler renders an error returned by a request hook.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Host is the capability a hosting framework exposes for registering
// lifecycle callbacks.
type Host interface {
	OnRequest(RequestHook)
	OnResponse(ResponseHook)
}

// Chain is a Host backed by plain net/http middleware.
type Chain struct {
	request      []RequestHook
	response     []ResponseHook
	errorHandler ErrorHandler
	logger       *slog.Logger
}

// Option configures a Chain.
type Option func(*Chain)

// WithErrorHandler replaces the default error renderer.
func WithErrorHandler(h ErrorHandler) Option {
	return func(c *Chain) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithLogger sets the logger used for failed hooks. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Chain) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty chain.
func New(opts ...Option) *Chain {
	c := &Chain{
		errorHandler: DefaultErrorHandler,
		logger:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnRequest appends a hook to run before the handler.
func (c *Chain) OnRequest(h RequestHook) {
	c.request = append(c.request, h)
}

// OnResponse appends a hook to run after the handler.
func (c *Chain) OnResponse(h ResponseHook) {
	c.response = append(c.response, h)
}

// Handler wraps next with the registered hooks. Hooks registered after
// Handler is called are not picked up.
func (c *Chain) Handler(next http.Handler) http.Handler {
	request := append([]RequestHook(nil), c.request...)
	response := append([]ResponseHook(nil), c.response...)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, h := range request {
			req, err := h(w, r)
			if err != nil {
				c.logFailure(r.Context(), "request hook failed", r, err)
				c.errorHandler(w, r, err)
				return
			}
			if req != nil {
				r = req
			}
		}

		next.ServeHTTP(w, r)

		for _, h := range response {
			if err := h(w, r); err != nil {
				c.logFailure(r.Context(), "response hook failed", r, err)
			}
		}
	})
}

// Middleware returns Handler in the func(http.Handler) http.Handler shape
// routers such as chi expect.
func (c *Chain) Middleware() func(http.Handler) http.Handler {
	return c.Handler
}

func (c *Chain) logFailure(ctx context.Context, msg string, r *http.Request, err error) {
	level := slog.LevelError
	if httperr.IsClientError(httperr.From(err).Code) {
		level = slog.LevelWarn
	}
	c.logger.LogAttrs(ctx, level, msg,
		logger.Error(err),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.Component("hooks"),
	)
}

// DefaultErrorHandler writes the error's HTTP status and key as plain text.
func DefaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	httperr.Write(w, err)
}
