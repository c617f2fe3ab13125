package session

import (
	"net/http"

	"github.com/dmitrymomot/filesession/pkg/hooks"
)

// Middleware returns net/http middleware running the manager's hooks around
// the handler. Errors from the request hook are rendered by the chain's error
// handler (plain text status and key by default).
func (m *Manager) Middleware(opts ...hooks.Option) func(http.Handler) http.Handler {
	chain := hooks.New(append([]hooks.Option{hooks.WithLogger(m.logger)}, opts...)...)
	m.Register(chain)
	return chain.Middleware()
}
