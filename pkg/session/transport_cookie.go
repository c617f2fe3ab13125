package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/filesession/pkg/cookie"
)

// readToken decodes the session cookie. It returns cookie.ErrCookieNotFound
// when the request carries none.
func (m *Manager) readToken(r *http.Request) (Token, error) {
	value, err := m.cookies.Get(r, m.config.CookieName)
	if err != nil {
		return Token{}, err
	}
	return DecodeToken(value)
}

// writeToken sets the session cookie for id with an expiry of now + TTL.
// The cookie itself always lives for CookieMaxAge.
func (m *Manager) writeToken(w http.ResponseWriter, id string, now time.Time) {
	value := EncodeToken(id, now.Add(m.config.TTL))
	m.cookies.Set(w, m.config.CookieName, value, cookie.WithMaxAge(CookieMaxAge))
}
