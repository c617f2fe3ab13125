package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filesession/pkg/session"
)

var testNow = time.Unix(1_700_000_000, 0)

func fixedClock() time.Time { return testNow }

// newTestManager creates a manager backed by an in-memory filesystem rooted at
// /sess.
func newTestManager(t *testing.T, opts ...session.Option) (*session.Manager, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/sess", 0o700))

	base := []session.Option{
		session.WithFs(fs),
		session.WithDir("/sess"),
		session.WithClock(fixedClock),
	}
	mgr, err := session.New(append(base, opts...)...)
	require.NoError(t, err)
	return mgr, fs
}

// serve runs one request through the manager middleware. cookieValue is sent
// as the session cookie unless empty.
func serve(t *testing.T, mgr *session.Manager, path, cookieValue string, h http.HandlerFunc) *http.Response {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, path, nil)
	if cookieValue != "" {
		r.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: cookieValue})
	}
	w := httptest.NewRecorder()

	mgr.Middleware()(h).ServeHTTP(w, r)
	return w.Result()
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == session.DefaultCookieName {
			return c
		}
	}
	t.Fatalf("no %q cookie in response", session.DefaultCookieName)
	return nil
}

func validToken(id string) string {
	return session.EncodeToken(id, testNow.Add(time.Hour))
}

func writeFile(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o600))
}

func readFile(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	return string(data)
}
