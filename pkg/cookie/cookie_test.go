package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filesession/pkg/cookie"
)

func TestManager_SetGet(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	w := httptest.NewRecorder()
	m.Set(w, "sess", "5e55.1700000000")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sess", cookies[0].Name)
	assert.Equal(t, "5e55.1700000000", cookies[0].Value)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])

	value, err := m.Get(r, "sess")
	require.NoError(t, err)
	assert.Equal(t, "5e55.1700000000", value)
}

func TestManager_GetMissing(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "sess")
	assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
}

func TestManager_DefaultAttributes(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	cookie.New().Set(w, "test", "value")

	header := w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Lax")
	assert.Contains(t, header, "Path=/")
	assert.NotContains(t, header, "Secure")
	assert.NotContains(t, header, "Max-Age")
	assert.NotContains(t, header, "Expires")
}

func TestManager_MaxAgeSetsExpires(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	before := time.Now()
	cookie.New().Set(w, "sess", "v", cookie.WithMaxAge(34560000))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, 34560000, cookies[0].MaxAge)

	want := before.Add(34560000 * time.Second)
	assert.WithinDuration(t, want, cookies[0].Expires, 2*time.Second)
}

func TestManager_Options(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []cookie.Option
		check func(t *testing.T, c *http.Cookie)
	}{
		{
			name: "path",
			opts: []cookie.Option{cookie.WithPath("/app")},
			check: func(t *testing.T, c *http.Cookie) {
				assert.Equal(t, "/app", c.Path)
			},
		},
		{
			name: "domain",
			opts: []cookie.Option{cookie.WithDomain("example.com")},
			check: func(t *testing.T, c *http.Cookie) {
				assert.Equal(t, "example.com", c.Domain)
			},
		},
		{
			name: "secure",
			opts: []cookie.Option{cookie.WithSecure(true)},
			check: func(t *testing.T, c *http.Cookie) {
				assert.True(t, c.Secure)
			},
		},
		{
			name: "http only disabled",
			opts: []cookie.Option{cookie.WithHTTPOnly(false)},
			check: func(t *testing.T, c *http.Cookie) {
				assert.False(t, c.HttpOnly)
			},
		},
		{
			name: "same site strict",
			opts: []cookie.Option{cookie.WithSameSite(http.SameSiteStrictMode)},
			check: func(t *testing.T, c *http.Cookie) {
				assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
			},
		},
		{
			name: "nil option ignored",
			opts: []cookie.Option{nil},
			check: func(t *testing.T, c *http.Cookie) {
				assert.Equal(t, "/", c.Path)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			cookie.New().Set(w, "c", "v", tt.opts...)

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			tt.check(t, cookies[0])
		})
	}
}

func TestManager_PerCallOptionsDoNotLeak(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithPath("/base"))

	w1 := httptest.NewRecorder()
	m.Set(w1, "a", "1", cookie.WithPath("/other"))
	w2 := httptest.NewRecorder()
	m.Set(w2, "b", "2")

	assert.Equal(t, "/other", w1.Result().Cookies()[0].Path)
	assert.Equal(t, "/base", w2.Result().Cookies()[0].Path)
	assert.Equal(t, "/base", m.Defaults().Path)
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithDomain("example.com"))
	w := httptest.NewRecorder()
	m.Delete(w, "sess")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sess", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Equal(t, "example.com", cookies[0].Domain)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()

	cfg := cookie.Config{
		Path:     "/app",
		Domain:   "example.com",
		Secure:   true,
		HttpOnly: false,
		SameSite: http.SameSiteStrictMode,
	}

	w := httptest.NewRecorder()
	cookie.NewFromConfig(cfg).Set(w, "c", "v")

	c := w.Result().Cookies()[0]
	assert.Equal(t, "/app", c.Path)
	assert.Equal(t, "example.com", c.Domain)
	assert.True(t, c.Secure)
	assert.False(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cookie.New().Defaults(), cookie.NewFromConfig(cookie.DefaultConfig()).Defaults())
}
