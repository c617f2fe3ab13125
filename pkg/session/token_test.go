package session_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filesession/pkg/httperr"
	"github.com/dmitrymomot/filesession/pkg/session"
)

func TestEncodeToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5e55.1700001800", session.EncodeToken("5e55", time.Unix(1700001800, 0)))
	assert.Equal(t, "a.0", session.EncodeToken("a", time.Unix(0, 0)))
}

func TestDecodeToken(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		tok, err := session.DecodeToken("5E55ab.1700001800")
		require.NoError(t, err)
		assert.Equal(t, "5E55ab", tok.ID)
		assert.Equal(t, int64(1700001800), tok.ExpiresAt.Unix())
		assert.Equal(t, "5E55ab.1700001800", tok.String())
	})

	t.Run("expired token decodes", func(t *testing.T) {
		t.Parallel()

		tok, err := session.DecodeToken("a.0")
		require.NoError(t, err)
		assert.True(t, tok.Expired(testNow))
	})

	t.Run("expiry is exclusive", func(t *testing.T) {
		t.Parallel()

		tok := session.Token{ID: "a", ExpiresAt: testNow}
		assert.False(t, tok.Expired(testNow))
		assert.True(t, tok.Expired(testNow.Add(time.Second)))
	})

	invalid := []struct {
		name  string
		value string
	}{
		{"no separator", "xx"},
		{"empty", ""},
		{"non-hex id", "xx.0"},
		{"empty id", ".100"},
		{"empty expiry", "ab."},
		{"non-numeric expiry", "ab.soon"},
		{"float expiry", "ab.1.5"},
		{"path traversal", "../etc.0"},
		{"id too long", string(make129Hex()) + ".0"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := session.DecodeToken(tt.value)
			require.Error(t, err)
			assert.ErrorIs(t, err, session.ErrBadCookie)

			var httpErr httperr.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, 403, httpErr.Code)
			assert.Equal(t, "bad cookie", httpErr.Key)
		})
	}
}

func make129Hex() []byte {
	b := make([]byte, 129)
	for i := range b {
		b[i] = 'a'
	}
	return b
}
