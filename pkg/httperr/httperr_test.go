package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/filesession/pkg/httperr"
)

func TestFrom(t *testing.T) {
	t.Parallel()

	badCookie := httperr.New(http.StatusForbidden, "bad cookie")

	tests := []struct {
		name string
		err  error
		want httperr.HTTPError
	}{
		{"direct", badCookie, badCookie},
		{"joined", errors.Join(badCookie, errors.New("missing delimiter")), badCookie},
		{"plain error", errors.New("disk on fire"), httperr.ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, httperr.From(tt.err))
		})
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	t.Run("writes code and key", func(t *testing.T) {
		w := httptest.NewRecorder()
		httperr.Write(w, errors.Join(httperr.New(http.StatusForbidden, "bad cookie"), errors.New("detail")))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "bad cookie", w.Body.String())
		assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	})

	t.Run("hides internal errors", func(t *testing.T) {
		w := httptest.NewRecorder()
		httperr.Write(w, errors.New("open /var/lib/sess/abc: permission denied"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", w.Body.String())
	})
}

func TestIsClientError(t *testing.T) {
	t.Parallel()
	assert.True(t, httperr.IsClientError(http.StatusForbidden))
	assert.False(t, httperr.IsClientError(http.StatusOK))
	assert.False(t, httperr.IsClientError(http.StatusInternalServerError))
}
