package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"acai/config"
	deliverycontext "acai/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	mw := NewRequestIDMiddleware(logger)

	var seen string
	handler := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("propagates client id", func(t *testing.T) {
		buf.Reset()
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))
		assert.Equal(t, "client-id", seen)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Contains(t, buf.String(), "request_id=client-id")
	})

	t.Run("generates id", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog string
	}{
		{"disabled", false, http.StatusOK, ""},
		{"info", true, http.StatusOK, "level=INFO"},
		{"warn", true, http.StatusNotFound, "level=WARN"},
		{"error", true, http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			mw := NewLoggerMiddleware(logger, cfg)

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/stores?sort=price", nil), httptest.NewRecorder())
			err := mw.Handle(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})(c)
			require.NoError(t, err)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "query=sort=price")
		})
	}
}
