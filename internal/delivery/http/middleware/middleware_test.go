package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBearerTokenFromHeader(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer   abc  ", "abc", true},
		{"Bearer", "", false},
		{"Basic abc", "", false},
	}
	for _, tt := range tests {
		got, ok := bearerTokenFromHeader(tt.header)
		assert.Equal(t, tt.ok, ok, tt.header)
		assert.Equal(t, tt.token, got, tt.header)
	}
}

func TestNormalizeError(t *testing.T) {
	status, msg, _ := normalizeError(NewAppError(http.StatusForbidden, "", nil, nil))
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "forbidden", msg)

	status, msg, _ = normalizeError(NewAppError(http.StatusServiceUnavailable, "db down", nil, errors.New("dial")))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", msg)

	status, _, _ = normalizeError(fiber.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, status)

	status, _, _ = normalizeError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestErrorMiddleware_RecoversPanicsAndHidesDetails(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	app := fiber.New()
	app.Use(NewErrorMiddleware(zap.New(core), false).Middleware())
	app.Get("/panic", func(fiber.Ctx) error { panic("kaboom") })
	app.Get("/fail", func(fiber.Ctx) error {
		return NewAppError(http.StatusInternalServerError, "secret detail", nil, errors.New("pg down"))
	})

	for _, path := range []string{"/panic", "/fail"} {
		res, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode, path)

		raw, err := io.ReadAll(res.Body)
		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "internal server error", body["message"], path)
		assert.NotContains(t, string(raw), "secret")
	}
	assert.Equal(t, 2, logs.Len())
}
