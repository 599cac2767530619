package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/logger"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBadToken = errors.New("bad token")

type fakeTokens map[string]int64

func (f fakeTokens) ParseToken(token string) (int64, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return 0, errBadToken
}

func newTestServer(rateLimit float64) *server.Server {
	log := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "local"},
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				RateLimit:          rateLimit,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger:        &log,
		LoggerService: &logger.LoggerService{},
	}
}

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestRequireAuth(t *testing.T) {
	auth := NewAuthMiddleware(newTestServer(0), fakeTokens{"good": 42})

	tests := []struct {
		name    string
		prepare func(r *http.Request)
		wantID  int64
		wantErr bool
	}{
		{
			name:    "no session",
			prepare: func(r *http.Request) {},
			wantErr: true,
		},
		{
			name: "cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good"})
			},
			wantID: 42,
		},
		{
			name: "bearer header",
			prepare: func(r *http.Request) {
				r.Header.Set(echo.HeaderAuthorization, "Bearer good")
			},
			wantID: 42,
		},
		{
			name: "invalid token",
			prepare: func(r *http.Request) {
				r.Header.Set(echo.HeaderAuthorization, "Bearer forged")
			},
			wantErr: true,
		},
		{
			name: "non bearer scheme",
			prepare: func(r *http.Request) {
				r.Header.Set(echo.HeaderAuthorization, "Basic good")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
			tt.prepare(req)
			c, _ := newContext(req)

			called := false
			err := auth.RequireAuth(func(c echo.Context) error {
				called = true
				id, ok := GetUserID(c)
				require.True(t, ok)
				assert.Equal(t, tt.wantID, id)
				assert.NotNil(t, zerolog.Ctx(c.Request().Context()))
				return nil
			})(c)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.True(t, called)
				return
			}

			assert.False(t, called)
			var httpErr *errs.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
			require.NotNil(t, httpErr.Action)
			assert.Equal(t, "/login", httpErr.Action.Value)
		})
	}
}

func TestRequireAuth_ScopesLoggerWithUser(t *testing.T) {
	auth := NewAuthMiddleware(newTestServer(0), fakeTokens{"good": 7})

	var buf bytes.Buffer
	base := zerolog.New(&buf)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	c, _ := newContext(req)
	c.Set(LoggerKey, &base)

	err := auth.RequireAuth(func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("inside")
		return nil
	})(c)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"user_id":7`)
}

func TestRequestID(t *testing.T) {
	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("reuses incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		c, rec := newContext(req)

		require.NoError(t, handler(c))
		assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", rec.Body.String())
	})

	t.Run("generates id", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, handler(c))
		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc\"} forged=1")
		c, rec := newContext(req)

		require.NoError(t, handler(c))
		got := rec.Header().Get(RequestIDHeader)
		assert.NotContains(t, got, "forged")
		assert.Len(t, got, 36)
	})
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotNil(t, GetLogger(c))
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(newTestServer(1)).GlobalErrorHandler
	e.Use(NewRateLimitMiddleware(newTestServer(1)).Limit())
	e.GET("/api/properties", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/properties", nil)
		req.RemoteAddr = "203.0.113.9:5555"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

func TestRateLimit_DisabledAtZero(t *testing.T) {
	e := echo.New()
	e.Use(NewRateLimitMiddleware(newTestServer(0)).Limit())
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for range 5 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		status int
		err    error
		want   int
	}{
		{"no error", http.StatusCreated, nil, http.StatusCreated},
		{"http error", http.StatusOK, errs.NewTooManyRequestsError(), http.StatusTooManyRequests},
		{"echo error", http.StatusOK, echo.NewHTTPError(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed},
		{"unique violation", http.StatusOK, fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", TableName: "users"}), http.StatusBadRequest},
		{"unclassified", http.StatusOK, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.status, tt.err))
		})
	}
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(newTestServer(0))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "Route not found",
		},
		{
			name:       "store unreachable",
			err:        fmt.Errorf("list properties: %w", context.DeadlineExceeded),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "SERVICE_UNAVAILABLE",
			wantMsg:    "Service Unavailable",
		},
		{
			name:       "internal error stays generic",
			err:        errors.New("pq: password authentication failed for user lightbnb"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "echo method not allowed",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
			wantMsg:    "Method Not Allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.False(t, body.Override)
		})
	}
}
