package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"appointment-data-proxy/config"
	"appointment-data-proxy/pkg/jwt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWT() *jwt.JWTService {
	return jwt.NewJWTService(config.AuthConfig{Secret: "test-secret"})
}

func token(t *testing.T, svc *jwt.JWTService, scopes ...string) string {
	t.Helper()
	tok, err := svc.GenerateToken("client", scopes, time.Minute)
	require.NoError(t, err)
	return tok
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAuthenticate(t *testing.T) {
	svc := newJWT()
	log, _ := test.NewNullLogger()
	protected := NewAuthMiddleware(svc, nil, log).Authenticate(RequireScope(jwt.ScopeGeneral)(okHandler))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc", want: http.StatusUnauthorized},
		{name: "missing scope", header: "Bearer " + token(t, svc, jwt.ScopeCustomer), want: http.StatusForbidden},
		{name: "granted", header: "Bearer " + token(t, svc, jwt.ScopeCustomer, jwt.ScopeGeneral), want: http.StatusNoContent},
		{name: "lower case scheme", header: "bearer " + token(t, svc, jwt.ScopeGeneral), want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			protected.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireScope_WithoutAuthenticate(t *testing.T) {
	rec := httptest.NewRecorder()

	RequireScope(jwt.ScopeGeneral)(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RevocationStoreUnavailable(t *testing.T) {
	svc := newJWT()
	log, hook := test.NewNullLogger()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token(t, svc, jwt.ScopeGeneral))
	rec := httptest.NewRecorder()

	NewAuthMiddleware(svc, client, log).Authenticate(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, hook.AllEntries())
}

func TestLoggingMiddleware(t *testing.T) {
	log, hook := test.NewNullLogger()
	var seenID string
	handler := NewLoggingMiddleware(log).Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

		assert.NotEmpty(t, seenID)
		assert.Equal(t, seenID, rec.Header().Get(RequestIDHeader))
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, http.StatusTeapot, entry.Data["status"])
		assert.Equal(t, "/api/v1/health", entry.Data["path"])
	})

	t.Run("keeps caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "abc-123", seenID)
		assert.Equal(t, "abc-123", hook.LastEntry().Data["request_id"])
	})
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	rec := httptest.NewRecorder()

	NewCORSMiddleware().Handle(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
