package middlewares

import (
	"healthpredict-client/internal/app/config"
	"healthpredict-client/internal/app/contracts"
	"healthpredict-client/internal/pkg/constvars"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSessionStore struct {
	contracts.SessionStore
	authenticated bool
}

func (s *stubSessionStore) IsAuthenticated() bool { return s.authenticated }

func newTestMiddlewares(authenticated bool) *Middlewares {
	return &Middlewares{
		Log:            zap.NewNop(),
		SessionStore:   &stubSessionStore{authenticated: authenticated},
		InternalConfig: &config.InternalConfig{},
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("protected"))
	})
}

func TestRouteGuardPassesAuthenticatedRequests(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	rr := httptest.NewRecorder()

	newTestMiddlewares(true).RouteGuard(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "protected", rr.Body.String())
}

func TestRouteGuardRedirectsBrowserNavigation(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	req.Header.Set(constvars.HeaderAccept, "text/html,application/xhtml+xml")
	rr := httptest.NewRecorder()

	newTestMiddlewares(false).RouteGuard(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, constvars.LoginEntryPath, rr.Header().Get(constvars.HeaderLocation))
}

func TestRouteGuardRejectsAPICallsWithJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/v1/assessment", nil)
	rr := httptest.NewRecorder()

	newTestMiddlewares(false).RouteGuard(okHandler()).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))
	assert.True(t, strings.Contains(rr.Body.String(), `"success":false`))
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	mw := newTestMiddlewares(true)

	var seenInContext string
	handler := mw.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenInContext, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	req := httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.True(t, strings.HasPrefix(seenInContext, constvars.REQUEST_ID_PREFIX))
	assert.Equal(t, seenInContext, rr.Header().Get(constvars.HeaderXRequestID))
}

func TestRequestIDEchoedWhenProvided(t *testing.T) {
	mw := newTestMiddlewares(true)

	var seenInContext string
	handler := mw.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenInContext, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	req := httptest.NewRequest("GET", "/api/v1/dashboard", nil)
	req.Header.Set(constvars.HeaderXRequestID, "client-supplied-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "client-supplied-id", seenInContext)
	assert.Equal(t, "client-supplied-id", rr.Header().Get(constvars.HeaderXRequestID))
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute, time.Minute)
	handler := limiter.Limit(okHandler())

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	req := httptest.NewRequest("POST", "/api/v1/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	// a different source address is unaffected
	req = httptest.NewRequest("POST", "/api/v1/auth/login", nil)
	req.RemoteAddr = "10.0.0.2:12345"
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
}
