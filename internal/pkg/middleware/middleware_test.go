package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/campusride/internal/pkg/constants"
	jwtpkg "github.com/piresc/campusride/internal/pkg/jwt"
	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testJWTConfig = models.JWTConfig{Secret: "middleware-test-secret", Issuer: "campusride-test"}

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocations) Exists(_ context.Context, key string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.revoked[key], nil
}

func issueToken(t *testing.T, userID uuid.UUID, role, jti string) string {
	t.Helper()
	claims := jwtpkg.Claims{
		UserID: userID.String(),
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    testJWTConfig.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTConfig.Secret))
	require.NoError(t, err)
	return token
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	valid := issueToken(t, userID, "STUDENT", "jti-ok")
	revokedToken := issueToken(t, userID, "rider", "jti-revoked")

	store := &fakeRevocations{revoked: map[string]bool{"auth:revoked:jti-revoked": true}}

	tests := []struct {
		name       string
		header     string
		store      RevocationStore
		wantStatus int
	}{
		{name: "missing header", header: "", store: store, wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, store: store, wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", store: store, wantStatus: http.StatusUnauthorized},
		{name: "revoked token", header: "Bearer " + revokedToken, store: store, wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + valid, store: store, wantStatus: http.StatusOK},
		{name: "store failure is not fatal", header: "Bearer " + valid, store: &fakeRevocations{err: errors.New("redis down")}, wantStatus: http.StatusOK},
		{name: "no store", header: "Bearer " + revokedToken, store: nil, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var got models.Principal
			handler := JWTAuthMiddleware(testJWTConfig, tt.store)(func(c echo.Context) error {
				p, ok := PrincipalFrom(c)
				require.True(t, ok)
				got = p
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, got.UserID)
				assert.Equal(t, models.RoleRider, got.Role)
				assert.Equal(t, userID, c.Get(constants.ContextKeyUserID))
				assert.Equal(t, "rider", c.Get(constants.ContextKeyUserRole))
			}
		})
	}
}

func TestPrincipalFrom_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := PrincipalFrom(c)
	assert.False(t, ok)
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	zl := &logger.ZapLogger{Logger: zap.New(core)}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "user-7")

	handler := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
		panic("nil map write")
	})

	assert.NotPanics(t, func() {
		assert.NoError(t, handler(c))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "user-7", fields["user_id"])
	assert.Equal(t, "/api/v1/requests", fields["path"])
}

func TestNewRelicMiddleware_NilAppPassesThrough(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	called := false

	handler := NewRelicMiddleware(nil)(func(c echo.Context) error {
		called = true
		AddAttribute(c, "k", "v")
		NoticeError(c, errors.New("ignored"))
		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
}

func TestRateLimiterMiddleware(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	e := echo.New()
	limiter := RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "ratelimit:tracking",
		Limit:       2,
		Period:      time.Minute,
	})
	handler := limiter(func(c echo.Context) error { return c.NoContent(http.StatusCreated) })

	principal := models.Principal{UserID: uuid.New(), Role: models.RoleDriver}
	call := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
		c.SetPath("/api/v1/rides/:rideID/tracking")
		c.Set(constants.ContextKeyPrincipal, principal)
		require.NoError(t, handler(c))
		return rec
	}

	assert.Equal(t, http.StatusCreated, call().Code)
	assert.Equal(t, http.StatusCreated, call().Code)

	rec := call()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusCreated, call().Code)
}

func TestRateLimiterMiddleware_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	handler := RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: client,
		Key:         "ratelimit:tracking",
		Limit:       1,
		Period:      time.Minute,
	})(func(c echo.Context) error { return c.NoContent(http.StatusCreated) })

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
