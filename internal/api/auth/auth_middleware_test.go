package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderday/go-hangout-itinerary/internal/types"
)

func signTestToken(t *testing.T, cfg jwtTestOverrides) string {
	t.Helper()
	now := time.Now()
	claims := types.Claims{
		UserID:   "user-123",
		Username: "alice",
		Email:    "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			Issuer:    cfg.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.secret))
	require.NoError(t, err)
	return signed
}

type jwtTestOverrides struct {
	secret string
	issuer string
	ttl    time.Duration
}

func runAuthenticated(t *testing.T, authHeader string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var capturedUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedUserID, _ = GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	middleware := Authenticate(slog.Default(), testJWTConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/itineraries", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware(next).ServeHTTP(rr, req)
	return rr, capturedUserID
}

func TestAuthenticateValidToken(t *testing.T) {
	token := signTestToken(t, jwtTestOverrides{secret: "test-secret-key", issuer: "hangout-planner-test", ttl: time.Hour})

	rr, userID := runAuthenticated(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-123", userID)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	rr, _ := runAuthenticated(t, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Authorization header required")
}

func TestAuthenticateBadHeaderFormat(t *testing.T) {
	rr, _ := runAuthenticated(t, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Bearer")
}

func TestAuthenticateExpiredToken(t *testing.T) {
	token := signTestToken(t, jwtTestOverrides{secret: "test-secret-key", issuer: "hangout-planner-test", ttl: -time.Minute})

	rr, _ := runAuthenticated(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "expired")
}

func TestAuthenticateWrongSecret(t *testing.T) {
	token := signTestToken(t, jwtTestOverrides{secret: "some-other-secret", issuer: "hangout-planner-test", ttl: time.Hour})

	rr, _ := runAuthenticated(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticateIssuerMismatch(t *testing.T) {
	token := signTestToken(t, jwtTestOverrides{secret: "test-secret-key", issuer: "someone-else", ttl: time.Hour})

	rr, _ := runAuthenticated(t, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "issuer")
}

func TestAuthenticateMalformedToken(t *testing.T) {
	rr, _ := runAuthenticated(t, "Bearer not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticatePanicsOnEmptySecret(t *testing.T) {
	assert.Panics(t, func() {
		cfg := testJWTConfig()
		cfg.SecretKey = ""
		Authenticate(slog.Default(), cfg)
	})
}
