package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"medguardian/internal/ports/auth"

	"github.com/stretchr/testify/assert"
)

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (v stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != "good" {
		return auth.Claims{}, errors.New("bad token")
	}
	return v.claims, v.err
}

func captureUser(t *testing.T, mw func(http.Handler) http.Handler, req *http.Request) string {
	t.Helper()
	var got string
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserID(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestAuthContext_DevHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", " user-1 ")

	assert.Equal(t, "user-1", captureUser(t, AuthContext(nil), req))
}

func TestAuthContext_DevHeaderIgnoredWithVerifier(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "user-1")

	assert.Equal(t, "", captureUser(t, AuthContext(stubVerifier{}), req))
}

func TestAuthContext_BearerToken(t *testing.T) {
	v := stubVerifier{claims: auth.Claims{UserID: "user-2"}}

	ok := httptest.NewRequest(http.MethodGet, "/", nil)
	ok.Header.Set("Authorization", "Bearer good")
	assert.Equal(t, "user-2", captureUser(t, AuthContext(v), ok))

	bad := httptest.NewRequest(http.MethodGet, "/", nil)
	bad.Header.Set("Authorization", "Bearer bad")
	assert.Equal(t, "", captureUser(t, AuthContext(v), bad))
}

func TestAuthContext_AnonymousClaimsIgnored(t *testing.T) {
	v := stubVerifier{claims: auth.Claims{UserID: "  ", Email: "x@example.com"}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	assert.Equal(t, "", captureUser(t, AuthContext(v), req))
}

func TestRequireUser(t *testing.T) {
	h := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithClaims(req.Context(), auth.Claims{UserID: "u"}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLocation(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "UTC", Location(req).String())

	req.Header.Set("X-Timezone", "America/Lima")
	assert.Equal(t, "America/Lima", Location(req).String())

	req.Header.Set("X-Timezone", "Not/AZone")
	assert.Equal(t, "UTC", Location(req).String())
}
