package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipsy/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	claims *ds.JWTClaims
	err    error
	seen   string
}

func (f *fakeVerifier) VerifyToken(token string) (*ds.JWTClaims, error) {
	f.seen = token
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func newAuthRouter(verifier TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(verifier), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	return router
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	router := newAuthRouter(&fakeVerifier{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No token provided")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router := newAuthRouter(&fakeVerifier{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	router := newAuthRouter(&fakeVerifier{err: errors.New("expired")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	verifier := &fakeVerifier{claims: &ds.JWTClaims{UserID: 7, Role: "manager"}}
	router := newAuthRouter(verifier)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "good-token", verifier.seen)
	assert.Contains(t, rec.Body.String(), `"user_id":7`)
	assert.Contains(t, rec.Body.String(), `"role":"manager"`)
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	verifier := &fakeVerifier{claims: &ds.JWTClaims{UserID: 3, Role: "user"}}
	router := newAuthRouter(verifier)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "cookie-token"})
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cookie-token", verifier.seen)
}
