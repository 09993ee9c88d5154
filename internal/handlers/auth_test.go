package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"EDMS/internal/identity"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const authTestSecret = "auth-test-secret"

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	client, err := identity.NewClient("", "", authTestSecret, "5s")
	require.NoError(t, err)

	handler := NewAuthHandler(client)

	r := gin.New()
	r.Use(handler.Middleware())
	r.GET("/api/v1/auth/me", handler.Me)
	r.POST("/api/v1/auth/signout", handler.SignOut)
	return r
}

func bearerToken(t *testing.T) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "user-123",
		"email": "someone@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(authTestSecret))
	require.NoError(t, err)
	return signed
}

func TestAuthMe(t *testing.T) {
	r := newAuthRouter(t)

	t.Run("signed in", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+bearerToken(t))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		user := body["user"].(map[string]interface{})
		assert.Equal(t, "user-123", user["id"])
		assert.Equal(t, "someone@example.com", user["email"])
	})

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad token passes through anonymously", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthSignOut(t *testing.T) {
	r := newAuthRouter(t)

	// Sign-out always answers OK, signed in or not.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
