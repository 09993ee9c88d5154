package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-signing-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestUserFromToken(t *testing.T) {
	client, err := NewClient("", "", testSecret, "5s")
	require.NoError(t, err)

	t.Run("valid token yields the user", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub":   "user-123",
			"email": "someone@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		user, err := client.UserFromToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", user.ID)
		assert.Equal(t, "someone@example.com", user.Email)
	})

	t.Run("wrong signing secret is rejected", func(t *testing.T) {
		token := signToken(t, "some-other-secret", jwt.MapClaims{
			"sub": "user-123",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := client.UserFromToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": "user-123",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err := client.UserFromToken(token)
		assert.Error(t, err)
	})

	t.Run("token without identity claims is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := client.UserFromToken(token)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := client.UserFromToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestNewClientBadTimeout(t *testing.T) {
	_, err := NewClient("", "", testSecret, "soon")
	assert.Error(t, err)
}

func TestSignOut(t *testing.T) {
	t.Run("forwards token and api key to the provider", func(t *testing.T) {
		var gotPath, gotAuth, gotAPIKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotAPIKey = r.Header.Get("apikey")
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "anon-key", testSecret, "5s")
		require.NoError(t, err)

		require.NoError(t, client.SignOut(context.Background(), "some-token"))
		assert.Equal(t, "/auth/v1/logout", gotPath)
		assert.Equal(t, "Bearer some-token", gotAuth)
		assert.Equal(t, "anon-key", gotAPIKey)
	})

	t.Run("provider error surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "", testSecret, "5s")
		require.NoError(t, err)

		assert.Error(t, client.SignOut(context.Background(), "some-token"))
	})

	t.Run("no provider configured is a no-op", func(t *testing.T) {
		client, err := NewClient("", "", testSecret, "5s")
		require.NoError(t, err)
		assert.NoError(t, client.SignOut(context.Background(), "some-token"))
	})
}
