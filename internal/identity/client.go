package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is the identity the external provider vouches for. The provider owns
// sign-in entirely; this service only reads the tokens it issues.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client talks to the external identity provider. Token validation happens
// locally against the provider's HS256 signing secret; sign-out is forwarded
// to the provider's logout endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	jwtSecret  []byte
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, jwtSecret, timeout string) (*Client, error) {
	duration, err := time.ParseDuration(timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid identity timeout '%s': %w", timeout, err)
	}

	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		jwtSecret: []byte(jwtSecret),
		httpClient: &http.Client{
			Timeout: duration,
		},
	}, nil
}

// UserFromToken validates a bearer token and extracts the user it was issued
// to. Expired or badly signed tokens are rejected.
func (c *Client) UserFromToken(tokenString string) (*User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	user := &User{}
	if sub, ok := claims["sub"].(string); ok {
		user.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if user.ID == "" && user.Email == "" {
		return nil, fmt.Errorf("token carries no user identity")
	}

	return user, nil
}

// SignOut asks the provider to revoke the session behind the token. Callers
// treat this as fire-and-forget; an error here only means the provider keeps
// the session alive until it expires on its own.
func (c *Client) SignOut(ctx context.Context, token string) error {
	if c.baseURL == "" {
		// No provider configured (local development); nothing to revoke.
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/logout", nil)
	if err != nil {
		return fmt.Errorf("failed to build sign-out request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sign-out request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
	return nil
}
