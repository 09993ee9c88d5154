package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"EDMS/internal/identity"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	identity *identity.Client
}

func NewAuthHandler(client *identity.Client) *AuthHandler {
	return &AuthHandler{identity: client}
}

// Middleware resolves the current user from a bearer token and stores it on
// the context for downstream handlers and the activity log. Requests without
// a valid token pass through anonymously; authorization is the external
// provider's concern.
func (h *AuthHandler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			if user, err := h.identity.UserFromToken(token); err == nil {
				c.Set("user_id", user.ID)
				c.Set("user_email", user.Email)
				c.Set("auth_token", token)
			}
		}
		c.Next()
	}
}

// Me returns the signed-in user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	userEmail := c.GetString("user_email")
	if userID == "" && userEmail == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    userID,
			"email": userEmail,
		},
	})
}

// SignOut forwards sign-out to the identity provider, fire-and-forget: the
// client's session is done either way, so the response doesn't wait on the
// provider.
// POST /api/v1/auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	token := c.GetString("auth_token")
	if token != "" {
		go func(tok string) {
			if err := h.identity.SignOut(context.Background(), tok); err != nil {
				log.Printf("Sign-out delegation failed: %v", err)
			}
		}(token)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
