package auth

import (
	"context"
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	"github.com/gin-gonic/gin"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// TokenVerifier turns a bearer token into a verified identity. The live
// implementation is Firebase's auth client; mock mode uses StaticVerifier.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// NewFirebaseVerifier returns the live verifier backed by Firebase Auth.
func NewFirebaseVerifier(ctx context.Context, firebaseApp *firebase.App) (TokenVerifier, error) {
	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return authClient, nil
}

// StaticVerifier accepts any token and always yields the configured local
// identity. Mock mode only.
type StaticVerifier struct {
	UID string
}

func (v StaticVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return &auth.Token{UID: v.UID}, nil
}

func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := verifier.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid ID token"})
			c.Abort()
			return
		}

		// Attach token to the context
		c.Set("token", token)

		c.Next()
	}
}

// AdminMiddleware requires AuthMiddleware to have run first and rejects
// anyone whose profile does not carry the admin role.
func AdminMiddleware(store quest.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.MustGet("token").(*auth.Token)

		user, err := store.GetUser(c.Request.Context(), token.UID)
		if err != nil || user.Role != quest.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
