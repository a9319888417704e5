// Package auth extracts the client session from the bearer token minted by
// the identity provider. The portal only consumes three claims: subject
// (client id), name, and email.
package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/blacknovastudio/briefing-portal/internal/briefing"
)

const sessionContextKey = "portal.session"

type sessionClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Middleware validates the Authorization bearer token and injects the
// resulting session into the request context. Requests without a valid token
// get a 401.
func Middleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		var claims sessionClaims
		token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid || claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(sessionContextKey, briefing.Session{
			ClientID: claims.Subject,
			Name:     claims.Name,
			Email:    claims.Email,
		})
		c.Next()
	}
}

// SessionFrom returns the session injected by Middleware.
func SessionFrom(c *gin.Context) (briefing.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return briefing.Session{}, false
	}
	s, ok := v.(briefing.Session)
	return s, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
