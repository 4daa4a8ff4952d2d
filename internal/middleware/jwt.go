package middleware

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"citizen_registry/internal/service" // Auth errors and principal

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// Context keys set by JWTAuthMiddleware
const (
	PrincipalKey = "principal"
	UserIDKey    = "userID"
)

// Authorizer verifies a bearer token and returns its principal
type Authorizer interface {
	Authorize(token string) (*service.Principal, error)
}

// JWTAuthMiddleware validates JWT tokens and stores the caller's principal in the context.
// A missing token is answered with 401 and an invalid or expired one with 403.
func JWTAuthMiddleware(auth Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")            // Get Authorization header
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		if authHeader == "" || tokenStr == authHeader {
			tokenStr = ""
		}

		principal, err := auth.Authorize(tokenStr)
		if err != nil {
			if errors.Is(err, service.ErrMissingToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"path":  c.Request.URL.Path,
				"ip":    c.ClientIP(),
				"error": err,
			}).Debug("rejected bearer token")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(PrincipalKey, principal)     // Store principal in context
		c.Set(UserIDKey, principal.UserID) // Store userID in context
		c.Next()                           // Proceed to the next handler
	}
}

// PrincipalFrom returns the principal stored by JWTAuthMiddleware
func PrincipalFrom(c *gin.Context) (*service.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*service.Principal)
	return p, ok
}
