package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	pkgAuth "github.com/jayeshsingh-11/creative-cascade/internal/pkg/auth"
)

const (
	// SessionContextKey is a gin context key for the authenticated session.
	SessionContextKey = "session"
	authCookieName    = "cascade_token"
)

// TokenParser validates a token and returns the session it carries.
type TokenParser interface {
	ParseToken(token string) (pkgAuth.Session, error)
}

// AuthRequired ensures the request carries a valid session token.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		session, err := parser.ParseToken(token)
		if err != nil {
			if err == pkgAuth.ErrInvalidToken {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(SessionContextKey, session)
		c.Next()
	}
}

// RequireRole gates a route group to one role. It must run after
// AuthRequired.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(SessionContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		session, _ := val.(pkgAuth.Session)
		if session.Role != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the auth token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
