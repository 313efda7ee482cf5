package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// TokenCookie holds the session JWT.
	TokenCookie = "token"
	// EmailContextKey is set to the authenticated user's email.
	EmailContextKey = "email"
)

// TokenValidator returns the subject of a valid token.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// RequireLogin redirects to /login unless the token cookie is valid.
func RequireLogin(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TokenCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		email, err := tokens.ValidateToken(token)
		if err != nil {
			c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(EmailContextKey, email)
		c.Next()
	}
}
