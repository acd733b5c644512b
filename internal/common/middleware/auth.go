package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionTokenKey = "session_token"

// SessionToken reads the session token from "Authorization: Bearer <token>" or
// the token query parameter. A missing token is not rejected here.
func SessionToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if h := c.GetHeader("Authorization"); h != "" {
			if scheme, value, ok := strings.Cut(h, " "); ok && strings.EqualFold(scheme, "Bearer") {
				token = strings.TrimSpace(value)
			}
		}
		if token == "" {
			token = c.Query("token")
		}

		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

// GetSessionToken returns the token found by SessionToken, if any.
func GetSessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}
