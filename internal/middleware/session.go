package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookieName = "session_id"
	sessionMaxAge     = 30 * 24 * 60 * 60 // 30 days in seconds
	sessionContextKey = "session_id"
)

// SessionMiddleware issues a session cookie so that multiple taps from one
// visit can be correlated.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			// Set cookie for future requests
			c.SetCookie(sessionCookieName, sessionID, sessionMaxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// SessionID returns the session identifier established for this request,
// or an empty string when the middleware is not installed.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

// RequestLogger logs each request with method, path, status and duration.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("%s %s -> %d (%s, ip=%s)",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.ClientIP(),
		)
	}
}
