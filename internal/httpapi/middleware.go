package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// SessionCookie carries the opaque id that scopes a browser's cart.
	SessionCookie = "fyf_cart_session"

	ownerIDKey       = "owner_id"
	sessionMaxAgeSec = 365 * 24 * 60 * 60
)

// session resolves the cart owner from the session cookie, minting a new id
// when the cookie is missing or malformed.
func session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(ownerID) != nil {
			ownerID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, ownerID, sessionMaxAgeSec, "/", "", false, true)
		}

		c.Set(ownerIDKey, ownerID)
		c.Next()
	}
}

func ownerID(c *gin.Context) string {
	return c.GetString(ownerIDKey)
}

// requestLogger logs one line per request, at a level chosen by status code.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		switch {
		case status >= 500:
			logger.Error("http request", fields...)
		case status >= 400:
			logger.Warn("http request", fields...)
		default:
			logger.Info("http request", fields...)
		}
	}
}
