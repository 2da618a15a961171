package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ForceHTTPS answers any plain-http request with a permanent redirect to the
// same URL under https. Heroku terminates TLS at the router, so the effective
// scheme arrives in X-Forwarded-Proto.
func ForceHTTPS() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.TLS == nil && c.GetHeader("X-Forwarded-Proto") != "https" {
			target := "https://" + c.Request.Host + c.Request.URL.RequestURI()
			c.Redirect(http.StatusMovedPermanently, target)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireConnect guards record-bearing routes: until the Heroku Connect
// schema exists, every request is sent to the welcome page. A catalog probe
// failure is a store-access error, not "not ready".
func (h *Handler) RequireConnect() gin.HandlerFunc {
	return func(c *gin.Context) {
		ready, err := h.Gate.Ready(c.Request.Context())
		if err != nil {
			h.Log.Error("readiness probe failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}
		if !ready {
			c.Redirect(http.StatusFound, "/welcome")
			c.Abort()
			return
		}
		c.Next()
	}
}
