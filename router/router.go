package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	csrf "github.com/utrack/gin-csrf"

	"github.com/shawalli/contact-card/config"
	"github.com/shawalli/contact-card/handler"
)

// Setup builds the gin engine: HTTPS enforcement, cookie sessions for flash
// messages, CSRF protection on form posts, and the route table. Every
// record-bearing route sits behind the Heroku Connect readiness guard.
func Setup(cfg *config.Config, h *handler.Handler) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	r.Use(handler.ForceHTTPS())
	r.Use(sessions.Sessions("contactcard", cookie.NewStore([]byte(cfg.SecretKey))))
	r.Use(csrf.Middleware(csrf.Options{
		Secret: cfg.SecretKey,
		ErrorFunc: func(c *gin.Context) {
			c.String(http.StatusBadRequest, "CSRF token mismatch")
			c.Abort()
		},
	}))
	r.Use(func(c *gin.Context) {
		c.Set(handler.CSRFTokenKey, csrf.GetToken(c))
		c.Next()
	})

	r.GET("/welcome", h.Welcome)

	guarded := r.Group("/", h.RequireConnect())
	guarded.GET("/", h.Index)
	guarded.GET("/contact/:sfid", h.ShowContact)
	guarded.POST("/contact/:sfid", h.UpdateContact)
	guarded.GET("/contacts.xlsx", h.ExportContacts)

	return r
}
