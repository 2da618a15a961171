package handler

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var herokuAppPattern = regexp.MustCompile(`^([\w-]+)\.herokuapp\.com`)

// Welcome renders setup instructions for Heroku Connect, with a deep link to
// the app's resources dashboard. Once the connection exists the page is no
// longer reachable and redirects home.
func (h *Handler) Welcome(c *gin.Context) {
	ready, err := h.Gate.Ready(c.Request.Context())
	if err != nil {
		h.Log.Error("readiness probe failed", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	if ready {
		c.Redirect(http.StatusFound, "/")
		return
	}

	// The app name is the first label of the Heroku hostname.
	var appName string
	if m := herokuAppPattern.FindStringSubmatch(c.Request.Host); m != nil {
		appName = m[1]
	}
	resourceURL := fmt.Sprintf("https://dashboard.heroku.com/apps/%s/resources", appName)

	c.HTML(http.StatusOK, "welcome.html", gin.H{
		"ResourceURL": resourceURL,
	})
}
