package handler

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	flashSuccess = "success"
	flashDanger  = "danger"
)

// Flash is a one-shot user notice rendered on the next page.
type Flash struct {
	Category string
	Message  string
}

func addFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	_ = session.Save()
}

// takeFlashes drains all pending notices for rendering.
func takeFlashes(c *gin.Context) []Flash {
	session := sessions.Default(c)
	var flashes []Flash
	for _, category := range []string{flashSuccess, flashDanger} {
		for _, v := range session.Flashes(category) {
			if msg, ok := v.(string); ok {
				flashes = append(flashes, Flash{Category: category, Message: msg})
			}
		}
	}
	_ = session.Save()
	return flashes
}
