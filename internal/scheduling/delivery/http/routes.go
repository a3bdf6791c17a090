package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	oauth := rg.Group("/oauth")
	{
		oauth.GET("/connect", h.Connect)
		oauth.GET("/callback", h.Callback)
		oauth.DELETE("/connection", h.Disconnect)
	}

	rg.POST("/meetings", h.CreateMeeting)
	rg.POST("/slots", h.AvailableSlots)
}
