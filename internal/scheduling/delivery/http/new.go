package http

import (
	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/scheduling"
	"meeting-scheduler/internal/session"
	pkgLog "meeting-scheduler/pkg/log"
)

// Handler is the public interface for the scheduling HTTP delivery layer.
type Handler interface {
	Connect(c *gin.Context)
	Callback(c *gin.Context)
	Disconnect(c *gin.Context)
	CreateMeeting(c *gin.Context)
	AvailableSlots(c *gin.Context)
}

type handler struct {
	l         pkgLog.Logger
	uc        scheduling.UseCase
	sessionUC session.UseCase
}

// New creates a new HTTP handler for the scheduling domain.
func New(l pkgLog.Logger, uc scheduling.UseCase, sessionUC session.UseCase) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		sessionUC: sessionUC,
	}
}
