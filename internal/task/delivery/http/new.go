package http

import (
	"github.com/gin-gonic/gin"

	"taskpilot/internal/task"
	"taskpilot/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Complete(c *gin.Context)

	QuickAdd(c *gin.Context)
	ParsePreview(c *gin.Context)
	Search(c *gin.Context)

	Suggest(c *gin.Context)
	CheckConflict(c *gin.Context)
	NextAvailable(c *gin.Context)

	AddSubtask(c *gin.Context)
	ToggleSubtask(c *gin.Context)
	AddAttachment(c *gin.Context)
	DeleteAttachment(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
