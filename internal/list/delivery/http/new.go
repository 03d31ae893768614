package http

import (
	"github.com/gin-gonic/gin"

	"taskpilot/internal/list"
	"taskpilot/pkg/log"
)

// Handler is the public interface for the list HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc list.UseCase
}

// New creates a new HTTP handler for the list domain.
func New(l log.Logger, uc list.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
