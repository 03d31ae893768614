package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	lists := rg.Group("/lists")
	{
		lists.POST("", h.Create)
		lists.GET("", h.List)
		lists.GET("/:id", h.Detail)
		lists.PUT("/:id", h.Update)
		lists.DELETE("/:id", h.Delete)
	}
}
