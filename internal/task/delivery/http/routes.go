package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Static
// segments (quick-add, parse, search) must stay distinct from the :id
// wildcard; gin resolves them with static-first priority.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.POST("/quick-add", h.QuickAdd)
		tasks.POST("/parse", h.ParsePreview)
		tasks.GET("/search", h.Search)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/complete", h.Complete)
		tasks.POST("/:id/subtasks", h.AddSubtask)
		tasks.POST("/:id/subtasks/toggle", h.ToggleSubtask)
		tasks.POST("/:id/attachments", h.AddAttachment)
		tasks.DELETE("/:id/attachments/:attachmentId", h.DeleteAttachment)
	}

	schedule := rg.Group("/schedule")
	{
		schedule.GET("/suggestions", h.Suggest)
		schedule.POST("/conflicts", h.CheckConflict)
		schedule.GET("/next-available", h.NextAvailable)
	}
}
