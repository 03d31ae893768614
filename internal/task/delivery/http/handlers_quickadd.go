package http

import (
	"github.com/gin-gonic/gin"

	"taskpilot/pkg/response"
)

// QuickAdd godoc
// @Summary     Create a task from raw text
// @Description Extracts title, due date, priority and labels from a natural text line, persists the task and mirrors scheduled tasks to Google Calendar when configured.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body quickAddReq true "Raw text and options"
// @Success     200 {object} quickAddResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - unknown list"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/quick-add [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.QuickAdd(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newQuickAddResp(output))
}

// ParsePreview godoc
// @Summary     Preview quick-add extraction
// @Description Runs the same extraction quick-add uses without persisting anything, so clients can show what would be created.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Raw text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) ParsePreview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ParsePreview(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ParsePreview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Search godoc
// @Summary     Fuzzy search tasks
// @Description Searches task titles and descriptions with fuzzy matching. Title hits rank above description hits.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       q     query string true  "Search text"
// @Param       limit query int    false "Max results (default: 10)"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSearchResp(output))
}
