package http

import (
	"github.com/gin-gonic/gin"

	"taskpilot/pkg/response"
)

// Suggest godoc
// @Summary     Suggest task times
// @Description Returns confidence-ranked start times inside working hours, planned around stored tasks and calendar events.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       date             query string false "Target day (2006-01-02); default is today or tomorrow"
// @Param       duration_minutes query int    false "Expected working time (default: 60)"
// @Param       priority         query string false "Priority of the task being planned"
// @Success     200 {object} suggestionsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/suggestions [GET]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Suggest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestionsResp(output))
}

// CheckConflict godoc
// @Summary     Check a proposed time for conflicts
// @Description Reports whether the proposed interval overlaps an existing commitment. Back-to-back intervals do not conflict.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body conflictReq true "Proposed interval"
// @Success     200 {object} conflictResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/conflicts [POST]
func (h *handler) CheckConflict(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConflictReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CheckConflict(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CheckConflict: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newConflictResp(output))
}

// NextAvailable godoc
// @Summary     Find the next free start time
// @Description Walks forward from the given time in fixed steps and returns the first conflict-free start.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       from             query string false "Start of the walk (default: now)"
// @Param       duration_minutes query int    false "Expected working time (default: 60)"
// @Success     200 {object} nextAvailableResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/next-available [GET]
func (h *handler) NextAvailable(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNextAvailableReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.NextAvailable(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.NextAvailable: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNextAvailableResp(output))
}
