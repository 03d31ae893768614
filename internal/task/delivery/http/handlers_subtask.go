package http

import (
	"github.com/gin-gonic/gin"

	"taskpilot/internal/task"
	"taskpilot/pkg/response"
)

// AddSubtask godoc
// @Summary     Add a checklist item
// @Description Appends a subtask to the task's checklist.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body addSubtaskReq true "Subtask data"
// @Success     200 {object} taskOnlyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/subtasks [POST]
func (h *handler) AddSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddSubtaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddSubtask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddSubtask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskOnlyResp(output.Task))
}

// ToggleSubtask godoc
// @Summary     Toggle checklist items
// @Description Sets subtask done states. subtask_id flips one item exactly; match flips every item whose title contains the text, case-insensitively.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Task ID"
// @Param       body body toggleSubtaskReq true "Which subtasks, and the target state"
// @Success     200 {object} toggleSubtaskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found - no subtask matched"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/subtasks/toggle [POST]
func (h *handler) ToggleSubtask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processToggleSubtaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ToggleSubtask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ToggleSubtask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newToggleSubtaskResp(output))
}

// AddAttachment godoc
// @Summary     Attach a link to a task
// @Description Links a file or URL to the task. The name defaults to the URL when omitted.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string           true "Task ID"
// @Param       body body addAttachmentReq true "Attachment data"
// @Success     200 {object} taskOnlyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/attachments [POST]
func (h *handler) AddAttachment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddAttachmentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AddAttachment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddAttachment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskOnlyResp(output.Task))
}

// DeleteAttachment godoc
// @Summary     Remove an attachment
// @Description Removes an attachment from the task by its ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id           path string true "Task ID"
// @Param       attachmentId path string true "Attachment ID"
// @Success     200 {object} taskOnlyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/attachments/{attachmentId} [DELETE]
func (h *handler) DeleteAttachment(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	attachmentID := c.Param("attachmentId")
	if id == "" || attachmentID == "" {
		response.Error(c, errMissingAttachment)
		return
	}

	output, err := h.uc.DeleteAttachment(ctx, task.DeleteAttachmentInput{
		TaskID:       id,
		AttachmentID: attachmentID,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteAttachment: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskOnlyResp(output.Task))
}
