package http

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taskpilot/pkg/response"
)

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq reads the list filters from the query string.
func (h *handler) processListReq(c *gin.Context) (listTasksReq, error) {
	req := listTasksReq{
		ListID:   c.Query("list_id"),
		Label:    c.Query("label"),
		Priority: c.Query("priority"),
	}

	completed, err := queryBool(c, "completed")
	if err != nil {
		return req, err
	}
	req.Completed = completed

	if req.Limit, err = queryInt(c, "limit"); err != nil {
		return req, err
	}
	if req.Offset, err = queryInt(c, "offset"); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateTaskReq, error) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

// processCompleteReq binds the optional completion body. An absent or empty
// body marks the task done.
func (h *handler) processCompleteReq(c *gin.Context) (completeReq, error) {
	req := completeReq{ID: c.Param("id")}
	if req.ID == "" {
		return req, errMissingID
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}

// processQuickAddReq binds and validates the quick-add request body.
func (h *handler) processQuickAddReq(c *gin.Context) (quickAddReq, error) {
	var req quickAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processParseReq binds and validates the parse preview request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSearchReq reads the search query string.
func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	req := searchReq{Query: c.Query("q")}
	var err error
	if req.Limit, err = queryInt(c, "limit"); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSuggestReq reads the suggestion filters from the query string.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	req := suggestReq{Priority: c.Query("priority")}

	date, err := queryTime(c, "date")
	if err != nil {
		return req, err
	}
	req.PreferredDate = date

	if req.DurationMinutes, err = queryInt(c, "duration_minutes"); err != nil {
		return req, err
	}
	return req, nil
}

// processConflictReq binds and validates the conflict check request body.
func (h *handler) processConflictReq(c *gin.Context) (conflictReq, error) {
	var req conflictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processNextAvailableReq reads the next-available filters from the query string.
func (h *handler) processNextAvailableReq(c *gin.Context) (nextAvailableReq, error) {
	var req nextAvailableReq

	from, err := queryTime(c, "from")
	if err != nil {
		return req, err
	}
	req.From = from

	if req.DurationMinutes, err = queryInt(c, "duration_minutes"); err != nil {
		return req, err
	}
	return req, nil
}

// processAddSubtaskReq binds and validates the subtask request body + URI param.
func (h *handler) processAddSubtaskReq(c *gin.Context) (addSubtaskReq, error) {
	var req addSubtaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

// processToggleSubtaskReq binds and validates the toggle request body + URI param.
func (h *handler) processToggleSubtaskReq(c *gin.Context) (toggleSubtaskReq, error) {
	var req toggleSubtaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

// processAddAttachmentReq binds and validates the attachment request body + URI param.
func (h *handler) processAddAttachmentReq(c *gin.Context) (addAttachmentReq, error) {
	var req addAttachmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, errMissingID
	}
	return req, req.validate()
}

// --- query parsing helpers ---

func queryInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return v, nil
}

func queryBool(c *gin.Context, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a boolean", key)
	}
	return &v, nil
}

// queryTime accepts the same layouts request bodies do, so clients can use
// one datetime format throughout.
func queryTime(c *gin.Context, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{response.DateTimeFormat, time.RFC3339, response.DateFormat} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s is not a valid time", key)
}
