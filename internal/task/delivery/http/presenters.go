package http

import (
	"strings"
	"time"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	"taskpilot/pkg/quickadd"
	"taskpilot/pkg/response"
	"taskpilot/pkg/schedule"
)

// --- Request DTOs ---

type createTaskReq struct {
	ListID          string             `json:"list_id"`
	Title           string             `json:"title" binding:"required,min=1,max=500"`
	Description     string             `json:"description"`
	DueDate         *response.DateTime `json:"due_date"`
	DurationMinutes int                `json:"duration_minutes" binding:"omitempty,min=0,max=1440"`
	Priority        string             `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Labels          []string           `json:"labels"`
	ReminderAt      *response.DateTime `json:"reminder_at"`
}

func (r createTaskReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errBlankTitle
	}
	return nil
}

func (r createTaskReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		ListID:          r.ListID,
		Title:           r.Title,
		Description:     r.Description,
		DueDate:         timePtr(r.DueDate),
		DurationMinutes: r.DurationMinutes,
		Priority:        r.Priority,
		Labels:          r.Labels,
		ReminderAt:      timePtr(r.ReminderAt),
	}
}

// ---

type listTasksReq struct {
	ListID    string
	Completed *bool
	Label     string
	Priority  string
	Limit     int
	Offset    int
}

func (r listTasksReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		ListID:    r.ListID,
		Completed: r.Completed,
		Label:     r.Label,
		Priority:  r.Priority,
		Limit:     r.Limit,
		Offset:    r.Offset,
	}
}

// ---

// updateTaskReq carries a partial update. Pointer fields distinguish
// "absent" from "set to empty"; the clear flags reset optional dates.
type updateTaskReq struct {
	ID              string             `json:"-"` // populated from URI param
	ListID          *string            `json:"list_id"`
	Title           string             `json:"title" binding:"omitempty,max=500"`
	Description     *string            `json:"description"`
	DueDate         *response.DateTime `json:"due_date"`
	ClearDueDate    bool               `json:"clear_due_date"`
	DurationMinutes int                `json:"duration_minutes" binding:"omitempty,min=0,max=1440"`
	Priority        string             `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Labels          []string           `json:"labels"`
	ReminderAt      *response.DateTime `json:"reminder_at"`
	ClearReminder   bool               `json:"clear_reminder"`
}

func (r updateTaskReq) validate() error { return nil }

func (r updateTaskReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:              r.ID,
		ListID:          r.ListID,
		Title:           r.Title,
		Description:     r.Description,
		DueDate:         timePtr(r.DueDate),
		ClearDueDate:    r.ClearDueDate,
		DurationMinutes: r.DurationMinutes,
		Priority:        r.Priority,
		Labels:          r.Labels,
		ReminderAt:      timePtr(r.ReminderAt),
		ClearReminder:   r.ClearReminder,
	}
}

// ---

type completeReq struct {
	ID        string `json:"-"`
	Completed *bool  `json:"completed"` // omitted means mark done
}

func (r completeReq) toInput() task.CompleteTaskInput {
	return task.CompleteTaskInput{
		ID:        r.ID,
		Completed: r.Completed == nil || *r.Completed,
	}
}

// ---

type quickAddReq struct {
	Text   string             `json:"text" binding:"required"`
	ListID string             `json:"list_id"`
	When   *response.DateTime `json:"when"` // reference time, server clock when omitted
}

func (r quickAddReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errBlankText
	}
	return nil
}

func (r quickAddReq) toInput() task.QuickAddInput {
	return task.QuickAddInput{
		RawText: r.Text,
		ListID:  r.ListID,
		When:    timeVal(r.When),
	}
}

// ---

type parseReq struct {
	Text string             `json:"text" binding:"required"`
	When *response.DateTime `json:"when"`
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errBlankText
	}
	return nil
}

func (r parseReq) toInput() task.ParsePreviewInput {
	return task.ParsePreviewInput{
		RawText: r.Text,
		When:    timeVal(r.When),
	}
}

// ---

type searchReq struct {
	Query string
	Limit int
}

func (r searchReq) validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return errBlankQuery
	}
	return nil
}

func (r searchReq) toInput() task.SearchInput {
	return task.SearchInput{Query: r.Query, Limit: r.Limit}
}

// ---

type suggestReq struct {
	PreferredDate   *time.Time
	DurationMinutes int
	Priority        string
}

func (r suggestReq) toInput() task.SuggestInput {
	return task.SuggestInput{
		PreferredDate:   r.PreferredDate,
		DurationMinutes: r.DurationMinutes,
		Priority:        r.Priority,
	}
}

// ---

type conflictReq struct {
	Start           response.DateTime `json:"start"`
	DurationMinutes int               `json:"duration_minutes" binding:"omitempty,min=0,max=1440"`
	ExcludeTaskID   string            `json:"exclude_task_id"`
}

func (r conflictReq) validate() error {
	if time.Time(r.Start).IsZero() {
		return errMissingStart
	}
	return nil
}

func (r conflictReq) toInput() task.CheckConflictInput {
	return task.CheckConflictInput{
		Start:           time.Time(r.Start),
		DurationMinutes: r.DurationMinutes,
		ExcludeTaskID:   r.ExcludeTaskID,
	}
}

// ---

type nextAvailableReq struct {
	From            *time.Time
	DurationMinutes int
}

func (r nextAvailableReq) toInput() task.NextAvailableInput {
	return task.NextAvailableInput{
		From:            timeOrZero(r.From),
		DurationMinutes: r.DurationMinutes,
	}
}

// ---

type addSubtaskReq struct {
	TaskID string `json:"-"`
	Title  string `json:"title" binding:"required,min=1,max=500"`
}

func (r addSubtaskReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errBlankTitle
	}
	return nil
}

func (r addSubtaskReq) toInput() task.AddSubtaskInput {
	return task.AddSubtaskInput{TaskID: r.TaskID, Title: r.Title}
}

// ---

type toggleSubtaskReq struct {
	TaskID    string `json:"-"`
	SubtaskID string `json:"subtask_id"`
	Match     string `json:"match"`
	Done      *bool  `json:"done"` // omitted means mark done
}

func (r toggleSubtaskReq) validate() error {
	if r.SubtaskID == "" && strings.TrimSpace(r.Match) == "" {
		return errMissingSubtaskRef
	}
	return nil
}

func (r toggleSubtaskReq) toInput() task.ToggleSubtaskInput {
	return task.ToggleSubtaskInput{
		TaskID:    r.TaskID,
		SubtaskID: r.SubtaskID,
		Match:     r.Match,
		Done:      r.Done == nil || *r.Done,
	}
}

// ---

type addAttachmentReq struct {
	TaskID string `json:"-"`
	Name   string `json:"name" binding:"omitempty,max=255"`
	URL    string `json:"url" binding:"required"`
}

func (r addAttachmentReq) validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return errBlankURL
	}
	return nil
}

func (r addAttachmentReq) toInput() task.AddAttachmentInput {
	return task.AddAttachmentInput{TaskID: r.TaskID, Name: r.Name, URL: r.URL}
}

// --- Response DTOs ---

type subtaskResp struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type attachmentResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type progressResp struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Percent int `json:"percent"`
}

type taskResp struct {
	ID              string           `json:"id"`
	ListID          string           `json:"list_id,omitempty"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	DueDate         *time.Time       `json:"due_date,omitempty"`
	DurationMinutes int              `json:"duration_minutes,omitempty"`
	Priority        string           `json:"priority"`
	Labels          []string         `json:"labels,omitempty"`
	Subtasks        []subtaskResp    `json:"subtasks,omitempty"`
	Attachments     []attachmentResp `json:"attachments,omitempty"`
	ReminderAt      *time.Time       `json:"reminder_at,omitempty"`
	Completed       bool             `json:"completed"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:              t.ID,
		ListID:          t.ListID,
		Title:           t.Title,
		Description:     t.Description,
		DueDate:         t.DueDate,
		DurationMinutes: t.DurationMinutes,
		Priority:        string(t.Priority),
		Labels:          t.Labels,
		ReminderAt:      t.ReminderAt,
		Completed:       t.Completed,
		CompletedAt:     t.CompletedAt,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	for _, s := range t.Subtasks {
		resp.Subtasks = append(resp.Subtasks, subtaskResp{ID: s.ID, Title: s.Title, Done: s.Done})
	}
	for _, a := range t.Attachments {
		resp.Attachments = append(resp.Attachments, attachmentResp{
			ID:        a.ID,
			Name:      a.Name,
			URL:       a.URL,
			CreatedAt: a.CreatedAt,
		})
	}
	return resp
}

func newProgressResp(p model.SubtaskProgress) progressResp {
	return progressResp{Total: p.Total, Done: p.Done, Percent: p.Percent}
}

type intentResp struct {
	Title    string     `json:"title"`
	DueDate  *time.Time `json:"due_date,omitempty"`
	Priority string     `json:"priority"`
	Labels   []string   `json:"labels,omitempty"`
}

func newIntentResp(i quickadd.Intent) intentResp {
	return intentResp{
		Title:    i.Title,
		DueDate:  i.DueDate,
		Priority: string(i.Priority),
		Labels:   i.Labels,
	}
}

type createTaskResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createTaskResp {
	return createTaskResp{Task: newTaskResp(out.Task)}
}

type tasksResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit,omitempty"`
	Offset int        `json:"offset,omitempty"`
}

func (h *handler) newTasksResp(out task.ListTasksOutput) tasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return tasksResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailTaskResp struct {
	Task     taskResp     `json:"task"`
	Progress progressResp `json:"progress"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailTaskResp {
	return detailTaskResp{
		Task:     newTaskResp(out.Task),
		Progress: newProgressResp(out.Progress),
	}
}

type updateTaskResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateTaskResp {
	return updateTaskResp{Task: newTaskResp(out.Task)}
}

type completeResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCompleteResp(out task.CompleteTaskOutput) completeResp {
	return completeResp{Task: newTaskResp(out.Task)}
}

type quickAddResp struct {
	Task         taskResp   `json:"task"`
	Parsed       intentResp `json:"parsed"`
	CalendarLink string     `json:"calendar_link,omitempty"`
}

func (h *handler) newQuickAddResp(out task.QuickAddOutput) quickAddResp {
	return quickAddResp{
		Task:         newTaskResp(out.Task),
		Parsed:       newIntentResp(out.Intent),
		CalendarLink: out.CalendarLink,
	}
}

type parseResp struct {
	Parsed intentResp `json:"parsed"`
}

func (h *handler) newParseResp(out task.ParsePreviewOutput) parseResp {
	return parseResp{Parsed: newIntentResp(out.Intent)}
}

type searchHitResp struct {
	Task  taskResp `json:"task"`
	Score int      `json:"score"`
}

type searchResp struct {
	Results []searchHitResp `json:"results"`
	Count   int             `json:"count"`
}

func (h *handler) newSearchResp(out task.SearchOutput) searchResp {
	results := make([]searchHitResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = searchHitResp{Task: newTaskResp(r.Task), Score: r.Score}
	}
	return searchResp{Results: results, Count: out.Count}
}

type suggestionResp struct {
	Time       time.Time `json:"time"`
	Reason     string    `json:"reason"`
	Confidence string    `json:"confidence"`
}

type suggestionsResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
}

func (h *handler) newSuggestionsResp(out task.SuggestOutput) suggestionsResp {
	suggestions := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = newSuggestionResp(s)
	}
	return suggestionsResp{Suggestions: suggestions}
}

func newSuggestionResp(s schedule.Suggestion) suggestionResp {
	return suggestionResp{
		Time:       s.Time,
		Reason:     s.Reason,
		Confidence: string(s.Confidence),
	}
}

type conflictResp struct {
	Conflict bool `json:"conflict"`
}

func (h *handler) newConflictResp(out task.CheckConflictOutput) conflictResp {
	return conflictResp{Conflict: out.Conflict}
}

type nextAvailableResp struct {
	Start *time.Time `json:"start,omitempty"`
	Found bool       `json:"found"`
}

func (h *handler) newNextAvailableResp(out task.NextAvailableOutput) nextAvailableResp {
	resp := nextAvailableResp{Found: out.Found}
	if out.Found {
		start := out.Start
		resp.Start = &start
	}
	return resp
}

type toggleSubtaskResp struct {
	Task     taskResp     `json:"task"`
	Updated  bool         `json:"updated"`
	Count    int          `json:"count"`
	Progress progressResp `json:"progress"`
}

func (h *handler) newToggleSubtaskResp(out task.ToggleSubtaskOutput) toggleSubtaskResp {
	return toggleSubtaskResp{
		Task:     newTaskResp(out.Task),
		Updated:  out.Updated,
		Count:    out.Count,
		Progress: newProgressResp(out.Progress),
	}
}

type taskOnlyResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newTaskOnlyResp(t model.Task) taskOnlyResp {
	return taskOnlyResp{Task: newTaskResp(t)}
}

// --- helpers ---

func timePtr(d *response.DateTime) *time.Time {
	if d == nil {
		return nil
	}
	t := time.Time(*d)
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeVal(d *response.DateTime) time.Time {
	if d == nil {
		return time.Time{}
	}
	return time.Time(*d)
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
