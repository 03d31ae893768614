package task

import (
	"time"

	"taskpilot/internal/model"
	"taskpilot/pkg/quickadd"
	"taskpilot/pkg/schedule"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	ListID          string
	Title           string
	Description     string
	DueDate         *time.Time
	DurationMinutes int
	Priority        string
	Labels          []string
	ReminderAt      *time.Time
}

type ListTasksInput struct {
	ListID    string
	Completed *bool // nil means both
	Label     string
	Priority  string
	Limit     int
	Offset    int
}

// UpdateTaskInput carries a partial update. Zero-valued fields keep the
// stored value; the Clear flags reset the matching optional field.
type UpdateTaskInput struct {
	ID              string
	ListID          *string // nil keeps, empty string moves to the inbox
	Title           string
	Description     *string // pointer so an empty description can be set
	DueDate         *time.Time
	ClearDueDate    bool
	DurationMinutes int
	Priority        string
	Labels          []string // nil keeps, empty slice clears
	ReminderAt      *time.Time
	ClearReminder   bool
}

type CompleteTaskInput struct {
	ID        string
	Completed bool // false reopens the task
}

type QuickAddInput struct {
	RawText string
	ListID  string
	When    time.Time // reference time for relative dates, zero means now
}

type ParsePreviewInput struct {
	RawText string
	When    time.Time
}

type SuggestInput struct {
	PreferredDate   *time.Time
	DurationMinutes int
	Priority        string
	Now             time.Time // zero means time.Now
}

type CheckConflictInput struct {
	Start           time.Time
	DurationMinutes int
	ExcludeTaskID   string // ignore this task's own slot when rescheduling
}

type NextAvailableInput struct {
	From            time.Time
	DurationMinutes int
}

// SearchInput is the input for fuzzy task search.
type SearchInput struct {
	Query string
	Limit int // max results, default 10
}

type AddSubtaskInput struct {
	TaskID string
	Title  string
}

// ToggleSubtaskInput identifies subtasks either exactly by ID or by a
// case-insensitive partial text match. When Match is used, every matching
// subtask is set to Done.
type ToggleSubtaskInput struct {
	TaskID    string
	SubtaskID string
	Match     string
	Done      bool
}

type AddAttachmentInput struct {
	TaskID string
	Name   string
	URL    string
}

type DeleteAttachmentInput struct {
	TaskID       string
	AttachmentID string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task     model.Task
	Progress model.SubtaskProgress
}

type UpdateTaskOutput struct {
	Task model.Task
}

type CompleteTaskOutput struct {
	Task model.Task
}

type QuickAddOutput struct {
	Task         model.Task
	Intent       quickadd.Intent
	CalendarLink string // Google Calendar deep link, empty when not mirrored
}

type ParsePreviewOutput struct {
	Intent quickadd.Intent
}

type SuggestOutput struct {
	Suggestions []schedule.Suggestion
}

type CheckConflictOutput struct {
	Conflict bool
}

type NextAvailableOutput struct {
	Start time.Time
	Found bool
}

// SearchResultItem is a single fuzzy search hit.
type SearchResultItem struct {
	Task  model.Task
	Score int // higher is a better match
}

type SearchOutput struct {
	Results []SearchResultItem
	Count   int
}

type AddSubtaskOutput struct {
	Task model.Task
}

type ToggleSubtaskOutput struct {
	Task     model.Task
	Updated  bool
	Count    int // number of subtasks changed
	Progress model.SubtaskProgress
}

type AddAttachmentOutput struct {
	Task model.Task
}

type DeleteAttachmentOutput struct {
	Task model.Task
}
