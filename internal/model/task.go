package model

import "time"

// Priority is a task's urgency level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task represents a stored task.
type Task struct {
	ID              string       // UUID
	ListID          string       // Owning list UUID, empty for the inbox
	Title           string       // Short display title
	Description     string       // Free-form notes
	DueDate         *time.Time   // When the task is due, nil when unscheduled
	DurationMinutes int          // Expected working time, 0 means default
	Priority        Priority     // low / medium / high / urgent
	Labels          []string     // Tags, ordered as matched or entered
	Subtasks        []Subtask    // Checklist items
	Attachments     []Attachment // Linked files and URLs
	ReminderAt      *time.Time   // When to remind, nil for none
	Completed       bool
	CompletedAt     *time.Time // Set when Completed flips to true
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Subtask is a single checklist item inside a task.
type Subtask struct {
	ID    string // UUID
	Title string
	Done  bool
}

// Attachment is a file or link attached to a task.
type Attachment struct {
	ID        string // UUID
	Name      string // Display name
	URL       string // Where the content lives
	CreatedAt time.Time
}

// SubtaskProgress summarizes a task's checklist completion.
type SubtaskProgress struct {
	Total   int
	Done    int
	Percent int // 0-100, rounded down, 0 when there are no subtasks
}

// Progress computes the task's checklist completion.
func (t Task) Progress() SubtaskProgress {
	p := SubtaskProgress{Total: len(t.Subtasks)}
	for _, s := range t.Subtasks {
		if s.Done {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Percent = p.Done * 100 / p.Total
	}
	return p
}
