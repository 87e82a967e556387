package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidPriority = errors.New("model: invalid task priority")
	ErrInvalidFilter   = errors.New("model: invalid status filter")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return true
	default:
		return false
	}
}

// Cycle steps low -> normal -> high -> low.
func (p Priority) Cycle() Priority {
	switch p {
	case PriorityLow:
		return PriorityNormal
	case PriorityNormal:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
)

func (f StatusFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

func (f StatusFilter) Cycle() StatusFilter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

type Task struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Done     bool     `json:"done"`
	Priority Priority `json:"priority"`
}

// NewTask trims text and assigns a fresh id. Empty text after trimming is
// rejected at this boundary, reported via ok=false.
func NewTask(text string, priority Priority) (Task, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Task{}, false
	}
	if !priority.IsValid() {
		priority = PriorityNormal
	}
	return Task{
		ID:       uuid.NewString(),
		Text:     trimmed,
		Priority: priority,
	}, true
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("model: task text is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}

// TaskPatch is a whole-field merge: nil fields keep the current value,
// set fields replace it entirely.
type TaskPatch struct {
	Text     *string
	Done     *bool
	Priority *Priority
}

func (p TaskPatch) Apply(t Task) Task {
	if p.Text != nil {
		if trimmed := strings.TrimSpace(*p.Text); trimmed != "" {
			t.Text = trimmed
		}
	}
	if p.Done != nil {
		t.Done = *p.Done
	}
	if p.Priority != nil && p.Priority.IsValid() {
		t.Priority = *p.Priority
	}
	return t
}
