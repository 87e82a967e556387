package todo

import (
	"fmt"
	"log/slog"

	"github.com/avelis/listkeep/internal/model"
	"github.com/avelis/listkeep/internal/storage"
)

// Event is the confirmation signal emitted after a successful mutation.
// The presentation layer owns display duration and dismissal.
type Event struct {
	Message string
}

// Repository holds the ordered task collection in memory and mirrors every
// mutation to the store synchronously. Newest tasks sit at the front.
// Operations on unknown ids are deliberate no-ops: the UI never surfaces
// an error for a task that disappeared under it.
type Repository struct {
	store *storage.KVStore
	tasks []model.Task
	log   *slog.Logger
}

func NewRepository(store *storage.KVStore, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	tasks := storage.Get(store, storage.KeyTaskList, []model.Task{})
	return &Repository{store: store, tasks: tasks, log: logger}
}

// Tasks returns a copy; callers never alias the internal slice.
func (r *Repository) Tasks() []model.Task {
	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

func (r *Repository) Len() int {
	return len(r.tasks)
}

func (r *Repository) Get(id string) (model.Task, bool) {
	idx := r.index(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return r.tasks[idx], true
}

// Add trims text and prepends a fresh task. Empty text is rejected before
// anything is persisted.
func (r *Repository) Add(text string, priority model.Priority) (Event, bool) {
	task, ok := model.NewTask(text, priority)
	if !ok {
		return Event{}, false
	}
	r.tasks = append([]model.Task{task}, r.tasks...)
	r.persist()
	return Event{Message: fmt.Sprintf("added: %s", task.Text)}, true
}

func (r *Repository) Update(id string, patch model.TaskPatch) (Event, bool) {
	idx := r.index(id)
	if idx < 0 {
		return Event{}, false
	}
	r.tasks[idx] = patch.Apply(r.tasks[idx])
	r.persist()
	return Event{Message: fmt.Sprintf("updated: %s", r.tasks[idx].Text)}, true
}

// Remove deletes the task. Callers must have completed the two-step
// confirmation before invoking it.
func (r *Repository) Remove(id string) (Event, bool) {
	idx := r.index(id)
	if idx < 0 {
		return Event{}, false
	}
	removed := r.tasks[idx]
	r.tasks = append(r.tasks[:idx], r.tasks[idx+1:]...)
	r.persist()
	return Event{Message: fmt.Sprintf("deleted: %s", removed.Text)}, true
}

func (r *Repository) ToggleDone(id string) (Event, bool) {
	idx := r.index(id)
	if idx < 0 {
		return Event{}, false
	}
	done := !r.tasks[idx].Done
	if _, ok := r.Update(id, model.TaskPatch{Done: &done}); !ok {
		return Event{}, false
	}
	if done {
		return Event{Message: fmt.Sprintf("done: %s", r.tasks[idx].Text)}, true
	}
	return Event{Message: fmt.Sprintf("reopened: %s", r.tasks[idx].Text)}, true
}

func (r *Repository) index(id string) int {
	for i, task := range r.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (r *Repository) persist() {
	storage.Set(r.store, storage.KeyTaskList, r.tasks)
}
