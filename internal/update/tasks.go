package update

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelis/listkeep/internal/model"
	"github.com/avelis/listkeep/internal/todo"
)

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		m.searchDebounce.Stop()
		return m, tea.Quit
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Add:
		m.Mode = ModeAdd
		m.AddPriority = model.PriorityNormal
		m.textInput.SetValue("")
		m.textInput.Focus()
		return m, nil
	case m.Keys.Edit:
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		m.Mode = ModeEdit
		m.EditingID = task.ID
		m.textInput.SetValue(task.Text)
		m.textInput.Focus()
		return m, nil
	case m.Keys.Toggle, "enter":
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		ev, ok := m.Repo.ToggleDone(task.ID)
		if !ok {
			return m, nil
		}
		m.clampCursor()
		return m, m.setToast(ev, false)
	case m.Keys.Delete:
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		m.Mode = ModeConfirmDelete
		m.PendingDeleteID = task.ID
		return m, nil
	case m.Keys.Priority:
		task, ok := m.currentTask()
		if !ok {
			return m, nil
		}
		next := task.Priority.Cycle()
		ev, ok := m.Repo.Update(task.ID, model.TaskPatch{Priority: &next})
		if !ok {
			return m, nil
		}
		return m, m.setToast(ev, false)
	case m.Keys.Filter:
		m.Filter = m.Filter.Cycle()
		m.clampCursor()
		return m, nil
	case m.Keys.Search:
		m.Mode = ModeSearch
		m.searchInput.SetValue(m.SearchDraft)
		m.searchInput.Focus()
		return m, nil
	case m.Keys.Theme:
		m.toggleTheme()
		return m, m.setToast(todo.Event{Message: "theme: " + m.styles.Name()}, false)
	case "down", "j":
		if m.Cursor < len(m.visibleTasks())-1 {
			m.Cursor++
		}
		return m, nil
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Mode = ModeList
		m.textInput.Blur()
		return m, nil
	case "tab":
		m.AddPriority = m.AddPriority.Cycle()
		return m, nil
	case "enter":
		text := m.textInput.Value()
		m.Mode = ModeList
		m.textInput.SetValue("")
		m.textInput.Blur()
		ev, ok := m.Repo.Add(text, m.AddPriority)
		if !ok {
			// empty input: nothing happens, by contract not an error
			return m, nil
		}
		m.Cursor = 0
		return m, m.setToast(ev, false)
	}
	return m.updateTextInput(msg)
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Mode = ModeList
		m.EditingID = ""
		m.textInput.Blur()
		return m, nil
	case "enter":
		text := m.textInput.Value()
		id := m.EditingID
		m.Mode = ModeList
		m.EditingID = ""
		m.textInput.SetValue("")
		m.textInput.Blur()
		ev, ok := m.Repo.Update(id, model.TaskPatch{Text: &text})
		if !ok {
			return m, nil
		}
		return m, m.setToast(ev, false)
	}
	return m.updateTextInput(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Mode = ModeList
		m.SearchDraft = ""
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.searchDebounce.Set("")
		return m, nil
	case "enter":
		m.Mode = ModeList
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	_ = cmd
	m.SearchDraft = m.searchInput.Value()
	m.searchDebounce.Set(m.SearchDraft)
	return m, nil
}

func (m Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.PendingDeleteID
		m.Mode = ModeList
		m.PendingDeleteID = ""
		ev, ok := m.Repo.Remove(id)
		m.clampCursor()
		if !ok {
			return m, nil
		}
		return m, m.setToast(ev, false)
	case "n", "esc":
		m.Mode = ModeList
		m.PendingDeleteID = ""
		return m, m.setToast(todo.Event{Message: "delete cancelled"}, false)
	}
	return m, nil
}

func (m Model) updateTextInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	_ = cmd
	return m, nil
}

func (m Model) visibleTasks() []model.Task {
	return model.Visible(m.Repo.Tasks(), m.Filter, m.Search)
}

func (m Model) currentTask() (model.Task, bool) {
	visible := m.visibleTasks()
	if len(visible) == 0 || m.Cursor < 0 || m.Cursor >= len(visible) {
		return model.Task{}, false
	}
	return visible[m.Cursor], true
}

func (m *Model) clampCursor() {
	max := len(m.visibleTasks()) - 1
	if m.Cursor > max {
		m.Cursor = max
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// setToast shows a confirmation and schedules its dismissal. Bumping the
// sequence invalidates any dismissal already in flight for a prior toast.
func (m *Model) setToast(ev todo.Event, isErr bool) tea.Cmd {
	m.Status = StatusBar{Text: ev.Message, IsError: isErr}
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(m.toastDuration(), func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}
