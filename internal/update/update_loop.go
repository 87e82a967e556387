package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelis/listkeep/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.searchDebounce != nil {
		return waitForSearchCmd(m.searchDebounce.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		switch m.Mode {
		case ModeAdd:
			return m.handleAddKey(typed)
		case ModeEdit:
			return m.handleEditKey(typed)
		case ModeSearch:
			return m.handleSearchKey(typed)
		case ModeConfirmDelete:
			return m.handleConfirmDeleteKey(typed)
		default:
			return m.handleListKey(typed)
		}
	case SearchSettledMsg:
		m.Search = typed.Term
		m.clampCursor()
		return m, waitForSearchCmd(m.searchDebounce.C())
	case ToastExpiredMsg:
		if typed.Seq == m.toastSeq {
			m.Status = StatusBar{}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	visible := m.visibleTasks()
	rows := make([]views.TaskRowData, 0, len(visible))
	for i, task := range visible {
		rows = append(rows, views.TaskRowData{
			Text:     task.Text,
			Priority: string(task.Priority),
			Done:     task.Done,
			Selected: m.Mode != ModeAdd && i == m.Cursor,
		})
	}
	body := views.RenderTaskList(m.styles, views.TaskListData{
		Rows:   rows,
		Filter: string(m.Filter),
		Search: m.Search,
		Total:  m.Repo.Len(),
	})
	if m.HelpVisible {
		body += "\n\n" + views.RenderHelp(m.styles)
	}

	inputLine := ""
	switch m.Mode {
	case ModeAdd:
		inputLine = views.RenderInputBar(
			fmt.Sprintf("add [%s]:", m.AddPriority),
			m.textInput.View(),
			"[enter]save [tab]priority [esc]cancel",
		)
	case ModeEdit:
		inputLine = views.RenderInputBar("edit:", m.textInput.View(), "[enter]save [esc]cancel")
	case ModeSearch:
		inputLine = views.RenderInputBar("search:", m.searchInput.View(), "[enter]done [esc]clear")
	case ModeConfirmDelete:
		if task, ok := m.Repo.Get(m.PendingDeleteID); ok {
			inputLine = views.RenderConfirmDelete(m.styles, task.Text)
		}
	}

	status := ""
	if m.Status.Text != "" {
		status = "status: " + m.Status.Text
	}

	return views.RenderApp(m.styles, views.AppData{
		Header:     fmt.Sprintf("listkeep | theme: %s", m.styles.Name()),
		Body:       body,
		InputLine:  inputLine,
		StatusLine: status,
		IsError:    m.Status.IsError,
		Footer:     m.helpModel.View(m.shortKeyMap()),
	})
}

// waitForSearchCmd blocks on the debouncer output and feeds settled terms
// back into the event loop. A closed channel (teardown) produces no
// message, so the listener never rearms.
func waitForSearchCmd(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		term, ok := <-ch
		if !ok {
			return nil
		}
		return SearchSettledMsg{Term: term}
	}
}
