package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

type TaskRowData struct {
	Text     string
	Priority string
	Done     bool
	Selected bool
}

type TaskListData struct {
	Rows   []TaskRowData
	Filter string
	Search string
	Total  int
}

func RenderTaskList(s Styles, data TaskListData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("filter: %s", data.Filter))
	if data.Search != "" {
		b.WriteString(fmt.Sprintf(" | search: %q", data.Search))
	}
	b.WriteString(fmt.Sprintf(" | showing %d of %d\n", len(data.Rows), data.Total))

	if len(data.Rows) == 0 {
		b.WriteString("(no tasks)")
		return strings.TrimSpace(b.String())
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected {
			cursor = s.Cursor.Render(">")
		}
		check := "[ ]"
		if row.Done {
			check = "[x]"
		}
		text := row.Text
		if row.Done {
			text = s.DoneText.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s %s %s%s\n", cursor, check, text, priorityBadge(s, row.Priority)))
	}
	return strings.TrimSpace(b.String())
}

func priorityBadge(s Styles, priority string) string {
	switch priority {
	case "high":
		return " " + s.High.Render("(high)")
	case "low":
		return " " + s.Low.Render("(low)")
	default:
		return ""
	}
}

func RenderInputBar(label, inputView, hint string) string {
	out := fmt.Sprintf("%s %s", label, inputView)
	if hint != "" {
		out += "\n" + hint
	}
	return out
}

func RenderConfirmDelete(s Styles, taskText string) string {
	return fmt.Sprintf("delete %q? %s", taskText, s.Error.Render("[y]es / [n]o"))
}

const helpMarkdown = `# listkeep

| key | action |
|-----|--------|
| a | add task |
| e | edit task under cursor |
| space | toggle done |
| d | delete (asks for confirmation) |
| p | cycle priority |
| f | cycle status filter |
| / | search |
| t | toggle light/dark theme |
| j/k | move cursor |
| ? | toggle this help |
| q | quit |
`

// RenderHelp renders the key reference with the glamour style matching the
// active theme. On render failure the raw markdown is still usable.
func RenderHelp(s Styles) string {
	out, err := glamour.Render(helpMarkdown, s.GlamourStyle())
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimSpace(out)
}
