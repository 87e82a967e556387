package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the full presentation state for one theme. The active set is
// swapped wholesale on theme toggle; nothing else mutates global styling.
type Styles struct {
	Dark bool

	Header   lipgloss.Style
	Panel    lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Footer   lipgloss.Style
	Cursor   lipgloss.Style
	DoneText lipgloss.Style
	High     lipgloss.Style
	Low      lipgloss.Style
	Muted    lipgloss.Style
}

func NewStyles(dark bool) Styles {
	if dark {
		return Styles{
			Dark:     true,
			Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			Footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
			DoneText: lipgloss.NewStyle().Faint(true).Strikethrough(true),
			High:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Low:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		}
	}
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Footer:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Cursor:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		DoneText: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		High:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Low:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

// GlamourStyle maps the theme onto glamour's standard style names.
func (s Styles) GlamourStyle() string {
	if s.Dark {
		return "dark"
	}
	return "light"
}

func (s Styles) Name() string {
	if s.Dark {
		return "dark"
	}
	return "light"
}

type AppData struct {
	Header     string
	Body       string
	InputLine  string
	StatusLine string
	IsError    bool
	Footer     string
}

func RenderApp(s Styles, data AppData) string {
	lines := []string{
		s.Header.Render(data.Header),
		s.Panel.Width(58).Render(data.Body),
	}
	if data.InputLine != "" {
		lines = append(lines, s.Panel.Render(data.InputLine))
	}
	if data.StatusLine != "" {
		if data.IsError {
			lines = append(lines, s.Error.Render(data.StatusLine))
		} else {
			lines = append(lines, s.Status.Render(data.StatusLine))
		}
	}
	if data.Footer != "" {
		lines = append(lines, s.Footer.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}
