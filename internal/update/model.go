package update

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/avelis/listkeep/internal/debounce"
	"github.com/avelis/listkeep/internal/model"
	"github.com/avelis/listkeep/internal/storage"
	"github.com/avelis/listkeep/internal/todo"
	"github.com/avelis/listkeep/internal/views"
)

type Mode string

const (
	ModeList          Mode = "list"
	ModeAdd           Mode = "add"
	ModeEdit          Mode = "edit"
	ModeSearch        Mode = "search"
	ModeConfirmDelete Mode = "confirm-delete"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Add      string
	Edit     string
	Toggle   string
	Delete   string
	Priority string
	Filter   string
	Search   string
	Theme    string
	Help     string
	Quit     string
}

type Model struct {
	Repo            *todo.Repository
	Mode            Mode
	Filter          model.StatusFilter
	Search          string // debounced term the filter engine sees
	SearchDraft     string // live input, not yet settled
	Cursor          int
	PendingDeleteID string
	EditingID       string
	AddPriority     model.Priority
	ThemeDark       bool
	Status          StatusBar
	HelpVisible     bool
	Quitting        bool
	Keys            GlobalKeyMap

	store          *storage.KVStore
	log            *slog.Logger
	cfg            RuntimeConfig
	styles         views.Styles
	searchDebounce *debounce.Debouncer[string]
	textInput      textinput.Model
	searchInput    textinput.Model
	helpModel      help.Model
	toastSeq       int
}

// SearchSettledMsg carries a search term that has been stable for the
// configured debounce delay.
type SearchSettledMsg struct {
	Term string
}

// ToastExpiredMsg dismisses the status line. Seq drops expirations that a
// newer toast has already superseded.
type ToastExpiredMsg struct {
	Seq int
}

func NewModelWithConfig(repo *todo.Repository, store *storage.KVStore, cfg RuntimeConfig, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	ti := textinput.New()
	ti.Placeholder = "task text"
	ti.CharLimit = 200
	si := textinput.New()
	si.Placeholder = "search"
	si.CharLimit = 100

	m := Model{
		Repo:        repo,
		Mode:        ModeList,
		Filter:      model.FilterAll,
		AddPriority: model.PriorityNormal,
		Keys: GlobalKeyMap{
			Add:      "a",
			Edit:     "e",
			Toggle:   " ",
			Delete:   "d",
			Priority: "p",
			Filter:   "f",
			Search:   "/",
			Theme:    "t",
			Help:     "?",
			Quit:     "q",
		},
		store:          store,
		log:            logger,
		cfg:            cfg,
		searchDebounce: debounce.New[string](time.Duration(cfg.DebounceMillis) * time.Millisecond),
		textInput:      ti,
		searchInput:    si,
		helpModel:      help.New(),
	}
	m.ThemeDark = loadThemeDark(store, cfg.DarkDefault)
	m.styles = views.NewStyles(m.ThemeDark)
	return m
}

func (m Model) toastDuration() time.Duration {
	if m.cfg.ToastMillis <= 0 {
		return 2500 * time.Millisecond
	}
	return time.Duration(m.cfg.ToastMillis) * time.Millisecond
}
