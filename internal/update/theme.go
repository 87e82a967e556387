package update

import (
	"github.com/avelis/listkeep/internal/storage"
	"github.com/avelis/listkeep/internal/views"
)

// The theme flag persists as the string "0"/"1" under theme_dark. It is
// read once at startup and written on every toggle; the style set is the
// only presentation state derived from it.

func loadThemeDark(store *storage.KVStore, darkDefault bool) bool {
	return storage.Get(store, storage.KeyThemeDark, themeFlag(darkDefault)) == "1"
}

func (m *Model) toggleTheme() {
	flag := storage.Update(m.store, storage.KeyThemeDark, themeFlag(m.cfg.DarkDefault), func(v string) string {
		if v == "1" {
			return "0"
		}
		return "1"
	})
	m.ThemeDark = flag == "1"
	m.styles = views.NewStyles(m.ThemeDark)
}

func themeFlag(dark bool) string {
	if dark {
		return "1"
	}
	return "0"
}
