package model

import "strings"

// Visible combines the status filter with a case-insensitive substring
// search over task text. Both predicates must hold. Input order is
// preserved and the input slice is never mutated.
func Visible(tasks []Task, filter StatusFilter, search string) []Task {
	needle := strings.ToLower(search)
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !matchesFilter(t, filter) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(t.Text), needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Unknown filter values fall back to keeping everything.
func matchesFilter(t Task, f StatusFilter) bool {
	switch f {
	case FilterActive:
		return !t.Done
	case FilterCompleted:
		return t.Done
	default:
		return true
	}
}
