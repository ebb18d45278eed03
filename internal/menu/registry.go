package menu

import (
	"fmt"
	"sort"

	"github.com/MikeBiancalana/navkit/internal/logger"
)

// Registry maps action names used in menu files to callbacks
type Registry map[string]func()

// Names returns the registered action names in sorted order
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns a copy of entries with Action bound from the registry.
// Entries that already carry an Action keep it. Unknown names leave the
// entry without an action.
func Resolve(entries []Entry, reg Registry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	for i := range out {
		entry := &out[i]
		if entry.Action != nil || entry.ActionName == "" {
			continue
		}
		action, ok := reg[entry.ActionName]
		if !ok {
			logger.Warn("menu: unknown action", "id", entry.ID, "action", entry.ActionName)
			continue
		}
		entry.Action = action
	}

	return out
}

// Issue describes a problem in a menu that degrades rendering but is not fatal
type Issue struct {
	ID      string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.ID, i.Message)
}

// Validate reports duplicate ids and actions that can never run.
// Only ids among the current entries are considered.
func Validate(entries []Entry) []Issue {
	var issues []Issue
	seen := make(map[string]bool)

	for _, entry := range entries {
		if seen[entry.ID] {
			issues = append(issues, Issue{ID: entry.ID, Message: "duplicate entry id"})
		}
		seen[entry.ID] = true

		if entry.HasChildren() && (entry.Action != nil || entry.ActionName != "") {
			issues = append(issues, Issue{ID: entry.ID, Message: "action ignored on entry with children"})
		}

		subSeen := make(map[string]bool)
		for _, sub := range entry.Children {
			if subSeen[sub.ID] {
				issues = append(issues, Issue{ID: sub.ID, Message: "duplicate sub-entry id under " + entry.ID})
			}
			subSeen[sub.ID] = true
		}
	}

	return issues
}
