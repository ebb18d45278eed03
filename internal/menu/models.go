package menu

import (
	"github.com/rs/xid"
)

// Built-in icon tokens
const (
	IconDashboard = "▦"
	IconSettings  = "⚙"
	IconInfo      = "ℹ"
	IconDefault   = "•"
)

// SubEntry is a leaf item revealed when its parent entry is expanded
type SubEntry struct {
	ID    string `yaml:"id" json:"id"`
	Label string `yaml:"label" json:"label"`
}

// Entry is a top-level navigable item in the drawer, optionally expandable.
// Action is owned by the caller and only runs for entries without children.
type Entry struct {
	ID         string     `yaml:"id" json:"id"`
	Label      string     `yaml:"label" json:"label"`
	Icon       string     `yaml:"icon,omitempty" json:"icon,omitempty"`
	ActionName string     `yaml:"action,omitempty" json:"action,omitempty"` // resolved against a Registry
	Children   []SubEntry `yaml:"children,omitempty" json:"children,omitempty"`

	Action func() `yaml:"-" json:"-"`
}

// HasChildren reports whether selecting the entry expands it instead of
// running its action.
func (e Entry) HasChildren() bool {
	return len(e.Children) > 0
}

// NewEntry creates a leaf entry with a generated ID
func NewEntry(label, icon string, action func()) Entry {
	return Entry{
		ID:     xid.New().String(),
		Label:  label,
		Icon:   icon,
		Action: action,
	}
}

// NewSubEntry creates a sub-entry with a generated ID
func NewSubEntry(label string) SubEntry {
	return SubEntry{
		ID:    xid.New().String(),
		Label: label,
	}
}

// DefaultEntries returns the sample menu shown when no entries are supplied
func DefaultEntries() []Entry {
	return []Entry{
		{
			ID:    "1",
			Label: "Dashboard",
			Icon:  IconDashboard,
			Children: []SubEntry{
				{ID: "1-1", Label: "Analytics"},
				{ID: "1-2", Label: "Reports"},
			},
		},
		{
			ID:    "2",
			Label: "Settings",
			Icon:  IconSettings,
			Children: []SubEntry{
				{ID: "2-1", Label: "Profile"},
				{ID: "2-2", Label: "Preferences"},
				{ID: "2-3", Label: "Account"},
			},
		},
		{
			ID:         "3",
			Label:      "About",
			Icon:       IconInfo,
			ActionName: "about",
		},
	}
}

// Find returns the entry with the given ID, or nil
func Find(entries []Entry, id string) *Entry {
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i]
		}
	}
	return nil
}
