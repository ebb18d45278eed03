package menu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MikeBiancalana/navkit/internal/logger"
	"github.com/rs/xid"
	"gopkg.in/yaml.v3"
)

var (
	ErrMissingLabel = errors.New("menu entry has no label")
	ErrNoItems      = errors.New("menu file defines no items")
)

// DefaultTitle is the drawer header used when a menu file omits one
const DefaultTitle = "Menu"

// Document is the on-disk form of a menu
type Document struct {
	Title string  `yaml:"title,omitempty" json:"title,omitempty"`
	Items []Entry `yaml:"items" json:"items"`
}

// DefaultDocument returns the built-in sample menu as a document
func DefaultDocument() *Document {
	return &Document{
		Title: DefaultTitle,
		Items: DefaultEntries(),
	}
}

// Parse decodes a YAML menu document. Entries and sub-entries without an id
// get a generated one; labels are required.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}

	if len(doc.Items) == 0 {
		return nil, ErrNoItems
	}

	for i := range doc.Items {
		entry := &doc.Items[i]
		entry.Label = strings.TrimSpace(entry.Label)
		if entry.Label == "" {
			return nil, fmt.Errorf("item %d: %w", i+1, ErrMissingLabel)
		}
		if strings.TrimSpace(entry.ID) == "" {
			entry.ID = xid.New().String()
		}

		for j := range entry.Children {
			sub := &entry.Children[j]
			sub.Label = strings.TrimSpace(sub.Label)
			if sub.Label == "" {
				return nil, fmt.Errorf("item %d child %d: %w", i+1, j+1, ErrMissingLabel)
			}
			if strings.TrimSpace(sub.ID) == "" {
				sub.ID = xid.New().String()
			}
		}
	}

	if doc.Title == "" {
		doc.Title = DefaultTitle
	}

	return &doc, nil
}

// Load reads and parses the menu file at path
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("menu: loaded", "path", path, "items", len(doc.Items))
	return doc, nil
}

// Save writes the document to path, replacing any existing file
func Save(path string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode menu: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create menu directory: %w", err)
	}

	// Write to a sibling temp file first so watchers never see a partial menu
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write menu file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace menu file: %w", err)
	}

	logger.Debug("menu: saved", "path", path, "items", len(doc.Items))
	return nil
}
