package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MikeBiancalana/navkit/internal/menu"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", s)
	}
}

func formatMenu(w io.Writer, doc *menu.Document, format OutputFormat) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, formatMenuTree(doc))
		return err
	}
}

// formatMenuTree renders the menu as an indented tree
func formatMenuTree(doc *menu.Document) string {
	var sb strings.Builder
	sb.WriteString(doc.Title)
	sb.WriteString("\n")

	for i, entry := range doc.Items {
		last := i == len(doc.Items)-1
		branch, indent := "├─ ", "│  "
		if last {
			branch, indent = "└─ ", "   "
		}

		icon := entry.Icon
		if icon == "" {
			icon = menu.IconDefault
		}
		fmt.Fprintf(&sb, "%s%s %s [%s]", branch, icon, entry.Label, entry.ID)
		if entry.ActionName != "" {
			fmt.Fprintf(&sb, " → %s", entry.ActionName)
		}
		sb.WriteString("\n")

		for j, sub := range entry.Children {
			subBranch := "├─ "
			if j == len(entry.Children)-1 {
				subBranch = "└─ "
			}
			fmt.Fprintf(&sb, "%s%s%s [%s]\n", indent, subBranch, sub.Label, sub.ID)
		}
	}

	return sb.String()
}
