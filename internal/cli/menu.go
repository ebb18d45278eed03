package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MikeBiancalana/navkit/internal/menu"
	"github.com/MikeBiancalana/navkit/internal/tui"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// ErrInvalidMenu is returned by menu validate when issues were found
var ErrInvalidMenu = errors.New("menu has issues")

var (
	menuFormatFlag   string
	menuForceFlag    bool
	menuIconFlag     string
	menuActionFlag   string
	menuChildrenFlag []string
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage the drawer menu file",
	Long:  `Manage the drawer menu file - show, create, extend, and validate it.`,
}

var menuShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the menu",
	Long: `Prints the menu the drawer would display.
Falls back to the built-in sample menu when no menu file exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := parseFormat(menuFormatFlag)
		if err != nil {
			return err
		}
		path, err := resolveMenuPath()
		if err != nil {
			return err
		}
		return showMenu(cmd.OutOrStdout(), path, format)
	},
}

var menuInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the sample menu file",
	Long: `Writes the built-in sample menu to the menu file.
Asks before replacing an existing file unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveMenuPath()
		if err != nil {
			return err
		}

		written, err := initMenu(path, menuForceFlag, confirmOverwrite)
		if err != nil {
			return err
		}
		if !quietFlag {
			if written {
				fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote sample menu to %s\n", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			}
		}
		return nil
	},
}

var menuAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Append an entry to the menu",
	Long: `Appends an entry to the menu file.
Without a label an interactive form is shown.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveMenuPath()
		if err != nil {
			return err
		}

		var entry menu.Entry
		if len(args) == 0 {
			entry, err = runInteractiveEntryForm()
			if err != nil {
				return err
			}
		} else {
			entry, err = buildEntry(strings.Join(args, " "), menuIconFlag, menuActionFlag, menuChildrenFlag)
			if err != nil {
				return err
			}
		}

		if err := addEntry(path, entry); err != nil {
			return err
		}
		if !quietFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Added entry: %s [%s]\n", entry.Label, entry.ID)
		}
		return nil
	},
}

var menuValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the menu file for problems",
	Long: `Parses the menu file and reports duplicate ids, unknown actions,
and actions that would never run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveMenuPath()
		if err != nil {
			return err
		}
		return validateMenu(cmd.OutOrStdout(), path)
	},
}

func init() {
	menuShowCmd.Flags().StringVarP(&menuFormatFlag, "format", "f", "text", "output format: text, json, yaml")
	menuInitCmd.Flags().BoolVar(&menuForceFlag, "force", false, "replace an existing menu file without asking")
	menuAddCmd.Flags().StringVar(&menuIconFlag, "icon", "", "icon glyph shown before the label")
	menuAddCmd.Flags().StringVar(&menuActionFlag, "action", "", "named action to run on select")
	menuAddCmd.Flags().StringSliceVar(&menuChildrenFlag, "child", nil, "sub-entry label (repeatable)")

	menuCmd.AddCommand(menuShowCmd)
	menuCmd.AddCommand(menuInitCmd)
	menuCmd.AddCommand(menuAddCmd)
	menuCmd.AddCommand(menuValidateCmd)
}

func GetMenuCommand() *cobra.Command {
	return menuCmd
}

func showMenu(w io.Writer, path string, format OutputFormat) error {
	doc, _, err := loadMenuOrDefault(path)
	if err != nil {
		return err
	}
	return formatMenu(w, doc, format)
}

// initMenu writes the sample menu to path. confirm is only consulted when
// the file exists and force is false; the bool reports whether it was written.
func initMenu(path string, force bool, confirm func(path string) (bool, error)) (bool, error) {
	if _, err := os.Stat(path); err == nil && !force {
		ok, err := confirm(path)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if err := menu.Save(path, menu.DefaultDocument()); err != nil {
		return false, err
	}
	return true, nil
}

func confirmOverwrite(path string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("%s already exists. Replace it?", path)).
		Affirmative("Replace").
		Negative("Keep").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
	return ok, nil
}

// buildEntry assembles an entry from command-line input
func buildEntry(label, icon, action string, children []string) (menu.Entry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return menu.Entry{}, menu.ErrMissingLabel
	}

	action = strings.TrimSpace(action)
	if action != "" {
		if !isKnownAction(action) {
			return menu.Entry{}, fmt.Errorf("unknown action %q (available: %s)", action, strings.Join(tui.ActionNames(), ", "))
		}
	}

	entry := menu.NewEntry(label, strings.TrimSpace(icon), nil)
	entry.ActionName = action

	for _, child := range children {
		child = strings.TrimSpace(child)
		if child == "" {
			continue
		}
		entry.Children = append(entry.Children, menu.NewSubEntry(child))
	}

	if entry.HasChildren() && entry.ActionName != "" {
		return menu.Entry{}, fmt.Errorf("entry %q has children; its action would never run", label)
	}

	return entry, nil
}

func isKnownAction(name string) bool {
	for _, known := range tui.ActionNames() {
		if known == name {
			return true
		}
	}
	return false
}

// runInteractiveEntryForm prompts for a new entry
func runInteractiveEntryForm() (menu.Entry, error) {
	var label, icon, action, children string

	actionOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, name := range tui.ActionNames() {
		actionOptions = append(actionOptions, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Value(&label).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("label is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Icon (optional)").
				Value(&icon),
			huh.NewSelect[string]().
				Title("Action").
				Options(actionOptions...).
				Value(&action),
			huh.NewInput().
				Title("Sub-entries (optional, comma-separated)").
				Value(&children),
		),
	)

	if err := form.Run(); err != nil {
		return menu.Entry{}, fmt.Errorf("form cancelled: %w", err)
	}

	var childList []string
	if children != "" {
		childList = strings.Split(children, ",")
	}

	return buildEntry(label, icon, action, childList)
}

// addEntry appends entry to the menu file, creating it when missing
func addEntry(path string, entry menu.Entry) error {
	doc, err := menu.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		doc = &menu.Document{Title: menu.DefaultTitle}
	} else if err != nil {
		return err
	}

	if menu.Find(doc.Items, entry.ID) != nil {
		return fmt.Errorf("entry id %q already exists", entry.ID)
	}

	doc.Items = append(doc.Items, entry)
	return menu.Save(path, doc)
}

func validateMenu(w io.Writer, path string) error {
	doc, err := menu.Load(path)
	if err != nil {
		return err
	}

	issues := menu.Validate(doc.Items)
	for _, entry := range doc.Items {
		if entry.ActionName != "" && !isKnownAction(entry.ActionName) {
			issues = append(issues, menu.Issue{ID: entry.ID, Message: fmt.Sprintf("unknown action %q", entry.ActionName)})
		}
	}

	if len(issues) == 0 {
		if !quietFlag {
			fmt.Fprintf(w, "✓ %s: %d entries, no issues\n", path, len(doc.Items))
		}
		return nil
	}

	for _, issue := range issues {
		fmt.Fprintf(w, "  %s\n", issue)
	}
	return fmt.Errorf("%s: %d issue(s): %w", path, len(issues), ErrInvalidMenu)
}
