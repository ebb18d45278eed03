package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MikeBiancalana/navkit/internal/config"
	"github.com/MikeBiancalana/navkit/internal/logger"
	"github.com/MikeBiancalana/navkit/internal/menu"
	"github.com/MikeBiancalana/navkit/internal/sync"
	"github.com/MikeBiancalana/navkit/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	menuPathFlag string
	titleFlag    string
	watchFlag    bool
	mouseFlag    bool
	quietFlag    bool
)

// RootCmd is the root command for the CLI
var RootCmd = &cobra.Command{
	Use:   "nk",
	Short: "navkit - terminal navigation drawer",
	Long:  `A terminal UI with a slide-out navigation drawer and collapsible panels, driven by a YAML menu file.`,
	RunE:  runTUI,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&menuPathFlag, "menu", "", "menu file (default ~/.navkit/menu.yaml)")
	RootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress confirmation output")
	RootCmd.Flags().StringVar(&titleFlag, "title", "", "drawer title (overrides the menu file)")
	RootCmd.Flags().BoolVar(&watchFlag, "watch", true, "reload the menu when the file changes")
	RootCmd.Flags().BoolVar(&mouseFlag, "mouse", true, "enable mouse clicks")

	RootCmd.AddCommand(GetMenuCommand())
}

// runTUI launches the interactive drawer
func runTUI(cmd *cobra.Command, args []string) error {
	if err := logger.InitializeWithConfig(logger.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		TUIMode: true,
	}); err != nil {
		return err
	}
	defer logger.Close()

	path, err := resolveMenuPath()
	if err != nil {
		return err
	}

	doc, _, err := loadMenuOrDefault(path)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Title:   doc.Title,
		Entries: doc.Items,
	}
	if titleFlag != "" {
		opts.Title = titleFlag
	}

	if watchFlag {
		w, err := sync.NewWatcher(path)
		if err != nil {
			return err
		}
		opts.Watcher = w
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouseFlag {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(tui.NewModel(opts), programOpts...)
	_, err = p.Run()
	return err
}

// resolveMenuPath returns --menu, or the default location in the data dir
func resolveMenuPath() (string, error) {
	if menuPathFlag != "" {
		return menuPathFlag, nil
	}
	path, err := config.MenuPath()
	if err != nil {
		return "", fmt.Errorf("failed to get menu path: %w", err)
	}
	return path, nil
}

// loadMenuOrDefault loads the menu file, falling back to the sample menu
// when it does not exist. The bool reports whether the file was found.
func loadMenuOrDefault(path string) (*menu.Document, bool, error) {
	doc, err := menu.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("cli: no menu file, using defaults", "path", path)
		return menu.DefaultDocument(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return doc, true, nil
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}
