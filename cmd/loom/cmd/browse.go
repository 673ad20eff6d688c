package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/go-drift/loom/pkg/style"
	"github.com/go-drift/loom/pkg/theme"
)

// newBrowseCmd creates the browse command for interactive exploration.
func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse built-in themes and style presets interactively",
		Long: `Browse built-in themes and style presets in an interactive list.

Selecting a preset prints its TOML definition, ready to be saved as the
starting point for a custom preset file. Selecting a theme prints its
color and type scale summary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd)
		},
	}
	return cmd
}

func runBrowse(cmd *cobra.Command) error {
	logger := loggerFromContext(cmd.Context())

	entries := browseEntries()
	logger.Debug("browsing", "entries", len(entries))

	final, err := tea.NewProgram(newBrowseModel(entries)).Run()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	m, ok := final.(browseModel)
	if !ok || m.Selected == nil {
		return nil
	}
	return printSelection(*m.Selected)
}

// browseEntries lists the built-in themes followed by the registered
// presets.
func browseEntries() []browseEntry {
	entries := []browseEntry{
		{kind: entryTheme, name: "default-light", desc: "Default light theme.", theme: theme.DefaultLightTheme()},
		{kind: entryTheme, name: "default-dark", desc: "Default dark theme.", theme: theme.DefaultDarkTheme()},
	}
	for _, name := range style.Names() {
		p := style.Get(name)
		entries = append(entries, browseEntry{kind: entryPreset, name: p.Name, desc: p.Description, preset: &p})
	}
	return entries
}

// printSelection writes the selected entry's definition to stdout.
func printSelection(e browseEntry) error {
	switch e.kind {
	case entryPreset:
		data, err := style.SaveTOML(*e.preset)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	case entryTheme:
		printPlainPreview(e.theme, e.name)
	}
	return nil
}
