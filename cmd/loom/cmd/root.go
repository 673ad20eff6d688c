// Package cmd implements the loom CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (preview, browse, validate, gen, fonts).
// All commands support --verbose (-v) for debug-level logging; loggers are
// passed through context.Context.
package cmd

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	loomerrors "github.com/go-drift/loom/pkg/errors"
)

// Version information set at build time via ldflags.
var (
	version = "0.1.0-dev" // semantic version
	commit  = "unknown"   // git commit SHA
	date    = "unknown"   // build timestamp
)

// SetVersion sets the version information displayed by --version. This is
// typically called by the main package with values injected at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the loom CLI and returns an error if any command fails.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree. The
// logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "loom",
		Short: "Loom inspects themes, styles, and fonts for flow layouts",
		Long: `Loom is the companion tool for the loom layout and styling toolkit.
It previews themes in the terminal, browses built-in themes and style
presets, validates theme and preset files, generates Go theme constants,
and inspects font files.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			loomerrors.SetHandler(&errorLogHandler{logger: logger})
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("loom %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPreviewCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newGenCmd())
	root.AddCommand(newFontsCmd())

	return root.ExecuteContext(ctx)
}
