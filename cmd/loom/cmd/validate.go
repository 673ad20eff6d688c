package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	loomerrors "github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/style"
	"github.com/go-drift/loom/pkg/theme"
)

// newValidateCmd creates the validate command for checking config files.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate theme and preset files",
		Long: `Validate theme and preset files.

Files ending in .yaml or .yml are validated as theme documents, files
ending in .toml as style presets. The exit status is non-zero when any
file fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			failed := 0
			for _, path := range args {
				if err := validateFile(path); err != nil {
					failed++
					printError("%s", path)
					printDetail("%s", describeError(err))
					continue
				}
				printSuccess("%s", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}
			logger.Debug("all files valid", "count", len(args))
			return nil
		},
	}
	return cmd
}

// validateFile parses one file by extension, discarding the result.
func validateFile(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		_, err := theme.Load(path)
		return err
	case ".toml":
		_, err := style.LoadTOMLFile(path)
		return err
	default:
		return fmt.Errorf("unsupported file type %q (want .yaml, .yml, or .toml)", filepath.Ext(path))
	}
}

// describeError reduces structured errors to a one-line description. A
// validation error names the offending field; other loom errors keep
// their kind.
func describeError(err error) string {
	var verr *loomerrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}
	var lerr *loomerrors.LoomError
	if errors.As(err, &lerr) {
		return fmt.Sprintf("%s: %v", lerr.Kind, lerr.Err)
	}
	return err.Error()
}
