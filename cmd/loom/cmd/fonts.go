package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/sfnt"

	"github.com/go-drift/loom/pkg/font"
	"github.com/go-drift/loom/pkg/paint"
)

// fontInfo is the report for one font file.
type fontInfo struct {
	Path      string
	Family    string
	Subfamily string
	Weight    paint.FontWeight
	Glyphs    int
	Sample    string
}

// newFontsCmd creates the fonts command for inspecting font files.
func newFontsCmd() *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "fonts <path>...",
		Short: "Inspect font files",
		Long: `Inspect TrueType and OpenType font files.

Directories are searched recursively for .ttf and .otf files. Each font
reports its family and subfamily from the name table, a weight guessed
from the subfamily, and its glyph count. With --sample the given text is
measured against each font at 16pt.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFonts(cmd, args, sample)
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "", "measure this text against each font")

	return cmd
}

func runFonts(cmd *cobra.Command, paths []string, sample string) error {
	logger := loggerFromContext(cmd.Context())

	files, err := collectFontFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no font files found")
	}
	logger.Debug("inspecting fonts", "files", len(files))

	infos := make([]fontInfo, 0, len(files))
	failed := 0
	for _, path := range files {
		info, err := inspectFont(path, sample)
		if err != nil {
			failed++
			printError("%s", path)
			printDetail("%v", err)
			continue
		}
		infos = append(infos, info)
	}

	if len(infos) > 0 {
		fmt.Println(renderFontTable(infos, sample != ""))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be read", failed, len(files))
	}
	return nil
}

// collectFontFiles expands the arguments into font file paths, searching
// directories recursively.
func collectFontFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		stat, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !stat.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isFontFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func isFontFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// inspectFont reads one font's name table and optionally measures sample
// text against it.
func inspectFont(path, sample string) (fontInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fontInfo{}, err
	}
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return fontInfo{}, fmt.Errorf("parse font: %w", err)
	}

	famName, err := parsed.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		famName = "(unnamed)"
	}
	sub, err := parsed.Name(nil, sfnt.NameIDSubfamily)
	if err != nil {
		sub = ""
	}

	info := fontInfo{
		Path:      path,
		Family:    famName,
		Subfamily: sub,
		Weight:    guessWeight(sub),
		Glyphs:    parsed.NumGlyphs(),
	}

	if sample != "" {
		reg := font.NewRegistry()
		if _, err := reg.RegisterData(data); err != nil {
			return fontInfo{}, err
		}
		size, err := reg.Measure(sample, paint.TextStyle{FontSize: 16})
		if err != nil {
			return fontInfo{}, err
		}
		info.Sample = fmt.Sprintf("%.1f×%.1f", size.Width, size.Height)
	}

	return info, nil
}

// guessWeight infers a weight from the subfamily name. The sfnt package
// does not expose the OS/2 weight class, so keyword matching is the best
// available signal.
func guessWeight(sub string) paint.FontWeight {
	lower := strings.ToLower(sub)
	switch {
	case strings.Contains(lower, "thin"):
		return paint.FontWeightThin
	case strings.Contains(lower, "extralight"), strings.Contains(lower, "extra light"), strings.Contains(lower, "ultralight"):
		return paint.FontWeightExtraLight
	case strings.Contains(lower, "semibold"), strings.Contains(lower, "semi bold"), strings.Contains(lower, "demibold"), strings.Contains(lower, "demi bold"):
		return paint.FontWeightSemibold
	case strings.Contains(lower, "extrabold"), strings.Contains(lower, "extra bold"), strings.Contains(lower, "ultrabold"):
		return paint.FontWeightExtraBold
	case strings.Contains(lower, "light"):
		return paint.FontWeightLight
	case strings.Contains(lower, "medium"):
		return paint.FontWeightMedium
	case strings.Contains(lower, "black"), strings.Contains(lower, "heavy"):
		return paint.FontWeightBlack
	case strings.Contains(lower, "bold"):
		return paint.FontWeightBold
	}
	return paint.FontWeightNormal
}

// renderFontTable renders the inspection results as a table.
func renderFontTable(infos []fontInfo, withSample bool) string {
	headers := []string{"File", "Family", "Style", "Weight", "Glyphs"}
	if withSample {
		headers = append(headers, "Sample")
	}

	rows := [][]string{}
	for _, info := range infos {
		row := []string{
			filepath.Base(info.Path),
			info.Family,
			info.Subfamily,
			info.Weight.String(),
			strconv.Itoa(info.Glyphs),
		}
		if withSample {
			row = append(row, info.Sample)
		}
		rows = append(rows, row)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleHighlight
			}
			return StyleValue
		})
	return t.Render()
}
