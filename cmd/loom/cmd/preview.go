package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/go-drift/loom/pkg/font"
	"github.com/go-drift/loom/pkg/paint"
	"github.com/go-drift/loom/pkg/theme"
)

// newPreviewCmd creates the preview command for rendering themes.
func newPreviewCmd() *cobra.Command {
	var (
		dark  bool
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "preview [theme.yaml]",
		Short: "Render a theme's colors and type scale in the terminal",
		Long: `Render a theme's colors and type scale in the terminal.

Without arguments the default light theme is shown; pass a theme file to
preview a custom theme. Color pairs are annotated with their WCAG contrast
ratio, and the type scale table includes the line height each style
measures with the bundled Go fonts.

When stdout is not a terminal the preview falls back to plain text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runPreview(cmd, path, dark, plain)
		},
	}

	cmd.Flags().BoolVar(&dark, "dark", false, "preview the dark variant")
	cmd.Flags().BoolVar(&plain, "plain", false, "force plain text output")

	return cmd
}

// runPreview loads the requested theme and renders it.
func runPreview(cmd *cobra.Command, path string, dark, plain bool) error {
	logger := loggerFromContext(cmd.Context())

	th := theme.DefaultLightTheme()
	name := "default-light"
	if path != "" {
		loaded, err := theme.Load(path)
		if err != nil {
			return err
		}
		th = loaded
		name = path
	}
	if dark {
		th = th.ForBrightness(theme.BrightnessDark)
		if path == "" {
			name = "default-dark"
		}
	}
	logger.Debug("previewing theme", "name", name, "brightness", th.Brightness)

	if plain || !isTerminal(os.Stdout) {
		printPlainPreview(th, name)
		return nil
	}

	fmt.Println(StyleTitle.Render("Theme: " + name))
	printKeyValue("Brightness", th.Brightness.String())
	if th.DefaultFontFamily != "" {
		printKeyValue("Font", th.DefaultFontFamily)
	}
	fmt.Println()
	fmt.Println(renderColorPreview(th))
	fmt.Println(renderTypePreview(th))
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorRow pairs a scheme slot with the content color drawn on top of it,
// if it has one.
type colorRow struct {
	name string
	c    paint.Color
	on   *paint.Color
}

func colorRows(scheme theme.ColorScheme) []colorRow {
	return []colorRow{
		{"Primary", scheme.Primary, &scheme.OnPrimary},
		{"Secondary", scheme.Secondary, &scheme.OnSecondary},
		{"Background", scheme.Background, &scheme.OnBackground},
		{"Surface", scheme.Surface, &scheme.OnSurface},
		{"SurfaceVariant", scheme.SurfaceVariant, &scheme.OnSurfaceVariant},
		{"Error", scheme.Error, &scheme.OnError},
		{"Outline", scheme.Outline, nil},
	}
}

// renderColorPreview renders the color scheme as swatch lines with
// contrast annotations.
func renderColorPreview(th *theme.Theme) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render("Colors"))
	b.WriteString("\n")

	nameStyle := lipgloss.NewStyle().Foreground(colorGray).Width(16)
	for _, row := range colorRows(th.ColorScheme) {
		b.WriteString(nameStyle.Render(row.name))
		b.WriteString(swatch(row.c))
		b.WriteString(" " + StyleValue.Render(row.c.Hex()))
		if row.on != nil {
			b.WriteString(StyleDim.Render("  on "))
			b.WriteString(swatch(*row.on))
			b.WriteString(" " + StyleValue.Render(row.on.Hex()))
			b.WriteString("  " + contrastLabel(row.c, *row.on))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// contrastLabel formats the WCAG contrast ratio of a color pair, flagging
// pairs below the 4.5:1 threshold for normal text.
func contrastLabel(bg, fg paint.Color) string {
	ratio := paint.ContrastRatio(bg, fg)
	label := fmt.Sprintf("%.1f:1", ratio)
	if ratio < 4.5 {
		return StyleWarning.Render(label)
	}
	return StyleSuccess.Render(label)
}

// typeScaleEntry names one slot of the type scale.
type typeScaleEntry struct {
	name  string
	style paint.TextStyle
}

func typeScaleRows(tt theme.TextTheme) []typeScaleEntry {
	return []typeScaleEntry{
		{"DisplayLarge", tt.DisplayLarge},
		{"HeadlineLarge", tt.HeadlineLarge},
		{"HeadlineMedium", tt.HeadlineMedium},
		{"HeadlineSmall", tt.HeadlineSmall},
		{"TitleMedium", tt.TitleMedium},
		{"BodyLarge", tt.BodyLarge},
		{"BodyMedium", tt.BodyMedium},
		{"BodySmall", tt.BodySmall},
		{"LabelLarge", tt.LabelLarge},
		{"LabelMedium", tt.LabelMedium},
		{"LabelSmall", tt.LabelSmall},
	}
}

// renderTypePreview renders the type scale as a table.
func renderTypePreview(th *theme.Theme) string {
	reg := font.Default()

	rows := [][]string{}
	for _, entry := range typeScaleRows(th.TextThemeOf()) {
		rows = append(rows, []string{
			entry.name,
			formatFloat(entry.style.FontSize),
			weightLabel(entry.style.FontWeight),
			letterLabel(entry.style.LetterSpacing),
			lineHeightLabel(reg, entry.style),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Style", "Size", "Weight", "Letter", "Line").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	return StyleTitle.Render("Type Scale") + "\n" + t.Render()
}

// printPlainPreview writes the preview without any terminal styling.
func printPlainPreview(th *theme.Theme, name string) {
	fmt.Printf("Theme: %s\n", name)
	fmt.Printf("Brightness: %s\n", th.Brightness)
	if th.DefaultFontFamily != "" {
		fmt.Printf("Font: %s\n", th.DefaultFontFamily)
	}

	fmt.Println()
	fmt.Println("Colors:")
	for _, row := range colorRows(th.ColorScheme) {
		if row.on != nil {
			ratio := paint.ContrastRatio(row.c, *row.on)
			fmt.Printf("  %-16s %-9s on %-9s %.1f:1\n", row.name, row.c.Hex(), row.on.Hex(), ratio)
		} else {
			fmt.Printf("  %-16s %s\n", row.name, row.c.Hex())
		}
	}

	fmt.Println()
	fmt.Println("Type scale:")
	reg := font.Default()
	for _, entry := range typeScaleRows(th.TextThemeOf()) {
		fmt.Printf("  %-16s %4spt  %-8s  line %s\n",
			entry.name, formatFloat(entry.style.FontSize),
			weightLabel(entry.style.FontWeight), lineHeightLabel(reg, entry.style))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// weightLabel names a font weight, treating unset as normal.
func weightLabel(w paint.FontWeight) string {
	if w == 0 {
		return paint.FontWeightNormal.String()
	}
	return w.String()
}

func letterLabel(spacing float64) string {
	if spacing == 0 {
		return "-"
	}
	return formatFloat(spacing)
}

// lineHeightLabel measures the style's line height with the bundled fonts.
// Styles naming an unregistered family fall back to "-".
func lineHeightLabel(reg *font.Registry, style paint.TextStyle) string {
	if reg == nil {
		return "-"
	}
	m, err := reg.Metrics(style)
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", m.LineHeight)
}
