package cmd

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/go-drift/loom/pkg/paint"
	"github.com/go-drift/loom/pkg/theme"
)

// genTemplate is the generated source layout. Literals are pre-rendered
// strings; the output is run through go/format before writing.
const genTemplate = `// Code generated by loom gen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/go-drift/loom/pkg/paint"
	"github.com/go-drift/loom/pkg/theme"
)

// {{.FuncName}} returns the theme defined in {{.Source}}.
func {{.FuncName}}() *theme.Theme {
	return &theme.Theme{
		ColorScheme: theme.ColorScheme{
{{- range .Scheme}}
			{{.Name}}: {{.Literal}},
{{- end}}
		},
		Brightness: {{.Brightness}},
{{- if .FontFamily}}
		DefaultFontFamily: {{.FontFamily}},
{{- end}}
{{- if .TextStyles}}
		TextTheme: &theme.TextTheme{
{{- range .TextStyles}}
			{{.Name}}: {{.Literal}},
{{- end}}
		},
{{- end}}
{{- if .Spacing}}
		Spacing: {{.Spacing}},
{{- end}}
{{- if .Radii}}
		Radii: {{.Radii}},
{{- end}}
	}
}
`

// genData feeds genTemplate.
type genData struct {
	Source     string
	Package    string
	FuncName   string
	Scheme     []genField
	Brightness string
	FontFamily string
	TextStyles []genField
	Spacing    string
	Radii      string
}

// genField is a pre-rendered struct field assignment.
type genField struct {
	Name    string
	Literal string
}

// newGenCmd creates the gen command for generating theme source.
func newGenCmd() *cobra.Command {
	var (
		out      string
		pkgName  string
		funcName string
	)

	cmd := &cobra.Command{
		Use:   "gen <theme.yaml>",
		Short: "Generate Go source for a theme file",
		Long: `Generate a Go source file that reconstructs a theme in code.

The generated file declares a constructor returning the loaded theme, so
applications can ship a designed theme without parsing YAML at runtime.
The destination package name is derived from the nearest go.mod and the
output path unless --package is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, args[0], out, pkgName, funcName)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&pkgName, "package", "", "package name for the generated file")
	cmd.Flags().StringVar(&funcName, "func", "AppTheme", "name of the generated constructor")

	return cmd
}

func runGen(cmd *cobra.Command, in, out, pkgName, funcName string) error {
	logger := loggerFromContext(cmd.Context())

	th, err := theme.Load(in)
	if err != nil {
		return err
	}

	if pkgName == "" {
		pkgName = resolvePackageName(out)
	}
	logger.Debug("generating theme source", "package", pkgName, "func", funcName)

	src, err := generateThemeSource(th, filepath.Base(in), pkgName, funcName)
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Print(string(src))
		return nil
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return err
	}
	printSuccess("generated %s()", funcName)
	printFile(out)
	return nil
}

// generateThemeSource renders and formats the source for a theme.
func generateThemeSource(th *theme.Theme, source, pkgName, funcName string) ([]byte, error) {
	tmpl := template.Must(template.New("theme").Parse(genTemplate))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildGenData(th, source, pkgName, funcName)); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func buildGenData(th *theme.Theme, source, pkgName, funcName string) genData {
	scheme := th.ColorScheme
	data := genData{
		Source:   source,
		Package:  pkgName,
		FuncName: funcName,
		Scheme: []genField{
			{"Primary", colorLiteral(scheme.Primary)},
			{"OnPrimary", colorLiteral(scheme.OnPrimary)},
			{"Secondary", colorLiteral(scheme.Secondary)},
			{"OnSecondary", colorLiteral(scheme.OnSecondary)},
			{"Background", colorLiteral(scheme.Background)},
			{"OnBackground", colorLiteral(scheme.OnBackground)},
			{"Surface", colorLiteral(scheme.Surface)},
			{"OnSurface", colorLiteral(scheme.OnSurface)},
			{"SurfaceVariant", colorLiteral(scheme.SurfaceVariant)},
			{"OnSurfaceVariant", colorLiteral(scheme.OnSurfaceVariant)},
			{"Error", colorLiteral(scheme.Error)},
			{"OnError", colorLiteral(scheme.OnError)},
			{"Outline", colorLiteral(scheme.Outline)},
		},
		Brightness: brightnessLiteral(th.Brightness),
	}
	if th.DefaultFontFamily != "" {
		data.FontFamily = strconv.Quote(th.DefaultFontFamily)
	}
	if th.TextTheme != nil {
		for _, entry := range typeScaleRows(*th.TextTheme) {
			data.TextStyles = append(data.TextStyles, genField{entry.name, textStyleLiteral(entry.style)})
		}
	}
	if th.Spacing != nil {
		data.Spacing = spacingLiteral(*th.Spacing)
	}
	if th.Radii != nil {
		data.Radii = radiiLiteral(*th.Radii)
	}
	return data
}

// resolvePackageName derives the package name for the generated file from
// the nearest enclosing go.mod and the output path's position in the
// module. It falls back to "main" outside a module or when writing to
// stdout.
func resolvePackageName(out string) string {
	if out == "" {
		return "main"
	}
	abs, err := filepath.Abs(out)
	if err != nil {
		return "main"
	}
	dir := filepath.Dir(abs)

	root, err := findModuleRoot(dir)
	if err != nil {
		return "main"
	}
	data, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return "main"
	}
	modPath := modfile.ModulePath(data)
	if modPath == "" {
		return "main"
	}

	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return "main"
	}
	if rel == "." {
		base := modPath
		if prefix, _, ok := module.SplitPathVersion(modPath); ok {
			base = prefix
		}
		return sanitizePackageName(path.Base(base))
	}
	return sanitizePackageName(filepath.Base(rel))
}

// findModuleRoot walks up from dir to find go.mod.
func findModuleRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// sanitizePackageName lowercases a name and strips characters that are
// not valid in a package identifier.
func sanitizePackageName(name string) string {
	var out []rune
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
			out = append(out, r)
		case r >= '0' && r <= '9':
			if len(out) > 0 {
				out = append(out, r)
			}
		}
	}
	if len(out) == 0 {
		return "main"
	}
	return string(out)
}

func colorLiteral(c paint.Color) string {
	return fmt.Sprintf("paint.Color(0x%08X)", uint32(c))
}

func brightnessLiteral(b theme.Brightness) string {
	if b == theme.BrightnessDark {
		return "theme.BrightnessDark"
	}
	return "theme.BrightnessLight"
}

// textStyleLiteral renders the non-zero fields of a text style.
func textStyleLiteral(ts paint.TextStyle) string {
	var fields []string
	if ts.Color != 0 {
		fields = append(fields, "Color: "+colorLiteral(ts.Color))
	}
	if ts.FontFamily != "" {
		fields = append(fields, "FontFamily: "+strconv.Quote(ts.FontFamily))
	}
	if ts.FontSize != 0 {
		fields = append(fields, "FontSize: "+formatFloat(ts.FontSize))
	}
	if ts.FontWeight != 0 {
		fields = append(fields, "FontWeight: "+fontWeightLiteral(ts.FontWeight))
	}
	if ts.FontStyle == paint.FontStyleItalic {
		fields = append(fields, "FontStyle: paint.FontStyleItalic")
	}
	if ts.LetterSpacing != 0 {
		fields = append(fields, "LetterSpacing: "+formatFloat(ts.LetterSpacing))
	}
	if ts.Height != 0 {
		fields = append(fields, "Height: "+formatFloat(ts.Height))
	}
	return "paint.TextStyle{" + strings.Join(fields, ", ") + "}"
}

func fontWeightLiteral(w paint.FontWeight) string {
	switch w {
	case paint.FontWeightThin:
		return "paint.FontWeightThin"
	case paint.FontWeightExtraLight:
		return "paint.FontWeightExtraLight"
	case paint.FontWeightLight:
		return "paint.FontWeightLight"
	case paint.FontWeightNormal:
		return "paint.FontWeightNormal"
	case paint.FontWeightMedium:
		return "paint.FontWeightMedium"
	case paint.FontWeightSemibold:
		return "paint.FontWeightSemibold"
	case paint.FontWeightBold:
		return "paint.FontWeightBold"
	case paint.FontWeightExtraBold:
		return "paint.FontWeightExtraBold"
	case paint.FontWeightBlack:
		return "paint.FontWeightBlack"
	}
	return fmt.Sprintf("paint.FontWeight(%d)", int(w))
}

func spacingLiteral(s theme.SpacingScale) string {
	return fmt.Sprintf("&theme.SpacingScale{None: %s, XS: %s, SM: %s, MD: %s, LG: %s, XL: %s, XXL: %s}",
		formatFloat(s.None), formatFloat(s.XS), formatFloat(s.SM), formatFloat(s.MD),
		formatFloat(s.LG), formatFloat(s.XL), formatFloat(s.XXL))
}

func radiiLiteral(r theme.RadiusScale) string {
	return fmt.Sprintf("&theme.RadiusScale{None: %s, Small: %s, Medium: %s, Large: %s, Full: %s}",
		formatFloat(r.None), formatFloat(r.Small), formatFloat(r.Medium), formatFloat(r.Large), formatFloat(r.Full))
}
