package font

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/loom/pkg/geometry"
	"github.com/go-drift/loom/pkg/paint"
)

// measureDPI equates point sizes with pixel units, so a 16pt style
// measures 16px tall glyphs.
const measureDPI = 72

type faceKey struct {
	family string
	v      variant
	size   float64
}

// cachedFace serializes access to one opentype face. Faces reuse internal
// buffers and are not safe for concurrent use.
type cachedFace struct {
	mu   sync.Mutex
	face xfont.Face
}

// Metrics are the vertical metrics of a face at a given size, in pixels.
// Ascent and Descent are distances from the baseline; LineHeight is the
// baseline-to-baseline distance.
type Metrics struct {
	Ascent     float64
	Descent    float64
	LineHeight float64
}

// Measure returns the size of text rendered in the given style: the widest
// line by the summed line heights. Newlines split lines; no wrapping is
// applied (wrapping is a layout concern, see the layout package). Empty
// text still reserves one line height, so empty labels hold their place.
//
// The style's family falls back to the registry default, its size to
// [paint.DefaultFontSize], and its weight and slant to the closest
// registered variant.
func (r *Registry) Measure(text string, style paint.TextStyle) (geometry.Size, error) {
	cf, err := r.face(style)
	if err != nil {
		return geometry.Size{}, err
	}

	cf.mu.Lock()
	defer cf.mu.Unlock()

	m := faceMetrics(cf.face)
	lineHeight := m.LineHeight
	if style.Height > 0 {
		lineHeight *= style.Height
	}

	lines := strings.Split(text, "\n")
	width := 0.0
	for _, line := range lines {
		w := fixedToFloat(xfont.MeasureString(cf.face, line))
		if n := utf8.RuneCountInString(line); n > 1 && style.LetterSpacing != 0 {
			w += style.LetterSpacing * float64(n-1)
			if w < 0 {
				w = 0
			}
		}
		if w > width {
			width = w
		}
	}
	return geometry.Size{Width: width, Height: lineHeight * float64(len(lines))}, nil
}

// Metrics returns the vertical metrics for the given style, resolved the
// same way as [Registry.Measure].
func (r *Registry) Metrics(style paint.TextStyle) (Metrics, error) {
	cf, err := r.face(style)
	if err != nil {
		return Metrics{}, err
	}
	cf.mu.Lock()
	defer cf.mu.Unlock()
	m := faceMetrics(cf.face)
	if style.Height > 0 {
		m.LineHeight *= style.Height
	}
	return m, nil
}

// Prewarm builds and caches the faces for the given styles ahead of first
// measurement. Useful before a layout pass that will measure many labels.
func (r *Registry) Prewarm(styles ...paint.TextStyle) error {
	for _, style := range styles {
		if _, err := r.face(style); err != nil {
			return err
		}
	}
	return nil
}

// face returns the cached face for a style, creating it on first use.
func (r *Registry) face(style paint.TextStyle) (*cachedFace, error) {
	fam, parsed, v, err := r.resolve(style)
	if err != nil {
		return nil, err
	}
	size := style.FontSize
	if size <= 0 {
		size = paint.DefaultFontSize
	}
	key := faceKey{family: fam.name, v: v, size: size}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cf, ok := r.faces[key]; ok {
		return cf, nil
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     measureDPI,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("build face for %q at %g: %w", fam.name, size, err)
	}
	cf := &cachedFace{face: face}
	r.faces[key] = cf
	return cf, nil
}

func faceMetrics(face xfont.Face) Metrics {
	m := face.Metrics()
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	lineHeight := fixedToFloat(m.Height)
	if lineHeight == 0 {
		lineHeight = ascent + descent
	}
	return Metrics{Ascent: ascent, Descent: descent, LineHeight: lineHeight}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
