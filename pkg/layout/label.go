package layout

import (
	stderrors "errors"

	"github.com/go-drift/loom/pkg/errors"
	"github.com/go-drift/loom/pkg/font"
	"github.com/go-drift/loom/pkg/geometry"
	"github.com/go-drift/loom/pkg/paint"
)

// Label is a leaf box sized to its measured text.
//
// Text is measured through a [font.Registry]; a nil Fonts falls back to the
// bundled Go faces. Newlines produce multiple lines, but Label never wraps:
// wrapping text is built by splitting it into word Labels inside a [Flow].
// Measurement failures report through the errors handler and collapse the
// label to zero size rather than failing the layout pass.
type Label struct {
	BoxBase
	Text  string
	Style paint.TextStyle
	Fonts *font.Registry
}

// NewLabel creates a Label for text in the given style. fonts may be nil to
// use [font.Default].
func NewLabel(text string, style paint.TextStyle, fonts *font.Registry) *Label {
	l := &Label{Text: text, Style: style, Fonts: fonts}
	l.SetSelf(l)
	return l
}

func (l *Label) registry() (*font.Registry, error) {
	if l.Fonts != nil {
		return l.Fonts, nil
	}
	r, err := font.DefaultErr()
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, stderrors.New("no font registry available")
	}
	return r, nil
}

func (l *Label) PerformLayout() {
	constraints := l.Constraints()

	reg, err := l.registry()
	if err == nil {
		var size geometry.Size
		size, err = reg.Measure(l.Text, l.Style)
		if err == nil {
			l.SetSize(constraints.Constrain(size))
			return
		}
	}

	errors.Report(&errors.LoomError{Op: "layout.Label", Kind: errors.KindFont, Err: err})
	l.SetSize(constraints.Constrain(geometry.Size{}))
}
