// Package font registers font families and measures text against them.
//
// Fonts are parsed with golang.org/x/image/font/sfnt and measured through
// opentype faces, so measurement works anywhere Go runs, with no display or
// native toolkit required. A process-wide default registry bundles the Go
// fonts; call [Default] for it, or build an isolated [Registry] with
// [NewRegistry].
package font

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/sfnt"

	"github.com/go-drift/loom/pkg/paint"
)

// variant distinguishes the faces of one family.
type variant struct {
	bold   bool
	italic bool
}

type family struct {
	name     string
	variants map[variant]*sfnt.Font
}

// Registry holds parsed font families keyed by family name. The zero value
// is not usable; call [NewRegistry].
//
// All methods are safe for concurrent use.
type Registry struct {
	mu            sync.RWMutex
	families      map[string]*family
	defaultFamily string
	faces         map[faceKey]*cachedFace
}

// NewRegistry creates an empty registry with no default family.
func NewRegistry() *Registry {
	return &Registry{
		families: make(map[string]*family),
		faces:    make(map[faceKey]*cachedFace),
	}
}

// RegisterData parses TrueType or OpenType data and registers it under the
// family name found in the font's own name table, classifying the face as
// bold or italic from its subfamily name. It returns the family name.
// Registering the same variant again replaces it.
//
// The first family registered becomes the default.
func (r *Registry) RegisterData(data []byte) (string, error) {
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return "", fmt.Errorf("parse font: %w", err)
	}
	name, err := parsed.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return "", fmt.Errorf("read font family name: %w", err)
	}
	sub, err := parsed.Name(nil, sfnt.NameIDSubfamily)
	if err != nil {
		sub = ""
	}
	v := classifySubfamily(sub)
	r.register(name, v, parsed)
	return name, nil
}

// RegisterDataAs is like [RegisterData] but registers the font under an
// explicit family name instead of the name table entry, as the regular
// upright variant.
func (r *Registry) RegisterDataAs(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("font family name required")
	}
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", name, err)
	}
	r.register(name, variant{}, parsed)
	return nil
}

// RegisterFile reads and registers a font file. It returns the family name.
func (r *Registry) RegisterFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read font file: %w", err)
	}
	name, err := r.RegisterData(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return name, nil
}

func (r *Registry) register(name string, v variant, parsed *sfnt.Font) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fam, ok := r.families[name]
	if !ok {
		fam = &family{name: name, variants: make(map[variant]*sfnt.Font)}
		r.families[name] = fam
	}
	fam.variants[v] = parsed
	if r.defaultFamily == "" {
		r.defaultFamily = name
	}
	// Replacing a variant invalidates any faces built from the old font.
	for key := range r.faces {
		if key.family == name {
			delete(r.faces, key)
		}
	}
}

// Has reports whether a family is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.families[name]
	return ok
}

// Families returns the registered family names, sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.families))
	for name := range r.families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultFamily returns the family used when a [paint.TextStyle] does not
// name one, or "" for an empty registry.
func (r *Registry) DefaultFamily() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultFamily
}

// SetDefaultFamily changes the fallback family. The family must already be
// registered.
func (r *Registry) SetDefaultFamily(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.families[name]; !ok {
		return fmt.Errorf("font family %q not registered", name)
	}
	r.defaultFamily = name
	return nil
}

// resolve picks the font for a style: the styled family or the default, and
// the closest variant to the requested weight and slant. Falling back
// across variants keeps measurement working for families registered with a
// single face.
func (r *Registry) resolve(style paint.TextStyle) (*family, *sfnt.Font, variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name := style.FontFamily
	if name == "" {
		name = r.defaultFamily
	}
	if name == "" {
		return nil, nil, variant{}, fmt.Errorf("no font registered")
	}
	fam, ok := r.families[name]
	if !ok {
		return nil, nil, variant{}, fmt.Errorf("font family %q not registered", name)
	}

	want := variant{bold: style.FontWeight.IsBold(), italic: style.FontStyle == paint.FontStyleItalic}
	for _, v := range []variant{
		want,
		{bold: want.bold},
		{italic: want.italic},
		{},
	} {
		if f, ok := fam.variants[v]; ok {
			return fam, f, v, nil
		}
	}
	for v, f := range fam.variants {
		return fam, f, v, nil
	}
	return nil, nil, variant{}, fmt.Errorf("font family %q has no faces", name)
}

// classifySubfamily maps a name-table subfamily ("Bold Italic", "Regular")
// onto a variant.
func classifySubfamily(sub string) variant {
	lower := strings.ToLower(sub)
	return variant{
		bold:   strings.Contains(lower, "bold"),
		italic: strings.Contains(lower, "italic") || strings.Contains(lower, "oblique"),
	}
}
