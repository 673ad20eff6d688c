package font

import (
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-drift/loom/pkg/errors"
)

var (
	defaultRegistry *Registry
	defaultErr      error
	defaultOnce     sync.Once
)

// DefaultErr returns the shared registry, pre-loaded with the Go font
// family ("Go" in regular, bold, italic, and bold italic). It returns both
// the registry and any error that occurred while loading the bundled fonts.
func DefaultErr() (*Registry, error) {
	defaultOnce.Do(func() {
		r := NewRegistry()
		for _, ttf := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
			if _, err := r.RegisterData(ttf); err != nil {
				defaultErr = err
				errors.Report(&errors.LoomError{
					Op:   "font.Default",
					Kind: errors.KindInit,
					Err:  err,
				})
				return
			}
		}
		defaultRegistry = r
	})
	return defaultRegistry, defaultErr
}

// Default returns the shared registry with the bundled Go fonts.
// It returns nil if the bundled fonts failed to load; use [DefaultErr] to
// observe the error.
func Default() *Registry {
	r, _ := DefaultErr()
	return r
}
