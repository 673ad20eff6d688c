package testing

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-drift/loom/pkg/layout"
)

// Finder locates boxes in a laid-out tree.
type Finder interface {
	// Evaluate returns all matching boxes under root (depth-first pre-order).
	Evaluate(root layout.Box) []layout.Box
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	boxes  []layout.Box
	finder Finder
}

// Box returns the first match. Panics if no matches.
func (r FinderResult) Box() layout.Box {
	if len(r.boxes) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no boxes: %s", desc))
	}
	return r.boxes[0]
}

// BoxOrNil returns the first match, or nil if none.
func (r FinderResult) BoxOrNil() layout.Box {
	if len(r.boxes) == 0 {
		return nil
	}
	return r.boxes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) layout.Box {
	if index < 0 || index >= len(r.boxes) {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.boxes), desc))
	}
	return r.boxes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []layout.Box {
	return r.boxes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.boxes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.boxes) > 0
}

// --- Concrete finders ---

// typeFinder matches boxes of the specified dynamic type.
type typeFinder struct {
	boxType  reflect.Type
	typeName string
}

func (f *typeFinder) Evaluate(root layout.Box) []layout.Box {
	return collectMatches(root, func(b layout.Box) bool {
		return reflect.TypeOf(b) == f.boxType
	})
}

func (f *typeFinder) Description() string {
	return fmt.Sprintf("ByType(%s)", f.typeName)
}

// ByType returns a finder that matches boxes of type T.
func ByType[T layout.Box]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &typeFinder{boxType: t, typeName: t.String()}
}

// textFinder matches Label boxes by exact content.
type textFinder struct {
	text string
}

func (f *textFinder) Evaluate(root layout.Box) []layout.Box {
	return collectMatches(root, func(b layout.Box) bool {
		if l, ok := b.(*layout.Label); ok {
			return l.Text == f.text
		}
		return false
	})
}

func (f *textFinder) Description() string {
	return fmt.Sprintf("ByText(%q)", f.text)
}

// ByText returns a finder that matches [layout.Label] boxes with exact
// text.
func ByText(text string) Finder {
	return &textFinder{text: text}
}

// textContainingFinder matches Label boxes containing a substring.
type textContainingFinder struct {
	substring string
}

func (f *textContainingFinder) Evaluate(root layout.Box) []layout.Box {
	return collectMatches(root, func(b layout.Box) bool {
		if l, ok := b.(*layout.Label); ok {
			return strings.Contains(l.Text, f.substring)
		}
		return false
	})
}

func (f *textContainingFinder) Description() string {
	return fmt.Sprintf("ByTextContaining(%q)", f.substring)
}

// ByTextContaining returns a finder that matches [layout.Label] boxes
// containing the given substring.
func ByTextContaining(substring string) Finder {
	return &textContainingFinder{substring: substring}
}

// predicateFinder matches boxes satisfying a predicate.
type predicateFinder struct {
	fn   func(layout.Box) bool
	desc string
}

func (f *predicateFinder) Evaluate(root layout.Box) []layout.Box {
	return collectMatches(root, f.fn)
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByPredicate returns a finder that matches boxes satisfying fn.
func ByPredicate(fn func(layout.Box) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// descendantFinder finds boxes matching 'matching' that are descendants of
// boxes matching 'of'.
type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root layout.Box) []layout.Box {
	ancestors := f.of.Evaluate(root)
	if len(ancestors) == 0 {
		return nil
	}
	var results []layout.Box
	seen := make(map[layout.Box]bool)
	for _, ancestor := range ancestors {
		// Search within each ancestor's subtree, skipping the ancestor
		// itself.
		ancestor.VisitChildren(func(child layout.Box) {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		})
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches boxes satisfying 'matching'
// that are descendants of boxes matching 'of'.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}

// ancestorFinder finds boxes matching 'matching' that are ancestors of
// boxes matching 'of'.
type ancestorFinder struct {
	of       Finder
	matching Finder
}

func (f *ancestorFinder) Evaluate(root layout.Box) []layout.Box {
	descendants := f.of.Evaluate(root)
	if len(descendants) == 0 {
		return nil
	}
	candidates := f.matching.Evaluate(root)
	var results []layout.Box
	seen := make(map[layout.Box]bool)
	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		for _, desc := range descendants {
			if candidate != desc && isAncestorOf(candidate, desc) {
				seen[candidate] = true
				results = append(results, candidate)
				break
			}
		}
	}
	return results
}

func (f *ancestorFinder) Description() string {
	return fmt.Sprintf("Ancestor(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Ancestor returns a finder that matches boxes satisfying 'matching' that
// are ancestors of boxes matching 'of'.
func Ancestor(of, matching Finder) Finder {
	return &ancestorFinder{of: of, matching: matching}
}

// isAncestorOf reports whether descendant appears in ancestor's subtree.
func isAncestorOf(ancestor, descendant layout.Box) bool {
	found := false
	ancestor.VisitChildren(func(child layout.Box) {
		if found {
			return
		}
		walkBoxes(child, func(b layout.Box) bool {
			if b == descendant {
				found = true
				return false
			}
			return true
		})
	})
	return found
}

// collectMatches performs a depth-first pre-order traversal, collecting
// boxes that satisfy the predicate.
func collectMatches(root layout.Box, predicate func(layout.Box) bool) []layout.Box {
	var results []layout.Box
	walkBoxes(root, func(b layout.Box) bool {
		if predicate(b) {
			results = append(results, b)
		}
		return true
	})
	return results
}

// walkBoxes performs a depth-first pre-order traversal. The visitor
// returns false to stop.
func walkBoxes(root layout.Box, visitor func(layout.Box) bool) bool {
	if !visitor(root) {
		return false
	}
	ok := true
	root.VisitChildren(func(child layout.Box) {
		if ok {
			ok = walkBoxes(child, visitor)
		}
	})
	return ok
}
