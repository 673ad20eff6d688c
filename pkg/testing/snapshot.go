package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-drift/loom/pkg/layout"
)

// updateEnv, when set to "1", makes MatchesFile rewrite golden files
// instead of comparing against them.
const updateEnv = "LOOM_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures a laid-out box tree: types, sizes, offsets, and a
// whitelisted set of per-type properties.
type Snapshot struct {
	Tree *Node `json:"tree"`
}

// Node represents a box in the serialized layout tree.
type Node struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Size       [2]float64     `json:"size"`
	Offset     [2]float64     `json:"offset"`
	Properties map[string]any `json:"props,omitempty"`
	Children   []*Node        `json:"children,omitempty"`
}

// propertyWhitelist defines which properties to serialize per box type.
// Types not listed here are serialized with size/offset only.
var propertyWhitelist = map[string][]string{
	"Flow":     {"axis", "alignment", "crossAlignment", "runAlignment", "spacing", "runSpacing"},
	"Padding":  {"insets"},
	"SizedBox": {"width", "height"},
	"Align":    {"alignment"},
	"Rotated":  {"angle", "scale"},
	"Label":    {"text"},
}

// CaptureSnapshot captures the current layout tree.
func (lt *LayoutTester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if lt.root != nil {
		ids := idAllocator{counts: make(map[string]int)}
		snap.Tree = captureNode(lt.root, &ids)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When LOOM_UPDATE_SNAPSHOTS=1
// is set, the file is rewritten instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(updateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("update snapshot %s: %v", path, err)
		}
		return
	}

	expected, err := readSnapshotFile(path)
	switch {
	case os.IsNotExist(err):
		t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, updateEnv, t.Name())
		return
	case err != nil:
		t.Fatalf("load snapshot %s: %v", path, err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: %s=1 go test -run %s", path, diff, updateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	data, err := s.encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot (actual) and other
// (expected), or "" when they are equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	actual, _ := s.encode()
	expected, _ := other.encode()
	if bytes.Equal(actual, expected) {
		return ""
	}
	return lineDiff(string(expected), string(actual))
}

// encode renders the snapshot as indented JSON. HTML escaping is off so
// golden files stay readable.
func (s *Snapshot) encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func readSnapshotFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

// idAllocator hands out stable per-type IDs like "Flow#0", "SizedBox#1" in
// tree visit order.
type idAllocator struct {
	counts map[string]int
}

func (a *idAllocator) next(typeName string) string {
	n := a.counts[typeName]
	a.counts[typeName] = n + 1
	return typeName + "#" + strconv.Itoa(n)
}

func captureNode(b layout.Box, ids *idAllocator) *Node {
	typeName := boxTypeName(b)
	size := b.Size()
	offset := b.Offset()

	node := &Node{
		ID:     ids.next(typeName),
		Type:   typeName,
		Size:   [2]float64{round2(size.Width), round2(size.Height)},
		Offset: [2]float64{round2(offset.X), round2(offset.Y)},
	}

	if props := captureProperties(b, typeName); len(props) > 0 {
		node.Properties = props
	}

	b.VisitChildren(func(child layout.Box) {
		node.Children = append(node.Children, captureNode(child, ids))
	})

	return node
}

func boxTypeName(b layout.Box) string {
	t := reflect.TypeOf(b)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func captureProperties(b layout.Box, typeName string) map[string]any {
	whitelist, ok := propertyWhitelist[typeName]
	if !ok {
		return nil
	}

	props := make(map[string]any)
	v := reflect.ValueOf(b)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	for _, propName := range whitelist {
		// Property names are lowercase; box fields are exported.
		field := v.FieldByName(strings.ToUpper(propName[:1]) + propName[1:])
		if !field.IsValid() {
			continue
		}
		if val := serializeFieldValue(field); val != nil {
			props[propName] = val
		}
	}

	if len(props) == 0 {
		return nil
	}
	return props
}

func serializeFieldValue(v reflect.Value) any {
	// Enums serialize through their String method so goldens stay
	// readable.
	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return round2(v.Float())
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Struct:
		if !v.CanInterface() {
			return nil
		}
		return fmt.Sprintf("%v", v.Interface())
	default:
		return nil
	}
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// lineDiff renders a minimal line-by-line diff with unified-style markers.
func lineDiff(expected, actual string) string {
	e := strings.Split(expected, "\n")
	a := strings.Split(actual, "\n")

	var sb strings.Builder
	sb.WriteString("--- expected\n+++ actual\n")
	for i := 0; i < len(e) || i < len(a); i++ {
		el, eok := lineAt(e, i)
		al, aok := lineAt(a, i)
		if el == al && eok && aok {
			continue
		}
		if eok {
			sb.WriteString("-")
			sb.WriteString(el)
			sb.WriteString("\n")
		}
		if aok {
			sb.WriteString("+")
			sb.WriteString(al)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func lineAt(lines []string, i int) (string, bool) {
	if i < len(lines) {
		return lines[i], true
	}
	return "", false
}
