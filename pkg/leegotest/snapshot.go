package leegotest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/go-cmp/cmp"

	"github.com/wangshengjia/leego/pkg/view"
)

// UpdateEnv is the environment variable that makes MatchesFile rewrite
// golden files instead of comparing against them.
const UpdateEnv = "LEEGO_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the structure of a view tree.
type Snapshot struct {
	Tree *Node `json:"tree"`
}

// Node is one view of a snapshot.
type Node struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Root        bool           `json:"root,omitempty"`
	FromNib     bool           `json:"fromNib,omitempty"`
	Outlet      string         `json:"outlet,omitempty"`
	Style       map[string]any `json:"style,omitempty"`
	Constraints []string       `json:"constraints,omitempty"`
	Children    []*Node        `json:"children,omitempty"`
}

// Capture snapshots the tree under root. A nil root gives an empty
// snapshot.
func Capture(root *view.Node) *Snapshot {
	if root == nil {
		return &Snapshot{}
	}
	return &Snapshot{Tree: captureNode(root)}
}

func captureNode(n *view.Node) *Node {
	out := &Node{
		Name:    n.Name(),
		Type:    n.ViewType(),
		Root:    n.IsRoot(),
		FromNib: n.FromNib(),
	}
	if b, ok := n.Current(); ok {
		out.Outlet = b.Outlet()
		if ops := b.Style(); len(ops) > 0 {
			out.Style = make(map[string]any, len(ops))
			for _, op := range ops {
				out.Style[string(op.Kind)] = op.Value
			}
		}
	}
	for _, c := range n.Constraints() {
		desc := c.String()
		if c.Identifier != "" {
			desc = c.Identifier
		}
		out.Constraints = append(out.Constraints, desc)
	}
	sort.Strings(out.Constraints)
	for _, sub := range n.Subviews() {
		out.Children = append(out.Children, captureNode(sub))
	}
	return out
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When LEEGO_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-expected +actual)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a structural diff from expected to s. It returns the empty
// string if both are equal once normalized through JSON.
func (s *Snapshot) Diff(expected *Snapshot) string {
	a, err := normalize(expected)
	if err != nil {
		return fmt.Sprintf("cannot normalize expected snapshot: %v", err)
	}
	b, err := normalize(s)
	if err != nil {
		return fmt.Sprintf("cannot normalize actual snapshot: %v", err)
	}
	return cmp.Diff(a, b)
}

// normalize makes snapshots built in memory comparable with loaded ones,
// whose style values went through JSON.
func normalize(s *Snapshot) (any, error) {
	data, err := marshalSnapshot(s)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func loadSnapshot(path string) (*Snapshot, error) {
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

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
