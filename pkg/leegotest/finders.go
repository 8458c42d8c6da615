package leegotest

import (
	"fmt"
	"reflect"

	"github.com/wangshengjia/leego/pkg/view"
)

// Finder locates nodes in a view tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *view.Node) []*view.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// Find evaluates f under root.
func Find(root *view.Node, f Finder) FinderResult {
	return FinderResult{nodes: f.Evaluate(root), finder: f}
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*view.Node
	finder Finder
}

func (r FinderResult) description() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *view.Node {
	if len(r.nodes) == 0 {
		panic(fmt.Sprintf("Finder found no views: %s", r.description()))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *view.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) *view.Node {
	if index < 0 || index >= len(r.nodes) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.nodes), r.description()))
	}
	return r.nodes[index]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*view.Node { return r.nodes }

// Count returns the number of matches.
func (r FinderResult) Count() int { return len(r.nodes) }

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool { return len(r.nodes) > 0 }

// Native returns the view of the first match. Panics if no matches.
func (r FinderResult) Native() view.View { return r.First().Native() }

// Names returns the brick names of the matches.
func (r FinderResult) Names() []string {
	names := make([]string, len(r.nodes))
	for i, n := range r.nodes {
		names[i] = n.Name()
	}
	return names
}

type predicateFinder struct {
	fn   func(*view.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *view.Node) []*view.Node {
	var out []*view.Node
	root.Walk(func(n *view.Node) bool {
		if f.fn(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (f *predicateFinder) Description() string { return f.desc }

// ByPredicate returns a finder that matches nodes satisfying fn.
func ByPredicate(fn func(*view.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: "ByPredicate(...)"}
}

// ByName matches nodes whose current brick is named name.
func ByName(name string) Finder {
	return &predicateFinder{
		fn:   func(n *view.Node) bool { return n.Name() == name },
		desc: fmt.Sprintf("ByName(%q)", name),
	}
}

// ByOutlet matches nodes whose current brick declares the outlet key.
func ByOutlet(key string) Finder {
	return &predicateFinder{
		fn: func(n *view.Node) bool {
			b, ok := n.Current()
			return ok && key != "" && b.Outlet() == key
		},
		desc: fmt.Sprintf("ByOutlet(%q)", key),
	}
}

// ByViewType matches nodes instantiated for the registered view type.
func ByViewType(viewType string) Finder {
	return &predicateFinder{
		fn:   func(n *view.Node) bool { return n.ViewType() == viewType },
		desc: fmt.Sprintf("ByViewType(%q)", viewType),
	}
}

// ByType matches nodes whose view is of type T.
func ByType[T view.View]() Finder {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &predicateFinder{
		fn:   func(n *view.Node) bool { return reflect.TypeOf(n.Native()) == t },
		desc: fmt.Sprintf("ByType(%s)", t),
	}
}

type descendantFinder struct {
	of       Finder
	matching Finder
}

func (f *descendantFinder) Evaluate(root *view.Node) []*view.Node {
	var results []*view.Node
	seen := make(map[*view.Node]bool)
	for _, ancestor := range f.of.Evaluate(root) {
		for _, child := range ancestor.Subviews() {
			for _, match := range f.matching.Evaluate(child) {
				if !seen[match] {
					seen[match] = true
					results = append(results, match)
				}
			}
		}
	}
	return results
}

func (f *descendantFinder) Description() string {
	return fmt.Sprintf("Descendant(of: %s, matching: %s)", f.of.Description(), f.matching.Description())
}

// Descendant returns a finder that matches nodes satisfying matching that
// are strict descendants of nodes matching of.
func Descendant(of, matching Finder) Finder {
	return &descendantFinder{of: of, matching: matching}
}
