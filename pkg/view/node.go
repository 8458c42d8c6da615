// Package view holds the live side of LeeGo: Node wraps a native view
// instance together with the brick last applied to it, its subviews and the
// constraints installed on it.
//
// A Node owns its children and its constraints. It records the current
// brick so that the next composition can diff against it; the record lives
// on the node itself, not in a side table.
package view

import (
	"slices"

	"github.com/wangshengjia/leego/pkg/brick"
	"github.com/wangshengjia/leego/pkg/constraint"
	"github.com/wangshengjia/leego/pkg/style"
)

// View is a native view instance.
type View interface {
	style.Styleable
}

// Awakener is implemented by views that want to know when composition has
// just materialized and inserted them.
type Awakener interface {
	BrickDidAwake()
}

// Recycler is implemented by views that need cleanup before composition
// removes them from their parent.
type Recycler interface {
	PrepareForReuse()
}

// Measurer is implemented by leaf views that know their own fitting height
// for a given width.
type Measurer interface {
	FittingHeight(width float64) float64
}

// AspectRatioer is implemented by views whose style can ask for a fixed
// width to height ratio.
type AspectRatioer interface {
	AspectRatio() (float64, bool)
}

// Node is a live view in a composed tree.
type Node struct {
	native   View
	viewType string
	fromNib  bool
	root     bool

	current    brick.Brick
	hasCurrent bool

	parent      *Node
	children    []*Node
	constraints []constraint.Constraint
}

// NewRoot wraps v as the root of a tree. viewType is the type v is known
// under in a Registry.
func NewRoot(v View, viewType string) *Node {
	return &Node{native: v, viewType: viewType, root: true}
}

// Native returns the wrapped view.
func (n *Node) Native() View { return n.native }

// ViewType returns the type the view was instantiated as.
func (n *Node) ViewType() string { return n.viewType }

// FromNib reports whether the view was loaded from a nib.
func (n *Node) FromNib() bool { return n.fromNib }

// IsRoot reports whether the node is the root of a composition.
func (n *Node) IsRoot() bool { return n.root }

// Current returns the brick last applied to the node.
func (n *Node) Current() (brick.Brick, bool) { return n.current, n.hasCurrent }

// SetCurrent records b as the brick last applied to the node.
func (n *Node) SetCurrent(b brick.Brick) {
	n.current, n.hasCurrent = b, true
}

// Name returns the name of the current brick, empty if there is none.
func (n *Node) Name() string {
	if !n.hasCurrent {
		return ""
	}
	return n.current.Name()
}

// Accepts reports whether b can be applied to this view: b declares the
// node's own type or the generic DefaultTargetType.
func (n *Node) Accepts(b brick.Brick) bool {
	t := b.TargetType()
	return t == brick.DefaultTargetType || t == n.viewType
}

// Parent returns the parent node, nil for a detached node.
func (n *Node) Parent() *Node { return n.parent }

// Subviews returns the children in order.
func (n *Node) Subviews() []*Node { return slices.Clone(n.children) }

// Subview returns the direct child whose current brick is named name.
func (n *Node) Subview(name string) (*Node, bool) {
	for _, c := range n.children {
		if c.hasCurrent && c.current.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// AddSubview appends child, detaching it from its previous parent.
func (n *Node) AddSubview(child *Node) {
	child.RemoveFromParent()
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveFromParent detaches n from its parent together with every
// constraint of the parent that involves it.
func (n *Node) RemoveFromParent() {
	p := n.parent
	if p == nil {
		return
	}
	p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == n })
	if name := n.Name(); name != "" {
		p.constraints = slices.DeleteFunc(p.constraints, func(c constraint.Constraint) bool {
			return c.Involves(name)
		})
	}
	n.parent = nil
}

// OrderSubviews sorts the children by their position in names. Children
// not in names keep their relative order after the others.
func (n *Node) OrderSubviews(names []string) {
	rank := func(c *Node) int {
		if i := slices.Index(names, c.Name()); i >= 0 {
			return i
		}
		return len(names)
	}
	slices.SortStableFunc(n.children, func(a, b *Node) int { return rank(a) - rank(b) })
}

// Constraints returns the constraints installed on the node.
func (n *Node) Constraints() []constraint.Constraint {
	return slices.Clone(n.constraints)
}

// AddConstraints installs cs on the node.
func (n *Node) AddConstraints(cs ...constraint.Constraint) {
	n.constraints = append(n.constraints, cs...)
}

// ConstraintsOf returns the constraints installed in the given mode.
func (n *Node) ConstraintsOf(mode constraint.Mode) []constraint.Constraint {
	var out []constraint.Constraint
	for _, c := range n.constraints {
		if c.Mode() == mode {
			out = append(out, c)
		}
	}
	return out
}

// RemoveConstraints removes the constraints installed in the given mode
// and returns how many were removed.
func (n *Node) RemoveConstraints(mode constraint.Mode) int {
	return n.RemoveConstraintsFunc(func(c constraint.Constraint) bool { return c.Mode() == mode })
}

// RemoveConstraintsFunc removes the constraints for which match returns
// true and returns how many were removed.
func (n *Node) RemoveConstraintsFunc(match func(constraint.Constraint) bool) int {
	before := len(n.constraints)
	n.constraints = slices.DeleteFunc(n.constraints, match)
	return before - len(n.constraints)
}

// UpsertConstraint replaces the first constraint for which match returns
// true by c, in place, or installs c when there is none.
func (n *Node) UpsertConstraint(c constraint.Constraint, match func(constraint.Constraint) bool) {
	if i := slices.IndexFunc(n.constraints, match); i >= 0 {
		n.constraints[i] = c
		return
	}
	n.constraints = append(n.constraints, c)
}

// Walk visits n and its descendants depth-first, parents before children.
// Returning false from visit skips the children of that node.
func (n *Node) Walk(visit func(*Node) bool) {
	if !visit(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(visit)
	}
}

// ViewForOutlet returns the first node, depth-first starting with n itself,
// whose current brick declares the outlet key.
func (n *Node) ViewForOutlet(key string) (*Node, bool) {
	if key == "" {
		return nil, false
	}
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.hasCurrent && c.current.Outlet() == key {
			found = c
			return false
		}
		return true
	})
	return found, found != nil
}
