// Package brick defines Brick, the immutable description of one view.
//
// A Brick has a name, the type of view to instantiate, a style, optional
// fixed dimensions, an optional outlet key and optionally children arranged
// by a layout. Identity is the name: two bricks are Equal when their names
// are, and sibling names must be unique.
//
// Bricks are values. Every With method returns a modified copy:
//
//	title := brick.New("title", "label").WithStyle(style.Text("Hello"))
//	avatar := brick.New("avatar", "image").WithWidth(50)
//	header := brick.Union("header", []brick.Brick{title, avatar},
//		layout.Horizontal, layout.AlignTop, layout.Fill,
//		layout.NewMetrics(20, 20, 20, 20, 10, 10))
package brick

import (
	"slices"

	"github.com/wangshengjia/leego/pkg/errors"
	"github.com/wangshengjia/leego/pkg/layout"
	"github.com/wangshengjia/leego/pkg/style"
)

// DefaultTargetType is the view type used when none is given.
const DefaultTargetType = "view"

// HeightResolver computes the fitting height of a brick from the width it
// is offered, the resolved heights of its children and its layout metrics.
type HeightResolver func(fittingWidth float64, childHeights []float64, metrics layout.Metrics) float64

// Brick describes one view. The zero value is not usable; build bricks with
// New, Union, Container or a Catalog.
type Brick struct {
	name       string
	targetType string
	nib        string
	style      []style.Operation
	width      float64
	hasWidth   bool
	height     float64
	hasHeight  bool
	outlet     string
	children   []Brick
	layout     layout.Layout
	hasLayout  bool
	resolver   HeightResolver
}

// New returns a leaf brick. An empty targetType means DefaultTargetType.
// An empty name is a contract violation.
func New(name, targetType string) Brick {
	if name == "" {
		errors.Violate("brick.New", "brick name is empty")
	}
	if targetType == "" {
		targetType = DefaultTargetType
	}
	return Brick{name: name, targetType: targetType}
}

// Name returns the identity of the brick.
func (b Brick) Name() string { return b.name }

// TargetType returns the type of view to instantiate.
func (b Brick) TargetType() string { return b.targetType }

// Nib returns the prebuilt resource to instantiate instead of TargetType.
func (b Brick) Nib() string { return b.nib }

// Style returns a copy of the style operations.
func (b Brick) Style() []style.Operation { return slices.Clone(b.style) }

// Width returns the fixed width, if any.
func (b Brick) Width() (float64, bool) { return b.width, b.hasWidth }

// Height returns the fixed height, if any.
func (b Brick) Height() (float64, bool) { return b.height, b.hasHeight }

// Outlet returns the outlet key, empty when there is none.
func (b Brick) Outlet() string { return b.outlet }

// Children returns a copy of the children.
func (b Brick) Children() []Brick { return slices.Clone(b.children) }

// HasChildren reports whether the brick has at least one child.
func (b Brick) HasChildren() bool { return len(b.children) > 0 }

// Layout returns the layout of the children, if any.
func (b Brick) Layout() (layout.Layout, bool) { return b.layout, b.hasLayout }

// HeightResolver returns the manual height computation, or nil.
func (b Brick) HeightResolver() HeightResolver { return b.resolver }

// Child returns the direct child with the given name.
func (b Brick) Child(name string) (Brick, bool) {
	for _, c := range b.children {
		if c.name == name {
			return c, true
		}
	}
	return Brick{}, false
}

// Equal reports whether b and other have the same name.
func (b Brick) Equal(other Brick) bool { return b.name == other.name }

// IsBare reports whether the brick is a placeholder with no style, no
// children and no layout. Bare bricks are what composition records on views
// it has just materialized.
func (b Brick) IsBare() bool {
	return len(b.style) == 0 && len(b.children) == 0 && !b.hasLayout
}

// Bare returns the placeholder of b: same name, type and nib, nothing else.
func (b Brick) Bare() Brick {
	return Brick{name: b.name, targetType: b.targetType, nib: b.nib}
}

// WithTargetType returns a copy of b instantiating targetType.
func (b Brick) WithTargetType(targetType string) Brick {
	if targetType == "" {
		targetType = DefaultTargetType
	}
	b.targetType = targetType
	return b
}

// WithNib returns a copy of b instantiated from the named nib.
func (b Brick) WithNib(nib string) Brick {
	b.nib = nib
	return b
}

// WithStyle returns a copy of b with the given style, replacing the current
// one.
func (b Brick) WithStyle(ops ...style.Operation) Brick {
	b.style = slices.Clone(ops)
	return b
}

// WithWidth returns a copy of b with a fixed width.
func (b Brick) WithWidth(w float64) Brick {
	b.width, b.hasWidth = w, true
	return b
}

// WithoutWidth returns a copy of b without fixed width.
func (b Brick) WithoutWidth() Brick {
	b.width, b.hasWidth = 0, false
	return b
}

// WithHeight returns a copy of b with a fixed height.
func (b Brick) WithHeight(h float64) Brick {
	b.height, b.hasHeight = h, true
	return b
}

// WithoutHeight returns a copy of b without fixed height.
func (b Brick) WithoutHeight() Brick {
	b.height, b.hasHeight = 0, false
	return b
}

// WithOutlet returns a copy of b reachable under key after composition.
func (b Brick) WithOutlet(key string) Brick {
	b.outlet = key
	return b
}

// WithHeightResolver returns a copy of b using fn to compute its fitting
// height.
func (b Brick) WithHeightResolver(fn HeightResolver) Brick {
	b.resolver = fn
	return b
}

// WithChildren returns a copy of b with the given children laid out by l.
// Duplicate sibling names, child names that are not layout identifiers
// (layout.IsIdentifier) and an empty child list are contract violations.
func (b Brick) WithChildren(children []Brick, l layout.Layout) Brick {
	checkChildren("brick.WithChildren", b.name, children)
	b.children = slices.Clone(children)
	b.layout, b.hasLayout = l, true
	return b
}

// WithChildrenFunc is WithChildren with a layout computed from the child
// names, for layouts written by hand:
//
//	b.WithChildrenFunc(children, func(n brick.Names) layout.Layout {
//		return layout.New([]string{
//			layout.H([]string{n.At(0), n.At(1)}),
//			"V:|[" + n.At(0) + "]|",
//		}, 0, layout.DefaultMetrics)
//	})
func (b Brick) WithChildrenFunc(children []Brick, build func(Names) layout.Layout) Brick {
	checkChildren("brick.WithChildrenFunc", b.name, children)
	return b.WithChildren(children, build(NamesOf(children)))
}

// WithoutChildren returns a copy of b with no children and no layout.
func (b Brick) WithoutChildren() Brick {
	b.children = nil
	b.layout, b.hasLayout = layout.Layout{}, false
	return b
}

// ReplaceChild returns a copy of b where the child named name is replaced by
// child. The layout is kept. An unknown name, or a replacement whose name
// collides with another sibling, is a contract violation.
func (b Brick) ReplaceChild(name string, child Brick) Brick {
	i := slices.IndexFunc(b.children, func(c Brick) bool { return c.name == name })
	if i < 0 {
		errors.Violate("brick.ReplaceChild", "brick %q has no child %q", b.name, name)
	}
	children := slices.Clone(b.children)
	children[i] = child
	checkChildren("brick.ReplaceChild", b.name, children)
	b.children = children
	return b
}

func checkChildren(op, parent string, children []Brick) {
	if len(children) == 0 {
		errors.Violate(op, "brick %q needs at least one child", parent)
	}
	seen := make(map[string]bool, len(children))
	for _, c := range children {
		if c.name == "" {
			errors.Violate(op, "brick %q has a child without name", parent)
		}
		if !layout.IsIdentifier(c.name) {
			errors.Violate(op, "brick %q has child %q whose name is not a layout identifier", parent, c.name)
		}
		if seen[c.name] {
			errors.Violate(op, "brick %q has duplicate child name %q", parent, c.name)
		}
		seen[c.name] = true
	}
}

// Names is the ordered list of child names handed to a layout function.
type Names []string

// NamesOf returns the names of bricks, in order.
func NamesOf(bricks []Brick) Names {
	out := make(Names, len(bricks))
	for i, b := range bricks {
		out[i] = b.name
	}
	return out
}

// At returns the i-th name. An index out of range is a contract violation.
func (n Names) At(i int) string {
	if i < 0 || i >= len(n) {
		errors.Violate("brick.Names", "no child at index %d of %d", i, len(n))
	}
	return n[i]
}

// Has reports whether name is one of the names.
func (n Names) Has(name string) bool {
	return slices.Contains(n, name)
}
