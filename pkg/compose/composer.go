// Package compose reconciles live view trees with bricks.
//
// Configure walks a view.Node and a brick.Brick together. For each node an
// UpdatingStrategy decides whether it needs a build; a build applies the
// style diff, the fixed dimensions and, for bricks with children, the
// composition step that prunes, materializes and lays out subviews. The
// data source is told about every node either way, and the walk then
// descends into the subviews whose names match the brick's children.
//
// Composition of a parent always completes before any of its children is
// visited. Everything runs synchronously on the calling goroutine; a tree
// must not be configured from two goroutines at once.
package compose

import (
	"fmt"
	"log/slog"

	"github.com/wangshengjia/leego/pkg/brick"
	"github.com/wangshengjia/leego/pkg/config"
	"github.com/wangshengjia/leego/pkg/constraint"
	"github.com/wangshengjia/leego/pkg/errors"
	"github.com/wangshengjia/leego/pkg/layout"
	"github.com/wangshengjia/leego/pkg/style"
	"github.com/wangshengjia/leego/pkg/view"
)

// UpdatingStrategy decides when a node is rebuilt.
type UpdatingStrategy int

const (
	// WhenBrickChanged rebuilds a node that has no current brick, whose
	// current brick has another name, or whose current brick is bare.
	WhenBrickChanged UpdatingStrategy = iota
	// Always rebuilds every node.
	Always
)

func (s UpdatingStrategy) String() string {
	if s == Always {
		return "always"
	}
	return "whenBrickChanged"
}

// ParseUpdatingStrategy parses the configuration name of a strategy.
func ParseUpdatingStrategy(name string) (UpdatingStrategy, error) {
	switch name {
	case "whenBrickChanged", "":
		return WhenBrickChanged, nil
	case "always":
		return Always, nil
	}
	return WhenBrickChanged, fmt.Errorf("unknown updating strategy %q", name)
}

// DataSource writes per-instance content onto views that are structurally
// up to date. Update is called once per node and per Configure, whether the
// node was rebuilt or not.
type DataSource interface {
	Update(target *view.Node, b brick.Brick)
}

// DataSourceFunc adapts a function to a DataSource.
type DataSourceFunc func(target *view.Node, b brick.Brick)

// Update calls f(target, b).
func (f DataSourceFunc) Update(target *view.Node, b brick.Brick) { f(target, b) }

// Composer applies bricks to view trees. It holds no per-tree state and can
// be shared between trees.
type Composer struct {
	views    *view.Registry
	styles   *style.Registry
	strategy UpdatingStrategy
	logger   *slog.Logger
	heights  *HeightCache
}

// Option configures a Composer.
type Option func(*Composer)

// WithStrategy sets the updating strategy. The default is WhenBrickChanged.
func WithStrategy(s UpdatingStrategy) Option {
	return func(c *Composer) { c.strategy = s }
}

// WithLogger sets the logger used for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) { c.logger = l }
}

// WithHeightCache memoizes CachedFittingHeight in h.
func WithHeightCache(h *HeightCache) Option {
	return func(c *Composer) { c.heights = h }
}

// New returns a composer instantiating views from views and styling them
// through styles.
func New(views *view.Registry, styles *style.Registry, opts ...Option) *Composer {
	c := &Composer{views: views, styles: styles}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default().With("component", "compose")
	}
	return c
}

// NewFromConfig returns a composer set up from a resolved configuration.
func NewFromConfig(cfg *config.Resolved, views *view.Registry, styles *style.Registry) (*Composer, error) {
	strategy, err := ParseUpdatingStrategy(cfg.UpdatingStrategy)
	if err != nil {
		return nil, &errors.LeeGoError{Op: "compose.NewFromConfig", Kind: errors.KindConfig, Err: err}
	}
	opts := []Option{WithStrategy(strategy), WithLogger(cfg.Logger().With("component", "compose"))}
	if cfg.HeightCacheSize > 0 {
		h, err := NewHeightCache(cfg.HeightCacheSize)
		if err != nil {
			return nil, &errors.LeeGoError{Op: "compose.NewFromConfig", Kind: errors.KindConfig, Err: err}
		}
		opts = append(opts, WithHeightCache(h))
	}
	return New(views, styles, opts...), nil
}

// Strategy returns the updating strategy.
func (c *Composer) Strategy() UpdatingStrategy { return c.strategy }

// Configure applies b to root and, recursively, its children to the
// matching subviews. ds may be nil.
//
// A root whose view type cannot take b, and a layout format that cannot be
// resolved, are contract violations.
func (c *Composer) Configure(root *view.Node, b brick.Brick, ds DataSource) {
	if !root.Accepts(b) {
		errors.Violate("compose.Configure", "view of type %q cannot take brick %q of type %q",
			root.ViewType(), b.Name(), b.TargetType())
	}
	c.apply(root, b, ds)
}

func (c *Composer) apply(n *view.Node, b brick.Brick, ds DataSource) {
	prev, hasPrev := n.Current()
	if c.shouldRebuild(prev, hasPrev, b) {
		c.logger.Debug("rebuilding", "brick", b.Name(), "strategy", c.strategy.String())
		c.applyDiff(n, prev, hasPrev, b)
	}
	if ds != nil {
		ds.Update(n, b)
	}
	n.SetCurrent(b)

	for _, child := range b.Children() {
		if sub, ok := n.Subview(child.Name()); ok {
			c.apply(sub, child, ds)
		}
	}
}

func (c *Composer) shouldRebuild(prev brick.Brick, hasPrev bool, b brick.Brick) bool {
	if c.strategy == Always {
		return true
	}
	return !hasPrev || prev.Name() != b.Name() || prev.IsBare()
}

func (c *Composer) applyDiff(n *view.Node, prev brick.Brick, hasPrev bool, b brick.Brick) {
	if !n.FromNib() {
		var previous []style.Operation
		if hasPrev {
			previous = prev.Style()
		}
		c.styles.Apply(n.Native(), previous, b.Style())
	}
	applyDimensions(n, b)
	if l, ok := b.Layout(); ok && b.HasChildren() {
		c.composite(n, b, l)
	}
}

func dimensionOf(attr constraint.Attribute) func(constraint.Constraint) bool {
	return func(c constraint.Constraint) bool {
		return c.Mode() == constraint.ModeDimension && c.FirstAttr == attr && c.Second == ""
	}
}

func isRatio(c constraint.Constraint) bool { return c.Mode() == constraint.ModeRatio }

func applyDimensions(n *view.Node, b brick.Brick) {
	if w, ok := b.Width(); ok {
		n.UpsertConstraint(constraint.Dimension(b.Name(), constraint.Width, w), dimensionOf(constraint.Width))
	} else {
		n.RemoveConstraintsFunc(dimensionOf(constraint.Width))
	}
	if h, ok := b.Height(); ok {
		n.UpsertConstraint(constraint.Dimension(b.Name(), constraint.Height, h), dimensionOf(constraint.Height))
	} else {
		n.RemoveConstraintsFunc(dimensionOf(constraint.Height))
	}

	ratio, hasRatio := 0.0, false
	if r, ok := n.Native().(view.AspectRatioer); ok {
		ratio, hasRatio = r.AspectRatio()
	}
	if hasRatio {
		n.UpsertConstraint(constraint.Ratio(b.Name(), ratio), isRatio)
	} else {
		n.RemoveConstraintsFunc(isRatio)
	}
}

// composite brings the subviews of n in line with the children of b and
// reinstalls the layout constraints. Dimension and ratio constraints are
// left alone.
func (c *Composer) composite(n *view.Node, b brick.Brick, l layout.Layout) {
	children := b.Children()
	names := brick.NamesOf(children)

	for _, sub := range n.Subviews() {
		cur, ok := sub.Current()
		if !ok || names.Has(cur.Name()) {
			continue
		}
		if r, ok := sub.Native().(view.Recycler); ok {
			r.PrepareForReuse()
		}
		sub.RemoveFromParent()
		c.logger.Debug("pruned subview", "parent", b.Name(), "child", cur.Name())
	}

	for _, child := range children {
		if _, ok := n.Subview(child.Name()); ok {
			continue
		}
		sub := c.views.Instantiate(child)
		sub.SetCurrent(child.Bare())
		n.AddSubview(sub)
		if a, ok := sub.Native().(view.Awakener); ok {
			a.BrickDidAwake()
		}
		c.logger.Debug("materialized subview", "parent", b.Name(), "child", child.Name(), "type", sub.ViewType())
	}
	n.OrderSubviews(names)

	n.RemoveConstraints(constraint.ModeSubviewsLayout)
	for _, format := range l.Formats() {
		cs, err := constraint.Parse(format, l.Options(), l.Metrics(), names)
		if err != nil {
			errors.Violate("compose.Configure", "brick %q: %v", b.Name(), err)
		}
		for _, cst := range cs {
			n.AddConstraints(cst.Tagged(constraint.ModeSubviewsLayout))
		}
	}
}
