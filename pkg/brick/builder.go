package brick

import (
	"sync"

	"github.com/wangshengjia/leego/pkg/errors"
	"github.com/wangshengjia/leego/pkg/layout"
)

// Union returns a brick named name whose children are laid out along axis
// with the given alignment, distribution and metrics.
func Union(name string, children []Brick, axis layout.Axis, align layout.Alignment, dist layout.Distribution, metrics layout.Metrics) Brick {
	checkChildren("brick.Union", name, children)
	l := layout.Synthesize(NamesOf(children), axis, align, dist, metrics)
	return New(name, DefaultTargetType).WithChildren(children, l)
}

// Container wraps child in a brick that fills it. An empty name means
// "container".
func Container(name string, child Brick) Brick {
	if name == "" {
		name = "container"
	}
	return Union(name, []Brick{child}, layout.Horizontal, layout.AlignFill, layout.Fill, layout.DefaultMetrics)
}

// Catalog maps the cases of an enumeration to view types, so that a screen
// can declare its bricks as typed constants:
//
//	type Case string
//	const (Title Case = "title"; Avatar Case = "avatar")
//	var bricks = brick.NewCatalog(map[Case]string{Title: "label", Avatar: "image"})
//	title := bricks.Build(Title)
//
// A case without mapping builds a DefaultTargetType brick.
type Catalog[K ~string] struct {
	mu    sync.RWMutex
	types map[K]string
}

// NewCatalog returns a catalog with the given mappings.
func NewCatalog[K ~string](types map[K]string) *Catalog[K] {
	c := &Catalog[K]{types: make(map[K]string, len(types))}
	for k, t := range types {
		c.types[k] = t
	}
	return c
}

// Register maps k to targetType.
func (c *Catalog[K]) Register(k K, targetType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.types[k] = targetType
}

// TargetType returns the type mapped to k, or DefaultTargetType.
func (c *Catalog[K]) TargetType(k K) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if t, ok := c.types[k]; ok && t != "" {
		return t
	}
	return DefaultTargetType
}

// Build returns the leaf brick of k, named after it.
func (c *Catalog[K]) Build(k K) Brick {
	return New(string(k), c.TargetType(k))
}

// BuildFromNib returns the brick of k instantiated from nib, with targetType
// as its declared type. An empty nib is a contract violation.
func (c *Catalog[K]) BuildFromNib(k K, targetType, nib string) Brick {
	if nib == "" {
		errors.Violate("brick.BuildFromNib", "nib name of %q is empty", string(k))
	}
	return New(string(k), targetType).WithNib(nib)
}
