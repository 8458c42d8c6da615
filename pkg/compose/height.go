package compose

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/wangshengjia/leego/pkg/constraint"
	"github.com/wangshengjia/leego/pkg/layout"
	"github.com/wangshengjia/leego/pkg/view"
)

// FittingHeight returns the height n needs when offered width.
//
// A brick with a height resolver gets it called with the fitting heights of
// its subviews. Otherwise a fixed height wins, a leaf asks its view
// (view.Measurer), and a container takes the longest vertical chain of its
// layout with each subview at its own fitting height.
func (c *Composer) FittingHeight(n *view.Node, width float64) float64 {
	b, ok := n.Current()
	subviews := n.Subviews()
	heights := make([]float64, len(subviews))
	byName := make(map[string]float64, len(subviews))
	for i, sub := range subviews {
		heights[i] = c.FittingHeight(sub, width)
		byName[sub.Name()] = heights[i]
	}

	if ok {
		if resolve := b.HeightResolver(); resolve != nil {
			metrics := layout.DefaultMetrics
			if l, ok := b.Layout(); ok {
				metrics = l.Metrics()
			}
			return resolve(width, heights, metrics)
		}
		if h, ok := b.Height(); ok {
			return h
		}
	}

	if len(subviews) == 0 {
		if m, ok := n.Native().(view.Measurer); ok {
			return m.FittingHeight(width)
		}
		return 0
	}

	l, _ := b.Layout()
	var best float64
	for _, format := range l.Formats() {
		axis, extent, err := constraint.Extent(format, l.Metrics(), func(name string) float64 {
			return byName[name]
		})
		if err != nil {
			c.logger.Debug("skipping format in height estimate", "brick", b.Name(), "format", format, "error", err)
			continue
		}
		if axis == layout.Vertical && extent > best {
			best = extent
		}
	}
	return best
}

// CachedFittingHeight is FittingHeight memoized by key and width, typically
// a list row identifier. Without a height cache it computes every time.
func (c *Composer) CachedFittingHeight(key string, n *view.Node, width float64) float64 {
	if c.heights == nil {
		return c.FittingHeight(n, width)
	}
	if h, ok := c.heights.Get(key, width); ok {
		return h
	}
	h := c.FittingHeight(n, width)
	c.heights.Add(key, width, h)
	return h
}

// HeightCache is a bounded least-recently-used cache of fitting heights.
type HeightCache struct {
	cache *lru.Cache[heightKey, float64]
}

type heightKey struct {
	key   string
	width float64
}

// NewHeightCache returns a cache holding at most size heights.
func NewHeightCache(size int) (*HeightCache, error) {
	cache, err := lru.New[heightKey, float64](size)
	if err != nil {
		return nil, err
	}
	return &HeightCache{cache: cache}, nil
}

// Get returns the height cached for key at width.
func (h *HeightCache) Get(key string, width float64) (float64, bool) {
	return h.cache.Get(heightKey{key, width})
}

// Add caches the height of key at width.
func (h *HeightCache) Add(key string, width, height float64) {
	h.cache.Add(heightKey{key, width}, height)
}

// Invalidate drops every height cached for key.
func (h *HeightCache) Invalidate(key string) {
	for _, k := range h.cache.Keys() {
		if k.key == key {
			h.cache.Remove(k)
		}
	}
}

// Purge empties the cache.
func (h *HeightCache) Purge() { h.cache.Purge() }

// Len returns the number of cached heights.
func (h *HeightCache) Len() int { return h.cache.Len() }
