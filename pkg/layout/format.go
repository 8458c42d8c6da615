package layout

import (
	"strings"

	"github.com/wangshengjia/leego/pkg/errors"
)

// IsIdentifier reports whether name can stand for a view in a visual
// format: a letter or underscore followed by letters, digits or
// underscores.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		letter := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !letter && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// Relation is the comparison used by a spacing or size predicate.
type Relation int

const (
	Equal Relation = iota
	GreaterOrEqual
	LessOrEqual
)

func (r Relation) String() string {
	switch r {
	case GreaterOrEqual:
		return ">="
	case LessOrEqual:
		return "<="
	default:
		return "=="
	}
}

// Metric is a spacing token placed between two items of a format: one of
// the standard metric names or a custom one, together with a relation.
// The zero Metric renders nothing, which makes the two items adjacent.
type Metric struct {
	name     string
	relation Relation
}

// NoMetric makes two items of a chain adjacent.
var NoMetric = Metric{}

func Top(r Relation) Metric    { return Metric{MetricTop, r} }
func Left(r Relation) Metric   { return Metric{MetricLeft, r} }
func Bottom(r Relation) Metric { return Metric{MetricBottom, r} }
func Right(r Relation) Metric  { return Metric{MetricRight, r} }
func SpaceH(r Relation) Metric { return Metric{MetricSpaceH, r} }
func SpaceV(r Relation) Metric { return Metric{MetricSpaceV, r} }

// CustomMetric refers to a metric registered with Metrics.WithCustom.
func CustomMetric(name string, r Relation) Metric { return Metric{name, r} }

// Name returns the metric name, empty for NoMetric.
func (m Metric) Name() string { return m.name }

// Relation returns the comparison of the spacing.
func (m Metric) Relation() Relation { return m.relation }

// String renders the connection: "-top-" for an exact spacing,
// "-(>=top)-" otherwise, and "" for NoMetric.
func (m Metric) String() string {
	if m.name == "" {
		return ""
	}
	if m.relation == Equal {
		return "-" + m.name + "-"
	}
	return "-(" + m.relation.String() + m.name + ")-"
}

// ChainOption customizes a chain built by H or V.
type ChainOption func(*chain)

type chain struct {
	fromSuperview bool
	toSuperview   bool
	leading       Metric
	interspace    Metric
	trailing      Metric
}

// DetachLeading leaves out the superview edge before the first view.
func DetachLeading() ChainOption {
	return func(c *chain) { c.fromSuperview = false }
}

// DetachTrailing leaves out the superview edge after the last view.
func DetachTrailing() ChainOption {
	return func(c *chain) { c.toSuperview = false }
}

// Leading sets the spacing between the superview edge and the first view.
func Leading(m Metric) ChainOption {
	return func(c *chain) { c.leading = m }
}

// Interspace sets the spacing between consecutive views.
func Interspace(m Metric) ChainOption {
	return func(c *chain) { c.interspace = m }
}

// Trailing sets the spacing between the last view and the superview edge.
func Trailing(m Metric) ChainOption {
	return func(c *chain) { c.trailing = m }
}

type orientation struct {
	op       string
	prefix   string
	leading  func(Relation) Metric
	space    func(Relation) Metric
	trailing func(Relation) Metric
}

var (
	horizontal = orientation{op: "layout.H", prefix: "H:", leading: Left, space: SpaceH, trailing: Right}
	vertical   = orientation{op: "layout.V", prefix: "V:", leading: Top, space: SpaceV, trailing: Bottom}
)

// H returns a horizontal format placing views left to right. By default the
// chain is attached to both superview edges with "left" and "right" and
// separated by "spaceH"; options change each part.
//
// An empty view list is a contract violation.
func H(views []string, opts ...ChainOption) string {
	return horizontal.chain(views, opts...)
}

// V returns a vertical format placing views top to bottom, with "top",
// "spaceV" and "bottom" as default spacings.
//
// An empty view list is a contract violation.
func V(views []string, opts ...ChainOption) string {
	return vertical.chain(views, opts...)
}

func (o orientation) chain(views []string, opts ...ChainOption) string {
	if len(views) == 0 {
		errors.Violate(o.op, "cannot build a format without views")
	}
	c := chain{
		fromSuperview: true,
		toSuperview:   true,
		leading:       o.leading(Equal),
		interspace:    o.space(Equal),
		trailing:      o.trailing(Equal),
	}
	for _, opt := range opts {
		opt(&c)
	}

	var sb strings.Builder
	sb.WriteString(o.prefix)
	if c.fromSuperview {
		sb.WriteString("|")
		sb.WriteString(c.leading.String())
	}
	for i, v := range views {
		if i > 0 {
			sb.WriteString(c.interspace.String())
		}
		sb.WriteString("[")
		sb.WriteString(v)
		sb.WriteString("]")
	}
	if c.toSuperview {
		sb.WriteString(c.trailing.String())
		sb.WriteString("|")
	}
	return sb.String()
}
