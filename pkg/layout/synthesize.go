package layout

import (
	"strconv"

	"github.com/wangshengjia/leego/pkg/errors"
)

// Axis is the direction children are laid out along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Alignment positions children on the cross axis.
type Alignment int

const (
	// AlignTop pins the leading cross edge. On a vertical axis it is the
	// same as AlignLeft.
	AlignTop Alignment = iota
	AlignLeft
	// AlignBottom pins the trailing cross edge. On a vertical axis it is the
	// same as AlignRight.
	AlignBottom
	AlignRight
	// AlignCenter leaves both cross edges flexible and centers the children
	// on each other.
	AlignCenter
	// AlignFill pins both cross edges.
	AlignFill
)

func (a Alignment) String() string {
	switch a {
	case AlignTop:
		return "top"
	case AlignLeft:
		return "left"
	case AlignBottom:
		return "bottom"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignFill:
		return "fill"
	default:
		return "Alignment(" + strconv.Itoa(int(a)) + ")"
	}
}

type distributionMode int

const (
	distributeFill distributionMode = iota
	distributeFillEqually
	distributeFlow
)

// Distribution decides how slack on the primary axis is absorbed.
type Distribution struct {
	mode distributionMode
	gap  int
}

var (
	// Fill keeps every spacing fixed.
	Fill = Distribution{mode: distributeFill}
	// FillEqually keeps every spacing fixed and gives consecutive children
	// the same span.
	FillEqually = Distribution{mode: distributeFillEqually}
)

// Flow makes a single spacing flexible. Flow(0) (and below) makes the
// leading edge flexible, Flow(len(children)) (and above) the trailing edge;
// any index in between makes the gap after that many children flexible.
func Flow(gap int) Distribution {
	return Distribution{mode: distributeFlow, gap: gap}
}

// FlowGap returns the index given to Flow.
func (d Distribution) FlowGap() (int, bool) {
	return d.gap, d.mode == distributeFlow
}

func (d Distribution) String() string {
	switch d.mode {
	case distributeFillEqually:
		return "fillEqually"
	case distributeFlow:
		return "flow(" + strconv.Itoa(d.gap) + ")"
	default:
		return "fill"
	}
}

// Synthesize builds the layout of the named children along axis.
// The horizontal formats come first, then the vertical ones.
//
// An empty name list is a contract violation.
func Synthesize(names []string, axis Axis, align Alignment, dist Distribution, metrics Metrics) Layout {
	if len(names) == 0 {
		errors.Violate("layout.Synthesize", "cannot synthesize a layout without children")
	}
	formats := FormatHorizontal(names, axis, align, dist)
	formats = append(formats, FormatVertical(names, axis, align, dist)...)
	return New(formats, Options(axis, align), metrics)
}

// FormatHorizontal returns the "H:" formats for the named children.
// On a horizontal axis it is the primary chain; on a vertical axis it is one
// format per child encoding the alignment.
func FormatHorizontal(names []string, axis Axis, align Alignment, dist Distribution) []string {
	if axis == Horizontal {
		return horizontal.primary(names, dist)
	}
	return horizontal.cross(names, align)
}

// FormatVertical returns the "V:" formats for the named children.
func FormatVertical(names []string, axis Axis, align Alignment, dist Distribution) []string {
	if axis == Vertical {
		return vertical.primary(names, dist)
	}
	return vertical.cross(names, align)
}

// Options returns the format options that go with a synthesized layout.
func Options(axis Axis, align Alignment) FormatOptions {
	opts := DirectionLeadingToTrailing
	if align == AlignCenter {
		if axis == Horizontal {
			opts |= AlignAllCenterY
		} else {
			opts |= AlignAllCenterX
		}
	}
	return opts
}

func (o orientation) primary(names []string, dist Distribution) []string {
	switch dist.mode {
	case distributeFillEqually:
		return append([]string{o.chain(names)}, o.equal(names)...)
	case distributeFlow:
		return []string{o.flow(names, dist.gap)}
	default:
		return []string{o.chain(names)}
	}
}

func (o orientation) flow(names []string, gap int) string {
	split := min(max(gap, 0), len(names))
	head, tail := names[:split], names[split:]
	switch {
	case len(head) == 0:
		return o.chain(tail, Leading(o.leading(GreaterOrEqual)))
	case len(tail) == 0:
		return o.chain(head, Trailing(o.trailing(GreaterOrEqual)))
	}
	front := o.chain(head, DetachTrailing())
	back := o.chain(tail, DetachLeading())
	return front + o.space(GreaterOrEqual).String() + back[len(o.prefix):]
}

// equal chains consecutive children with equal spans: "H:[a(b)]", "H:[b(c)]".
func (o orientation) equal(names []string) []string {
	if len(names) < 2 {
		return nil
	}
	out := make([]string, 0, len(names)-1)
	for i := 0; i+1 < len(names); i++ {
		out = append(out, o.prefix+"["+names[i]+"("+names[i+1]+")]")
	}
	return out
}

func (o orientation) cross(names []string, align Alignment) []string {
	if len(names) == 0 {
		errors.Violate(o.op, "cannot build a format without views")
	}
	var opts []ChainOption
	switch align {
	case AlignTop, AlignLeft:
		opts = []ChainOption{Trailing(o.trailing(GreaterOrEqual))}
	case AlignBottom, AlignRight:
		opts = []ChainOption{Leading(o.leading(GreaterOrEqual))}
	case AlignCenter:
		opts = []ChainOption{Leading(o.leading(GreaterOrEqual)), Trailing(o.trailing(GreaterOrEqual))}
	case AlignFill:
	default:
		errors.Violate(o.op, "unknown alignment %v", align)
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, o.chain([]string{name}, opts...))
	}
	return out
}
