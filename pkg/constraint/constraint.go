// Package constraint turns visual format strings into linear constraints
// between named views.
//
// Constraints refer to views by name. The parent of the views a format
// mentions is called Superview. Every constraint LeeGo installs carries an
// identifier whose prefix tells which step installed it (see Mode), so a step
// can replace its own constraints without touching the others.
package constraint

import (
	"strconv"
	"strings"

	"github.com/wangshengjia/leego/pkg/layout"
)

// Superview is the name formats use for the parent of their views.
const Superview = "superview"

// Priorities.
const (
	Required float64 = 1000
	High     float64 = 750
	Low      float64 = 250
)

// Standard spacings used by a bare "-" connection.
const (
	StandardSpacing     = 8
	StandardEdgeSpacing = 20
)

// Attribute is a geometric attribute of a view.
type Attribute int

const (
	NotAnAttribute Attribute = iota
	Left
	Right
	Top
	Bottom
	Leading
	Trailing
	Width
	Height
	CenterX
	CenterY
	FirstBaseline
	LastBaseline
)

var attributeNames = [...]string{
	NotAnAttribute: "notAnAttribute",
	Left:           "left",
	Right:          "right",
	Top:            "top",
	Bottom:         "bottom",
	Leading:        "leading",
	Trailing:       "trailing",
	Width:          "width",
	Height:         "height",
	CenterX:        "centerX",
	CenterY:        "centerY",
	FirstBaseline:  "firstBaseline",
	LastBaseline:   "lastBaseline",
}

func (a Attribute) String() string {
	if a >= 0 && int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return "Attribute(" + strconv.Itoa(int(a)) + ")"
}

// Mode tells which step installed a constraint.
type Mode int

const (
	ModeUnknown Mode = iota
	// ModeDimension marks the fixed width and height of a view.
	ModeDimension
	// ModeSubviewsLayout marks constraints resolved from a layout's formats.
	ModeSubviewsLayout
	// ModeRatio marks an aspect ratio set through style.
	ModeRatio
)

var modePrefixes = [...]string{
	ModeDimension:      "LG_Dimension",
	ModeSubviewsLayout: "LG_SubviewsLayout",
	ModeRatio:          "LG_Ratio",
}

// Prefix returns the identifier prefix of the mode, empty for ModeUnknown.
func (m Mode) Prefix() string {
	if m > ModeUnknown && int(m) < len(modePrefixes) {
		return modePrefixes[m]
	}
	return ""
}

func (m Mode) String() string {
	if p := m.Prefix(); p != "" {
		return p
	}
	return "unknown"
}

// Constraint is a linear relation:
//
//	First.FirstAttr Relation Second.SecondAttr * Multiplier + Constant
//
// An empty Second makes it a relation to Constant alone.
type Constraint struct {
	Identifier string
	First      string
	FirstAttr  Attribute
	Relation   layout.Relation
	Second     string
	SecondAttr Attribute
	Multiplier float64
	Constant   float64
	Priority   float64
}

// Tagged returns a copy of c whose identifier records mode.
func (c Constraint) Tagged(mode Mode) Constraint {
	c.Identifier = mode.Prefix() + ": " + c.String()
	return c
}

// Mode returns the mode recorded in the identifier.
func (c Constraint) Mode() Mode {
	for m := ModeDimension; m <= ModeRatio; m++ {
		if strings.HasPrefix(c.Identifier, m.Prefix()) {
			return m
		}
	}
	return ModeUnknown
}

// Involves reports whether name is one of the two items of c.
func (c Constraint) Involves(name string) bool {
	return c.First == name || c.Second == name
}

// String renders c without its identifier, e.g.
// "title.leading >= avatar.trailing + 10 @750".
func (c Constraint) String() string {
	var sb strings.Builder
	sb.WriteString(c.First)
	sb.WriteString(".")
	sb.WriteString(c.FirstAttr.String())
	sb.WriteString(" ")
	sb.WriteString(c.Relation.String())
	sb.WriteString(" ")
	if c.Second == "" {
		sb.WriteString(formatFloat(c.Constant))
	} else {
		sb.WriteString(c.Second)
		sb.WriteString(".")
		sb.WriteString(c.SecondAttr.String())
		if c.Multiplier != 1 && c.Multiplier != 0 {
			sb.WriteString(" * ")
			sb.WriteString(formatFloat(c.Multiplier))
		}
		if c.Constant != 0 {
			sb.WriteString(" + ")
			sb.WriteString(formatFloat(c.Constant))
		}
	}
	if c.Priority != 0 && c.Priority != Required {
		sb.WriteString(" @")
		sb.WriteString(formatFloat(c.Priority))
	}
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Dimension returns the constraint fixing attr of view to value.
func Dimension(view string, attr Attribute, value float64) Constraint {
	return Constraint{
		First:      view,
		FirstAttr:  attr,
		Relation:   layout.Equal,
		SecondAttr: NotAnAttribute,
		Multiplier: 1,
		Constant:   value,
		Priority:   Required,
	}.Tagged(ModeDimension)
}

// Ratio returns the constraint keeping width = height * ratio on view.
func Ratio(view string, ratio float64) Constraint {
	return Constraint{
		First:      view,
		FirstAttr:  Width,
		Relation:   layout.Equal,
		Second:     view,
		SecondAttr: Height,
		Multiplier: ratio,
		Priority:   Required,
	}.Tagged(ModeRatio)
}
