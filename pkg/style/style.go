// Package style applies declarative style operations to views.
//
// An Operation names a visual property (its Kind) and carries a value. A
// view takes part by implementing Styleable, which lists the capabilities
// it has ("view", "label", ...) from the most to the least specific. A
// Registry maps (capability, kind) pairs to a Binding that knows how to set
// the property and how to reset it to its default.
//
// Operations are compared by kind only: moving from [color=red] to
// [color=blue] overwrites the color, moving from [color=red] to [] resets it.
package style

import (
	"fmt"
	"maps"
	"sync"
)

// Kind identifies a visual property.
type Kind string

// Kinds understood by the reference widgets. Other kinds can be added with
// RegisterKind.
const (
	KindBackgroundColor        Kind = "backgroundColor"
	KindTintColor              Kind = "tintColor"
	KindAlpha                  Kind = "alpha"
	KindHidden                 Kind = "hidden"
	KindCornerRadius           Kind = "cornerRadius"
	KindBorderWidth            Kind = "borderWidth"
	KindBorderColor            Kind = "borderColor"
	KindClipsToBounds          Kind = "clipsToBounds"
	KindUserInteractionEnabled Kind = "userInteractionEnabled"

	KindText          Kind = "text"
	KindFont          Kind = "font"
	KindTextColor     Kind = "textColor"
	KindTextAlignment Kind = "textAlignment"
	KindNumberOfLines Kind = "numberOfLines"

	KindEnabled          Kind = "enabled"
	KindButtonTitle      Kind = "buttonTitle"
	KindButtonTitleColor Kind = "buttonTitleColor"
	KindButtonImage      Kind = "buttonImage"

	KindImage       Kind = "image"
	KindContentMode Kind = "contentMode"
	KindRatio       Kind = "ratio"

	KindPlaceholder Kind = "placeholder"
	KindBorderStyle Kind = "borderStyle"

	KindScrollEnabled Kind = "scrollEnabled"
	KindPagingEnabled Kind = "pagingEnabled"
	KindBounces       Kind = "bounces"

	// KindCustom carries a map[string]any handed to a CustomStyler.
	KindCustom Kind = "custom"
)

// ValueType is the shape of the value an operation of some kind carries.
type ValueType int

const (
	Bool ValueType = iota + 1
	Number
	String
	Object
)

func (t ValueType) String() string {
	switch t {
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// Normalize checks v against t and returns it in canonical form: numbers
// become float64 and objects map[string]any.
func (t ValueType) Normalize(v any) (any, bool) {
	switch t {
	case Bool:
		b, ok := v.(bool)
		return b, ok
	case Number:
		switch n := v.(type) {
		case float64:
			return n, true
		case float32:
			return float64(n), true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		case uint64:
			return float64(n), true
		}
	case String:
		s, ok := v.(string)
		return s, ok
	case Object:
		m, ok := v.(map[string]any)
		return m, ok
	}
	return nil, false
}

var (
	kindsMu sync.RWMutex
	kinds   = map[Kind]ValueType{
		KindBackgroundColor:        String,
		KindTintColor:              String,
		KindAlpha:                  Number,
		KindHidden:                 Bool,
		KindCornerRadius:           Number,
		KindBorderWidth:            Number,
		KindBorderColor:            String,
		KindClipsToBounds:          Bool,
		KindUserInteractionEnabled: Bool,
		KindText:                   String,
		KindFont:                   Number,
		KindTextColor:              String,
		KindTextAlignment:          String,
		KindNumberOfLines:          Number,
		KindEnabled:                Bool,
		KindButtonTitle:            String,
		KindButtonTitleColor:       String,
		KindButtonImage:            String,
		KindImage:                  String,
		KindContentMode:            String,
		KindRatio:                  Number,
		KindPlaceholder:            String,
		KindBorderStyle:            String,
		KindScrollEnabled:          Bool,
		KindPagingEnabled:          Bool,
		KindBounces:                Bool,
		KindCustom:                 Object,
	}
)

// RegisterKind declares a kind and the type of its values so that it can be
// decoded from documents.
func RegisterKind(kind Kind, t ValueType) {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	kinds[kind] = t
}

// TypeOf returns the value type of a known kind.
func TypeOf(kind Kind) (ValueType, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	t, ok := kinds[kind]
	return t, ok
}

// Operation sets one visual property.
type Operation struct {
	Kind  Kind
	Value any
}

// Set returns an operation of any kind.
func Set(kind Kind, value any) Operation {
	return Operation{Kind: kind, Value: value}
}

func BackgroundColor(hex string) Operation { return Set(KindBackgroundColor, hex) }
func TintColor(hex string) Operation       { return Set(KindTintColor, hex) }
func Alpha(a float64) Operation            { return Set(KindAlpha, a) }
func Hidden(h bool) Operation              { return Set(KindHidden, h) }
func CornerRadius(r float64) Operation     { return Set(KindCornerRadius, r) }
func BorderWidth(w float64) Operation      { return Set(KindBorderWidth, w) }
func BorderColor(hex string) Operation     { return Set(KindBorderColor, hex) }
func Text(s string) Operation              { return Set(KindText, s) }
func Font(size float64) Operation          { return Set(KindFont, size) }
func TextColor(hex string) Operation       { return Set(KindTextColor, hex) }
func TextAlignment(a string) Operation     { return Set(KindTextAlignment, a) }
func NumberOfLines(n int) Operation        { return Set(KindNumberOfLines, float64(n)) }
func Enabled(e bool) Operation             { return Set(KindEnabled, e) }
func ButtonTitle(s string) Operation       { return Set(KindButtonTitle, s) }
func Image(name string) Operation          { return Set(KindImage, name) }
func Ratio(r float64) Operation            { return Set(KindRatio, r) }
func Placeholder(s string) Operation       { return Set(KindPlaceholder, s) }
func ScrollEnabled(e bool) Operation       { return Set(KindScrollEnabled, e) }

// Custom returns an operation handed as is to views implementing
// CustomStyler.
func Custom(values map[string]any) Operation {
	return Set(KindCustom, maps.Clone(values))
}

func (o Operation) String() string {
	return fmt.Sprintf("%s=%v", o.Kind, o.Value)
}

// Contains reports whether ops has an operation of the given kind.
func Contains(ops []Operation, kind Kind) bool {
	for _, op := range ops {
		if op.Kind == kind {
			return true
		}
	}
	return false
}

// Removed returns the operations of previous whose kind does not appear in
// next, in the order of previous.
func Removed(previous, next []Operation) []Operation {
	var out []Operation
	for _, op := range previous {
		if !Contains(next, op.Kind) {
			out = append(out, op)
		}
	}
	return out
}
