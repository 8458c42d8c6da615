// Package layout describes how a brick arranges its children.
//
// A Layout is an immutable value: a list of visual format strings that name
// the children, the format options that go with them and the Metrics the
// formats refer to. Layouts are either written by hand or synthesized from
// an axis, an alignment and a distribution, in the spirit of a stack view:
//
//	l := layout.Synthesize(
//		[]string{"avatar", "title"},
//		layout.Horizontal, layout.AlignTop, layout.Fill,
//		layout.NewMetrics(20, 20, 20, 20, 10, 10),
//	)
//	// l.Formats():
//	//   H:|-left-[avatar]-spaceH-[title]-right-|
//	//   V:|-top-[avatar]-(>=bottom)-|
//	//   V:|-top-[title]-(>=bottom)-|
//
// Everything in this package is a pure function of its inputs.
package layout

import "slices"

// Layout is a set of visual formats, their options and their metrics.
// Two layouts are equal when all three are equal.
type Layout struct {
	formats []string
	options FormatOptions
	metrics Metrics
}

// New returns a layout made of the given formats.
func New(formats []string, options FormatOptions, metrics Metrics) Layout {
	return Layout{formats: slices.Clone(formats), options: options, metrics: metrics}
}

// Formats returns a copy of the visual formats.
func (l Layout) Formats() []string {
	return slices.Clone(l.formats)
}

// Options returns the format options.
func (l Layout) Options() FormatOptions {
	return l.options
}

// Metrics returns the metrics the formats refer to.
func (l Layout) Metrics() Metrics {
	return l.metrics
}

// IsEmpty reports whether the layout has no formats.
func (l Layout) IsEmpty() bool {
	return len(l.formats) == 0
}

// Equal reports whether l and other have the same formats, options and
// metrics.
func (l Layout) Equal(other Layout) bool {
	return slices.Equal(l.formats, other.formats) &&
		l.options == other.options &&
		l.metrics.Equal(other.metrics)
}
