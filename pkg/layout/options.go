package layout

import "strings"

// FormatOptions is a set of alignment and direction flags attached to a
// layout's formats. Each flag has a stable name used when persisting layouts.
type FormatOptions uint32

const (
	AlignAllLeft FormatOptions = 1 << iota
	AlignAllRight
	AlignAllTop
	AlignAllBottom
	AlignAllLeading
	AlignAllTrailing
	AlignAllCenterX
	AlignAllCenterY
	AlignAllBaseline
	AlignAllLastBaseline
	AlignAllFirstBaseline
	AlignmentMask
	DirectionLeadingToTrailing
	DirectionLeftToRight
	DirectionRightToLeft
	DirectionMask
)

var optionNames = []struct {
	flag FormatOptions
	name string
}{
	{AlignAllLeft, "AlignAllLeft"},
	{AlignAllRight, "AlignAllRight"},
	{AlignAllTop, "AlignAllTop"},
	{AlignAllBottom, "AlignAllBottom"},
	{AlignAllLeading, "AlignAllLeading"},
	{AlignAllTrailing, "AlignAllTrailing"},
	{AlignAllCenterX, "AlignAllCenterX"},
	{AlignAllCenterY, "AlignAllCenterY"},
	{AlignAllBaseline, "AlignAllBaseline"},
	{AlignAllLastBaseline, "AlignAllLastBaseline"},
	{AlignAllFirstBaseline, "AlignAllFirstBaseline"},
	{AlignmentMask, "AlignmentMask"},
	{DirectionLeadingToTrailing, "DirectionLeadingToTrailing"},
	{DirectionLeftToRight, "DirectionLeftToRight"},
	{DirectionRightToLeft, "DirectionRightToLeft"},
	{DirectionMask, "DirectionMask"},
}

// ParseFormatOptions converts persisted flag names into a set.
// Unrecognized names map to DirectionLeadingToTrailing.
func ParseFormatOptions(names []string) FormatOptions {
	var opts FormatOptions
	for _, n := range names {
		opts |= parseOption(n)
	}
	return opts
}

func parseOption(name string) FormatOptions {
	for _, o := range optionNames {
		if o.name == name {
			return o.flag
		}
	}
	return DirectionLeadingToTrailing
}

// Has reports whether every flag of flag is set in o.
func (o FormatOptions) Has(flag FormatOptions) bool {
	return o&flag == flag
}

// Names returns the names of the flags set in o, in declaration order.
func (o FormatOptions) Names() []string {
	names := make([]string, 0, 4)
	for _, opt := range optionNames {
		if o.Has(opt.flag) {
			names = append(names, opt.name)
		}
	}
	return names
}

func (o FormatOptions) String() string {
	if o == 0 {
		return "FormatOptions()"
	}
	return "FormatOptions(" + strings.Join(o.Names(), "|") + ")"
}
