package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMetricsCustomOverridesStandard(t *testing.T) {
	m := NewMetrics(20, 20, 20, 20, 10, 10).WithCustom(map[string]float64{
		"custom": 17,
		"top":    4,
	})
	if m.Top != 4 {
		t.Errorf("Top = %v, want 4", m.Top)
	}
	if diff := cmp.Diff(map[string]float64{"custom": 17}, m.Custom()); diff != "" {
		t.Errorf("custom metrics mismatch (-want +got):\n%s", diff)
	}
	want := map[string]float64{"top": 4, "left": 20, "bottom": 20, "right": 20, "spaceH": 10, "spaceV": 10, "custom": 17}
	if diff := cmp.Diff(want, m.Values()); diff != "" {
		t.Errorf("Values() mismatch (-want +got):\n%s", diff)
	}
}

func TestMetricsWithCustomDoesNotAlias(t *testing.T) {
	base := MetricsFromMap(map[string]float64{"gutter": 8})
	derived := base.WithCustom(map[string]float64{"gutter": 16})
	if v, _ := base.Lookup("gutter"); v != 8 {
		t.Errorf("base gutter = %v, want 8", v)
	}
	if v, _ := derived.Lookup("gutter"); v != 16 {
		t.Errorf("derived gutter = %v, want 16", v)
	}
	if _, ok := base.Lookup("missing"); ok {
		t.Error("Lookup of an unknown metric should miss")
	}
}

func TestMetricsEncodeOmitsZeroStandard(t *testing.T) {
	m := NewMetrics(20, 0, 20, 0, 10, 0).WithCustom(map[string]float64{"gutter": 0})
	want := map[string]float64{"top": 20, "bottom": 20, "spaceH": 10, "gutter": 0}
	if diff := cmp.Diff(want, m.Encode()); diff != "" {
		t.Errorf("Encode() mismatch (-want +got):\n%s", diff)
	}
}

func TestMetricsEqual(t *testing.T) {
	m1 := NewMetrics(20, 20, 20, 20, 10, 10)
	m2 := MetricsFromMap(map[string]float64{"top": 20, "left": 20, "bottom": 20, "right": 20, "spaceH": 10, "spaceV": 10})
	m3 := m1.WithCustom(map[string]float64{"x": 1})
	if !m1.Equal(m2) {
		t.Error("expected metrics built from a map to equal NewMetrics with the same values")
	}
	if m1.Equal(m3) {
		t.Error("expected custom metrics to take part in equality")
	}
}

func TestLayoutEqual(t *testing.T) {
	metrics := NewMetrics(20, 20, 20, 20, 10, 10)
	l1 := New([]string{"format1", "format2"}, AlignAllBottom, metrics)
	l2 := New([]string{"format1", "format2"}, AlignAllBottom, metrics)
	tests := []struct {
		name  string
		other Layout
		want  bool
	}{
		{"same", l2, true},
		{"formats", New([]string{"format2", "format2"}, AlignAllBottom, metrics), false},
		{"options", New([]string{"format1", "format2"}, AlignAllTop, metrics), false},
		{"metrics", New([]string{"format1", "format2"}, AlignAllBottom, DefaultMetrics), false},
	}
	for _, tt := range tests {
		if got := l1.Equal(tt.other); got != tt.want {
			t.Errorf("%s: Equal() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLayoutIsImmutable(t *testing.T) {
	formats := []string{"H:|[a]|"}
	l := New(formats, 0, DefaultMetrics)
	formats[0] = "changed"
	got := l.Formats()
	got[0] = "changed too"
	if l.Formats()[0] != "H:|[a]|" {
		t.Errorf("layout formats were mutated: %v", l.Formats())
	}
	if !(Layout{}).IsEmpty() {
		t.Error("zero Layout should be empty")
	}
}

func TestFormatOptionsNames(t *testing.T) {
	names := []string{
		"AlignAllLeft", "AlignAllRight", "AlignAllTop", "AlignAllBottom",
		"AlignAllLeading", "AlignAllTrailing", "AlignAllCenterX", "AlignAllCenterY",
		"AlignAllLastBaseline", "AlignAllFirstBaseline", "AlignmentMask",
		"DirectionLeadingToTrailing", "DirectionLeftToRight", "DirectionRightToLeft", "DirectionMask",
	}
	opts := ParseFormatOptions(names)
	if diff := cmp.Diff(names, opts.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if opts.Has(AlignAllBaseline) {
		t.Error("AlignAllBaseline was not requested")
	}
}

func TestParseFormatOptionsUnknown(t *testing.T) {
	if got := ParseFormatOptions([]string{"Sideways"}); got != DirectionLeadingToTrailing {
		t.Errorf("ParseFormatOptions(unknown) = %v, want %v", got, DirectionLeadingToTrailing)
	}
	if got := ParseFormatOptions(nil); got != 0 {
		t.Errorf("ParseFormatOptions(nil) = %v, want empty", got)
	}
	if got := (AlignAllCenterY | DirectionLeadingToTrailing).String(); got != "FormatOptions(AlignAllCenterY|DirectionLeadingToTrailing)" {
		t.Errorf("String() = %q", got)
	}
}
