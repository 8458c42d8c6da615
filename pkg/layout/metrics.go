package layout

import "maps"

// Standard metric names. They are the tokens synthesized formats refer to.
const (
	MetricTop    = "top"
	MetricLeft   = "left"
	MetricBottom = "bottom"
	MetricRight  = "right"
	MetricSpaceH = "spaceH"
	MetricSpaceV = "spaceV"
)

// Metrics holds the spacing constants a layout's formats refer to by name.
//
// The six standard metrics are plain fields. Custom metrics are kept in an
// unexported map so that a Metrics value stays safe to share; use
// WithCustom to derive a value with extra entries.
type Metrics struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
	SpaceH float64
	SpaceV float64

	custom map[string]float64
}

// DefaultMetrics is the spacing used when a caller does not pick any.
var DefaultMetrics = NewMetrics(0, 0, 0, 0, 0, 0)

// NewMetrics returns metrics with the given standard values and no custom
// entries.
func NewMetrics(top, left, bottom, right, spaceH, spaceV float64) Metrics {
	return Metrics{Top: top, Left: left, Bottom: bottom, Right: right, SpaceH: spaceH, SpaceV: spaceV}
}

// MetricsFromMap builds metrics from a name to value mapping. Standard names
// fill the standard fields; everything else becomes a custom metric.
func MetricsFromMap(values map[string]float64) Metrics {
	return Metrics{}.WithCustom(values)
}

// WithCustom returns a copy of m with the given entries added. An entry whose
// name is a standard metric overrides that field and is not kept as custom.
func (m Metrics) WithCustom(values map[string]float64) Metrics {
	out := m
	out.custom = maps.Clone(m.custom)
	for name, v := range values {
		if out.setStandard(name, v) {
			continue
		}
		if out.custom == nil {
			out.custom = make(map[string]float64, len(values))
		}
		out.custom[name] = v
	}
	return out
}

func (m *Metrics) setStandard(name string, v float64) bool {
	switch name {
	case MetricTop:
		m.Top = v
	case MetricLeft:
		m.Left = v
	case MetricBottom:
		m.Bottom = v
	case MetricRight:
		m.Right = v
	case MetricSpaceH:
		m.SpaceH = v
	case MetricSpaceV:
		m.SpaceV = v
	default:
		return false
	}
	return true
}

// Custom returns a copy of the custom metrics.
func (m Metrics) Custom() map[string]float64 {
	return maps.Clone(m.custom)
}

// Lookup returns the value of the named metric, standard or custom.
func (m Metrics) Lookup(name string) (float64, bool) {
	switch name {
	case MetricTop:
		return m.Top, true
	case MetricLeft:
		return m.Left, true
	case MetricBottom:
		return m.Bottom, true
	case MetricRight:
		return m.Right, true
	case MetricSpaceH:
		return m.SpaceH, true
	case MetricSpaceV:
		return m.SpaceV, true
	}
	v, ok := m.custom[name]
	return v, ok
}

// Values returns every metric by name, custom entries first overwritten by
// the standard ones.
func (m Metrics) Values() map[string]float64 {
	out := make(map[string]float64, len(m.custom)+6)
	maps.Copy(out, m.custom)
	out[MetricTop] = m.Top
	out[MetricLeft] = m.Left
	out[MetricBottom] = m.Bottom
	out[MetricRight] = m.Right
	out[MetricSpaceH] = m.SpaceH
	out[MetricSpaceV] = m.SpaceV
	return out
}

// Encode returns the mapping persisted for m: custom entries plus the
// standard metrics that are not zero.
func (m Metrics) Encode() map[string]float64 {
	out := maps.Clone(m.custom)
	if out == nil {
		out = make(map[string]float64)
	}
	for name, v := range map[string]float64{
		MetricTop: m.Top, MetricLeft: m.Left, MetricBottom: m.Bottom,
		MetricRight: m.Right, MetricSpaceH: m.SpaceH, MetricSpaceV: m.SpaceV,
	} {
		if v != 0 {
			out[name] = v
		}
	}
	return out
}

// Equal reports whether both metrics hold the same values.
func (m Metrics) Equal(other Metrics) bool {
	return m.Top == other.Top &&
		m.Left == other.Left &&
		m.Bottom == other.Bottom &&
		m.Right == other.Right &&
		m.SpaceH == other.SpaceH &&
		m.SpaceV == other.SpaceV &&
		maps.Equal(m.custom, other.custom)
}
