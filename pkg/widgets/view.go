package widgets

import (
	"maps"

	"github.com/wangshengjia/leego/pkg/style"
)

// View types registered by RegisterDefaults.
const (
	TypeView      = "view"
	TypeLabel     = "label"
	TypeButton    = "button"
	TypeImage     = "image"
	TypeScroll    = "scroll"
	TypeTextField = "textField"
)

// Viewer is implemented by every widget; it exposes the embedded View to
// the style bindings of the "view" capability.
type Viewer interface {
	style.Styleable
	Base() *View
}

// View is a plain rectangle, and the base of every other widget.
type View struct {
	BackgroundColor        Color
	TintColor              Color
	Alpha                  float64
	Hidden                 bool
	CornerRadius           float64
	BorderWidth            float64
	BorderColor            Color
	ClipsToBounds          bool
	UserInteractionEnabled bool
	// Custom holds the values of the custom style, if any.
	Custom map[string]any

	// Awoken is set once the view was materialized by composition.
	Awoken bool
	// Reuses counts how often the view was prepared for reuse.
	Reuses int
}

// NewView returns a view with default properties.
func NewView() *View {
	v := &View{}
	v.reset()
	return v
}

func (v *View) reset() {
	*v = View{Alpha: 1, UserInteractionEnabled: true, TintColor: defaultTint}
}

const defaultTint = Color(0xFF007AFF)

// Base returns v.
func (v *View) Base() *View { return v }

// Capabilities implements style.Styleable.
func (v *View) Capabilities() []style.Capability { return []style.Capability{TypeView} }

// BrickDidAwake implements view.Awakener.
func (v *View) BrickDidAwake() { v.Awoken = true }

// PrepareForReuse implements view.Recycler.
func (v *View) PrepareForReuse() { v.Reuses++ }

// SetupCustomStyle implements style.CustomStyler.
func (v *View) SetupCustomStyle(values map[string]any) {
	if v.Custom == nil {
		v.Custom = make(map[string]any, len(values))
	}
	maps.Copy(v.Custom, values)
}

// RemoveCustomStyle implements style.CustomStyler.
func (v *View) RemoveCustomStyle(values map[string]any) {
	for k := range values {
		delete(v.Custom, k)
	}
	if len(v.Custom) == 0 {
		v.Custom = nil
	}
}
