package widgets

import "github.com/wangshengjia/leego/pkg/style"

// ButtonPadding is the vertical padding around a button title.
const ButtonPadding = 6

// Button is a tappable control with a title and an optional image.
type Button struct {
	View
	Title      string
	TitleColor Color
	Image      string
	Enabled    bool
	// OnTap is wired by callers, typically through an outlet.
	OnTap func()
}

// NewButton returns an enabled button without title.
func NewButton() *Button {
	return &Button{View: *NewView(), TitleColor: defaultTint, Enabled: true}
}

func (b *Button) Capabilities() []style.Capability {
	return []style.Capability{TypeButton, TypeView}
}

// Tap calls OnTap when the button is enabled and visible.
// It reports whether OnTap ran.
func (b *Button) Tap() bool {
	if !b.Enabled || b.Hidden || !b.UserInteractionEnabled || b.OnTap == nil {
		return false
	}
	b.OnTap()
	return true
}

// FittingHeight implements view.Measurer: one line of title plus padding.
func (b *Button) FittingHeight(float64) float64 {
	_, h := paragraph{text: b.Title, maxLines: 1}.measure()
	return h + 2*ButtonPadding
}
