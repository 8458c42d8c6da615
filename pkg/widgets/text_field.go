package widgets

import "github.com/wangshengjia/leego/pkg/style"

// TextFieldPadding is the vertical padding around the text of a field.
const TextFieldPadding = 7

// TextField is a single-line editable text.
type TextField struct {
	View
	Text          string
	Placeholder   string
	FontSize      float64
	TextColor     Color
	TextAlignment string
	BorderStyle   string
	Enabled       bool
}

// NewTextField returns an empty enabled field.
func NewTextField() *TextField {
	f := &TextField{View: *NewView(), Enabled: true}
	f.FontSize, f.TextColor, f.TextAlignment, f.BorderStyle = DefaultFontSize, ColorBlack, "natural", "none"
	return f
}

func (f *TextField) Capabilities() []style.Capability {
	return []style.Capability{TypeTextField, TypeView}
}

// FittingHeight implements view.Measurer.
func (f *TextField) FittingHeight(float64) float64 {
	_, h := paragraph{text: f.Text, fontSize: f.FontSize, maxLines: 1}.measure()
	return h + 2*TextFieldPadding
}
