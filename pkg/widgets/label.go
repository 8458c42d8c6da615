package widgets

import "github.com/wangshengjia/leego/pkg/style"

// Label displays read-only text.
type Label struct {
	View
	Text          string
	FontSize      float64
	TextColor     Color
	TextAlignment string
	// NumberOfLines limits the lines shown; 0 means unlimited.
	NumberOfLines int
}

// NewLabel returns a single-line label.
func NewLabel() *Label {
	l := &Label{View: *NewView()}
	l.resetText()
	return l
}

func (l *Label) resetText() {
	l.Text, l.FontSize, l.TextColor, l.TextAlignment, l.NumberOfLines = "", DefaultFontSize, ColorBlack, "natural", 1
}

func (l *Label) Capabilities() []style.Capability {
	return []style.Capability{TypeLabel, TypeView}
}

// FittingHeight implements view.Measurer: the height of the text wrapped at
// width, cut at NumberOfLines.
func (l *Label) FittingHeight(width float64) float64 {
	_, h := paragraph{text: l.Text, fontSize: l.FontSize, maxWidth: width, maxLines: l.NumberOfLines}.measure()
	return h
}

// IntrinsicWidth is the width of the text on one line.
func (l *Label) IntrinsicWidth() float64 {
	w, _ := paragraph{text: l.Text, fontSize: l.FontSize, maxLines: l.NumberOfLines}.measure()
	return w
}
