package widgets

import (
	"github.com/wangshengjia/leego/pkg/errors"
	"github.com/wangshengjia/leego/pkg/style"
	"github.com/wangshengjia/leego/pkg/view"
)

// RegisterDefaults installs the widget types in views and binds every
// built-in style kind in styles.
func RegisterDefaults(views *view.Registry, styles *style.Registry) {
	views.Register(TypeView, func() view.View { return NewView() })
	views.Register(TypeLabel, func() view.View { return NewLabel() })
	views.Register(TypeButton, func() view.View { return NewButton() })
	views.Register(TypeImage, func() view.View { return NewImageView() })
	views.Register(TypeScroll, func() view.View { return NewScrollView() })
	views.Register(TypeTextField, func() view.View { return NewTextField() })

	bindView(styles)
	bindText(styles)
	bindControls(styles)
}

func bindView(r *style.Registry) {
	base := NewView()
	bindColor(r, TypeView, style.KindBackgroundColor, func(v Viewer) *Color { return &v.Base().BackgroundColor }, base.BackgroundColor)
	bindColor(r, TypeView, style.KindTintColor, func(v Viewer) *Color { return &v.Base().TintColor }, base.TintColor)
	bindColor(r, TypeView, style.KindBorderColor, func(v Viewer) *Color { return &v.Base().BorderColor }, base.BorderColor)
	style.Bind(r, TypeView, style.KindAlpha, func(v Viewer, a float64) { v.Base().Alpha = a }, base.Alpha)
	style.Bind(r, TypeView, style.KindHidden, func(v Viewer, h bool) { v.Base().Hidden = h }, base.Hidden)
	style.Bind(r, TypeView, style.KindCornerRadius, func(v Viewer, cr float64) { v.Base().CornerRadius = cr }, base.CornerRadius)
	style.Bind(r, TypeView, style.KindBorderWidth, func(v Viewer, w float64) { v.Base().BorderWidth = w }, base.BorderWidth)
	style.Bind(r, TypeView, style.KindClipsToBounds, func(v Viewer, c bool) { v.Base().ClipsToBounds = c }, base.ClipsToBounds)
	style.Bind(r, TypeView, style.KindUserInteractionEnabled, func(v Viewer, e bool) { v.Base().UserInteractionEnabled = e }, base.UserInteractionEnabled)
}

func bindText(r *style.Registry) {
	label := NewLabel()
	style.Bind(r, TypeLabel, style.KindText, func(l *Label, s string) { l.Text = s }, label.Text)
	style.Bind(r, TypeLabel, style.KindFont, func(l *Label, size float64) { l.FontSize = size }, label.FontSize)
	style.Bind(r, TypeLabel, style.KindTextAlignment, func(l *Label, a string) { l.TextAlignment = a }, label.TextAlignment)
	style.Bind(r, TypeLabel, style.KindNumberOfLines, func(l *Label, n float64) { l.NumberOfLines = int(n) }, float64(label.NumberOfLines))
	bindColor(r, TypeLabel, style.KindTextColor, func(l *Label) *Color { return &l.TextColor }, label.TextColor)

	field := NewTextField()
	style.Bind(r, TypeTextField, style.KindText, func(f *TextField, s string) { f.Text = s }, field.Text)
	style.Bind(r, TypeTextField, style.KindFont, func(f *TextField, size float64) { f.FontSize = size }, field.FontSize)
	style.Bind(r, TypeTextField, style.KindTextAlignment, func(f *TextField, a string) { f.TextAlignment = a }, field.TextAlignment)
	style.Bind(r, TypeTextField, style.KindPlaceholder, func(f *TextField, p string) { f.Placeholder = p }, field.Placeholder)
	style.Bind(r, TypeTextField, style.KindBorderStyle, func(f *TextField, b string) { f.BorderStyle = b }, field.BorderStyle)
	style.Bind(r, TypeTextField, style.KindEnabled, func(f *TextField, e bool) { f.Enabled = e }, field.Enabled)
	bindColor(r, TypeTextField, style.KindTextColor, func(f *TextField) *Color { return &f.TextColor }, field.TextColor)
}

func bindControls(r *style.Registry) {
	button := NewButton()
	style.Bind(r, TypeButton, style.KindButtonTitle, func(b *Button, s string) { b.Title = s }, button.Title)
	style.Bind(r, TypeButton, style.KindButtonImage, func(b *Button, s string) { b.Image = s }, button.Image)
	style.Bind(r, TypeButton, style.KindEnabled, func(b *Button, e bool) { b.Enabled = e }, button.Enabled)
	bindColor(r, TypeButton, style.KindButtonTitleColor, func(b *Button) *Color { return &b.TitleColor }, button.TitleColor)

	image := NewImageView()
	style.Bind(r, TypeImage, style.KindImage, func(i *ImageView, s string) { i.Image = s }, image.Image)
	style.Bind(r, TypeImage, style.KindContentMode, func(i *ImageView, m string) { i.ContentMode = m }, image.ContentMode)
	style.Bind(r, TypeImage, style.KindRatio, func(i *ImageView, ratio float64) { i.Ratio = ratio }, image.Ratio)

	scroll := NewScrollView()
	style.Bind(r, TypeScroll, style.KindScrollEnabled, func(s *ScrollView, e bool) { s.ScrollEnabled = e }, scroll.ScrollEnabled)
	style.Bind(r, TypeScroll, style.KindPagingEnabled, func(s *ScrollView, e bool) { s.PagingEnabled = e }, scroll.PagingEnabled)
	style.Bind(r, TypeScroll, style.KindBounces, func(s *ScrollView, e bool) { s.Bounces = e }, scroll.Bounces)
}

// bindColor binds a hex color kind. The empty string restores def; a value
// that does not parse is reported and leaves the color unchanged.
func bindColor[T style.Styleable](r *style.Registry, c style.Capability, kind style.Kind, field func(T) *Color, def Color) {
	style.Bind(r, c, kind, func(t T, hex string) {
		if hex == "" {
			*field(t) = def
			return
		}
		col, err := ParseColor(hex)
		if err != nil {
			errors.Report(&errors.LeeGoError{Op: "widgets.Style", Kind: errors.KindStyle, Err: err})
			return
		}
		*field(t) = col
	}, "")
}
