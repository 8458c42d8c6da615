package widgets

import "github.com/wangshengjia/leego/pkg/style"

// ImageView displays a named image.
type ImageView struct {
	View
	Image       string
	ContentMode string
	// Ratio is width divided by height; 0 leaves the shape free.
	Ratio float64
}

// NewImageView returns an empty image view scaling to fill.
func NewImageView() *ImageView {
	return &ImageView{View: *NewView(), ContentMode: "scaleToFill"}
}

func (i *ImageView) Capabilities() []style.Capability {
	return []style.Capability{TypeImage, TypeView}
}

// AspectRatio implements view.AspectRatioer.
func (i *ImageView) AspectRatio() (float64, bool) {
	return i.Ratio, i.Ratio > 0
}

// FittingHeight implements view.Measurer. An image with a ratio is as tall
// as width allows; otherwise it has no intrinsic height.
func (i *ImageView) FittingHeight(width float64) float64 {
	if i.Ratio > 0 {
		return width / i.Ratio
	}
	return 0
}
