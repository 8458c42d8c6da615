package widgets

import "github.com/wangshengjia/leego/pkg/style"

// ScrollView is a container whose content may exceed its bounds.
type ScrollView struct {
	View
	ScrollEnabled bool
	PagingEnabled bool
	Bounces       bool
}

// NewScrollView returns a scrolling, bouncing scroll view.
func NewScrollView() *ScrollView {
	return &ScrollView{View: *NewView(), ScrollEnabled: true, Bounces: true}
}

func (s *ScrollView) Capabilities() []style.Capability {
	return []style.Capability{TypeScroll, TypeView}
}
