package brick

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wangshengjia/leego/pkg/errors"
	"github.com/wangshengjia/leego/pkg/layout"
	"github.com/wangshengjia/leego/pkg/style"
)

func TestNewDefaults(t *testing.T) {
	b := New("title", "")
	if b.Name() != "title" {
		t.Errorf("Name() = %q, want title", b.Name())
	}
	if b.TargetType() != DefaultTargetType {
		t.Errorf("TargetType() = %q, want %q", b.TargetType(), DefaultTargetType)
	}
	if _, ok := b.Width(); ok {
		t.Error("new brick should have no width")
	}
	if _, ok := b.Layout(); ok {
		t.Error("new brick should have no layout")
	}
	if !b.IsBare() {
		t.Error("new brick should be bare")
	}
}

func TestWithReturnsCopies(t *testing.T) {
	base := New("title", "label")
	styled := base.WithStyle(style.Text("hello")).WithWidth(50).WithOutlet("titleLabel")

	if len(base.Style()) != 0 {
		t.Error("WithStyle mutated the original brick")
	}
	if _, ok := base.Width(); ok {
		t.Error("WithWidth mutated the original brick")
	}
	if w, ok := styled.Width(); !ok || w != 50 {
		t.Errorf("Width() = %v, %v, want 50, true", w, ok)
	}
	if styled.Outlet() != "titleLabel" {
		t.Errorf("Outlet() = %q", styled.Outlet())
	}
	if styled.IsBare() {
		t.Error("styled brick is not bare")
	}
	if _, ok := styled.WithoutWidth().Width(); ok {
		t.Error("WithoutWidth kept the width")
	}

	ops := styled.Style()
	ops[0] = style.Text("changed")
	if styled.Style()[0].Value != "hello" {
		t.Error("Style() exposes the internal slice")
	}
}

func TestEqualIsByName(t *testing.T) {
	a := New("title", "label").WithStyle(style.Text("a"))
	b := New("title", "button")
	c := New("subtitle", "label")
	if !a.Equal(b) {
		t.Error("bricks with the same name should be equal")
	}
	if a.Equal(c) {
		t.Error("bricks with different names should not be equal")
	}
}

func TestUnion(t *testing.T) {
	title := New("title", "label")
	avatar := New("avatar", "image").WithWidth(50)
	metrics := layout.NewMetrics(20, 20, 20, 20, 10, 10)
	header := Union("header", []Brick{title, avatar}, layout.Horizontal, layout.AlignTop, layout.Fill, metrics)

	if diff := cmp.Diff(Names{"title", "avatar"}, NamesOf(header.Children())); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	l, ok := header.Layout()
	if !ok {
		t.Fatal("union should have a layout")
	}
	want := layout.Synthesize([]string{"title", "avatar"}, layout.Horizontal, layout.AlignTop, layout.Fill, metrics)
	if !l.Equal(want) {
		t.Errorf("layout = %v, want %v", l.Formats(), want.Formats())
	}
	if header.IsBare() {
		t.Error("a union is not bare")
	}
}

func TestContainer(t *testing.T) {
	c := Container("", New("content", "label"))
	if c.Name() != "container" {
		t.Errorf("Name() = %q, want container", c.Name())
	}
	l, _ := c.Layout()
	want := []string{"H:|-left-[content]-right-|", "V:|-top-[content]-bottom-|"}
	if diff := cmp.Diff(want, l.Formats()); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
}

func TestWithChildrenFunc(t *testing.T) {
	children := []Brick{New("a", ""), New("b", "")}
	b := New("root", "").WithChildrenFunc(children, func(n Names) layout.Layout {
		if !n.Has("b") {
			t.Error("names should contain b")
		}
		return layout.New([]string{"H:|[" + n.At(0) + "][" + n.At(1) + "]|"}, 0, layout.DefaultMetrics)
	})
	l, _ := b.Layout()
	if diff := cmp.Diff([]string{"H:|[a][b]|"}, l.Formats()); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
}

func TestReplaceChild(t *testing.T) {
	parent := Union("card", []Brick{New("title", "label"), New("avatar", "image")},
		layout.Vertical, layout.AlignFill, layout.Fill, layout.DefaultMetrics)
	replaced := parent.ReplaceChild("title", New("title", "label").WithStyle(style.Text("new")))

	child, ok := replaced.Child("title")
	if !ok || len(child.Style()) != 1 {
		t.Fatalf("replacement not found: %+v", child)
	}
	old, _ := parent.Child("title")
	if len(old.Style()) != 0 {
		t.Error("ReplaceChild mutated the original children")
	}
	l1, _ := parent.Layout()
	l2, _ := replaced.Layout()
	if !l1.Equal(l2) {
		t.Error("ReplaceChild should keep the layout")
	}
}

func TestContractViolations(t *testing.T) {
	t.Cleanup(errors.SwapHandler(errors.DiscardHandler))
	twoChildren := Union("card", []Brick{New("a", ""), New("b", "")},
		layout.Vertical, layout.AlignFill, layout.Fill, layout.DefaultMetrics)
	tests := []struct {
		name string
		op   string
		fn   func()
	}{
		{"empty name", "brick.New", func() { New("", "label") }},
		{"duplicate siblings", "brick.WithChildren", func() {
			New("p", "").WithChildren([]Brick{New("x", ""), New("x", "")}, layout.Layout{})
		}},
		{"hyphenated child name", "brick.WithChildren", func() {
			New("p", "").WithChildren([]Brick{New("my-title", "label")}, layout.Layout{})
		}},
		{"child name starting with a digit", "brick.Union", func() {
			Union("p", []Brick{New("1st", "")}, layout.Horizontal, layout.AlignFill, layout.Fill, layout.DefaultMetrics)
		}},
		{"invalid replacement name", "brick.ReplaceChild", func() { twoChildren.ReplaceChild("a", New("a.b", "")) }},
		{"no children", "brick.WithChildren", func() { New("p", "").WithChildren(nil, layout.Layout{}) }},
		{"empty union", "brick.Union", func() {
			Union("p", nil, layout.Horizontal, layout.AlignFill, layout.Fill, layout.DefaultMetrics)
		}},
		{"unknown child", "brick.ReplaceChild", func() { twoChildren.ReplaceChild("zzz", New("c", "")) }},
		{"colliding replacement", "brick.ReplaceChild", func() { twoChildren.ReplaceChild("a", New("b", "")) }},
		{"names out of range", "brick.Names", func() { Names{"a"}.At(3) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := errors.Catch(tt.fn)
			if v == nil {
				t.Fatal("expected a contract violation")
			}
			if v.Op != tt.op {
				t.Errorf("Op = %q, want %q", v.Op, tt.op)
			}
		})
	}
}
