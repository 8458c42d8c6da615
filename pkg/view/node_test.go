package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wangshengjia/leego/pkg/brick"
	"github.com/wangshengjia/leego/pkg/constraint"
	"github.com/wangshengjia/leego/pkg/errors"
	"github.com/wangshengjia/leego/pkg/style"
)

type fakeView struct{ kind string }

func (v *fakeView) Capabilities() []style.Capability { return []style.Capability{style.Capability(v.kind)} }

func newFakeRegistry() *Registry {
	r := NewRegistry()
	r.Register("view", func() View { return &fakeView{kind: "view"} })
	r.Register("label", func() View { return &fakeView{kind: "label"} })
	r.RegisterNib("Card", func() View { return &fakeView{kind: "card"} })
	return r
}

func named(r *Registry, name, viewType string) *Node {
	b := brick.New(name, viewType)
	n := r.Instantiate(b)
	n.SetCurrent(b)
	return n
}

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name()
	}
	return out
}

func TestInstantiate(t *testing.T) {
	r := newFakeRegistry()

	label := r.Instantiate(brick.New("title", "label"))
	if label.ViewType() != "label" || label.IsRoot() || label.FromNib() {
		t.Errorf("label node = %+v", label)
	}
	if _, ok := label.Current(); ok {
		t.Error("instantiated node should record no brick")
	}

	fallback := r.Instantiate(brick.New("x", "unregistered"))
	if fallback.ViewType() != brick.DefaultTargetType {
		t.Errorf("ViewType() = %q, want fallback %q", fallback.ViewType(), brick.DefaultTargetType)
	}

	nib := r.Instantiate(brick.New("card", "view").WithNib("Card"))
	if !nib.FromNib() || nib.Native().(*fakeView).kind != "card" {
		t.Errorf("nib node = %+v", nib)
	}

	root := r.NewRoot("label")
	if !root.IsRoot() || root.ViewType() != "label" {
		t.Errorf("root node = %+v", root)
	}
}

func TestInstantiateViolations(t *testing.T) {
	t.Cleanup(errors.SwapHandler(errors.DiscardHandler))
	if v := errors.Catch(func() {
		newFakeRegistry().Instantiate(brick.New("x", "").WithNib("Missing"))
	}); v == nil || v.Op != "view.Instantiate" {
		t.Errorf("unknown nib: got %v", v)
	}
	if v := errors.Catch(func() {
		NewRegistry().Instantiate(brick.New("x", "label"))
	}); v == nil {
		t.Error("registry without default factory should violate")
	}
}

func TestSubviews(t *testing.T) {
	r := newFakeRegistry()
	root := r.NewRoot("view")
	a, b, c := named(r, "a", "view"), named(r, "b", "view"), named(r, "c", "view")
	root.AddSubview(a)
	root.AddSubview(b)
	root.AddSubview(c)

	if got, ok := root.Subview("b"); !ok || got != b {
		t.Errorf("Subview(b) = %v, %v", got, ok)
	}
	if b.Parent() != root {
		t.Error("AddSubview should set the parent")
	}

	root.OrderSubviews([]string{"c", "a"})
	if diff := cmp.Diff([]string{"c", "a", "b"}, names(root.Subviews())); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	root.AddConstraints(
		constraint.Constraint{First: "a", Second: "b"}.Tagged(constraint.ModeSubviewsLayout),
		constraint.Constraint{First: "c", Second: constraint.Superview}.Tagged(constraint.ModeSubviewsLayout),
	)
	b.RemoveFromParent()
	if diff := cmp.Diff([]string{"c", "a"}, names(root.Subviews())); diff != "" {
		t.Errorf("after removal (-want +got):\n%s", diff)
	}
	if got := len(root.Constraints()); got != 1 {
		t.Errorf("constraints involving the removed view should go, %d left", got)
	}
	if b.Parent() != nil {
		t.Error("removed node should have no parent")
	}

	other := r.NewRoot("view")
	other.AddSubview(a)
	if _, ok := root.Subview("a"); ok {
		t.Error("AddSubview should detach from the previous parent")
	}
}

func TestConstraintModes(t *testing.T) {
	n := NewRoot(&fakeView{kind: "view"}, "view")
	isWidth := func(c constraint.Constraint) bool {
		return c.Mode() == constraint.ModeDimension && c.FirstAttr == constraint.Width
	}
	n.UpsertConstraint(constraint.Dimension("n", constraint.Width, 10), isWidth)
	n.UpsertConstraint(constraint.Dimension("n", constraint.Width, 20), isWidth)
	n.AddConstraints(constraint.Constraint{First: "a"}.Tagged(constraint.ModeSubviewsLayout))

	dims := n.ConstraintsOf(constraint.ModeDimension)
	if len(dims) != 1 || dims[0].Constant != 20 {
		t.Fatalf("dimension constraints = %v, want a single one at 20", dims)
	}
	if removed := n.RemoveConstraints(constraint.ModeSubviewsLayout); removed != 1 {
		t.Errorf("RemoveConstraints removed %d, want 1", removed)
	}
	if len(n.ConstraintsOf(constraint.ModeDimension)) != 1 {
		t.Error("removing layout constraints should keep dimension constraints")
	}
}

func TestViewForOutlet(t *testing.T) {
	r := newFakeRegistry()
	root := r.NewRoot("view")
	root.SetCurrent(brick.New("root", "view").WithOutlet("rootOutlet"))

	level1 := named(r, "level1", "view")
	level2 := named(r, "level2", "view")
	first := r.Instantiate(brick.New("button", "view"))
	first.SetCurrent(brick.New("button", "view").WithOutlet("favoriteButton"))
	second := r.Instantiate(brick.New("button2", "view"))
	second.SetCurrent(brick.New("button2", "view").WithOutlet("favoriteButton"))

	root.AddSubview(level1)
	level1.AddSubview(level2)
	level2.AddSubview(first)
	root.AddSubview(second)

	if got, ok := root.ViewForOutlet("favoriteButton"); !ok || got != first {
		t.Errorf("ViewForOutlet = %v, want the depth-first match", got)
	}
	if got, ok := root.ViewForOutlet("rootOutlet"); !ok || got != root {
		t.Errorf("ViewForOutlet should consider the node itself, got %v", got)
	}
	if _, ok := root.ViewForOutlet("unknown"); ok {
		t.Error("unknown outlet should not be found")
	}
	if _, ok := root.ViewForOutlet(""); ok {
		t.Error("empty outlet should not be found")
	}
}

func TestAccepts(t *testing.T) {
	n := NewRoot(&fakeView{kind: "label"}, "label")
	if !n.Accepts(brick.New("x", "label")) || !n.Accepts(brick.New("x", "")) {
		t.Error("label node should accept label and generic bricks")
	}
	if n.Accepts(brick.New("x", "button")) {
		t.Error("label node should not accept a button brick")
	}
}
