package compose

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wangshengjia/leego/pkg/brick"
	"github.com/wangshengjia/leego/pkg/config"
	"github.com/wangshengjia/leego/pkg/constraint"
	"github.com/wangshengjia/leego/pkg/errors"
	"github.com/wangshengjia/leego/pkg/layout"
	"github.com/wangshengjia/leego/pkg/style"
	"github.com/wangshengjia/leego/pkg/view"
)

type fakeView struct {
	kind       string
	text       string
	background string
	sets       int
	awoken     int
	recycled   int
	height     float64
	ratio      float64
}

func (v *fakeView) Capabilities() []style.Capability {
	return []style.Capability{style.Capability(v.kind), "view"}
}
func (v *fakeView) BrickDidAwake()                { v.awoken++ }
func (v *fakeView) PrepareForReuse()              { v.recycled++ }
func (v *fakeView) FittingHeight(float64) float64 { return v.height }
func (v *fakeView) AspectRatio() (float64, bool)  { return v.ratio, v.ratio != 0 }

func newTestComposer(opts ...Option) *Composer {
	views := view.NewRegistry()
	for _, kind := range []string{"view", "label", "image"} {
		kind := kind
		views.Register(kind, func() view.View { return &fakeView{kind: kind} })
	}
	views.RegisterNib("Card", func() view.View { return &fakeView{kind: "card"} })

	styles := style.NewRegistry()
	style.Bind(styles, "view", style.KindBackgroundColor, func(v *fakeView, s string) {
		v.background = s
		v.sets++
	}, "")
	style.Bind(styles, "label", style.KindText, func(v *fakeView, s string) {
		v.text = s
		v.sets++
	}, "")
	style.Bind(styles, "image", style.KindRatio, func(v *fakeView, r float64) { v.ratio = r }, 0)
	return New(views, styles, opts...)
}

func native(n *view.Node) *fakeView { return n.Native().(*fakeView) }

func subviewNames(n *view.Node) []string {
	var out []string
	for _, s := range n.Subviews() {
		out = append(out, s.Name())
	}
	return out
}

var headerMetrics = layout.NewMetrics(20, 20, 20, 20, 10, 10)

func header(children ...brick.Brick) brick.Brick {
	return brick.Union("header", children, layout.Horizontal, layout.AlignTop, layout.Fill, headerMetrics)
}

func TestConfigureHeader(t *testing.T) {
	c := newTestComposer()
	root := c.views.NewRoot("view")
	title := brick.New("title", "label")
	avatar := brick.New("avatar", "image").WithWidth(50)

	c.Configure(root, header(title, avatar), nil)

	if diff := cmp.Diff([]string{"title", "avatar"}, subviewNames(root)); diff != "" {
		t.Fatalf("subviews mismatch (-want +got):\n%s", diff)
	}
	avatarNode, _ := root.Subview("avatar")
	wantDims := []constraint.Constraint{constraint.Dimension("avatar", constraint.Width, 50)}
	if diff := cmp.Diff(wantDims, avatarNode.ConstraintsOf(constraint.ModeDimension)); diff != "" {
		t.Errorf("avatar dimensions mismatch (-want +got):\n%s", diff)
	}
	titleNode, _ := root.Subview("title")
	if len(titleNode.ConstraintsOf(constraint.ModeDimension)) != 0 {
		t.Error("title has no fixed width and should have no dimension constraint")
	}

	var want []constraint.Constraint
	names := []string{"title", "avatar"}
	for _, f := range []string{
		"H:|-left-[title]-spaceH-[avatar]-right-|",
		"V:|-top-[title]-(>=bottom)-|",
		"V:|-top-[avatar]-(>=bottom)-|",
	} {
		cs, err := constraint.Parse(f, layout.DirectionLeadingToTrailing, headerMetrics, names)
		if err != nil {
			t.Fatalf("Parse(%q): %v", f, err)
		}
		for _, c := range cs {
			want = append(want, c.Tagged(constraint.ModeSubviewsLayout))
		}
	}
	if diff := cmp.Diff(want, root.ConstraintsOf(constraint.ModeSubviewsLayout)); diff != "" {
		t.Errorf("layout constraints mismatch (-want +got):\n%s", diff)
	}
	if len(want) != 7 {
		t.Errorf("expected 7 layout constraints, got %d", len(want))
	}

	for _, n := range root.Subviews() {
		if n.IsRoot() {
			t.Errorf("subview %q should not be a root", n.Name())
		}
		cur, _ := n.Current()
		if n.Name() == "avatar" {
			if w, ok := cur.Width(); !ok || w != 50 {
				t.Error("recursion should record the full child brick, not the placeholder")
			}
		}
		if native(n).awoken != 1 {
			t.Errorf("%q awoken %d times, want 1", n.Name(), native(n).awoken)
		}
	}
}

func TestAlwaysIsIdempotent(t *testing.T) {
	c := newTestComposer(WithStrategy(Always))
	root := c.views.NewRoot("view")
	b := header(
		brick.New("title", "label").WithStyle(style.Text("hello")),
		brick.New("avatar", "image").WithWidth(50).WithHeight(50),
	).WithHeight(90)

	c.Configure(root, b, nil)
	firstSubviews := root.Subviews()
	firstConstraints := root.Constraints()
	firstChild := firstSubviews[1].Constraints()

	c.Configure(root, b, nil)
	if diff := cmp.Diff(firstConstraints, root.Constraints()); diff != "" {
		t.Errorf("root constraints drifted (-first +second):\n%s", diff)
	}
	second := root.Subviews()
	if len(second) != len(firstSubviews) {
		t.Fatalf("subview count drifted: %d -> %d", len(firstSubviews), len(second))
	}
	for i := range second {
		if second[i] != firstSubviews[i] {
			t.Errorf("subview %d was replaced", i)
		}
	}
	if diff := cmp.Diff(firstChild, second[1].Constraints()); diff != "" {
		t.Errorf("avatar constraints drifted (-first +second):\n%s", diff)
	}
	if got := len(root.ConstraintsOf(constraint.ModeDimension)); got != 1 {
		t.Errorf("root should keep exactly its height constraint, got %d", got)
	}
}

func TestWhenBrickChangedShortCircuits(t *testing.T) {
	c := newTestComposer()
	root := c.views.NewRoot("view")
	build := func(outlet string) brick.Brick {
		return header(
			brick.New("title", "label").WithStyle(style.Text("hello")),
			brick.New("avatar", "image").WithStyle(style.BackgroundColor("#fff")),
		).WithStyle(style.BackgroundColor("#000")).WithOutlet(outlet)
	}

	updates := map[string]int{}
	ds := DataSourceFunc(func(n *view.Node, b brick.Brick) { updates[b.Name()]++ })

	c.Configure(root, build("first"), ds)
	before := root.Subviews()
	setsBefore := native(root).sets + native(before[0]).sets + native(before[1]).sets

	c.Configure(root, build("second"), ds)
	after := root.Subviews()
	for i := range after {
		if after[i] != before[i] {
			t.Errorf("subview %d was replaced", i)
		}
	}
	setsAfter := native(root).sets + native(after[0]).sets + native(after[1]).sets
	if setsAfter != setsBefore {
		t.Errorf("style applied %d more times, want no rebuild", setsAfter-setsBefore)
	}
	if cur, _ := root.Current(); cur.Outlet() != "second" {
		t.Errorf("current brick outlet = %q, want the latest brick", cur.Outlet())
	}
	want := map[string]int{"header": 2, "title": 2, "avatar": 2}
	if diff := cmp.Diff(want, updates); diff != "" {
		t.Errorf("data source calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRenamedBrickRebuilds(t *testing.T) {
	c := newTestComposer()
	root := c.views.NewRoot("view")
	c.Configure(root, brick.New("a", "view").WithStyle(style.BackgroundColor("red")), nil)
	c.Configure(root, brick.New("b", "view").WithStyle(style.BackgroundColor("blue")), nil)
	if got := native(root).background; got != "blue" {
		t.Errorf("background = %q, want blue", got)
	}
}

func TestNameBasedChildReconciliation(t *testing.T) {
	c := newTestComposer(WithStrategy(Always))
	root := c.views.NewRoot("view")
	title := brick.New("title", "label")
	avatar := brick.New("avatar", "image")
	caption := brick.New("caption", "label")

	c.Configure(root, header(title, avatar), nil)
	titleNode, _ := root.Subview("title")
	avatarNode, _ := root.Subview("avatar")

	c.Configure(root, header(title, avatar, caption), nil)
	if diff := cmp.Diff([]string{"title", "avatar", "caption"}, subviewNames(root)); diff != "" {
		t.Fatalf("subviews mismatch (-want +got):\n%s", diff)
	}
	if n, _ := root.Subview("title"); n != titleNode {
		t.Error("title view was replaced")
	}
	if n, _ := root.Subview("avatar"); n != avatarNode {
		t.Error("avatar view was replaced")
	}

	c.Configure(root, header(title, avatar), nil)
	c.Configure(root, header(title), nil)
	if diff := cmp.Diff([]string{"title"}, subviewNames(root)); diff != "" {
		t.Fatalf("subviews mismatch (-want +got):\n%s", diff)
	}
	if n, _ := root.Subview("title"); n != titleNode {
		t.Error("title view was replaced")
	}
	if native(avatarNode).recycled != 1 {
		t.Errorf("avatar recycled %d times, want 1", native(avatarNode).recycled)
	}
	if avatarNode.Parent() != nil {
		t.Error("avatar should be detached")
	}
	for _, cst := range root.Constraints() {
		if cst.Involves("avatar") || cst.Involves("caption") {
			t.Errorf("stale constraint left: %v", cst)
		}
	}
}

func TestSubviewsFollowChildOrder(t *testing.T) {
	c := newTestComposer(WithStrategy(Always))
	root := c.views.NewRoot("view")
	a, b := brick.New("a", "view"), brick.New("b", "view")
	c.Configure(root, header(a, b), nil)
	c.Configure(root, header(b, a), nil)
	if diff := cmp.Diff([]string{"b", "a"}, subviewNames(root)); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestUserSubviewsAreKept(t *testing.T) {
	c := newTestComposer(WithStrategy(Always))
	root := c.views.NewRoot("view")
	manual := view.NewRoot(&fakeView{kind: "view"}, "view")
	root.AddSubview(manual)
	c.Configure(root, header(brick.New("title", "label")), nil)
	if len(root.Subviews()) != 2 {
		t.Errorf("subviews without a brick should be left alone, got %d", len(root.Subviews()))
	}
}

func TestStyleResetThroughComposition(t *testing.T) {
	c := newTestComposer(WithStrategy(Always))
	root := c.views.NewRoot("label")
	c.Configure(root, brick.New("title", "label").WithStyle(style.Text("hello")), nil)
	if native(root).text != "hello" {
		t.Fatalf("text = %q, want hello", native(root).text)
	}
	c.Configure(root, brick.New("title", "label"), nil)
	if native(root).text != "" {
		t.Errorf("text = %q, want reset to default", native(root).text)
	}
}

func TestDimensionsAreUpsertedAndRemoved(t *testing.T) {
	c := newTestComposer(WithStrategy(Always))
	root := c.views.NewRoot("view")
	c.Configure(root, brick.New("box", "view").WithWidth(10).WithHeight(20), nil)
	c.Configure(root, brick.New("box", "view").WithWidth(30).WithHeight(20), nil)

	dims := root.ConstraintsOf(constraint.ModeDimension)
	want := []constraint.Constraint{
		constraint.Dimension("box", constraint.Width, 30),
		constraint.Dimension("box", constraint.Height, 20),
	}
	if diff := cmp.Diff(want, dims); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}

	c.Configure(root, brick.New("box", "view"), nil)
	if got := root.ConstraintsOf(constraint.ModeDimension); len(got) != 0 {
		t.Errorf("dimensions should be removed, got %v", got)
	}
}

func TestRatioConstraint(t *testing.T) {
	c := newTestComposer(WithStrategy(Always))
	root := c.views.NewRoot("image")
	c.Configure(root, brick.New("cover", "image").WithStyle(style.Ratio(1.5)), nil)
	want := []constraint.Constraint{constraint.Ratio("cover", 1.5)}
	if diff := cmp.Diff(want, root.ConstraintsOf(constraint.ModeRatio)); diff != "" {
		t.Errorf("ratio mismatch (-want +got):\n%s", diff)
	}
	c.Configure(root, brick.New("cover", "image"), nil)
	if got := root.ConstraintsOf(constraint.ModeRatio); len(got) != 0 {
		t.Errorf("ratio constraint should be removed, got %v", got)
	}
}

func TestNibViewsSkipStyle(t *testing.T) {
	t.Cleanup(errors.SwapHandler(errors.DiscardHandler))
	c := newTestComposer()
	root := c.views.NewRoot("view")
	card := brick.New("card", "view").WithNib("Card").WithStyle(style.Text("not for cards"))
	if v := errors.Catch(func() { c.Configure(root, header(card), nil) }); v != nil {
		t.Fatalf("nib view should not be styled: %v", v)
	}
	n, _ := root.Subview("card")
	if !n.FromNib() || native(n).kind != "card" {
		t.Errorf("card node = %+v", n)
	}
}

func TestConfigureViolations(t *testing.T) {
	t.Cleanup(errors.SwapHandler(errors.DiscardHandler))
	c := newTestComposer()
	tests := []struct {
		name string
		root string
		b    brick.Brick
	}{
		{"incompatible root", "label", brick.New("button", "image")},
		{"unresolvable format", "view", brick.New("p", "view").WithChildren(
			[]brick.Brick{brick.New("a", "view")},
			layout.New([]string{"H:|[missing]|"}, 0, layout.DefaultMetrics),
		)},
		{"unsupported style", "view", brick.New("v", "view").WithStyle(style.Text("x"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := c.views.NewRoot(tt.root)
			if v := errors.Catch(func() { c.Configure(root, tt.b, nil) }); v == nil {
				t.Error("expected a contract violation")
			}
		})
	}
}

func TestParseUpdatingStrategy(t *testing.T) {
	for name, want := range map[string]UpdatingStrategy{"": WhenBrickChanged, "whenBrickChanged": WhenBrickChanged, "always": Always} {
		got, err := ParseUpdatingStrategy(name)
		if err != nil || got != want {
			t.Errorf("ParseUpdatingStrategy(%q) = %v, %v, want %v", name, got, err, want)
		}
		if name != "" && got.String() != name {
			t.Errorf("String() = %q, want %q", got.String(), name)
		}
	}
	if _, err := ParseUpdatingStrategy("never"); err == nil {
		t.Error("expected an error for an unknown strategy")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.UpdatingStrategy = "always"
	c, err := NewFromConfig(cfg, view.NewRegistry(), style.NewRegistry())
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if c.Strategy() != Always {
		t.Errorf("Strategy() = %v, want always", c.Strategy())
	}
	if c.heights == nil {
		t.Error("a positive cache size should install a height cache")
	}

	cfg.UpdatingStrategy = "sometimes"
	_, err = NewFromConfig(cfg, view.NewRegistry(), style.NewRegistry())
	var lerr *errors.LeeGoError
	if !errors.As(err, &lerr) || lerr.Kind != errors.KindConfig {
		t.Errorf("error = %v, want a config LeeGoError", err)
	}
}
