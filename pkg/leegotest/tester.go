package leegotest

import (
	"io"
	"log/slog"
	"testing"

	"github.com/wangshengjia/leego/pkg/brick"
	"github.com/wangshengjia/leego/pkg/compose"
	"github.com/wangshengjia/leego/pkg/errors"
	"github.com/wangshengjia/leego/pkg/style"
	"github.com/wangshengjia/leego/pkg/view"
	"github.com/wangshengjia/leego/pkg/widgets"
)

// Tester composes bricks onto a root view backed by the reference widgets.
type Tester struct {
	t        testing.TB
	Views    *view.Registry
	Styles   *style.Registry
	Composer *compose.Composer
	root     *view.Node
	rootType string
}

// NewTester returns a tester whose root is a plain view. Extra options are
// passed to the composer; logs are discarded unless an option sets a
// logger.
func NewTester(t testing.TB, opts ...compose.Option) *Tester {
	t.Helper()
	views, styles := view.NewRegistry(), style.NewRegistry()
	widgets.RegisterDefaults(views, styles)
	opts = append([]compose.Option{compose.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	return &Tester{
		t:        t,
		Views:    views,
		Styles:   styles,
		Composer: compose.New(views, styles, opts...),
		rootType: widgets.TypeView,
	}
}

// SetRootType sets the view type of the root created by the next Pump.
func (tt *Tester) SetRootType(viewType string) {
	tt.rootType = viewType
	tt.root = nil
}

// Root returns the root node, nil before the first Pump.
func (tt *Tester) Root() *view.Node { return tt.root }

// Pump configures the root with b, creating the root on first use.
// A contract violation fails the test.
func (tt *Tester) Pump(b brick.Brick) {
	tt.t.Helper()
	tt.PumpWith(b, nil)
}

// PumpWith is Pump with a data source.
func (tt *Tester) PumpWith(b brick.Brick, ds compose.DataSource) {
	tt.t.Helper()
	if tt.root == nil {
		tt.root = tt.Views.NewRoot(tt.rootType)
	}
	if v := errors.Catch(func() { tt.Composer.Configure(tt.root, b, ds) }); v != nil {
		tt.t.Fatalf("Configure(%s): %v", b.Name(), v)
	}
}

// Find evaluates f on the root.
func (tt *Tester) Find(f Finder) FinderResult {
	if tt.root == nil {
		return FinderResult{finder: f}
	}
	return Find(tt.root, f)
}

// FittingHeight returns the fitting height of the root at width, 0 before
// the first Pump.
func (tt *Tester) FittingHeight(width float64) float64 {
	if tt.root == nil {
		return 0
	}
	return tt.Composer.FittingHeight(tt.root, width)
}

// CaptureSnapshot captures the current view tree.
func (tt *Tester) CaptureSnapshot() *Snapshot {
	return Capture(tt.root)
}
