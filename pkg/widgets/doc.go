// Package widgets provides a reference family of views for LeeGo.
//
// The views are plain Go structs recording the properties a style sets on
// them, which makes them useful both as headless stand-ins for platform
// views and as the fixture of tests. RegisterDefaults installs them in a
// view.Registry and binds every built-in style kind in a style.Registry:
//
//	views, styles := view.NewRegistry(), style.NewRegistry()
//	widgets.RegisterDefaults(views, styles)
//	c := compose.New(views, styles)
//
//	root := views.NewRoot(widgets.TypeView)
//	c.Configure(root, header, nil)
//
// Every view embeds View and answers to the "view" capability. Labels and
// text fields measure their text with a fixed-size bitmap face so fitting
// heights are deterministic.
package widgets
