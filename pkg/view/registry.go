package view

import (
	"sync"

	"github.com/wangshengjia/leego/pkg/brick"
	"github.com/wangshengjia/leego/pkg/errors"
)

// Factory creates views of one type.
type Factory interface {
	// ViewType returns the type name bricks use to ask for these views.
	ViewType() string
	// Create returns a new view.
	Create() View
}

type factoryFunc struct {
	viewType string
	create   func() View
}

func (f factoryFunc) ViewType() string { return f.viewType }
func (f factoryFunc) Create() View     { return f.create() }

// FactoryFunc adapts a function to a Factory.
func FactoryFunc(viewType string, create func() View) Factory {
	return factoryFunc{viewType: viewType, create: create}
}

// Registry instantiates views by type name or from nibs.
// It is safe for concurrent registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	nibs      map[string]func() View
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		nibs:      make(map[string]func() View),
	}
}

// RegisterFactory installs f under its view type.
func (r *Registry) RegisterFactory(f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[f.ViewType()] = f
}

// Register installs create under viewType.
func (r *Registry) Register(viewType string, create func() View) {
	r.RegisterFactory(FactoryFunc(viewType, create))
}

// RegisterNib installs the loader of a prebuilt view.
func (r *Registry) RegisterNib(nib string, load func() View) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nibs[nib] = load
}

// Factory returns the factory of viewType.
func (r *Registry) Factory(viewType string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[viewType]
	return f, ok
}

// Types returns the number of registered view types.
func (r *Registry) Types() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// NewRoot creates a root node of viewType.
func (r *Registry) NewRoot(viewType string) *Node {
	n := r.create("view.NewRoot", viewType)
	n.root = true
	return n
}

// Instantiate creates the view of b: from its nib when it has one,
// otherwise from the factory of its target type. A type without factory
// falls back to brick.DefaultTargetType. The node is not a root and records
// no brick yet.
//
// An unknown nib, or a registry without a DefaultTargetType factory, is a
// contract violation.
func (r *Registry) Instantiate(b brick.Brick) *Node {
	if nib := b.Nib(); nib != "" {
		r.mu.RLock()
		load, ok := r.nibs[nib]
		r.mu.RUnlock()
		if !ok {
			errors.Violate("view.Instantiate", "no nib named %q for brick %q", nib, b.Name())
		}
		return &Node{native: load(), viewType: b.TargetType(), fromNib: true}
	}
	return r.create("view.Instantiate", b.TargetType())
}

func (r *Registry) create(op, viewType string) *Node {
	f, ok := r.Factory(viewType)
	if !ok {
		f, ok = r.Factory(brick.DefaultTargetType)
		viewType = brick.DefaultTargetType
	}
	if !ok {
		errors.Violate(op, "no factory for %q", brick.DefaultTargetType)
	}
	return &Node{native: f.Create(), viewType: viewType}
}
