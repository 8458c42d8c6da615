package style

import (
	"sync"

	"github.com/wangshengjia/leego/pkg/errors"
)

// Capability names a family of views sharing a set of properties.
type Capability string

// Styleable is implemented by views that take style operations.
type Styleable interface {
	// Capabilities lists what the view is, most specific first,
	// e.g. ["button", "control", "view"].
	Capabilities() []Capability
}

// CustomStyler receives KindCustom operations.
type CustomStyler interface {
	SetupCustomStyle(values map[string]any)
	RemoveCustomStyle(values map[string]any)
}

// Binding sets a property on a view, or resets it to its default.
type Binding struct {
	Set   func(target Styleable, value any)
	Reset func(target Styleable)
}

// Registry maps (capability, kind) pairs to bindings.
// It is safe for concurrent registration and lookup.
type Registry struct {
	mu       sync.RWMutex
	bindings map[Capability]map[Kind]Binding
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[Capability]map[Kind]Binding)}
}

// Register installs the binding of kind for views with capability c,
// replacing any previous one.
func (r *Registry) Register(c Capability, kind Kind, b Binding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byKind := r.bindings[c]
	if byKind == nil {
		byKind = make(map[Kind]Binding)
		r.bindings[c] = byKind
	}
	byKind[kind] = b
}

// Lookup returns the binding of kind for target, trying its capabilities in
// order.
func (r *Registry) Lookup(target Styleable, kind Kind) (Binding, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range target.Capabilities() {
		if b, ok := r.bindings[c][kind]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// Apply brings target from the previous style to the next one. Operations
// of previous whose kind is absent from next are reset first, then every
// operation of next is set in list order, so a kind listed twice ends with
// the last value.
//
// A kind the target has no binding for is a contract violation.
func (r *Registry) Apply(target Styleable, previous, next []Operation) {
	for _, op := range Removed(previous, next) {
		r.apply(target, op, true)
	}
	for _, op := range next {
		r.apply(target, op, false)
	}
}

func (r *Registry) apply(target Styleable, op Operation, reset bool) {
	if op.Kind == KindCustom {
		cs, ok := target.(CustomStyler)
		if !ok {
			errors.Violate("style.Apply", "%T does not take custom style", target)
		}
		values, _ := op.Value.(map[string]any)
		if reset {
			cs.RemoveCustomStyle(values)
		} else {
			cs.SetupCustomStyle(values)
		}
		return
	}
	b, ok := r.Lookup(target, op.Kind)
	if !ok {
		errors.Violate("style.Apply", "%T does not support style %q", target, op.Kind)
	}
	if reset {
		b.Reset(target)
	} else {
		b.Set(target, op.Value)
	}
}

// Bind registers a binding whose value is checked against the registered
// value type of kind and handed to set as V. Reset sets def.
func Bind[T Styleable, V any](r *Registry, c Capability, kind Kind, set func(T, V), def V) {
	r.Register(c, kind, Binding{
		Set: func(target Styleable, value any) {
			set(target.(T), convert[V](kind, value))
		},
		Reset: func(target Styleable) {
			set(target.(T), def)
		},
	})
}

func convert[V any](kind Kind, value any) V {
	if t, ok := TypeOf(kind); ok {
		if n, ok := t.Normalize(value); ok {
			value = n
		}
	}
	v, ok := value.(V)
	if !ok {
		var zero V
		errors.Violate("style.Apply", "style %q wants %T, got %T", kind, zero, value)
	}
	return v
}
