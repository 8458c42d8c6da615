// Package codec converts bricks to and from their persisted form.
//
// A persisted brick is an object with the keys name, targetClass (or type),
// nibName, width, height, style, bricks (or children), layout and outlet.
// Only name is required. Every other field that is missing or malformed
// decodes as absent: a style value of the wrong type drops that one style
// operation, a child that cannot be decoded drops that one child. Style
// kinds nobody registered are skipped silently.
//
// Documents wrap a brick with a version (see Document).
package codec

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/wangshengjia/leego/pkg/brick"
	"github.com/wangshengjia/leego/pkg/errors"
	"github.com/wangshengjia/leego/pkg/layout"
	"github.com/wangshengjia/leego/pkg/style"
)

// Keys of a persisted brick.
const (
	KeyName        = "name"
	KeyTargetClass = "targetClass"
	KeyType        = "type"
	KeyNibName     = "nibName"
	KeyWidth       = "width"
	KeyHeight      = "height"
	KeyStyle       = "style"
	KeyBricks      = "bricks"
	KeyChildren    = "children"
	KeyLayout      = "layout"
	KeyOutlet      = "outlet"

	KeyFormats = "formats"
	KeyOptions = "options"
	KeyMetrics = "metrics"
)

// Decoder turns persisted objects into bricks.
type Decoder struct {
	logger  *slog.Logger
	onField func(*errors.DecodeError)
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger receiving soft failures at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) { d.logger = l }
}

// WithFieldErrors calls fn for every field that decoded as absent because
// its value was malformed.
func WithFieldErrors(fn func(*errors.DecodeError)) Option {
	return func(d *Decoder) { d.onField = fn }
}

// NewDecoder returns a decoder.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default().With("component", "codec")
	}
	return d
}

// Decode decodes a JSON brick with a default decoder.
func Decode(data []byte) (brick.Brick, error) { return NewDecoder().Decode(data) }

// DecodeYAML decodes a YAML brick with a default decoder.
func DecodeYAML(data []byte) (brick.Brick, error) { return NewDecoder().DecodeYAML(data) }

// DecodeMap decodes an already parsed brick with a default decoder.
func DecodeMap(m map[string]any) (brick.Brick, error) { return NewDecoder().DecodeMap(m) }

// Decode decodes a JSON brick.
func (d *Decoder) Decode(data []byte) (brick.Brick, error) {
	m, err := parseObject(data, FormatJSON)
	if err != nil {
		return brick.Brick{}, decodeFailure("codec.Decode", "", err)
	}
	return d.DecodeMap(m)
}

// DecodeYAML decodes a YAML brick.
func (d *Decoder) DecodeYAML(data []byte) (brick.Brick, error) {
	m, err := parseObject(data, FormatYAML)
	if err != nil {
		return brick.Brick{}, decodeFailure("codec.DecodeYAML", "", err)
	}
	return d.DecodeMap(m)
}

// DecodeMap decodes a brick from m. A missing or non-string name is the only
// failure; it wraps errors.ErrMissingName.
func (d *Decoder) DecodeMap(m map[string]any) (brick.Brick, error) {
	return d.brick(m, "")
}

func decodeFailure(op, name string, err error) error {
	return &errors.LeeGoError{Op: op, Kind: errors.KindDecode, Brick: name, Err: err}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func (d *Decoder) soft(field, want string, got any) {
	err := &errors.DecodeError{Field: field, Want: want, Got: got}
	d.logger.Debug("dropping malformed field", "field", field, "error", err)
	if d.onField != nil {
		d.onField(err)
	}
}

func (d *Decoder) brick(m map[string]any, path string) (brick.Brick, error) {
	name, ok := m[KeyName].(string)
	if !ok || name == "" {
		return brick.Brick{}, decodeFailure("codec.Decode", "", fmt.Errorf("%s: %w", join(path, KeyName), errors.ErrMissingName))
	}

	targetType := d.stringField(m, path, KeyTargetClass)
	if targetType == "" {
		targetType = d.stringField(m, path, KeyType)
	}
	b := brick.New(name, targetType)

	if nib := d.stringField(m, path, KeyNibName); nib != "" {
		b = b.WithNib(nib)
	}
	if w, ok := d.numberField(m, path, KeyWidth); ok {
		b = b.WithWidth(w)
	}
	if h, ok := d.numberField(m, path, KeyHeight); ok {
		b = b.WithHeight(h)
	}
	if outlet := d.stringField(m, path, KeyOutlet); outlet != "" {
		b = b.WithOutlet(outlet)
	}
	if ops := d.style(m, path); len(ops) > 0 {
		b = b.WithStyle(ops...)
	}

	children := d.children(m, path)
	l, hasLayout := d.layout(m, path)
	switch {
	case len(children) > 0:
		if !hasLayout {
			l = layout.New(nil, 0, layout.DefaultMetrics)
		}
		b = b.WithChildren(children, l)
	case hasLayout:
		d.logger.Debug("ignoring layout of a brick without children", "brick", name)
	}
	return b, nil
}

func (d *Decoder) stringField(m map[string]any, path, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.soft(join(path, key), "string", v)
	}
	return s
}

func (d *Decoder) numberField(m map[string]any, path, key string) (float64, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return 0, false
	}
	n, ok := style.Number.Normalize(v)
	if !ok {
		d.soft(join(path, key), "number", v)
		return 0, false
	}
	return n.(float64), true
}

func (d *Decoder) style(m map[string]any, path string) []style.Operation {
	raw, ok := m[KeyStyle]
	if !ok || raw == nil {
		return nil
	}
	path = join(path, KeyStyle)
	values, ok := raw.(map[string]any)
	if !ok {
		d.soft(path, "object", raw)
		return nil
	}

	kinds := make([]string, 0, len(values))
	for k := range values {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)

	ops := make([]style.Operation, 0, len(kinds))
	for _, k := range kinds {
		kind := style.Kind(k)
		t, known := style.TypeOf(kind)
		if !known {
			d.logger.Debug("skipping unknown style kind", "kind", k)
			continue
		}
		v, ok := t.Normalize(values[k])
		if !ok {
			d.soft(join(path, k), t.String(), values[k])
			continue
		}
		ops = append(ops, style.Set(kind, v))
	}
	return ops
}

func (d *Decoder) children(m map[string]any, path string) []brick.Brick {
	key := KeyBricks
	raw, ok := m[key]
	if !ok {
		key = KeyChildren
		raw, ok = m[key]
	}
	if !ok || raw == nil {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		d.soft(join(path, key), "array", raw)
		return nil
	}

	var children []brick.Brick
	seen := make(map[string]bool, len(list))
	for i, item := range list {
		field := fmt.Sprintf("%s[%d]", join(path, key), i)
		obj, ok := item.(map[string]any)
		if !ok {
			d.soft(field, "object", item)
			continue
		}
		child, err := d.brick(obj, field)
		if err != nil {
			d.logger.Debug("dropping child", "field", field, "error", err)
			if d.onField != nil {
				d.onField(&errors.DecodeError{Field: join(field, KeyName), Want: "string", Got: obj[KeyName]})
			}
			continue
		}
		if !layout.IsIdentifier(child.Name()) {
			d.soft(join(field, KeyName), "layout identifier", child.Name())
			continue
		}
		if seen[child.Name()] {
			d.soft(join(field, KeyName), "unique sibling name", child.Name())
			continue
		}
		seen[child.Name()] = true
		children = append(children, child)
	}
	return children
}

func (d *Decoder) layout(m map[string]any, path string) (layout.Layout, bool) {
	raw, ok := m[KeyLayout]
	if !ok || raw == nil {
		return layout.Layout{}, false
	}
	path = join(path, KeyLayout)
	obj, ok := raw.(map[string]any)
	if !ok {
		d.soft(path, "object", raw)
		return layout.Layout{}, false
	}

	formats := d.strings(obj, path, KeyFormats)
	options := layout.ParseFormatOptions(d.strings(obj, path, KeyOptions))

	metrics := layout.DefaultMetrics
	if rawMetrics, ok := obj[KeyMetrics]; ok && rawMetrics != nil {
		mpath := join(path, KeyMetrics)
		values, ok := rawMetrics.(map[string]any)
		if !ok {
			d.soft(mpath, "object", rawMetrics)
		} else {
			parsed := make(map[string]float64, len(values))
			for name, v := range values {
				n, ok := style.Number.Normalize(v)
				if !ok {
					d.soft(join(mpath, name), "number", v)
					continue
				}
				parsed[name] = n.(float64)
			}
			metrics = layout.MetricsFromMap(parsed)
		}
	}
	return layout.New(formats, options, metrics), true
}

func (d *Decoder) strings(m map[string]any, path, key string) []string {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil
	}
	path = join(path, key)
	list, ok := raw.([]any)
	if !ok {
		d.soft(path, "array", raw)
		return nil
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			d.soft(fmt.Sprintf("%s[%d]", path, i), "string", item)
			continue
		}
		out = append(out, s)
	}
	return out
}

// Format is a persisted syntax.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// parseObject parses data as a top-level object in the canonical shape of
// encoding/json: map[string]any, []any, float64, string, bool and nil.
func parseObject(data []byte, f Format) (map[string]any, error) {
	var v any
	switch f {
	case FormatYAML:
		var y any
		if err := yaml.Unmarshal(data, &y); err != nil {
			return nil, err
		}
		// Round-trip through JSON so YAML ints and JSON numbers look alike.
		canonical, err := json.Marshal(y)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(canonical, &v); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &errors.DecodeError{Field: "$", Want: "object", Got: v}
	}
	return m, nil
}
