package codec

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/wangshengjia/leego/pkg/brick"
	"github.com/wangshengjia/leego/pkg/style"
)

// Encode returns the JSON form of b.
func Encode(b brick.Brick) ([]byte, error) {
	return json.Marshal(EncodeMap(b))
}

// EncodeYAML returns the YAML form of b.
func EncodeYAML(b brick.Brick) ([]byte, error) {
	return yaml.Marshal(EncodeMap(b))
}

// EncodeMap returns the persisted object of b. Height resolvers are code and
// are not persisted.
func EncodeMap(b brick.Brick) map[string]any {
	m := map[string]any{
		KeyName:        b.Name(),
		KeyTargetClass: b.TargetType(),
	}
	if nib := b.Nib(); nib != "" {
		m[KeyNibName] = nib
	}
	if w, ok := b.Width(); ok {
		m[KeyWidth] = w
	}
	if h, ok := b.Height(); ok {
		m[KeyHeight] = h
	}
	if outlet := b.Outlet(); outlet != "" {
		m[KeyOutlet] = outlet
	}
	if ops := b.Style(); len(ops) > 0 {
		m[KeyStyle] = encodeStyle(ops)
	}
	if b.HasChildren() {
		children := b.Children()
		bricks := make([]any, 0, len(children))
		for _, c := range children {
			bricks = append(bricks, EncodeMap(c))
		}
		m[KeyBricks] = bricks

		if l, ok := b.Layout(); ok {
			lm := map[string]any{KeyFormats: l.Formats()}
			if names := l.Options().Names(); len(names) > 0 {
				lm[KeyOptions] = names
			}
			if metrics := l.Metrics().Encode(); len(metrics) > 0 {
				lm[KeyMetrics] = metrics
			}
			m[KeyLayout] = lm
		}
	}
	return m
}

// encodeStyle keeps the last value of a kind set twice, which is also the
// one that ends up applied.
func encodeStyle(ops []style.Operation) map[string]any {
	out := make(map[string]any, len(ops))
	for _, op := range ops {
		out[string(op.Kind)] = op.Value
	}
	return out
}
