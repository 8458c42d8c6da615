package constraint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wangshengjia/leego/pkg/layout"
)

// ParseError reports a format that cannot be resolved.
type ParseError struct {
	Format string
	Pos    int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("visual format %q: %s at offset %d", e.Format, e.Msg, e.Pos)
}

type predicate struct {
	relation layout.Relation
	constant float64
	view     string
	priority float64
}

type connection struct {
	standard   bool
	predicates []predicate
}

type viewItem struct {
	name       string
	predicates []predicate
}

type format struct {
	axis        layout.Axis
	leading     *connection
	views       []viewItem
	connections []connection
	trailing    *connection
}

type parser struct {
	src     string
	pos     int
	metrics layout.Metrics
}

// Parse resolves a visual format into constraints between the given views
// and Superview. The returned constraints carry no identifier.
//
// The grammar is the usual one: an optional "H:" or "V:" orientation, "|"
// for the superview, "-" connections with an optional spacing predicate
// ("-10-", "-spaceH-", "-(>=spaceH@750)-"), adjacency "[a][b]" and view
// predicates ("[a(50)]", "[a(>=width)]", "[a(b)]", "[a(==b@750)]").
// Alignment flags in options line up the views of the format.
func Parse(src string, options layout.FormatOptions, metrics layout.Metrics, views []string) ([]Constraint, error) {
	f, err := parse(src, metrics)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(views)+1)
	for _, v := range views {
		known[v] = true
	}
	for _, item := range f.views {
		if !known[item.name] {
			return nil, &ParseError{Format: src, Msg: "unknown view " + strconv.Quote(item.name)}
		}
		for _, p := range item.predicates {
			if p.view != "" && !known[p.view] {
				return nil, &ParseError{Format: src, Msg: "unknown view " + strconv.Quote(p.view)}
			}
		}
	}
	return f.constraints(src, options)
}

// Extent returns the axis of a format and the length its chain covers along
// that axis: the spacings of its connections plus the size of each view.
// size is consulted for views without an exact size predicate.
func Extent(src string, metrics layout.Metrics, size func(view string) float64) (layout.Axis, float64, error) {
	f, err := parse(src, metrics)
	if err != nil {
		return layout.Horizontal, 0, err
	}
	var total float64
	if f.leading != nil {
		total += f.leading.span(StandardEdgeSpacing)
	}
	for i, item := range f.views {
		if i > 0 {
			total += f.connections[i-1].span(StandardSpacing)
		}
		total += item.span(size)
	}
	if f.trailing != nil {
		total += f.trailing.span(StandardEdgeSpacing)
	}
	return f.axis, total, nil
}

func (c connection) span(standard float64) float64 {
	if c.standard {
		return standard
	}
	var v float64
	for _, p := range c.predicates {
		if p.relation != layout.LessOrEqual && p.constant > v {
			v = p.constant
		}
	}
	return v
}

func (item viewItem) span(size func(string) float64) float64 {
	for _, p := range item.predicates {
		if p.view == "" && p.relation == layout.Equal {
			return p.constant
		}
	}
	v := size(item.name)
	for _, p := range item.predicates {
		if p.view == "" && p.relation == layout.GreaterOrEqual && p.constant > v {
			v = p.constant
		}
	}
	return v
}

func parse(src string, metrics layout.Metrics) (*format, error) {
	p := &parser{src: src, metrics: metrics}
	f := &format{axis: layout.Horizontal}
	switch {
	case strings.HasPrefix(src, "H:"):
		p.pos = 2
	case strings.HasPrefix(src, "V:"):
		f.axis = layout.Vertical
		p.pos = 2
	}

	if p.eat('|') {
		c, err := p.connection()
		if err != nil {
			return nil, err
		}
		f.leading = &c
	}
	for {
		if p.peek() != '[' {
			return nil, p.errorf("expected a view")
		}
		item, err := p.view()
		if err != nil {
			return nil, err
		}
		f.views = append(f.views, item)
		if p.done() {
			break
		}
		c, err := p.connection()
		if err != nil {
			return nil, err
		}
		if p.eat('|') {
			f.trailing = &c
			break
		}
		f.connections = append(f.connections, c)
	}
	if !p.done() {
		return nil, p.errorf("unexpected %q", p.src[p.pos:])
	}
	return f, nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Format: p.src, Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) done() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) eat(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) connection() (connection, error) {
	if !p.eat('-') {
		return connection{predicates: []predicate{{relation: layout.Equal, priority: Required}}}, nil
	}
	if c := p.peek(); c == '[' || c == '|' {
		return connection{standard: true}, nil
	}
	var preds []predicate
	if p.peek() == '(' {
		list, err := p.predicateList(false)
		if err != nil {
			return connection{}, err
		}
		preds = list
	} else {
		v, err := p.constant()
		if err != nil {
			return connection{}, err
		}
		preds = []predicate{{relation: layout.Equal, constant: v, priority: Required}}
	}
	if !p.eat('-') {
		return connection{}, p.errorf("expected '-' after spacing")
	}
	return connection{predicates: preds}, nil
}

func (p *parser) view() (viewItem, error) {
	p.eat('[')
	name := p.identifier()
	if name == "" {
		return viewItem{}, p.errorf("expected a view name")
	}
	item := viewItem{name: name}
	if p.peek() == '(' {
		list, err := p.predicateList(true)
		if err != nil {
			return viewItem{}, err
		}
		item.predicates = list
	}
	if !p.eat(']') {
		return viewItem{}, p.errorf("expected ']'")
	}
	return item, nil
}

func (p *parser) predicateList(allowViews bool) ([]predicate, error) {
	p.eat('(')
	var list []predicate
	for {
		pred, err := p.predicate(allowViews)
		if err != nil {
			return nil, err
		}
		list = append(list, pred)
		if p.eat(',') {
			continue
		}
		if p.eat(')') {
			return list, nil
		}
		return nil, p.errorf("expected ',' or ')'")
	}
}

func (p *parser) predicate(allowViews bool) (predicate, error) {
	pred := predicate{relation: layout.Equal, priority: Required}
	switch {
	case strings.HasPrefix(p.src[p.pos:], "=="):
		p.pos += 2
	case strings.HasPrefix(p.src[p.pos:], ">="):
		pred.relation = layout.GreaterOrEqual
		p.pos += 2
	case strings.HasPrefix(p.src[p.pos:], "<="):
		pred.relation = layout.LessOrEqual
		p.pos += 2
	}

	if isIdentStart(p.peek()) {
		start := p.pos
		name := p.identifier()
		if v, ok := p.metrics.Lookup(name); ok {
			pred.constant = v
		} else if allowViews {
			pred.view = name
		} else {
			p.pos = start
			return predicate{}, p.errorf("unknown metric %q", name)
		}
	} else {
		v, err := p.number()
		if err != nil {
			return predicate{}, err
		}
		pred.constant = v
	}

	if p.eat('@') {
		v, err := p.constant()
		if err != nil {
			return predicate{}, err
		}
		pred.priority = v
	}
	return pred, nil
}

func (p *parser) constant() (float64, error) {
	if isIdentStart(p.peek()) {
		start := p.pos
		name := p.identifier()
		v, ok := p.metrics.Lookup(name)
		if !ok {
			p.pos = start
			return 0, p.errorf("unknown metric %q", name)
		}
		return v, nil
	}
	return p.number()
}

func (p *parser) number() (float64, error) {
	start := p.pos
	if p.peek() == '-' {
		p.pos++
	}
	for c := p.peek(); (c >= '0' && c <= '9') || c == '.'; c = p.peek() {
		p.pos++
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		p.pos = start
		return 0, p.errorf("expected a number or a metric")
	}
	return v, nil
}

func (p *parser) identifier() string {
	start := p.pos
	if !isIdentStart(p.peek()) {
		return ""
	}
	for c := p.peek(); isIdentStart(c) || (c >= '0' && c <= '9'); c = p.peek() {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func (f *format) edges(options layout.FormatOptions) (start, end, size Attribute) {
	if f.axis == layout.Vertical {
		return Top, Bottom, Height
	}
	switch {
	case options.Has(layout.DirectionLeftToRight):
		return Left, Right, Width
	case options.Has(layout.DirectionRightToLeft):
		return Right, Left, Width
	default:
		return Leading, Trailing, Width
	}
}

func (f *format) constraints(src string, options layout.FormatOptions) ([]Constraint, error) {
	start, end, size := f.edges(options)
	var out []Constraint
	link := func(first string, firstAttr Attribute, second string, secondAttr Attribute, c connection, standard float64) {
		if c.standard {
			out = append(out, Constraint{
				First: first, FirstAttr: firstAttr, Relation: layout.Equal,
				Second: second, SecondAttr: secondAttr, Multiplier: 1,
				Constant: standard, Priority: Required,
			})
			return
		}
		for _, p := range c.predicates {
			out = append(out, Constraint{
				First: first, FirstAttr: firstAttr, Relation: p.relation,
				Second: second, SecondAttr: secondAttr, Multiplier: 1,
				Constant: p.constant, Priority: p.priority,
			})
		}
	}

	if f.leading != nil {
		link(f.views[0].name, start, Superview, start, *f.leading, StandardEdgeSpacing)
	}
	for i, item := range f.views {
		for _, p := range item.predicates {
			c := Constraint{
				First: item.name, FirstAttr: size, Relation: p.relation,
				SecondAttr: NotAnAttribute, Multiplier: 1,
				Constant: p.constant, Priority: p.priority,
			}
			if p.view != "" {
				c.Second, c.SecondAttr, c.Constant = p.view, size, 0
			}
			out = append(out, c)
		}
		if i > 0 {
			prev := f.views[i-1].name
			link(item.name, start, prev, end, f.connections[i-1], StandardSpacing)
		}
	}
	if f.trailing != nil {
		last := f.views[len(f.views)-1].name
		link(Superview, end, last, end, *f.trailing, StandardEdgeSpacing)
	}

	aligned, err := f.alignments(src, options)
	if err != nil {
		return nil, err
	}
	return append(out, aligned...), nil
}

var alignFlags = []struct {
	flag     layout.FormatOptions
	attr     Attribute
	vertical bool
}{
	{layout.AlignAllLeft, Left, false},
	{layout.AlignAllRight, Right, false},
	{layout.AlignAllLeading, Leading, false},
	{layout.AlignAllTrailing, Trailing, false},
	{layout.AlignAllCenterX, CenterX, false},
	{layout.AlignAllTop, Top, true},
	{layout.AlignAllBottom, Bottom, true},
	{layout.AlignAllCenterY, CenterY, true},
	{layout.AlignAllBaseline, LastBaseline, true},
	{layout.AlignAllLastBaseline, LastBaseline, true},
	{layout.AlignAllFirstBaseline, FirstBaseline, true},
}

// alignments lines up consecutive views of the format. A flag aligning along
// the format's own axis cannot be satisfied and is rejected.
func (f *format) alignments(src string, options layout.FormatOptions) ([]Constraint, error) {
	if len(f.views) < 2 {
		return nil, nil
	}
	var out []Constraint
	seen := make(map[Attribute]bool)
	for _, a := range alignFlags {
		if !options.Has(a.flag) || seen[a.attr] {
			continue
		}
		seen[a.attr] = true
		// A horizontal format aligns vertical attributes and vice versa.
		if a.vertical != (f.axis == layout.Horizontal) {
			return nil, &ParseError{Format: src, Msg: "alignment " + a.attr.String() + " is along the format axis"}
		}
		for i := 1; i < len(f.views); i++ {
			out = append(out, Constraint{
				First: f.views[i].name, FirstAttr: a.attr, Relation: layout.Equal,
				Second: f.views[i-1].name, SecondAttr: a.attr, Multiplier: 1,
				Priority: Required,
			})
		}
	}
	return out, nil
}
