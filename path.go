package grazil

import (
	"strings"
)

// Path is an ordered sequence of path elements forming zero or more
// subpaths. A Path owns its element sequence exclusively; the mutating
// operations (cutting, padding, appending, resolving) never share backing
// storage with other paths.
type Path struct {
	els []PathElement
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// FromValues builds a path from an initializer sequence. Numbers are paired
// into points; strings must name a command from the closed set moveto,
// lineto, curveto, closepath; [Point], [Operand], and [Provider] values are
// accepted wherever a point is accepted. A point appearing while no command
// is awaiting operands is implicitly preceded by a lineto.
//
// FromValues fails with a [MalformedPathError] on an unknown command token,
// a command with outstanding operands, or an odd trailing number. On
// failure, no elements are stored.
func FromValues(vals ...any) (*Path, error) {
	var (
		els      []PathElement
		kind     ElementKind
		ops      []Operand
		expected int
		pending  float64
		haveNum  bool
	)

	addOperand := func(op Operand) {
		if expected == 0 {
			// A loose point continues the current subpath.
			kind = LineToKind
			expected = 1
			ops = ops[:0]
		}
		ops = append(ops, op)
		expected--
		if expected == 0 {
			els = append(els, newElement(kind, ops))
			ops = ops[:0]
		}
	}

	for _, val := range vals {
		switch v := val.(type) {
		case string:
			if haveNum {
				return nil, malformedf("dangling coordinate %g before command %q", pending, v)
			}
			if expected > 0 {
				return nil, malformedf("command %q expects %d more operand(s), got %q", kind, expected, v)
			}
			k, ok := kindForToken(v)
			if !ok {
				return nil, malformedf("unknown command %q", v)
			}
			if k.operandCount() == 0 {
				els = append(els, newElement(k, nil))
			} else {
				kind = k
				expected = k.operandCount()
				ops = ops[:0]
			}
		case float64:
			if haveNum {
				addOperand(Concrete(Pt(pending, v)))
				haveNum = false
			} else {
				pending = v
				haveNum = true
			}
		case int:
			if haveNum {
				addOperand(Concrete(Pt(pending, float64(v))))
				haveNum = false
			} else {
				pending = float64(v)
				haveNum = true
			}
		case Point:
			if haveNum {
				return nil, malformedf("dangling coordinate %g before point %v", pending, v)
			}
			addOperand(Concrete(v))
		case Operand:
			if haveNum {
				return nil, malformedf("dangling coordinate %g before operand", pending)
			}
			addOperand(v)
		case Provider:
			if haveNum {
				return nil, malformedf("dangling coordinate %g before deferred point", pending)
			}
			addOperand(Deferred(v))
		case func() Point:
			if haveNum {
				return nil, malformedf("dangling coordinate %g before deferred point", pending)
			}
			addOperand(Deferred(v))
		default:
			return nil, malformedf("unsupported value of type %T", val)
		}
	}
	if expected > 0 {
		return nil, malformedf("command %q expects %d more operand(s) at end of input", kind, expected)
	}
	if haveNum {
		return nil, malformedf("odd trailing coordinate %g", pending)
	}
	return &Path{els: els}, nil
}

// Len returns the number of elements in the path.
func (p *Path) Len() int {
	return len(p.els)
}

// Elements returns a copy of the path's element sequence.
func (p *Path) Elements() []PathElement {
	els := make([]PathElement, len(p.els))
	copy(els, p.els)
	return els
}

// Element returns the element at index i.
func (p *Path) Element(i int) PathElement {
	return p.els[i]
}

// Push appends an element to the path.
func (p *Path) Push(el PathElement) {
	p.els = append(p.els, el)
}

// MoveTo appends a moveto element, starting a new subpath at pt.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo appends a lineto element targeting pt.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// CurveTo appends a curveto element with control points c1 and c2 and end
// point end.
func (p *Path) CurveTo(c1, c2, end Point) { p.Push(CurveTo(c1, c2, end)) }

// Close appends a closepath element, closing the current subpath.
func (p *Path) Close() { p.Push(ClosePath()) }

// MoveToDeferred appends a moveto element whose target is produced by pr.
func (p *Path) MoveToDeferred(pr Provider) {
	p.Push(PathElement{Kind: MoveToKind, P0: Deferred(pr)})
}

// LineToDeferred appends a lineto element whose target is produced by pr.
func (p *Path) LineToDeferred(pr Provider) {
	p.Push(PathElement{Kind: LineToKind, P0: Deferred(pr)})
}

// Append appends a copy of other's elements to p. Deferred operands keep
// sharing their providers.
func (p *Path) Append(other *Path) {
	p.els = append(p.els, other.els...)
}

// Clone returns an independent copy of the path. Concrete points are
// deep-copied; deferred operands share the same provider, so resolving one
// copy does not resolve the other, but a provider's side effect fires once
// per evaluation regardless of how many clones evaluate it.
func (p *Path) Clone() *Path {
	els := make([]PathElement, len(p.els))
	copy(els, p.els)
	return &Path{els: els}
}

// MakeRigid resolves every deferred operand in place by invoking its
// provider and storing the result. It is idempotent: operands that are
// already concrete are left alone.
func (p *Path) MakeRigid() {
	for i := range p.els {
		for _, op := range p.els[i].operands() {
			op.Resolve()
		}
	}
}

// ApplyTransform applies the affine transform to every concrete operand in
// place. Deferred operands are left untouched; resolve the path first if the
// deferred geometry must move with the rest.
func (p *Path) ApplyTransform(aff Affine) {
	for i := range p.els {
		for _, op := range p.els[i].operands() {
			if !op.IsDeferred() {
				op.pt = op.pt.Transform(aff)
			}
		}
	}
}

// Shift translates every concrete operand by (dx, dy) in place. Deferred
// operands are left untouched.
func (p *Path) Shift(dx, dy float64) {
	for i := range p.els {
		for _, op := range p.els[i].operands() {
			if !op.IsDeferred() {
				op.pt = op.pt.Translate(Vec(dx, dy))
			}
		}
	}
}

// BoundingBox returns the bounding box over every operand point of the
// path, control points included, so the result over-approximates the true
// extent of curves. Deferred operands are evaluated for the scan but not
// resolved. An empty path yields the zero rectangle.
func (p *Path) BoundingBox() Rect {
	var bbox Rect
	first := true
	for i := range p.els {
		for _, op := range p.els[i].operands() {
			pt := op.Value()
			if first {
				first = false
				bbox = NewRectFromPoints(pt, pt)
			} else {
				bbox = bbox.UnionPoint(pt)
			}
		}
	}
	return bbox
}

// String renders the path in the line-drawing mini-language: a moveto
// renders as " <point>", a lineto as " -- <point>", a curveto as
// " .. controls <c1> and <c2> .. <end>", and a closepath as " -- cycle".
// Deferred operands are evaluated for display but not resolved.
func (p *Path) String() string {
	var sb strings.Builder
	for i := range p.els {
		el := &p.els[i]
		switch el.Kind {
		case MoveToKind:
			sb.WriteString(" ")
			sb.WriteString(el.P0.Value().String())
		case LineToKind:
			sb.WriteString(" -- ")
			sb.WriteString(el.P0.Value().String())
		case CurveToKind:
			sb.WriteString(" .. controls ")
			sb.WriteString(el.P0.Value().String())
			sb.WriteString(" and ")
			sb.WriteString(el.P1.Value().String())
			sb.WriteString(" .. ")
			sb.WriteString(el.P2.Value().String())
		case ClosePathKind:
			sb.WriteString(" -- cycle")
		}
	}
	return sb.String()
}

// currentPointBefore returns the end point of the element immediately
// preceding index i, resolving it if deferred. It fails with a
// [GeometryError] when no such point exists.
func (p *Path) currentPointBefore(i int) (Point, error) {
	if i == 0 {
		return Point{}, geometryf("element %d has no preceding point", i)
	}
	op := p.els[i-1].endOperand()
	if op == nil {
		return Point{}, geometryf("element %d is not preceded by a resolvable point", i)
	}
	return op.Resolve(), nil
}

// subpathStartBefore returns the target of the moveto that opens the
// subpath containing element i. It fails with a [GeometryError] when no
// enclosing moveto exists.
func (p *Path) subpathStartBefore(i int) (Point, error) {
	for j := i - 1; j >= 0; j-- {
		if p.els[j].Kind == MoveToKind {
			return p.els[j].P0.Resolve(), nil
		}
	}
	return Point{}, geometryf("element %d has no enclosing moveto", i)
}
