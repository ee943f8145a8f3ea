package grazil

import "fmt"

// Provider lazily yields a point. It is invoked every time a deferred
// operand is evaluated and exactly once when the operand is resolved; a
// provider with side effects fires once per evaluation.
type Provider func() Point

// Operand is a path element operand: either a concrete point or a deferred
// point whose position is produced by a [Provider] on demand.
type Operand struct {
	pt       Point
	provider Provider
}

// Concrete returns an operand holding the given point.
func Concrete(pt Point) Operand {
	return Operand{pt: pt}
}

// Deferred returns an operand whose point is produced by p.
func Deferred(p Provider) Operand {
	return Operand{provider: p}
}

// IsDeferred reports whether the operand is still backed by a provider.
func (o Operand) IsDeferred() bool {
	return o.provider != nil
}

// Value evaluates the operand without resolving it. A deferred operand
// invokes its provider on every call.
func (o Operand) Value() Point {
	if o.provider != nil {
		return o.provider()
	}
	return o.pt
}

// Resolve makes the operand rigid: a deferred operand invokes its provider
// once and permanently stores the result. Resolving a concrete operand is a
// no-op.
func (o *Operand) Resolve() Point {
	if o.provider != nil {
		o.pt = o.provider()
		o.provider = nil
	}
	return o.pt
}

// ElementKind enumerates the commands of the path grammar.
type ElementKind uint8

const (
	// Start a new subpath at the operand point.
	MoveToKind ElementKind = iota + 1
	// Draw a line from the current point to the operand point.
	LineToKind
	// Draw a cubic Bézier from the current point using two control points
	// and an end point.
	CurveToKind
	// Close the subpath with a straight segment back to its start.
	ClosePathKind
)

// operandCount returns the arity of the command.
func (k ElementKind) operandCount() int {
	switch k {
	case MoveToKind, LineToKind:
		return 1
	case CurveToKind:
		return 3
	case ClosePathKind:
		return 0
	default:
		panic(fmt.Sprintf("invalid element kind %d", k))
	}
}

func (k ElementKind) String() string {
	switch k {
	case MoveToKind:
		return "moveto"
	case LineToKind:
		return "lineto"
	case CurveToKind:
		return "curveto"
	case ClosePathKind:
		return "closepath"
	default:
		return fmt.Sprintf("ElementKind(%d)", k)
	}
}

// kindForToken maps a textual command token to its kind. Only the closed
// command set is recognized.
func kindForToken(tok string) (ElementKind, bool) {
	switch tok {
	case "moveto":
		return MoveToKind, true
	case "lineto":
		return LineToKind, true
	case "curveto":
		return CurveToKind, true
	case "closepath":
		return ClosePathKind, true
	default:
		return 0, false
	}
}

// PathElement is one command of a path together with its operands. MoveTo
// and LineTo use P0; CurveTo uses P0 and P1 as control points and P2 as the
// end point; ClosePath uses none.
type PathElement struct {
	Kind ElementKind
	P0   Operand
	P1   Operand
	P2   Operand
}

// MoveTo returns a moveto element targeting pt.
func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: Concrete(pt)}
}

// LineTo returns a lineto element targeting pt.
func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: Concrete(pt)}
}

// CurveTo returns a curveto element with control points c1 and c2 and end
// point end.
func CurveTo(c1, c2, end Point) PathElement {
	return PathElement{
		Kind: CurveToKind,
		P0:   Concrete(c1),
		P1:   Concrete(c2),
		P2:   Concrete(end),
	}
}

// ClosePath returns a closepath element.
func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// newElement assembles an element of the given kind from validated operands.
// The operand count must match the kind's arity.
func newElement(kind ElementKind, ops []Operand) PathElement {
	el := PathElement{Kind: kind}
	switch len(ops) {
	case 3:
		el.P2 = ops[2]
		fallthrough
	case 2:
		el.P1 = ops[1]
		fallthrough
	case 1:
		el.P0 = ops[0]
	}
	return el
}

// operands returns pointers to the element's operands, in order.
func (el *PathElement) operands() []*Operand {
	switch el.Kind.operandCount() {
	case 0:
		return nil
	case 1:
		return []*Operand{&el.P0}
	default:
		return []*Operand{&el.P0, &el.P1, &el.P2}
	}
}

// endOperand returns the operand holding the element's end point, or nil
// for closepath.
func (el *PathElement) endOperand() *Operand {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return &el.P0
	case CurveToKind:
		return &el.P2
	default:
		return nil
	}
}

// EndPoint returns the element's end point, evaluating a deferred operand
// without resolving it. The second return value is false for closepath,
// which has no end point of its own.
func (el PathElement) EndPoint() (Point, bool) {
	op := el.endOperand()
	if op == nil {
		return Point{}, false
	}
	return op.Value(), true
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s %s", el.Kind, el.P0.Value())
	case CurveToKind:
		return fmt.Sprintf("%s %s %s %s", el.Kind, el.P0.Value(), el.P1.Value(), el.P2.Value())
	default:
		return el.Kind.String()
	}
}
