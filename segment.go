package grazil

// Segment is a self-contained portion of a path: a straight or cubic Bézier
// segment with an explicit start point. Unlike a [PathElement], a Segment
// always carries concrete geometry. Element is the index of the originating
// element in the path; for the implicit closing edge of a subpath it is the
// index of the closepath element.
type Segment struct {
	Kind ElementKind // LineToKind or CurveToKind
	From Point
	C1   Point
	C2   Point
	To   Point

	Element int
}

// lineSegment returns a straight segment.
func lineSegment(from, to Point, el int) Segment {
	return Segment{Kind: LineToKind, From: from, To: to, Element: el}
}

// Cubic returns the segment as a cubic Bézier, promoting straight segments
// to degree 3 with evenly spaced control points.
func (s Segment) Cubic() CubicBez {
	if s.Kind == LineToKind {
		return LineAsCubic(s.From, s.To)
	}
	return CubicBez{s.From, s.C1, s.C2, s.To}
}

// Eval evaluates the segment at parameter t, 0 at the segment start.
func (s Segment) Eval(t float64) Point {
	if s.Kind == LineToKind {
		return s.From.MoveTowards(s.To, t)
	}
	return s.Cubic().Eval(t)
}

// BoundingBox returns the segment's axis-aligned bounding box. For curves
// the control points are included, over-approximating the true extent.
func (s Segment) BoundingBox() Rect {
	box := NewRectFromPoints(s.From, s.To)
	if s.Kind == CurveToKind {
		box = box.UnionPoint(s.C1).UnionPoint(s.C2)
	}
	return box
}

// Segments flattens the path into a list of drawable segments. A closepath
// becomes a synthetic straight segment back to the subpath's start, unless
// that segment would be degenerate. Deferred operands are evaluated for the
// scan but not resolved. Elements with no usable start point (a lineto or
// curveto before any moveto) only establish the current point.
func (p *Path) Segments() []Segment {
	var segs []Segment
	var cur, start Point
	var haveCur, haveStart bool
	for i := range p.els {
		el := &p.els[i]
		switch el.Kind {
		case MoveToKind:
			cur = el.P0.Value()
			start = cur
			haveCur = true
			haveStart = true
		case LineToKind:
			to := el.P0.Value()
			if haveCur {
				segs = append(segs, lineSegment(cur, to, i))
			} else {
				start = to
				haveStart = true
			}
			cur = to
			haveCur = true
		case CurveToKind:
			end := el.P2.Value()
			if haveCur {
				segs = append(segs, Segment{
					Kind:    CurveToKind,
					From:    cur,
					C1:      el.P0.Value(),
					C2:      el.P1.Value(),
					To:      end,
					Element: i,
				})
			} else {
				start = end
				haveStart = true
			}
			cur = end
			haveCur = true
		case ClosePathKind:
			if haveCur && haveStart && cur.ManhattanDistance(start) > epsilon {
				segs = append(segs, lineSegment(cur, start, i))
			}
			if haveStart {
				cur = start
				haveCur = true
			}
		}
	}
	return segs
}
