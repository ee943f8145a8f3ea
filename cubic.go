package grazil

// CubicBez is a cubic Bézier segment with start point P0, control points P1
// and P2, and end point P3.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// LineAsCubic promotes the straight segment from..to to a degree-3 Bézier
// with evenly spaced control points.
func LineAsCubic(from, to Point) CubicBez {
	return CubicBez{
		P0: from,
		P1: from.MoveTowards(to, 1.0/3.0),
		P2: from.MoveTowards(to, 2.0/3.0),
		P3: to,
	}
}

// Eval evaluates the curve at parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Tangent returns the derivative of the curve at parameter t. The result is
// not normalized; it is the local tangent direction scaled by speed.
func (c CubicBez) Tangent(t float64) Vec2 {
	mt := 1.0 - t
	d01 := c.P1.Sub(c.P0).Mul(3.0 * mt * mt)
	d12 := c.P2.Sub(c.P1).Mul(6.0 * mt * t)
	d23 := c.P3.Sub(c.P2).Mul(3.0 * t * t)
	return d01.Add(d12).Add(d23)
}

// SplitAt subdivides the curve at parameter t using de Casteljau's
// algorithm, returning the sub-curves covering [0, t] and [t, 1].
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	q0 := c.P0.MoveTowards(c.P1, t)
	q1 := c.P1.MoveTowards(c.P2, t)
	q2 := c.P2.MoveTowards(c.P3, t)
	r0 := q0.MoveTowards(q1, t)
	r1 := q1.MoveTowards(q2, t)
	s := r0.MoveTowards(r1, t)
	return CubicBez{c.P0, q0, r0, s}, CubicBez{s, r1, q2, c.P3}
}

// Subdivide subdivides the curve into halves.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.SplitAt(0.5)
}

// ControlBox returns the bounding box of the curve's control polygon. It
// encloses the curve but over-approximates its true extent.
func (c CubicBez) ControlBox() Rect {
	return NewRectFromPoints(c.P0, c.P3).
		UnionPoint(c.P1).
		UnionPoint(c.P2)
}

// Chord returns the straight segment between the curve's endpoints.
func (c CubicBez) Chord() (Point, Point) {
	return c.P0, c.P3
}

// SupportsForPointsAtTime reconstructs the two control points of a cubic
// Bézier from its endpoints p0 and p3 and two sampled on-curve points s1 and
// s2 at parameters t1 and t2. It solves the 2×2 linear system given by the
// Bernstein form of the curve; the solve fails with a [GeometryError] when
// the parameters are degenerate (equal, or at the curve's endpoints).
func SupportsForPointsAtTime(p0 Point, s1 Point, t1 float64, s2 Point, t2 float64, p3 Point) (Point, Point, error) {
	m1 := 1.0 - t1
	m2 := 1.0 - t2
	a1 := 3.0 * m1 * m1 * t1
	b1 := 3.0 * m1 * t1 * t1
	a2 := 3.0 * m2 * m2 * t2
	b2 := 3.0 * m2 * t2 * t2
	det := a1*b2 - a2*b1
	if det < epsilon*epsilon && det > -epsilon*epsilon {
		return Point{}, Point{}, geometryf("cannot reconstruct support points for parameters %g and %g", t1, t2)
	}
	r1 := Vec2(s1).Sub(Vec2(p0).Mul(m1 * m1 * m1)).Sub(Vec2(p3).Mul(t1 * t1 * t1))
	r2 := Vec2(s2).Sub(Vec2(p0).Mul(m2 * m2 * m2)).Sub(Vec2(p3).Mul(t2 * t2 * t2))
	c1 := r1.Mul(b2).Sub(r2.Mul(b1)).Div(det)
	c2 := r2.Mul(a1).Sub(r1.Mul(a2)).Div(det)
	return Point(c1), Point(c2), nil
}
