package grazil

import "math"

// quarterArc is the largest sweep, in degrees, that a single emitted Bézier
// segment may cover.
const quarterArc = 90.0

func radians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// lastPoint returns the path's current point: the end point of its last
// element, or the enclosing subpath's start if the path ends with a
// closepath. It fails with a [GeometryError] for an empty path.
func (p *Path) lastPoint() (Point, error) {
	if len(p.els) == 0 {
		return Point{}, geometryf("path has no current point to append an arc to")
	}
	last := len(p.els) - 1
	if op := p.els[last].endOperand(); op != nil {
		return op.Resolve(), nil
	}
	return p.subpathStartBefore(last)
}

// AppendArc appends one or more curveto elements approximating the circular
// arc from startAngle to endAngle (in degrees) with the given radius. The
// circle's center is placed so that the path's current point lies at
// startAngle on it; a negative sweep (endAngle < startAngle) runs clockwise.
//
// The arc is built in the untransformed space of tr: the current point is
// mapped through the inverse of tr, the arc constructed, and every generated
// point mapped forward again, so the arc stays circular in the pre-transform
// space even when tr is not conformal. Pass [Identity] for no transform. The
// arc's final point is snapped exactly onto the arc's computed target to
// avoid rounding drift.
func (p *Path) AppendArc(startAngle, endAngle, radius float64, tr Affine) error {
	cur, err := p.lastPoint()
	if err != nil {
		return err
	}
	inv, err := tr.Invert()
	if err != nil {
		return err
	}
	start := cur.Transform(inv)
	center := start.Translate(VecFromAngle(radians(startAngle)).Mul(radius).Negate())
	target := center.Translate(VecFromAngle(radians(endAngle)).Mul(radius))
	p.appendArcSegments(center, radius, startAngle, endAngle, tr)
	p.snapLastPoint(target.Transform(tr))
	return nil
}

// AppendArcToWithRadius appends a circular arc of the given radius from the
// path's current point to target. The center is inferred from the two
// points by the perpendicular-bisector construction; of the two candidate
// centers, the one producing the minor arc in the requested direction is
// chosen. It fails with a [GeometryError] when the radius is smaller than
// half the chord length, or when the chord is degenerate.
//
// See [Path.AppendArc] for the role of tr; pass [Identity] for none.
func (p *Path) AppendArcToWithRadius(target Point, radius float64, clockwise bool, tr Affine) error {
	cur, err := p.lastPoint()
	if err != nil {
		return err
	}
	inv, err := tr.Invert()
	if err != nil {
		return err
	}
	from := cur.Transform(inv)
	to := target.Transform(inv)
	chord := to.Sub(from)
	halfChord := 0.5 * chord.Hypot()
	if halfChord < epsilon {
		return geometryf("arc endpoints %v and %v coincide", from, to)
	}
	if radius < halfChord-epsilon {
		return geometryf("arc radius %g is smaller than half the chord length %g", radius, halfChord)
	}
	rise := math.Sqrt(math.Max(radius*radius-halfChord*halfChord, 0))
	left := chord.Perp().Negate().Normalize()
	if clockwise {
		left = left.Negate()
	}
	center := from.Midpoint(to).Translate(left.Mul(rise))
	return p.appendArcAround(center, to, target, clockwise, tr)
}

// AppendArcToWithCenter appends a circular arc around the given center from
// the path's current point to target. The radius is inferred from the
// current point's distance to the center; the final point is snapped
// exactly onto target. It fails with a [GeometryError] when the current
// point coincides with the center.
//
// See [Path.AppendArc] for the role of tr; pass [Identity] for none.
func (p *Path) AppendArcToWithCenter(target Point, center Point, clockwise bool, tr Affine) error {
	cur, err := p.lastPoint()
	if err != nil {
		return err
	}
	inv, err := tr.Invert()
	if err != nil {
		return err
	}
	from := cur.Transform(inv)
	to := target.Transform(inv)
	ctr := center.Transform(inv)
	if from.Distance(ctr) < epsilon {
		return geometryf("arc center %v coincides with the current point", center)
	}
	return p.appendArcAround(ctr, to, target, clockwise, tr)
}

// appendArcAround emits the arc around center ending at the untransformed
// point to, snapping the final point to the exact (transformed) target.
func (p *Path) appendArcAround(center Point, to Point, target Point, clockwise bool, tr Affine) error {
	cur, err := p.lastPoint()
	if err != nil {
		return err
	}
	inv, err := tr.Invert()
	if err != nil {
		return err
	}
	from := cur.Transform(inv)
	radius := from.Sub(center).Hypot()
	a0 := from.Sub(center).Angle() * (180.0 / math.Pi)
	a1 := to.Sub(center).Angle() * (180.0 / math.Pi)
	if clockwise && a1 > a0 {
		a1 -= 360.0
	}
	if !clockwise && a1 < a0 {
		a1 += 360.0
	}
	p.appendArcSegments(center, radius, a0, a1, tr)
	p.snapLastPoint(target)
	return nil
}

// appendArcSegments emits curveto elements covering the sweep from a0 to a1
// degrees on the circle around center. Each segment spans at most a quarter
// turn; when slightly more than a quarter turn remains, a 60° segment is
// emitted instead so that no tiny trailing segment is produced. The
// control-point distance for a span Δ is tan(Δ/4)·4/3·radius.
func (p *Path) appendArcSegments(center Point, radius, a0, a1 float64, tr Affine) {
	remaining := a1 - a0
	for math.Abs(remaining) > epsilon {
		span := math.Copysign(math.Min(math.Abs(remaining), quarterArc), remaining)
		if math.Abs(remaining) > quarterArc && math.Abs(remaining)-quarterArc < quarterArc/3 {
			span = math.Copysign(quarterArc*2.0/3.0, remaining)
		}
		th0 := radians(a0)
		th1 := radians(a0 + span)
		arm := (4.0 / 3.0) * math.Tan(radians(span)/4.0) * radius
		from := center.Translate(VecFromAngle(th0).Mul(radius))
		to := center.Translate(VecFromAngle(th1).Mul(radius))
		c1 := from.Translate(VecFromAngle(th0).Perp().Negate().Mul(arm))
		c2 := to.Translate(VecFromAngle(th1).Perp().Negate().Mul(arm).Negate())
		p.CurveTo(c1.Transform(tr), c2.Transform(tr), to.Transform(tr))
		a0 += span
		remaining -= span
	}
}

// snapLastPoint pins the end point of the last emitted segment to pt.
func (p *Path) snapLastPoint(pt Point) {
	if len(p.els) == 0 {
		return
	}
	if op := p.els[len(p.els)-1].endOperand(); op != nil {
		*op = Concrete(pt)
	}
}
