package grazil

// CutAtBeginning discards everything before the point at parameter t on the
// segment produced by element i, and splices the path in place so that it
// starts exactly at the interpolated point. For a lineto the cut point is
// the linear interpolation between the segment's endpoints; for a curveto
// the remaining sub-curve over [t, 1] is produced by de Casteljau
// subdivision; for a closepath the implicit closing edge is treated as a
// straight line back to the subpath's start and replaced by an explicit
// segment from the cut point.
//
// It fails with a [GeometryError] when the element before i holds no
// resolvable point, or when a closepath cut has no enclosing moveto.
func (p *Path) CutAtBeginning(i int, t float64) error {
	el := &p.els[i]
	var head []PathElement
	switch el.Kind {
	case LineToKind:
		from, err := p.currentPointBefore(i)
		if err != nil {
			return err
		}
		to := el.P0.Resolve()
		head = []PathElement{MoveTo(from.MoveTowards(to, t)), LineTo(to)}
	case CurveToKind:
		from, err := p.currentPointBefore(i)
		if err != nil {
			return err
		}
		c := CubicBez{from, el.P0.Resolve(), el.P1.Resolve(), el.P2.Resolve()}
		_, tail := c.SplitAt(t)
		head = []PathElement{MoveTo(tail.P0), CurveTo(tail.P1, tail.P2, tail.P3)}
	case ClosePathKind:
		from, err := p.currentPointBefore(i)
		if err != nil {
			return err
		}
		start, err := p.subpathStartBefore(i)
		if err != nil {
			return err
		}
		head = []PathElement{MoveTo(from.MoveTowards(start, t)), LineTo(start)}
	default:
		return geometryf("cannot cut %s element %d", el.Kind, i)
	}

	// Build the new sequence first, then swap it in.
	els := make([]PathElement, 0, len(head)+len(p.els)-i-1)
	els = append(els, head...)
	els = append(els, p.els[i+1:]...)
	p.els = els
	return nil
}

// CutAtEnd discards everything after the point at parameter t on the
// segment produced by element i, and splices the path in place so that it
// ends exactly at the interpolated point. Cutting a closepath replaces the
// closing behavior with an explicit straight segment to the cut point,
// leaving the subpath open.
//
// It fails with a [GeometryError] under the same conditions as
// [Path.CutAtBeginning].
func (p *Path) CutAtEnd(i int, t float64) error {
	el := &p.els[i]
	var tail PathElement
	switch el.Kind {
	case LineToKind:
		from, err := p.currentPointBefore(i)
		if err != nil {
			return err
		}
		to := el.P0.Resolve()
		tail = LineTo(from.MoveTowards(to, t))
	case CurveToKind:
		from, err := p.currentPointBefore(i)
		if err != nil {
			return err
		}
		c := CubicBez{from, el.P0.Resolve(), el.P1.Resolve(), el.P2.Resolve()}
		head, _ := c.SplitAt(t)
		tail = CurveTo(head.P1, head.P2, head.P3)
	case ClosePathKind:
		from, err := p.currentPointBefore(i)
		if err != nil {
			return err
		}
		start, err := p.subpathStartBefore(i)
		if err != nil {
			return err
		}
		tail = LineTo(from.MoveTowards(start, t))
	default:
		return geometryf("cannot cut %s element %d", el.Kind, i)
	}

	els := make([]PathElement, 0, i+1)
	els = append(els, p.els[:i]...)
	els = append(els, tail)
	p.els = els
	return nil
}
