package grazil

// Reverse returns a new path traversing every subpath of p in reverse point
// order. Open and closed subpaths stay open and closed, and curve shapes are
// preserved by swapping their control points. A degenerate subpath
// consisting only of a moveto is preserved as a lone moveto. Deferred
// operands are evaluated for the construction; the result is fully concrete.
func (p *Path) Reverse() *Path {
	out := NewPath()
	n := len(p.els)
	i := 0
	for i < n {
		var start Point
		haveStart := false
		if p.els[i].Kind == MoveToKind {
			start = p.els[i].P0.Value()
			haveStart = true
			i++
		}

		var segs []Segment
		cur := start
		haveCur := haveStart
		closed := false
		for i < n && p.els[i].Kind != MoveToKind {
			el := &p.els[i]
			switch el.Kind {
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
				closed = true
				if haveCur && haveStart && cur.ManhattanDistance(start) > epsilon {
					segs = append(segs, lineSegment(cur, start, i))
				}
				cur = start
				haveCur = haveStart
			}
			i++
		}
		reverseSubpathInto(out, start, haveStart, segs, closed)
	}
	return out
}

// reverseSubpathInto emits the reversed form of one subpath: a moveto to the
// subpath's last point, then the segments walked back to front, each
// targeting its own start point, with curve control points swapped.
func reverseSubpathInto(out *Path, start Point, haveStart bool, segs []Segment, closed bool) {
	if len(segs) == 0 {
		if haveStart {
			out.MoveTo(start)
			if closed {
				out.Close()
			}
		}
		return
	}
	out.MoveTo(segs[len(segs)-1].To)
	for k := len(segs) - 1; k >= 0; k-- {
		seg := segs[k]
		switch seg.Kind {
		case LineToKind:
			out.LineTo(seg.From)
		case CurveToKind:
			out.CurveTo(seg.C2, seg.C1, seg.From)
		}
	}
	if closed {
		out.Close()
	}
}
