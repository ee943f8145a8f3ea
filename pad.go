package grazil

import "math"

// Pad returns a new, fully resolved path that runs parallel to p at the
// given perpendicular distance, approximating one outline of a stroke of
// width 2×distance centered on p. The offset side of each subpath is chosen
// by its winding sign: the cumulative turning direction across consecutive
// edges, so that positively wound subpaths are offset consistently outward
// and negatively wound ones flip.
//
// The construction is exact only for polyline subpaths. Curved segments are
// approximated by offsetting two on-curve samples perpendicular to the local
// tangent and refitting the control points; sharp interior angles can
// produce self-intersecting or cusp artifacts, for which no fallback beyond
// the near-parallel-normals average is attempted.
//
// Pad fails with a [GeometryError] when distance is zero. The receiver is
// not modified.
func (p *Path) Pad(distance float64) (*Path, error) {
	if math.Abs(distance) < epsilon {
		return nil, geometryf("padding distance must be nonzero")
	}
	rigid := p.Clone()
	rigid.MakeRigid()

	out := NewPath()
	n := len(rigid.els)
	i := 0
	for i < n {
		var start Point
		haveStart := false
		if rigid.els[i].Kind == MoveToKind {
			start = rigid.els[i].P0.Value()
			haveStart = true
			i++
		}

		var segs []Segment
		cur := start
		haveCur := haveStart
		closed := false
		for i < n && rigid.els[i].Kind != MoveToKind {
			el := &rigid.els[i]
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
		if err := padSubpathInto(out, start, haveStart, segs, closed, distance); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// padSubpathInto offsets one subpath and appends the result to out.
func padSubpathInto(out *Path, start Point, haveStart bool, segs []Segment, closed bool, distance float64) error {
	if len(segs) == 0 {
		// A degenerate subpath has no edges to offset; it is kept as-is.
		if haveStart {
			out.MoveTo(start)
			if closed {
				out.Close()
			}
		}
		return nil
	}

	// Edge directions. Curves contribute their chord direction; their
	// curvature is handled by the per-segment refit below.
	dirs := make([]Vec2, len(segs))
	for k, seg := range segs {
		dirs[k] = seg.To.Sub(seg.From).Normalize()
	}

	// Winding sign from the cumulative turning direction.
	counter := 0
	turn := func(a, b Vec2) {
		cr := a.Cross(b)
		if cr > epsilon {
			counter++
		} else if cr < -epsilon {
			counter--
		}
	}
	for k := 0; k+1 < len(dirs); k++ {
		turn(dirs[k], dirs[k+1])
	}
	if closed {
		turn(dirs[len(dirs)-1], dirs[0])
	}
	off := distance
	if counter < 0 {
		off = -off
	}

	// Scaled edge normals.
	normals := make([]Vec2, len(segs))
	for k := range dirs {
		normals[k] = dirs[k].Perp().Mul(off)
	}

	// Offset vertices. Vertex k sits between edge k−1 and edge k; closed
	// subpaths wrap so that the first/last vertex pair is interior too.
	verts := make([]Point, len(segs)+1)
	verts[0] = segs[0].From
	for k, seg := range segs {
		verts[k+1] = seg.To
	}
	offset := make([]Point, len(verts))
	for k := range verts {
		in, outEdge := k-1, k
		if closed {
			if in < 0 {
				in = len(segs) - 1
			}
			if outEdge == len(segs) {
				outEdge = 0
			}
		} else {
			if in < 0 {
				offset[k] = verts[k].Translate(normals[0])
				continue
			}
			if outEdge == len(segs) {
				offset[k] = verts[k].Translate(normals[len(segs)-1])
				continue
			}
		}
		offset[k] = miterVertex(verts[k], dirs[in], normals[in], dirs[outEdge], normals[outEdge])
	}

	// Rebuild the subpath through the offset vertices.
	out.MoveTo(offset[0])
	for k, seg := range segs {
		if closed && seg.Kind == LineToKind && k == len(segs)-1 &&
			offset[k+1].ManhattanDistance(offset[0]) < epsilon {
			// The offset closing edge ends back at the offset start; the
			// trailing closepath draws it.
			break
		}
		switch seg.Kind {
		case LineToKind:
			out.LineTo(offset[k+1])
		case CurveToKind:
			cubic := seg.Cubic()
			s1, s2 := cubic.Eval(1.0/3.0), cubic.Eval(2.0/3.0)
			o1 := s1.Translate(cubic.Tangent(1.0 / 3.0).Perp().Normalize().Mul(off))
			o2 := s2.Translate(cubic.Tangent(2.0 / 3.0).Perp().Normalize().Mul(off))
			c1, c2, err := SupportsForPointsAtTime(offset[k], o1, 1.0/3.0, o2, 2.0/3.0, offset[k+1])
			if err != nil {
				return err
			}
			out.CurveTo(c1, c2, offset[k+1])
		}
	}
	if closed {
		out.Close()
	}
	return nil
}

// miterVertex computes the offset position of a vertex between two edges as
// the crossing of the two offset edge lines. When the edges are nearly
// parallel the crossing is ill-conditioned and the two offset normals are
// averaged instead.
func miterVertex(v Point, dIn, nIn, dOut, nOut Vec2) Point {
	det := dIn.Cross(dOut)
	if math.Abs(det) < epsilon {
		return v.Translate(nIn.Add(nOut).Mul(0.5))
	}
	s := nOut.Sub(nIn).Cross(dOut) / det
	return v.Translate(nIn).Translate(dIn.Mul(s))
}
