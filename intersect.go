package grazil

import (
	"math"
	"sort"
)

// maxSubdivisions bounds the depth of the curve×curve subdivision. With the
// package tolerance and geometry of ordinary scale the recursion terminates
// much earlier; the bound guards against pathological inputs.
const maxSubdivisions = 48

// leafSize is the control-box extent below which a subdivided curve is
// approximated by its chord. It is a fraction of [Epsilon] so that duplicate
// crossings reported from adjacent leaves stay within the dedup distance.
const leafSize = Epsilon / 8

// Intersection is one crossing point between two paths, as reported by
// [Path.IntersectionsWith]. Segment is the element index of the receiver's
// segment containing the crossing, and T is the time parameter along that
// segment, 0 at the segment start.
type Intersection struct {
	Segment int
	T       float64
	Point   Point
}

// IntersectionsWith returns every point where p crosses other, tagged with
// the receiver segment's element index and the time along that segment. The
// result is ordered by (segment, time), and crossings closer than [Epsilon]
// (in Manhattan distance) to their predecessor are dropped.
//
// The search prunes segment ranges whose bounding boxes do not overlap, so
// disjoint paths are rejected quickly. Line pairs are solved exactly;
// pairings involving curves are solved by recursive subdivision down to the
// package tolerance. Parallel and degenerate line pairs report no
// intersection.
func (p *Path) IntersectionsWith(other *Path) []Intersection {
	segs1 := p.Segments()
	segs2 := other.Segments()
	if len(segs1) == 0 || len(segs2) == 0 {
		return nil
	}
	t1 := newSegmentTree(segs1)
	t2 := newSegmentTree(segs2)
	var found []Intersection
	intersectRanges(t1, t2, 0, len(segs1)-1, 0, len(segs2)-1, &found)

	sort.Slice(found, func(i, j int) bool {
		if found[i].Segment != found[j].Segment {
			return found[i].Segment < found[j].Segment
		}
		return found[i].T < found[j].T
	})
	out := found[:0]
	for _, is := range found {
		if len(out) > 0 && is.Point.ManhattanDistance(out[len(out)-1].Point) < epsilon {
			continue
		}
		out = append(out, is)
	}
	return out
}

// segmentTree memoizes bounding boxes over contiguous index ranges of a
// segment list. Boxes for ranges are computed once by splitting at the
// midpoint and unioning the two halves, forming an implicit balanced
// bounding-volume hierarchy with O(n) boxes.
type segmentTree struct {
	segs  []Segment
	boxes map[[2]int]Rect
}

func newSegmentTree(segs []Segment) *segmentTree {
	return &segmentTree{
		segs:  segs,
		boxes: make(map[[2]int]Rect),
	}
}

// rangeBox returns the bounding box of segments i through j, inclusive.
func (t *segmentTree) rangeBox(i, j int) Rect {
	if i == j {
		return t.segs[i].BoundingBox()
	}
	key := [2]int{i, j}
	if box, ok := t.boxes[key]; ok {
		return box
	}
	mid := (i + j) / 2
	box := t.rangeBox(i, mid).Union(t.rangeBox(mid+1, j))
	t.boxes[key] = box
	return box
}

// intersectRanges recursively searches the segment ranges [i1, j1] of t1 and
// [i2, j2] of t2 for crossings, pruning on bounding-box overlap.
func intersectRanges(t1, t2 *segmentTree, i1, j1, i2, j2 int, out *[]Intersection) {
	if !t1.rangeBox(i1, j1).Inflate(epsilon, epsilon).Overlaps(t2.rangeBox(i2, j2)) {
		return
	}
	single1 := i1 == j1
	single2 := i2 == j2
	switch {
	case single1 && single2:
		intersectSegments(t1.segs[i1], t2.segs[i2], out)
	case single1:
		mid2 := (i2 + j2) / 2
		intersectRanges(t1, t2, i1, j1, i2, mid2, out)
		intersectRanges(t1, t2, i1, j1, mid2+1, j2, out)
	case single2:
		mid1 := (i1 + j1) / 2
		intersectRanges(t1, t2, i1, mid1, i2, j2, out)
		intersectRanges(t1, t2, mid1+1, j1, i2, j2, out)
	default:
		mid1 := (i1 + j1) / 2
		mid2 := (i2 + j2) / 2
		intersectRanges(t1, t2, i1, mid1, i2, mid2, out)
		intersectRanges(t1, t2, i1, mid1, mid2+1, j2, out)
		intersectRanges(t1, t2, mid1+1, j1, i2, mid2, out)
		intersectRanges(t1, t2, mid1+1, j1, mid2+1, j2, out)
	}
}

// intersectSegments dispatches a single segment pair. Line pairs are solved
// in closed form; any pairing involving a curve goes through recursive
// subdivision of the degree-promoted cubics.
func intersectSegments(s1, s2 Segment, out *[]Intersection) {
	if s1.Kind == LineToKind && s2.Kind == LineToKind {
		t, pt, ok := lineLineIntersection(s1.From, s1.To, s2.From, s2.To)
		if ok {
			*out = append(*out, Intersection{Segment: s1.Element, T: t, Point: pt})
		}
		return
	}
	curveIntersections(s1.Cubic(), s2.Cubic(), 0, 1, 0, s1.Element, out)
}

// lineLineIntersection solves the 2×2 linear system of the two segment
// parameterizations with Cramer's rule. It reports the time on the first
// segment and the crossing point. A determinant below the squared tolerance
// means the segments are parallel or degenerate, in which case no
// intersection is reported.
func lineLineIntersection(p1, p2, q1, q2 Point) (float64, Point, bool) {
	d1 := p2.Sub(p1)
	d2 := q2.Sub(q1)
	det := d1.Cross(d2)
	if math.Abs(det) < epsilon*epsilon {
		return 0, Point{}, false
	}
	w := q1.Sub(p1)
	t := w.Cross(d2) / det
	u := w.Cross(d1) / det
	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return 0, Point{}, false
	}
	return t, p1.Translate(d1.Mul(t)), true
}

// chordIntersection intersects the chords of two subdivided curves. The
// chords are tolerance-sized, so parallelism is judged relative to their
// lengths rather than with the absolute cutoff of [lineLineIntersection].
func chordIntersection(p1, p2, q1, q2 Point) (float64, Point, bool) {
	d1 := p2.Sub(p1)
	d2 := q2.Sub(q1)
	det := d1.Cross(d2)
	if math.Abs(det) < epsilon*d1.Hypot()*d2.Hypot() {
		return 0, Point{}, false
	}
	w := q1.Sub(p1)
	t := w.Cross(d2) / det
	u := w.Cross(d1) / det
	if t < -epsilon || t > 1+epsilon || u < -epsilon || u > 1+epsilon {
		return 0, Point{}, false
	}
	return t, p1.Translate(d1.Mul(t)), true
}

// curveIntersections finds crossings between two cubics by simultaneous
// de Casteljau bisection. [t0, t1] is the parameter interval of c1 within
// the receiver's original segment. A curve whose control box has shrunk
// below the leaf size in both extents is approximated by the chord between
// its endpoints; once both curves are that small, the chords are
// intersected and the solved time is mapped back into [t0, t1].
func curveIntersections(c1, c2 CubicBez, t0, t1 float64, depth int, el int, out *[]Intersection) {
	box1 := c1.ControlBox()
	box2 := c2.ControlBox()
	if !box1.Inflate(epsilon, epsilon).Overlaps(box2) {
		return
	}
	small1 := box1.Width() < leafSize && box1.Height() < leafSize
	small2 := box2.Width() < leafSize && box2.Height() < leafSize
	if depth >= maxSubdivisions {
		small1, small2 = true, true
	}
	switch {
	case small1 && small2:
		if s, pt, ok := chordIntersection(c1.P0, c1.P3, c2.P0, c2.P3); ok {
			*out = append(*out, Intersection{
				Segment: el,
				T:       t0 + s*(t1-t0),
				Point:   pt,
			})
		}
	case small1:
		a2, b2 := c2.Subdivide()
		curveIntersections(c1, a2, t0, t1, depth+1, el, out)
		curveIntersections(c1, b2, t0, t1, depth+1, el, out)
	case small2:
		tm := 0.5 * (t0 + t1)
		a1, b1 := c1.Subdivide()
		curveIntersections(a1, c2, t0, tm, depth+1, el, out)
		curveIntersections(b1, c2, tm, t1, depth+1, el, out)
	default:
		tm := 0.5 * (t0 + t1)
		a1, b1 := c1.Subdivide()
		a2, b2 := c2.Subdivide()
		curveIntersections(a1, a2, t0, tm, depth+1, el, out)
		curveIntersections(a1, b2, t0, tm, depth+1, el, out)
		curveIntersections(b1, a2, tm, t1, depth+1, el, out)
		curveIntersections(b1, b2, tm, t1, depth+1, el, out)
	}
}
