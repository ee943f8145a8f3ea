package grazil

import "testing"

func mustPath(t *testing.T, vals ...any) *Path {
	t.Helper()
	p, err := FromValues(vals...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestIntersectionsLines(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	q := mustPath(t, "moveto", 5, -5, "lineto", 5, 5)
	want := []Intersection{{Segment: 1, T: 0.5, Point: Pt(5, 0)}}
	diff(t, want, p.IntersectionsWith(q))
}

func TestIntersectionsDisjoint(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0, "lineto", 10, 10, "closepath")
	q := p.Clone()
	q.Shift(1000, 1000)
	if got := p.IntersectionsWith(q); len(got) != 0 {
		t.Errorf("got %v, want no intersections", got)
	}
}

func TestIntersectionsParallel(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	q := mustPath(t, "moveto", 0, 1, "lineto", 10, 1)
	if got := p.IntersectionsWith(q); len(got) != 0 {
		t.Errorf("got %v, want no intersections for parallel lines", got)
	}
}

func TestIntersectionsSquareAndLine(t *testing.T) {
	square := mustPath(t, "moveto", 0, 0, "lineto", 10, 0, "lineto", 10, 10, "lineto", 0, 10, "closepath")
	line := mustPath(t, "moveto", -5, 5, "lineto", 15, 5)
	want := []Intersection{
		{Segment: 2, T: 0.5, Point: Pt(10, 5)},
		// The second crossing lies on the implicit closing edge.
		{Segment: 4, T: 0.5, Point: Pt(0, 5)},
	}
	diff(t, want, square.IntersectionsWith(line))
}

func TestIntersectionsLineCurve(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	q := mustPath(t, "moveto", 5, -5, "curveto", 5, -2, 5, 2, 5, 5)
	got := p.IntersectionsWith(q)
	if len(got) != 1 {
		t.Fatalf("got %d intersections, want 1", len(got))
	}
	if got[0].Segment != 1 {
		t.Errorf("got segment %d, want 1", got[0].Segment)
	}
	near(t, 0.5, got[0].T, 1e-3)
	ptNear(t, Pt(5, 0), got[0].Point, 1e-3)
}

func TestIntersectionsCurves(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "curveto", 3, 3, 7, 7, 10, 10)
	q := mustPath(t, "moveto", 0, 10, "curveto", 3, 7, 7, 3, 10, 0)
	got := p.IntersectionsWith(q)
	if len(got) != 1 {
		t.Fatalf("got %d intersections, want 1", len(got))
	}
	near(t, 0.5, got[0].T, 1e-3)
	ptNear(t, Pt(5, 5), got[0].Point, 1e-3)
}

func TestIntersectionsDedup(t *testing.T) {
	// Both edges of the V touch the receiver at the same point; the
	// duplicate crossing is dropped.
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	q := mustPath(t, "moveto", 0, 5, "lineto", 5, 0, "lineto", 10, 5)
	got := p.IntersectionsWith(q)
	if len(got) != 1 {
		t.Fatalf("got %d intersections, want 1", len(got))
	}
	diff(t, Intersection{Segment: 1, T: 0.5, Point: Pt(5, 0)}, got[0])
}

func TestIntersectionsOrdering(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0, "lineto", 10, 10)
	q := mustPath(t, "moveto", 5, -1, "lineto", 11, 5)
	got := p.IntersectionsWith(q)
	if len(got) != 2 {
		t.Fatalf("got %d intersections, want 2", len(got))
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.Segment < prev.Segment || (cur.Segment == prev.Segment && cur.T < prev.T) {
			t.Errorf("intersections out of order: %v before %v", prev, cur)
		}
	}
}

func TestIntersectionsEmpty(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	if got := p.IntersectionsWith(NewPath()); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}
