package grazil

import (
	"errors"
	"testing"
)

func TestCutAtBeginningLine(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	if err := p.CutAtBeginning(1, 0.5); err != nil {
		t.Fatal(err)
	}
	rendered(t, " (5, 0) -- (10, 0)", p)
}

func TestCutAtBeginningLineAtZero(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	if err := p.CutAtBeginning(1, 0); err != nil {
		t.Fatal(err)
	}
	rendered(t, " (0, 0) -- (10, 0)", p)
}

func TestCutAtEndLine(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0, "lineto", 10, 10)
	if err := p.CutAtEnd(1, 0.5); err != nil {
		t.Fatal(err)
	}
	// Everything after the cut point is discarded.
	rendered(t, " (0, 0) -- (5, 0)", p)
}

func TestCutAtEndCurve(t *testing.T) {
	orig := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	p := NewPath()
	p.MoveTo(orig.P0)
	p.CurveTo(orig.P1, orig.P2, orig.P3)
	if err := p.CutAtEnd(1, 0.3); err != nil {
		t.Fatal(err)
	}

	segs := p.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	// The remaining curve covers [0, 0.3] of the original.
	ptNear(t, orig.Eval(0.3), segs[0].To, 1e-12)
	ptNear(t, orig.Eval(0.15), segs[0].Eval(0.5), 1e-12)
}

func TestCutAtBeginningCurve(t *testing.T) {
	orig := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	p := NewPath()
	p.MoveTo(orig.P0)
	p.CurveTo(orig.P1, orig.P2, orig.P3)
	if err := p.CutAtBeginning(1, 0.3); err != nil {
		t.Fatal(err)
	}

	segs := p.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	// The remaining curve covers [0.3, 1] of the original.
	ptNear(t, orig.Eval(0.3), segs[0].From, 1e-12)
	ptNear(t, orig.Eval(0.65), segs[0].Eval(0.5), 1e-12)
	ptNear(t, orig.P3, segs[0].To, 1e-12)
}

func TestCutAtEndClosePath(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0, "lineto", 10, 10, "lineto", 0, 10, "closepath")
	if err := p.CutAtEnd(4, 0.5); err != nil {
		t.Fatal(err)
	}
	// The closing edge is replaced by an explicit segment to the cut
	// point, leaving the subpath open.
	rendered(t, " (0, 0) -- (10, 0) -- (10, 10) -- (0, 10) -- (0, 5)", p)
}

func TestCutAtBeginningClosePath(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0, "lineto", 10, 10, "lineto", 0, 10, "closepath")
	if err := p.CutAtBeginning(4, 0.5); err != nil {
		t.Fatal(err)
	}
	rendered(t, " (0, 5) -- (0, 0)", p)
}

func TestCutIntersectionRoundTrip(t *testing.T) {
	// Cutting at a reported intersection leaves the path starting at the
	// crossing point.
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0, "lineto", 10, 10)
	q := mustPath(t, "moveto", 5, -5, "lineto", 5, 5)
	crossings := p.IntersectionsWith(q)
	if len(crossings) != 1 {
		t.Fatalf("got %d intersections, want 1", len(crossings))
	}
	if err := p.CutAtBeginning(crossings[0].Segment, crossings[0].T); err != nil {
		t.Fatal(err)
	}
	rendered(t, " (5, 0) -- (10, 0) -- (10, 10)", p)
}

func TestCutErrors(t *testing.T) {
	var gerr *GeometryError

	// A moveto produces no segment to cut.
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	if err := p.CutAtBeginning(0, 0.5); !errors.As(err, &gerr) {
		t.Errorf("cutting a moveto: got %v, want a GeometryError", err)
	}

	// A lineto with no preceding point cannot be cut.
	q := NewPath()
	q.LineTo(Pt(10, 0))
	q.LineTo(Pt(10, 10))
	if err := q.CutAtEnd(0, 0.5); !errors.As(err, &gerr) {
		t.Errorf("cutting without a current point: got %v, want a GeometryError", err)
	}

	// A closepath with no enclosing moveto cannot be cut.
	r := NewPath()
	r.LineTo(Pt(10, 0))
	r.Close()
	if err := r.CutAtEnd(1, 0.5); !errors.As(err, &gerr) {
		t.Errorf("cutting a closepath without a moveto: got %v, want a GeometryError", err)
	}
}
