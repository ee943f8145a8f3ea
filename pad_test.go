package grazil

import (
	"errors"
	"testing"
)

func TestPadOpenLine(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	padded, err := p.Pad(2)
	if err != nil {
		t.Fatal(err)
	}
	// A single edge is offset parallel along its normal.
	rendered(t, " (0, -2) -- (10, -2)", padded)
}

func TestPadSquare(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0, "lineto", 10, 10, "lineto", 0, 10, "closepath")
	padded, err := p.Pad(1)
	if err != nil {
		t.Fatal(err)
	}
	rendered(t, " (-1, -1) -- (11, -1) -- (11, 11) -- (-1, 11) -- cycle", padded)
}

func TestPadSquareWindingInvariant(t *testing.T) {
	// The offset side follows the winding sign, so both traversal
	// directions grow the square outward.
	ccw := mustPath(t, "moveto", 0, 0, "lineto", 10, 0, "lineto", 10, 10, "lineto", 0, 10, "closepath")
	cw := mustPath(t, "moveto", 0, 0, "lineto", 0, 10, "lineto", 10, 10, "lineto", 10, 0, "closepath")
	for _, p := range []*Path{ccw, cw} {
		padded, err := p.Pad(1)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, Rect{-1, -1, 11, 11}, padded.BoundingBox())
	}
}

func TestPadCurve(t *testing.T) {
	// A straight segment in curve form pads to the parallel at the same
	// distance.
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.CurveTo(Pt(10.0/3.0, 0), Pt(20.0/3.0, 0), Pt(10, 0))
	padded, err := p.Pad(2)
	if err != nil {
		t.Fatal(err)
	}
	segs := padded.Segments()
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	for _, tm := range []float64{0, 0.25, 0.5, 0.75, 1} {
		ptNear(t, Pt(10*tm, -2), segs[0].Eval(tm), 1e-9)
	}
}

func TestPadZeroDistance(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	var gerr *GeometryError
	if _, err := p.Pad(0); !errors.As(err, &gerr) {
		t.Errorf("got %v, want a GeometryError", err)
	}
}

func TestPadDoesNotModifyReceiver(t *testing.T) {
	p := mustPath(t, "moveto", 0, 0, "lineto", 10, 0)
	if _, err := p.Pad(3); err != nil {
		t.Fatal(err)
	}
	rendered(t, " (0, 0) -- (10, 0)", p)
}

func TestPadResolvesDeferred(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineToDeferred(func() Point { return Pt(10, 0) })
	padded, err := p.Pad(2)
	if err != nil {
		t.Fatal(err)
	}
	rendered(t, " (0, -2) -- (10, -2)", padded)
	// The receiver's operand stays deferred; only the clone is resolved.
	if !p.Element(1).P0.IsDeferred() {
		t.Error("padding must not resolve the receiver")
	}
}
