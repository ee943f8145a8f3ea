package grazil

import (
	"math"
	"testing"
)

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		from, to Point
		t        float64
		want     Point
	}{
		{Pt(0, 0), Pt(10, 0), 0.5, Pt(5, 0)},
		{Pt(0, 0), Pt(10, 0), 0, Pt(0, 0)},
		{Pt(0, 0), Pt(10, 0), 1, Pt(10, 0)},
		// Not clamped: extrapolation is allowed in both directions.
		{Pt(0, 0), Pt(10, 0), 2, Pt(20, 0)},
		{Pt(0, 0), Pt(10, 0), -1, Pt(-10, 0)},
		{Pt(2, 2), Pt(4, 6), 0.25, Pt(2.5, 3)},
	}
	for _, tc := range tests {
		diff(t, tc.want, tc.from.MoveTowards(tc.to, tc.t))
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	// The zero vector has no direction and stays put.
	diff(t, Vec(0, 0), Vec(0, 0).Normalize())
}

func TestNormalize(t *testing.T) {
	v := Vec(3, 4).Normalize()
	near(t, 1, v.Hypot(), 1e-12)
	near(t, 0.6, v.X, 1e-12)
	near(t, 0.8, v.Y, 1e-12)
}

func TestPerp(t *testing.T) {
	diff(t, Vec(0, -1), Vec(1, 0).Perp())
	near(t, 0, Vec(3, 7).Dot(Vec(3, 7).Perp()), 1e-12)
}

func TestManhattanDistance(t *testing.T) {
	near(t, 7, Pt(1, 2).ManhattanDistance(Pt(4, -2)), 1e-12)
}

func TestVecFromAngle(t *testing.T) {
	ptNear(t, Pt(0, 1), Point(VecFromAngle(math.Pi/2)), 1e-12)
	ptNear(t, Pt(-1, 0), Point(VecFromAngle(math.Pi)), 1e-12)
}

func TestPointString(t *testing.T) {
	if got := Pt(5, 0).String(); got != "(5, 0)" {
		t.Errorf("got %q", got)
	}
	if got := Pt(1.5, -2.25).String(); got != "(1.5, -2.25)" {
		t.Errorf("got %q", got)
	}
}
