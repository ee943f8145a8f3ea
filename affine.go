package grazil

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a positive X
// direction into positive Y. The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul composes two transforms; the result applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Apply transforms the point. It is shorthand for [Point.Transform].
func (aff Affine) Apply(pt Point) Point {
	return pt.Transform(aff)
}

// mat3 returns the transform as a column-major 3×3 matrix with an implicit
// (0, 0, 1) bottom row.
func (aff Affine) mat3() mgl64.Mat3 {
	return mgl64.Mat3{
		aff.N0, aff.N1, 0,
		aff.N2, aff.N3, 0,
		aff.N4, aff.N5, 1,
	}
}

// Determinant computes the determinant of the linear part of the transform.
func (aff Affine) Determinant() float64 {
	return aff.mat3().Det()
}

// Invert computes the inverse transform. It fails with a [GeometryError]
// when the transform is not invertible.
func (aff Affine) Invert() (Affine, error) {
	m := aff.mat3()
	if math.Abs(m.Det()) < epsilon*epsilon {
		return Affine{}, geometryf("transform %v is not invertible", aff.Coefficients())
	}
	inv := m.Inv()
	return Affine{inv[0], inv[1], inv[3], inv[4], inv[6], inv[7]}, nil
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// Translation returns the translation component of this affine
// transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) ||
		math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) ||
		math.IsNaN(aff.N5)
}
