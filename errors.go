package grazil

import "fmt"

// Epsilon is the package-wide geometric tolerance. Coordinates closer than
// Epsilon are considered equal, and determinants below it (or its square,
// for products of coordinates) are considered singular.
const Epsilon = 1e-6

const epsilon = Epsilon

// MalformedPathError reports an invalid path construction: an unknown
// command token, a command with a wrong number of operands, or an unpaired
// coordinate.
type MalformedPathError struct {
	Reason string
}

func (e *MalformedPathError) Error() string {
	return "malformed path: " + e.Reason
}

func malformedf(format string, args ...any) error {
	return &MalformedPathError{Reason: fmt.Sprintf(format, args...)}
}

// GeometryError reports an operation on degenerate or unsuitable geometry,
// such as inverting a singular transform, cutting a segment with no start
// point, or fitting an arc whose radius cannot reach the target.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string {
	return "geometry error: " + e.Reason
}

func geometryf(format string, args ...any) error {
	return &GeometryError{Reason: fmt.Sprintf(format, args...)}
}
