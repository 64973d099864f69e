// Package geometry provides 2D and 3D value types (points, vectors, segments,
// rectangles, circles, triangles, polygons, cubes) and N-dimensional vectors,
// with construction, structural equality, arithmetic, and elementary
// predicates such as containment, intersection, area and perimeter.
//
// All types are values. Operations return new values; the only mutators are
// the explicitly named *InPlace methods.
package geometry

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the numeric types accepted by the generic constructors.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Epsilon is the smallest accepted rectangle dimension and scale factor.
const Epsilon = math.SmallestNonzeroFloat64

// Distance computes Euclidean distance between two 2D coordinates.
func Distance(x1, y1, x2, y2 float64) float64 { return math.Hypot(x2-x1, y2-y1) }

// Distance3 computes Euclidean distance between two 3D coordinates.
func Distance3(x1, y1, z1, x2, y2, z2 float64) float64 {
	dx, dy, dz := x2-x1, y2-y1, z2-z1
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Lerp linearly interpolates between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 { return a*(1-t) + b*t }

// NormalizeRange maps v from [lo, hi] onto [0, 1]. Values outside the range
// map outside [0, 1].
func NormalizeRange(v, lo, hi float64) (float64, error) {
	if hi == lo {
		return 0, newError("normalize range", ErrDivideByZero).
			WithContext("min", lo).
			WithContext("max", hi)
	}
	return (v - lo) / (hi - lo), nil
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
