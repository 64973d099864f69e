package geometry

import (
	"fmt"
	"math"
)

// TriangleType classifies a triangle by its side lengths.
type TriangleType uint8

const (
	Scalene TriangleType = iota
	Isosceles
	Equilateral
)

func (t TriangleType) String() string {
	switch t {
	case Equilateral:
		return "equilateral"
	case Isosceles:
		return "isosceles"
	default:
		return "scalene"
	}
}

// Triangle is defined by three pairwise distinct points.
type Triangle struct {
	a, b, c Point2
}

// NewTriangle returns the triangle abc.
func NewTriangle(a, b, c Point2) (Triangle, error) {
	if a.Equal(b) || b.Equal(c) || c.Equal(a) {
		return Triangle{}, newError("triangle", ErrDegenerateTriangle).
			WithContext("a", a).
			WithContext("b", b).
			WithContext("c", c)
	}
	return Triangle{a: a, b: b, c: c}, nil
}

func (t Triangle) A() Point2 { return t.a }
func (t Triangle) B() Point2 { return t.b }
func (t Triangle) C() Point2 { return t.c }

// Sides returns the lengths of ab, bc and ca.
func (t Triangle) Sides() (ab, bc, ca float64) {
	return t.a.DistanceTo(t.b), t.b.DistanceTo(t.c), t.c.DistanceTo(t.a)
}

func (t Triangle) Perimeter() float64 {
	ab, bc, ca := t.Sides()
	return ab + bc + ca
}

// Area uses Heron's formula on sides sorted a >= b >= c, in the grouping that
// keeps needle-like triangles accurate. Collinear points give 0.
func (t Triangle) Area() float64 {
	a, b, c := t.Sides()
	if b > a {
		a, b = b, a
	}
	if c > a {
		a, c = c, a
	}
	if c > b {
		b, c = c, b
	}
	product := (a + (b + c)) * (c - (a - b)) * (c + (a - b)) * (a + (b - c))
	if product < 0 {
		return 0
	}
	return 0.25 * math.Sqrt(product)
}

// Type classifies t by exact side equality.
func (t Triangle) Type() TriangleType { return t.Classify(Exact) }

// Classify compares side lengths within tol.
func (t Triangle) Classify(tol Tolerance) TriangleType {
	ab, bc, ca := t.Sides()
	first, second, third := tol.Equal(ab, bc), tol.Equal(bc, ca), tol.Equal(ca, ab)
	switch {
	case first && second && third:
		return Equilateral
	case first || second || third:
		return Isosceles
	default:
		return Scalene
	}
}

// Equal compares vertices in order.
func (t Triangle) Equal(o Triangle) bool {
	return t.a.Equal(o.a) && t.b.Equal(o.b) && t.c.Equal(o.c)
}

func (t Triangle) Hash() uint64 { return hashFloats(t.a.X, t.a.Y, t.b.X, t.b.Y, t.c.X, t.c.Y) }

func (t Triangle) String() string { return fmt.Sprintf("Triangle(%v, %v, %v)", t.a, t.b, t.c) }
