package geometry

import (
	"fmt"
	"math"
)

// Point2 is a position in the plane.
type Point2 struct{ X, Y float64 }

// Point3 is a position in space.
type Point3 struct{ X, Y, Z float64 }

var (
	Point2Zero = Point2{}
	Point2One  = Point2{1, 1}
	Point3Zero = Point3{}
)

// Pt2 builds a Point2 from any numeric coordinates.
func Pt2[T Scalar](x, y T) Point2 { return Point2{float64(x), float64(y)} }

// Pt3 builds a Point3 from any numeric coordinates.
func Pt3[T Scalar](x, y, z T) Point3 { return Point3{float64(x), float64(y), float64(z)} }

// DistanceTo returns the Euclidean distance between p and o.
func (p Point2) DistanceTo(o Point2) float64 {
	dx, dy := p.X-o.X, p.Y-o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add translates p by v.
func (p Point2) Add(v Vector2) Point2 { return Point2{p.X + v.X, p.Y + v.Y} }

// Sub translates p by -v.
func (p Point2) Sub(v Vector2) Point2 { return Point2{p.X - v.X, p.Y - v.Y} }

// VectorTo returns the displacement from p to o.
func (p Point2) VectorTo(o Point2) Vector2 { return Vector2{o.X - p.X, o.Y - p.Y} }

// Equal compares coordinates exactly.
func (p Point2) Equal(o Point2) bool { return p.X == o.X && p.Y == o.Y }

// EqualWithin compares coordinates within t.
func (p Point2) EqualWithin(o Point2, t Tolerance) bool {
	return t.Equal(p.X, o.X) && t.Equal(p.Y, o.Y)
}

func (p Point2) Hash() uint64 { return hashFloats(p.X, p.Y) }

func (p Point2) String() string { return fmt.Sprintf("Point2(%g, %g)", p.X, p.Y) }

// Point3FromPoint2 lifts p onto the z = 0 plane.
func Point3FromPoint2(p Point2) Point3 { return Point3{p.X, p.Y, 0} }

// DistanceTo returns the Euclidean distance between p and o.
func (p Point3) DistanceTo(o Point3) float64 { return Distance3(p.X, p.Y, p.Z, o.X, o.Y, o.Z) }

// Add translates p by v.
func (p Point3) Add(v Vector3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// Sub translates p by -v.
func (p Point3) Sub(v Vector3) Point3 { return Point3{p.X - v.X, p.Y - v.Y, p.Z - v.Z} }

// VectorTo returns the displacement from p to o.
func (p Point3) VectorTo(o Point3) Vector3 { return Vector3{o.X - p.X, o.Y - p.Y, o.Z - p.Z} }

// Equal compares coordinates exactly.
// AddPoint adds o to p component-wise.
func (p Point3) AddPoint(o Point3) Point3 { return Point3{p.X + o.X, p.Y + o.Y, p.Z + o.Z} }

// SubPoint subtracts o from p component-wise.
func (p Point3) SubPoint(o Point3) Point3 { return Point3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// MulPoint multiplies p by o component-wise.
func (p Point3) MulPoint(o Point3) Point3 { return Point3{p.X * o.X, p.Y * o.Y, p.Z * o.Z} }

// DivPoint divides p by o component-wise. It fails when any component of o is 0.
func (p Point3) DivPoint(o Point3) (Point3, error) {
	if o.X == 0 || o.Y == 0 || o.Z == 0 {
		return Point3{}, newError("point3 div", ErrDivideByZero).WithContext("divisor", o)
	}
	return Point3{p.X / o.X, p.Y / o.Y, p.Z / o.Z}, nil
}

func (p Point3) Equal(o Point3) bool { return p.X == o.X && p.Y == o.Y && p.Z == o.Z }

func (p Point3) Hash() uint64 { return hashFloats(p.X, p.Y, p.Z) }

func (p Point3) String() string { return fmt.Sprintf("Point3(%g, %g, %g)", p.X, p.Y, p.Z) }
