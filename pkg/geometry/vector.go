package geometry

import (
	"fmt"
	"math"
)

// Vector2 is a displacement in the plane.
type Vector2 struct{ X, Y float64 }

// Vector3 is a displacement in space.
type Vector3 struct{ X, Y, Z float64 }

var (
	Vector2Zero = Vector2{}
	Vector2One  = Vector2{1, 1}
	Vector3Zero = Vector3{}
	Vector3One  = Vector3{1, 1, 1}
)

// Vec2 builds a Vector2 from any numeric components.
func Vec2[T Scalar](x, y T) Vector2 { return Vector2{float64(x), float64(y)} }

// Vec3 builds a Vector3 from any numeric components.
func Vec3[T Scalar](x, y, z T) Vector3 { return Vector3{float64(x), float64(y), float64(z)} }

// Vector2FromRotation returns the unit vector at angle theta (radians).
func Vector2FromRotation(theta float64) Vector2 {
	return Vector2{math.Cos(theta), math.Sin(theta)}
}

// Vector2FromPoint returns the vector from the origin to p.
func Vector2FromPoint(p Point2) Vector2 { return Vector2{p.X, p.Y} }

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }
func (v Vector2) Mul(k float64) Vector2 { return Vector2{v.X * k, v.Y * k} }
func (v Vector2) Neg() Vector2          { return Vector2{-v.X, -v.Y} }
func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vector2) Length() float64       { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// DistanceTo returns the length of v - o.
func (v Vector2) DistanceTo(o Vector2) float64 { return v.Sub(o).Length() }

// Div scales v by 1/k.
func (v Vector2) Div(k float64) (Vector2, error) {
	if k == 0 {
		return Vector2{}, newError("vector2 div", ErrDivideByZero)
	}
	return Vector2{v.X / k, v.Y / k}, nil
}

// Rotation returns the angle of v in radians, atan2(y, x).
func (v Vector2) Rotation() float64 { return math.Atan2(v.Y, v.X) }

// Normalize returns the unit vector in the direction of v.
func (v Vector2) Normalize() (Vector2, error) {
	length := v.Length()
	if length == 0 {
		return Vector2{}, newError("vector2 normalize", ErrZeroLength)
	}
	inv := 1 / length
	return Vector2{v.X * inv, v.Y * inv}, nil
}

// NormalizeInPlace scales v to unit length. v is left unchanged on error.
func (v *Vector2) NormalizeInPlace() error {
	n, err := v.Normalize()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

// Equal compares components exactly.
func (v Vector2) Equal(o Vector2) bool { return v.X == o.X && v.Y == o.Y }

// EqualWithin compares components within t.
func (v Vector2) EqualWithin(o Vector2, t Tolerance) bool {
	return t.Equal(v.X, o.X) && t.Equal(v.Y, o.Y)
}

func (v Vector2) Hash() uint64 { return hashFloats(v.X, v.Y) }

func (v Vector2) String() string { return fmt.Sprintf("Vector2(%g, %g)", v.X, v.Y) }

// Vector3FromPoint returns the vector from the origin to p.
func Vector3FromPoint(p Point3) Vector3 { return Vector3{p.X, p.Y, p.Z} }

// Vector3Between returns the displacement from one point to another.
func Vector3Between(from, to Point3) Vector3 { return from.VectorTo(to) }

// Add returns the sum of two vectors
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference between two vectors
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales a vector by a scalar
func (v Vector3) Mul(k float64) Vector3 { return Vector3{v.X * k, v.Y * k, v.Z * k} }

func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Div scales v by 1/k.
func (v Vector3) Div(k float64) (Vector3, error) {
	if k == 0 {
		return Vector3{}, newError("vector3 div", ErrDivideByZero)
	}
	return Vector3{v.X / k, v.Y / k, v.Z / k}, nil
}

// Dot returns the dot product of two vectors
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the vector's magnitude (Euclidean norm)
func (v Vector3) Length() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vector3) DistanceTo(o Vector3) float64 { return v.Sub(o).Length() }

// Normalize returns a unit vector in the same direction
func (v Vector3) Normalize() (Vector3, error) {
	length := v.Length()
	if length == 0 {
		return Vector3{}, newError("vector3 normalize", ErrZeroLength)
	}
	return v.Mul(1 / length), nil
}

// NormalizeInPlace scales v to unit length. v is left unchanged on error.
func (v *Vector3) NormalizeInPlace() error {
	n, err := v.Normalize()
	if err != nil {
		return err
	}
	*v = n
	return nil
}

func (v Vector3) Equal(o Vector3) bool { return v.X == o.X && v.Y == o.Y && v.Z == o.Z }

func (v Vector3) Hash() uint64 { return hashFloats(v.X, v.Y, v.Z) }

func (v Vector3) String() string { return fmt.Sprintf("Vector3(%g, %g, %g)", v.X, v.Y, v.Z) }
