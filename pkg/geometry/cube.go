package geometry

import (
	"fmt"
	"math"
)

// Cube is an axis-aligned box given by two opposite corners. Either corner
// may hold the smaller coordinate on any axis.
type Cube struct {
	X1, Y1, Z1 float64
	X2, Y2, Z2 float64
}

// UnitCube spans (0, 0, 0) to (1, 1, 1).
var UnitCube = Cube{0, 0, 0, 1, 1, 1}

func NewCube(x1, y1, z1, x2, y2, z2 float64) Cube {
	return Cube{X1: x1, Y1: y1, Z1: z1, X2: x2, Y2: y2, Z2: z2}
}

func NewCubeFromPoints(p1, p2 Point3) Cube {
	return NewCube(p1.X, p1.Y, p1.Z, p2.X, p2.Y, p2.Z)
}

// Corner returns corner i in 0..7. Bit 1 of i selects Y2, bit 2 selects X2 and
// bit 4 selects Z2.
func (c Cube) Corner(i int) (Point3, error) {
	switch i {
	case 0:
		return Point3{c.X1, c.Y1, c.Z1}, nil
	case 1:
		return Point3{c.X1, c.Y2, c.Z1}, nil
	case 2:
		return Point3{c.X2, c.Y1, c.Z1}, nil
	case 3:
		return Point3{c.X2, c.Y2, c.Z1}, nil
	case 4:
		return Point3{c.X1, c.Y1, c.Z2}, nil
	case 5:
		return Point3{c.X1, c.Y2, c.Z2}, nil
	case 6:
		return Point3{c.X2, c.Y1, c.Z2}, nil
	case 7:
		return Point3{c.X2, c.Y2, c.Z2}, nil
	default:
		return Point3{}, newError("cube corner", ErrIndexOutOfRange).WithContext("index", i)
	}
}

// Corners returns all eight corners in Corner order.
func (c Cube) Corners() [8]Point3 {
	var out [8]Point3
	for i := range out {
		out[i], _ = c.Corner(i)
	}
	return out
}

// Min returns the corner with the smallest coordinate on every axis.
func (c Cube) Min() Point3 {
	return Point3{math.Min(c.X1, c.X2), math.Min(c.Y1, c.Y2), math.Min(c.Z1, c.Z2)}
}

// Max returns the corner with the largest coordinate on every axis.
func (c Cube) Max() Point3 {
	return Point3{math.Max(c.X1, c.X2), math.Max(c.Y1, c.Y2), math.Max(c.Z1, c.Z2)}
}

func (c Cube) extents() (x, y, z float64) {
	return math.Abs(c.X2 - c.X1), math.Abs(c.Y2 - c.Y1), math.Abs(c.Z2 - c.Z1)
}

func (c Cube) Volume() float64 {
	x, y, z := c.extents()
	return x * y * z
}

func (c Cube) SurfaceArea() float64 {
	x, y, z := c.extents()
	return 2 * (x*y + y*z + z*x)
}

// Contains reports whether p lies strictly inside c.
func (c Cube) Contains(p Point3) bool { return c.ContainsXYZ(p.X, p.Y, p.Z) }

func (c Cube) ContainsXYZ(x, y, z float64) bool {
	lo, hi := c.Min(), c.Max()
	return lo.X < x && x < hi.X &&
		lo.Y < y && y < hi.Y &&
		lo.Z < z && z < hi.Z
}

// ContainsCube reports whether o lies strictly inside c; shared faces do not count.
func (c Cube) ContainsCube(o Cube) bool {
	lo, hi := c.Min(), c.Max()
	olo, ohi := o.Min(), o.Max()
	return lo.X < olo.X && ohi.X < hi.X &&
		lo.Y < olo.Y && ohi.Y < hi.Y &&
		lo.Z < olo.Z && ohi.Z < hi.Z
}

// Intersects reports whether c and o share interior volume. Cubes that only
// touch along a face, edge or corner do not intersect.
func (c Cube) Intersects(o Cube) bool {
	lo, hi := c.Min(), c.Max()
	olo, ohi := o.Min(), o.Max()
	return lo.X < ohi.X && olo.X < hi.X &&
		lo.Y < ohi.Y && olo.Y < hi.Y &&
		lo.Z < ohi.Z && olo.Z < hi.Z
}

// Equal compares both corners exactly, in order.
func (c Cube) Equal(o Cube) bool {
	return c.X1 == o.X1 && c.Y1 == o.Y1 && c.Z1 == o.Z1 &&
		c.X2 == o.X2 && c.Y2 == o.Y2 && c.Z2 == o.Z2
}

func (c Cube) Hash() uint64 { return hashFloats(c.X1, c.Y1, c.Z1, c.X2, c.Y2, c.Z2) }

func (c Cube) String() string {
	return fmt.Sprintf("Cube(%g, %g, %g, %g, %g, %g)", c.X1, c.Y1, c.Z1, c.X2, c.Y2, c.Z2)
}
