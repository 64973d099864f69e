package geometry

// Lengthed is implemented by one-dimensional primitives.
type Lengthed interface {
	Length() float64
}

// Shape2D is implemented by closed planar shapes.
type Shape2D interface {
	Area() float64
	Perimeter() float64
}

// Solid is implemented by closed 3D shapes.
type Solid interface {
	Volume() float64
	SurfaceArea() float64
}

var (
	_ Lengthed = LineSegment{}
	_ Shape2D  = Rectangle{}
	_ Shape2D  = Circle{}
	_ Shape2D  = Triangle{}
	_ Shape2D  = Polygon{}
	_ Solid    = Cube{}
)
