package geometry

import (
	"fmt"
	"math"
)

// Circle is a disk with a strictly positive radius.
type Circle struct {
	center Point2
	radius float64
}

// UnitCircle is centered on the origin with radius 1.
var UnitCircle = Circle{radius: 1}

// NewCircle returns the circle centered at (x, y).
func NewCircle(x, y, radius float64) (Circle, error) {
	return NewCircleAt(Point2{x, y}, radius)
}

func NewCircleAt(center Point2, radius float64) (Circle, error) {
	if radius <= 0 {
		return Circle{}, newError("circle", ErrNonPositiveRadius).WithContext("radius", radius)
	}
	return Circle{center: center, radius: radius}, nil
}

func (c Circle) Center() Point2  { return c.center }
func (c Circle) Radius() float64 { return c.radius }
func (c Circle) Left() float64   { return c.center.X - c.radius }
func (c Circle) Right() float64  { return c.center.X + c.radius }
func (c Circle) Top() float64    { return c.center.Y - c.radius }
func (c Circle) Bottom() float64 { return c.center.Y + c.radius }

func (c Circle) Diameter() float64      { return c.radius * 2 }
func (c Circle) Area() float64          { return math.Pi * c.radius * c.radius }
func (c Circle) Circumference() float64 { return 2 * math.Pi * c.radius }
func (c Circle) Perimeter() float64     { return c.Circumference() }

// Bounds returns the smallest rectangle enclosing c.
func (c Circle) Bounds() Rectangle {
	return Rectangle{left: c.Left(), top: c.Top(), width: c.Diameter(), height: c.Diameter()}
}

// Intersects reports whether c and o overlap or touch.
func (c Circle) Intersects(o Circle) bool {
	dx := o.center.X - c.center.X
	dy := o.center.Y - c.center.Y
	sum := c.radius + o.radius
	return sum*sum >= dx*dx+dy*dy
}

// Contains reports whether p lies inside c or on its boundary.
func (c Circle) Contains(p Point2) bool {
	dx := p.X - c.center.X
	dy := p.Y - c.center.Y
	return c.radius*c.radius >= dx*dx+dy*dy
}

// IntersectsRectangle is the exact circle/rectangle overlap test.
func (c Circle) IntersectsRectangle(r Rectangle) bool { return r.IntersectsCircle(c) }

// IntersectsRectangleCorners is the corner-sampling approximation, see
// Rectangle.IntersectsCircleCorners.
func (c Circle) IntersectsRectangleCorners(r Rectangle) bool { return r.IntersectsCircleCorners(c) }

// ContainsRectangle reports whether every corner of r lies in c.
func (c Circle) ContainsRectangle(r Rectangle) bool {
	for _, corner := range r.Corners() {
		if !c.Contains(corner) {
			return false
		}
	}
	return true
}

// Translate moves the center by v.
func (c Circle) Translate(v Vector2) Circle { return Circle{center: c.center.Add(v), radius: c.radius} }

// TranslateBack moves the center by -v.
func (c Circle) TranslateBack(v Vector2) Circle { return Circle{center: c.center.Sub(v), radius: c.radius} }

// Mul scales the radius by k. The center does not move.
func (c Circle) Mul(k float64) (Circle, error) { return c.withRadius("circle mul", c.radius*k) }

// Div scales the radius by 1/k. The center does not move.
func (c Circle) Div(k float64) (Circle, error) {
	if k == 0 {
		return Circle{}, newError("circle div", ErrDivideByZero)
	}
	return c.withRadius("circle div", c.radius/k)
}

func (c Circle) withRadius(op string, radius float64) (Circle, error) {
	if radius <= 0 {
		err := newError(op, ErrNonPositiveRadius).WithContext("radius", radius)
		err.Kind = KindDegenerateOperation
		return Circle{}, err
	}
	return Circle{center: c.center, radius: radius}, nil
}

// Equal compares center and radius exactly.
func (c Circle) Equal(o Circle) bool { return c.center.Equal(o.center) && c.radius == o.radius }

func (c Circle) Hash() uint64 { return hashFloats(c.center.X, c.center.Y, c.radius) }

func (c Circle) String() string {
	return fmt.Sprintf("Circle(X:%g, Y:%g, Radius:%g)", c.center.X, c.center.Y, c.radius)
}
