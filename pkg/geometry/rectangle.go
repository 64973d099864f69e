package geometry

import (
	"fmt"
	"math"
)

// Rectangle is an axis-aligned box with y growing downwards: Top <= Bottom
// and Left <= Right. Width and height are always positive and are stored as
// given, so they survive large offsets.
type Rectangle struct {
	left, top     float64
	width, height float64
}

// UnitRectangle spans (0, 0) to (1, 1).
var UnitRectangle = Rectangle{0, 0, 1, 1}

// NewRectangle returns the rectangle with top-left corner (x, y).
func NewRectangle(x, y, width, height float64) (Rectangle, error) {
	if err := checkDimensions("rectangle", width, height); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{left: x, top: y, width: width, height: height}, nil
}

// NewRectangleSize returns a rectangle anchored at the origin.
func NewRectangleSize(width, height float64) (Rectangle, error) {
	return NewRectangle(0, 0, width, height)
}

// NewRectangleAt returns the rectangle centered on center.
func NewRectangleAt(center Point2, width, height float64) (Rectangle, error) {
	if err := checkDimensions("rectangle", width, height); err != nil {
		return Rectangle{}, err
	}
	return Rectangle{
		left:   center.X - width/2,
		top:    center.Y - height/2,
		width:  width,
		height: height,
	}, nil
}

func checkDimensions(op string, width, height float64) error {
	if width < Epsilon {
		return newError(op, ErrNonPositiveWidth).WithContext("width", width)
	}
	if height < Epsilon {
		return newError(op, ErrNonPositiveHeight).WithContext("height", height)
	}
	return nil
}

func (r Rectangle) Left() float64   { return r.left }
func (r Rectangle) Right() float64  { return r.left + r.width }
func (r Rectangle) Top() float64    { return r.top }
func (r Rectangle) Bottom() float64 { return r.top + r.height }
func (r Rectangle) X() float64      { return r.left }
func (r Rectangle) Y() float64      { return r.top }
func (r Rectangle) Width() float64  { return r.width }
func (r Rectangle) Height() float64 { return r.height }

func (r Rectangle) TopLeft() Point2     { return Point2{r.left, r.top} }
func (r Rectangle) TopRight() Point2    { return Point2{r.Right(), r.top} }
func (r Rectangle) BottomLeft() Point2  { return Point2{r.left, r.Bottom()} }
func (r Rectangle) BottomRight() Point2 { return Point2{r.Right(), r.Bottom()} }

// Corners returns the corners clockwise from the top-left.
func (r Rectangle) Corners() [4]Point2 {
	return [4]Point2{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Location is the top-left corner.
func (r Rectangle) Location() Point2 { return r.TopLeft() }

// Size is the (width, height) extent.
func (r Rectangle) Size() Vector2 { return Vector2{r.width, r.height} }

func (r Rectangle) Center() Point2 {
	return Point2{r.left + r.width/2, r.top + r.height/2}
}

func (r Rectangle) Area() float64 { return r.width * r.height }

func (r Rectangle) Perimeter() float64 { return (r.width + r.height) * 2 }

// Contains reports whether p lies inside r or on its boundary.
func (r Rectangle) Contains(p Point2) bool { return r.ContainsXY(p.X, p.Y) }

func (r Rectangle) ContainsXY(x, y float64) bool {
	return x >= r.left && x <= r.Right() && y >= r.top && y <= r.Bottom()
}

// ContainsRectangle reports whether o lies entirely within r. Shared edges count.
func (r Rectangle) ContainsRectangle(o Rectangle) bool {
	return o.left >= r.left && o.Right() <= r.Right() && o.top >= r.top && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o overlap or touch.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.Right() >= o.left &&
		r.left <= o.Right() &&
		r.Bottom() >= o.top &&
		r.top <= o.Bottom()
}

// IntersectsCircle reports whether c overlaps or touches r, by clamping the
// circle center onto r and comparing the squared distance with the radius.
func (r Rectangle) IntersectsCircle(c Circle) bool {
	nx := Clamp(c.center.X, r.left, r.Right())
	ny := Clamp(c.center.Y, r.top, r.Bottom())
	dx, dy := c.center.X-nx, c.center.Y-ny
	return dx*dx+dy*dy <= c.radius*c.radius
}

// IntersectsCircleCorners is the corner-sampling test: true when r contains
// the circle center or c contains a corner of r. It misses circles that clip
// an edge without reaching a corner; use IntersectsCircle for the exact test.
func (r Rectangle) IntersectsCircleCorners(c Circle) bool {
	if r.Contains(c.center) {
		return true
	}
	for _, corner := range r.Corners() {
		if c.Contains(corner) {
			return true
		}
	}
	return false
}

// Union returns the smallest rectangle containing both r1 and r2. The result
// is never narrower or shorter than either input.
func Union(r1, r2 Rectangle) Rectangle {
	left := math.Min(r1.left, r2.left)
	top := math.Min(r1.top, r2.top)
	width := math.Max(r1.Right(), r2.Right()) - left
	height := math.Max(r1.Bottom(), r2.Bottom()) - top
	return Rectangle{
		left:   left,
		top:    top,
		width:  max(width, r1.width, r2.width),
		height: max(height, r1.height, r2.height),
	}
}

// Scale resizes r by independent factors, keeping the top-left corner in place.
func (r Rectangle) Scale(widthScale, heightScale float64) (Rectangle, error) {
	if widthScale < Epsilon {
		return Rectangle{}, newError("rectangle scale", ErrNonPositiveScale).WithContext("width_scale", widthScale)
	}
	if heightScale < Epsilon {
		return Rectangle{}, newError("rectangle scale", ErrNonPositiveScale).WithContext("height_scale", heightScale)
	}
	return r.resize("rectangle scale", widthScale, heightScale)
}

// Translate shifts r by v.
func (r Rectangle) Translate(v Vector2) Rectangle {
	return Rectangle{left: r.left + v.X, top: r.top + v.Y, width: r.width, height: r.height}
}

// TranslateBack shifts r by -v.
func (r Rectangle) TranslateBack(v Vector2) Rectangle { return r.Translate(v.Neg()) }

// Mul scales both dimensions by k, keeping the top-left corner in place.
func (r Rectangle) Mul(k float64) (Rectangle, error) {
	if k < 0 {
		return Rectangle{}, newError("rectangle mul", ErrNegativeScale).WithContext("scale", k)
	}
	return r.resize("rectangle mul", k, k)
}

// Div scales both dimensions by 1/k, keeping the top-left corner in place.
func (r Rectangle) Div(k float64) (Rectangle, error) {
	if k == 0 {
		return Rectangle{}, newError("rectangle div", ErrDivideByZero)
	}
	if k < 0 {
		return Rectangle{}, newError("rectangle div", ErrNegativeScale).WithContext("scale", k)
	}
	return r.resize("rectangle div", 1/k, 1/k)
}

func (r Rectangle) resize(op string, ws, hs float64) (Rectangle, error) {
	width, height := r.width*ws, r.height*hs
	if width < Epsilon || height < Epsilon {
		return Rectangle{}, newError(op, ErrNonPositiveScale).
			WithContext("width", width).
			WithContext("height", height)
	}
	return Rectangle{left: r.left, top: r.top, width: width, height: height}, nil
}

// Equal compares location and size exactly.
func (r Rectangle) Equal(o Rectangle) bool {
	return r.left == o.left && r.top == o.top && r.width == o.width && r.height == o.height
}

func (r Rectangle) Hash() uint64 { return hashFloats(r.left, r.top, r.width, r.height) }

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(X:%g, Y:%g, Width:%g, Height:%g)", r.left, r.top, r.width, r.height)
}
