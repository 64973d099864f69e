package geometry

import (
	"math"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Polygon is a closed ring of vertices; the last vertex connects back to the
// first. Winding and self-intersection are not checked.
type Polygon struct {
	vertices []Point2
}

// NewPolygon returns a polygon over a copy of vertices.
func NewPolygon(vertices ...Point2) Polygon {
	vs := make([]Point2, len(vertices))
	copy(vs, vertices)
	return Polygon{vertices: vs}
}

// Vertices returns a copy of the vertex ring.
func (p Polygon) Vertices() []Point2 {
	vs := make([]Point2, len(p.vertices))
	copy(vs, p.vertices)
	return vs
}

// Vertex returns vertex i.
func (p Polygon) Vertex(i int) (Point2, error) {
	if i < 0 || i >= len(p.vertices) {
		return Point2{}, newError("polygon vertex", ErrIndexOutOfRange).
			WithContext("index", i).
			WithContext("len", len(p.vertices))
	}
	return p.vertices[i], nil
}

func (p Polygon) Sides() int { return len(p.vertices) }

// Area is the absolute shoelace sum.
func (p Polygon) Area() float64 {
	n := len(p.vertices)
	var sum float64
	for i := 0; i < n; i++ {
		p1, p2 := p.vertices[i], p.vertices[(i+1)%n]
		sum += p1.X*p2.Y - p1.Y*p2.X
	}
	return math.Abs(sum / 2)
}

func (p Polygon) Perimeter() float64 {
	n := len(p.vertices)
	var sum float64
	for i := 0; i < n; i++ {
		sum += p.vertices[i].DistanceTo(p.vertices[(i+1)%n])
	}
	return sum
}

// Contains runs an even-odd ray cast towards +x. Polygons with fewer than
// three vertices contain nothing.
func (p Polygon) Contains(pt Point2) bool {
	n := len(p.vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := p.vertices[i], p.vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

func (p Polygon) ContainsXY(x, y float64) bool { return p.Contains(Point2{x, y}) }

// Translate shifts every vertex by v.
func (p Polygon) Translate(v Vector2) Polygon {
	vs := make([]Point2, len(p.vertices))
	for i, vertex := range p.vertices {
		vs[i] = vertex.Add(v)
	}
	return Polygon{vertices: vs}
}

// TranslateBack shifts every vertex by -v.
func (p Polygon) TranslateBack(v Vector2) Polygon { return p.Translate(v.Neg()) }

// Bounds returns the axis-aligned box around the vertices. It fails for
// polygons whose vertices span no width or no height.
func (p Polygon) Bounds() (Rectangle, error) {
	if len(p.vertices) == 0 {
		return Rectangle{}, newError("polygon bounds", ErrDegeneratePolygon)
	}
	first := p.vertices[0]
	minX, minY, maxX, maxY := first.X, first.Y, first.X, first.Y
	for _, v := range p.vertices[1:] {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	width, height := maxX-minX, maxY-minY
	if width < Epsilon || height < Epsilon {
		return Rectangle{}, newError("polygon bounds", ErrDegeneratePolygon).
			WithContext("width", width).
			WithContext("height", height)
	}
	return Rectangle{left: minX, top: minY, width: width, height: height}, nil
}

// Equal compares vertices in order.
func (p Polygon) Equal(o Polygon) bool {
	if len(p.vertices) != len(o.vertices) {
		return false
	}
	for i := range p.vertices {
		if !p.vertices[i].Equal(o.vertices[i]) {
			return false
		}
	}
	return true
}

func (p Polygon) Hash() uint64 {
	d := xxhash.New()
	writeLen(d, len(p.vertices))
	for _, v := range p.vertices {
		writeFloats(d, v.X, v.Y)
	}
	return d.Sum64()
}

func (p Polygon) String() string {
	parts := make([]string, len(p.vertices))
	for i, v := range p.vertices {
		parts[i] = v.String()
	}
	return "Polygon[" + strings.Join(parts, ", ") + "]"
}
