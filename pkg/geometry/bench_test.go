package geometry

import "testing"

func BenchmarkRectangleIntersectsCircle(b *testing.B) {
	r, _ := NewRectangle(0, 0, 10, 10)
	c, _ := NewCircle(5, -1, 2)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = r.IntersectsCircle(c)
	}
}

func BenchmarkPolygonContains(b *testing.B) {
	p := NewPolygon(lShape...)
	pt := Point2{0.5, 1.5}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.Contains(pt)
	}
}

func BenchmarkTriangleArea(b *testing.B) {
	tri, _ := NewTriangle(Point2{0, 0}, Point2{3, 0}, Point2{0, 4})

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = tri.Area()
	}
}

func BenchmarkVectorNDot(b *testing.B) {
	v, _ := NewVectorNFill(64, 1.5)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = v.Dot(v)
	}
}
