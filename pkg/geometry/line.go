package geometry

import "fmt"

// LineSegment is the straight segment between two points. The endpoints may coincide.
type LineSegment struct {
	P1, P2 Point2
}

// Line2 is an alias kept for callers that name segments by their dimension.
type Line2 = LineSegment

// NewLineSegment returns the segment from p1 to p2.
func NewLineSegment(p1, p2 Point2) LineSegment { return LineSegment{P1: p1, P2: p2} }

// LineSegmentOf returns the segment between two coordinate pairs.
func LineSegmentOf(x1, y1, x2, y2 float64) LineSegment {
	return LineSegment{P1: Point2{x1, y1}, P2: Point2{x2, y2}}
}

func (l LineSegment) Length() float64 { return l.P1.DistanceTo(l.P2) }

func (l LineSegment) Midpoint() Point2 {
	return Point2{(l.P1.X + l.P2.X) / 2, (l.P1.Y + l.P2.Y) / 2}
}

// Equal compares endpoints in order.
func (l LineSegment) Equal(o LineSegment) bool { return l.P1.Equal(o.P1) && l.P2.Equal(o.P2) }

func (l LineSegment) Hash() uint64 { return hashFloats(l.P1.X, l.P1.Y, l.P2.X, l.P2.Y) }

func (l LineSegment) String() string { return fmt.Sprintf("LineSegment(%v, %v)", l.P1, l.P2) }
