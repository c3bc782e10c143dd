package intersect

import (
	"fmt"
	"math"
)

// Segment is a closed line segment between A and B. A segment where A equals B is a point, and a segment where A.X equals B.X is vertical; both are valid.
type Segment struct {
	A, B Point
}

// Seg returns the segment between (x0,y0) and (x1,y1).
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{Point{x0, y0}, Point{x1, y1}}
}

// XLow returns the lower end of the projection on the x-axis.
func (s Segment) XLow() float64 {
	return math.Min(s.A.X, s.B.X)
}

// XHigh returns the upper end of the projection on the x-axis.
func (s Segment) XHigh() float64 {
	return math.Max(s.A.X, s.B.X)
}

// YLow returns the lower end of the projection on the y-axis.
func (s Segment) YLow() float64 {
	return math.Min(s.A.Y, s.B.Y)
}

// YHigh returns the upper end of the projection on the y-axis.
func (s Segment) YHigh() float64 {
	return math.Max(s.A.Y, s.B.Y)
}

// Spans returns true if x lies strictly inside the projection on the x-axis.
func (s Segment) Spans(x float64) bool {
	return s.XLow() < x && x < s.XHigh()
}

// Reaches returns true if the projection on the x-axis shares at least one coordinate with [x0,x1), or with [x0,x1] when closed is set.
func (s Segment) Reaches(x0, x1 float64, closed bool) bool {
	if s.XHigh() < x0 {
		return false
	}
	lo := s.XLow()
	return lo < x1 || closed && lo == x1
}

// Intersects returns true if segments s and t share at least one point.
func (s Segment) Intersects(t Segment) bool {
	_, ok := intersectionSegmentSegment(s.A, s.B, t.A, t.B)
	return ok
}

func (s Segment) valid() bool {
	return s.A.finite() && s.B.finite()
}

// String returns the segment in SVG path notation.
func (s Segment) String() string {
	return fmt.Sprintf("M%s %sL%s %s", ftos(s.A.X), ftos(s.A.Y), ftos(s.B.X), ftos(s.B.Y))
}

// Intersects returns true if segments a and b share at least one point.
func Intersects(a, b Segment) bool {
	return a.Intersects(b)
}

////////////////////////////////////////////////////////////////

// Pair is an unordered pair of intersecting segments, given by their index into the input with I < J.
type Pair struct {
	I, J int
}

func newPair(i, j int) Pair {
	if j < i {
		i, j = j, i
	}
	return Pair{i, j}
}

// Less orders pairs by I and then by J.
func (p Pair) Less(q Pair) bool {
	return p.I < q.I || p.I == q.I && p.J < q.J
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.I, p.J)
}
