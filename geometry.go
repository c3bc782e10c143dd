package intersect

import "math"

// Segments intersect when they share at least one point, this includes touching at an endpoint and overlapping collinear segments. Points and vertical segments are handled as any other segment. Coordinates within Epsilon of each other are considered equal, but the bounding boxes of both segments must overlap exactly so that an intersection always lies within the x-range of both segments.

// intersectionSegmentSegment returns the leftmost (and then lowest) point shared by segments A and B.
func intersectionSegmentSegment(a0, a1, b0, b1 Point) (Point, bool) {
	if a1.Less(a0) {
		a0, a1 = a1, a0
	}
	if b1.Less(b0) {
		b0, b1 = b1, b0
	}
	if a1.X < b0.X || b1.X < a0.X || math.Max(a0.Y, a1.Y) < math.Min(b0.Y, b1.Y) || math.Max(b0.Y, b1.Y) < math.Min(a0.Y, a1.Y) {
		return Point{}, false
	}

	da := a1.Sub(a0)
	db := b1.Sub(b0)
	la, lb := da.Length(), db.Length()
	if la < Epsilon && lb < Epsilon {
		// the bounding boxes overlap, so both points are equal
		return a0, true
	} else if la < Epsilon {
		return a0, onLine(a0, b0, db, lb)
	} else if lb < Epsilon {
		return b0, onLine(b0, a0, da, la)
	}

	div := da.PerpDot(db)
	if math.Abs(div/(la*lb)) < Epsilon {
		// parallel
		if !onLine(b0, a0, da, la) {
			return Point{}, false
		}

		// collinear and oriented in the same direction, the bounding boxes overlap so the segments overlap
		if a0.Less(b0) {
			return b0, true
		}
		return a0, true
	} else if a0.Equals(b0) {
		// handle common cases with endpoints to avoid numerical issues
		return a0, true
	} else if a1.Equals(b1) {
		return a1, true
	} else if a1.Equals(b0) {
		return b0, true
	} else if a0.Equals(b1) {
		return a0, true
	}

	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	if Interval(ta, 0.0, 1.0) && Interval(tb, 0.0, 1.0) {
		return a0.Interpolate(a1, clamp(ta, 0.0, 1.0)), true
	}
	return Point{}, false
}

// onLine returns true if p is within Epsilon of the line through p0 with direction d of length l.
func onLine(p, p0, d Point, l float64) bool {
	return math.Abs(d.PerpDot(p.Sub(p0)))/l < Epsilon
}
