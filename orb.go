package intersect

import (
	"github.com/paulmach/orb"
)

// SegmentsFromGeometry returns the line pieces of an orb geometry as segments. Rings and polygons are closed, and points are ignored.
func SegmentsFromGeometry(g orb.Geometry) []Segment {
	segs := []Segment{}
	switch g := g.(type) {
	case orb.LineString:
		segs = appendLineString(segs, g, false)
	case orb.MultiLineString:
		for _, ls := range g {
			segs = appendLineString(segs, ls, false)
		}
	case orb.Ring:
		segs = appendLineString(segs, orb.LineString(g), true)
	case orb.Polygon:
		for _, ring := range g {
			segs = appendLineString(segs, orb.LineString(ring), true)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				segs = appendLineString(segs, orb.LineString(ring), true)
			}
		}
	case orb.Bound:
		segs = appendLineString(segs, orb.LineString(g.ToRing()), true)
	case orb.Collection:
		for _, h := range g {
			segs = append(segs, SegmentsFromGeometry(h)...)
		}
	}
	return segs
}

// LineString returns the segment as an orb line string of two points.
func (s Segment) LineString() orb.LineString {
	return orb.LineString{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}}
}

func appendLineString(segs []Segment, ls orb.LineString, closed bool) []Segment {
	if len(ls) < 2 {
		return segs
	}
	for i := 1; i < len(ls); i++ {
		segs = append(segs, Segment{Point{ls[i-1][0], ls[i-1][1]}, Point{ls[i][0], ls[i][1]}})
	}
	if closed && ls[0] != ls[len(ls)-1] {
		segs = append(segs, Segment{Point{ls[len(ls)-1][0], ls[len(ls)-1][1]}, Point{ls[0][0], ls[0][1]}})
	}
	return segs
}
