package intersect

import "math/rand/v2"

// randomSegments returns n random segments. On a grid, coordinates are small integers so that shared endpoints, vertical, collinear, and zero-length segments are common.
func randomSegments(r *rand.Rand, n int, grid bool) []Segment {
	segs := make([]Segment, n)
	for i := range segs {
		if grid {
			segs[i] = Seg(float64(r.IntN(8)), float64(r.IntN(8)), float64(r.IntN(8)), float64(r.IntN(8)))
		} else {
			segs[i] = Seg(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		}
	}
	return segs
}

// bruteForce tests all pairs.
func bruteForce(segs []Segment) []Pair {
	pairs := []Pair{}
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if segs[i].Intersects(segs[j]) {
				pairs = append(pairs, Pair{i, j})
			}
		}
	}
	return pairs
}
