package intersect

import (
	"math"
	"slices"
	"strings"
)

// Partition is a sorted list of distinct x-coordinates x_0 < x_1 < ... < x_m that divides the x-axis into m elementary strips [x_i,x_{i+1}). The last strip is closed at x_m.
type Partition []float64

// BuildPartition returns the partition of all segment endpoints. If all endpoints have the same x-coordinate, a single strip of minimal width is returned. It returns nil for no segments.
func BuildPartition(segs []Segment) Partition {
	if len(segs) == 0 {
		return nil
	}

	xs := make(Partition, 0, 2*len(segs))
	for _, s := range segs {
		xs = append(xs, s.A.X, s.B.X)
	}
	slices.Sort(xs)
	xs = slices.Compact(xs)
	if len(xs) == 1 {
		// all segments are vertical on the same coordinate
		xs = append(xs, math.Nextafter(xs[0], math.Inf(1)))
	}
	return xs
}

// Len returns the number of elementary strips.
func (xs Partition) Len() int {
	if len(xs) == 0 {
		return 0
	}
	return len(xs) - 1
}

// Range returns the x-range [x_b,x_e) of range node (b,e), and whether it is closed at x_e.
func (xs Partition) Range(b, e int) (float64, float64, bool) {
	return xs[b], xs[e], e == len(xs)-1
}

// Owns returns true if x lies in the x-range of range node (b,e).
func (xs Partition) Owns(b, e int, x float64) bool {
	x0, x1, closed := xs.Range(b, e)
	return x0 <= x && (x < x1 || closed && x == x1)
}

// Strip returns the index of the elementary strip that contains x, or -1 if x is outside of the partition.
func (xs Partition) Strip(x float64) int {
	if len(xs) < 2 || x < xs[0] || xs[len(xs)-1] < x {
		return -1
	}
	i, found := slices.BinarySearch(xs, x)
	if !found {
		i--
	} else if i == len(xs)-1 {
		i-- // closed last strip
	}
	return i
}

func (xs Partition) String() string {
	sb := strings.Builder{}
	sb.WriteString("[")
	for i, x := range xs {
		if i != 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(ftos(x))
	}
	sb.WriteString("]")
	return sb.String()
}
