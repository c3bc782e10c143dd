package intersect

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestBuildPartition(t *testing.T) {
	var tts = []struct {
		segs string
		xs   Partition
	}{
		{"M0 0L4 4M0 4L2 2M2 4L4 5", Partition{0, 2, 4}},
		{"M3 0L1 0M1 1L-2 1", Partition{-2, 1, 3}},
		{"M1 0V1M1 2V3", Partition{1, math.Nextafter(1, math.Inf(1))}},
		{"", nil},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			xs := BuildPartition(MustParseSegments(tt.segs))
			test.T(t, xs, tt.xs)
		})
	}
}

func TestPartition(t *testing.T) {
	xs := Partition{0, 1, 2, 3, 4}
	test.T(t, xs.Len(), 4)
	test.T(t, Partition(nil).Len(), 0)
	test.String(t, xs.String(), "[0 1 2 3 4]")

	x0, x1, closed := xs.Range(1, 3)
	test.Float(t, x0, 1.0)
	test.Float(t, x1, 3.0)
	test.That(t, !closed)
	_, _, closed = xs.Range(2, 4)
	test.That(t, closed)

	test.That(t, xs.Owns(0, 2, 0.0))
	test.That(t, xs.Owns(0, 2, 1.5))
	test.That(t, !xs.Owns(0, 2, 2.0))
	test.That(t, xs.Owns(2, 4, 4.0))
	test.That(t, !xs.Owns(2, 4, 4.5))

	test.T(t, xs.Strip(-1.0), -1)
	test.T(t, xs.Strip(0.0), 0)
	test.T(t, xs.Strip(0.5), 0)
	test.T(t, xs.Strip(1.0), 1)
	test.T(t, xs.Strip(3.5), 3)
	test.T(t, xs.Strip(4.0), 3)
	test.T(t, xs.Strip(5.0), -1)
}
