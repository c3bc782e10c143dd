package intersect

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSegments(t *testing.T) {
	var tts = []struct {
		s    string
		segs []Segment
	}{
		{"", []Segment{}},
		{"M0 0L10 10", []Segment{Seg(0, 0, 10, 10)}},
		{"M0 0L10 10M0 10L10 0", []Segment{Seg(0, 0, 10, 10), Seg(0, 10, 10, 0)}},
		{"M0,0 10,10 20,0", []Segment{Seg(0, 0, 10, 10), Seg(10, 10, 20, 0)}},
		{"M1 1l2 2m1 0l-1 -1", []Segment{Seg(1, 1, 3, 3), Seg(4, 3, 3, 2)}},
		{"M1 0V2H3v-1h-1", []Segment{Seg(1, 0, 1, 2), Seg(1, 2, 3, 2), Seg(3, 2, 3, 1), Seg(3, 1, 2, 1)}},
		{"M0 0L4 0L2 3z", []Segment{Seg(0, 0, 4, 0), Seg(4, 0, 2, 3), Seg(2, 3, 0, 0)}},
		{"M0 0L4 0L0 0Z", []Segment{Seg(0, 0, 4, 0), Seg(4, 0, 0, 0)}},
		{"M1 1L1 1", []Segment{Seg(1, 1, 1, 1)}},
		{" M 0.5 -1.5e1 L 0.25 2 ", []Segment{Seg(0.5, -15, 0.25, 2)}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			segs, err := ParseSegments(tt.s)
			test.Error(t, err)
			test.T(t, segs, tt.segs)
		})
	}
}

func TestParseSegmentsErrors(t *testing.T) {
	var tts = []struct {
		s   string
		err string
	}{
		{"0 0", "bad path: expected command at 0"},
		{"M0", "bad path: expected number at 2"},
		{"M0 0Lx", "bad path: expected number at 5"},
		{"M0 0Q1 1 2 2", "bad path: unsupported command 'Q' at 4"},
		{"M0 0L1 1z2 2", "bad path: expected command at 9"},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := ParseSegments(tt.s)
			test.That(t, err != nil)
			test.T(t, err.Error(), tt.err)
		})
	}
}

func TestSegmentString(t *testing.T) {
	seg := Seg(0, 0.5, 10, -2)
	test.String(t, seg.String(), "M0 0.5L10 -2")
	test.T(t, MustParseSegments(seg.String()), []Segment{seg})
}
