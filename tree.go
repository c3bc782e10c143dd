package intersect

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// The x-axis is divided by the partition of all endpoints into elementary strips, and a binary range tree is built over the strips where node (b,e) covers the strips b to e-1. A segment belongs to a node when it reaches the node's x-range, so that a segment that ends exactly on a boundary reaches both sides. At every internal node with midpoint c, the node's segments are split into those that strictly span x_c and those that don't. Pairs with one spanning and one non-spanning segment are tested at the node, all other pairs are deferred to the children. At the leaves all remaining pairs are tested.
//
// Each pair has one canonical intersection point, its leftmost point, which lies on exactly one root-to-leaf path. The pair is reported at the first node on that path where exactly one of both spans the midpoint, or at the leaf if no such node exists. Each segment keeps a bitmask of the midpoints it spans along the path so that pairs separated by an ancestor are skipped in constant time.

var (
	// ErrInvalidRange is returned for a range node (b,e) with b >= e.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvariantViolation is returned when Options.Check is set and a range node holds a segment outside its range, or a pair is reported twice.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrInvalidSegment is returned for segments with NaN or infinite coordinates.
	ErrInvalidSegment = errors.New("invalid segment")
)

// Stats are statistics of a search.
type Stats struct {
	Strips   int // number of elementary strips
	Nodes    int // number of visited range nodes
	Leaves   int // number of visited elementary strips
	MaxDepth int // depth of the deepest visited range node, the root has depth zero
	Tests    int // number of true intersection tests
}

func (stats Stats) String() string {
	return fmt.Sprintf("Stats{Strips=%d Nodes=%d Leaves=%d MaxDepth=%d Tests=%d}", stats.Strips, stats.Nodes, stats.Leaves, stats.MaxDepth, stats.Tests)
}

// member is a segment of a range node's set.
type member struct {
	id   int
	mask uint64 // bit d is set when the segment strictly spans the midpoint of its ancestor at depth d
}

type searcher struct {
	segs   []Segment
	xs     Partition
	report *Report
	opts   *Options
	group  *errgroup.Group // nil when searching sequentially

	traceMu sync.Mutex

	nodes, leaves, tests, maxDepth atomic.Int64
}

func newSearcher(segs []Segment, xs Partition, opts *Options) *searcher {
	return &searcher{
		segs:   segs,
		xs:     xs,
		report: NewReport(),
		opts:   opts,
	}
}

func (s *searcher) stats() Stats {
	return Stats{
		Strips:   s.xs.Len(),
		Nodes:    int(s.nodes.Load()),
		Leaves:   int(s.leaves.Load()),
		MaxDepth: int(s.maxDepth.Load()),
		Tests:    int(s.tests.Load()),
	}
}

// treeSearch reports all intersections between segments of S that lie in the x-range of node (b,e). The masks of S must be owned by the caller, as they are updated in place.
func (s *searcher) treeSearch(ctx context.Context, S []member, b, e, depth int) error {
	if e <= b {
		return fmt.Errorf("%w: [%d,%d)", ErrInvalidRange, b, e)
	} else if err := ctx.Err(); err != nil {
		return err
	} else if len(S) == 0 {
		return nil
	}

	s.nodes.Add(1)
	for d := s.maxDepth.Load(); d < int64(depth) && !s.maxDepth.CompareAndSwap(d, int64(depth)); {
		d = s.maxDepth.Load()
	}
	if s.opts.Check {
		if err := s.checkNode(S, b, e); err != nil {
			return err
		}
	}

	if e-b == 1 {
		s.leaves.Add(1)
		s.trace(depth, "[%d,%d) S=%v", b, e, ids(S))
		return s.searchInStrip(S, b)
	}

	c := (b + e) / 2
	Q, Sp := s.split(S, c, depth)
	s.trace(depth, "[%d,%d) c=%d Q=%v S'=%v", b, e, c, ids(Q), ids(Sp))
	if err := s.intersections(Q, Sp, b, e); err != nil {
		return err
	}

	Sl := s.crossing(S, b, c)
	Sr := s.crossing(S, c, e)
	if s.group != nil && s.opts.ParallelCutoff <= len(Sl) && s.group.TryGo(func() error {
		return s.treeSearch(ctx, Sl, b, c, depth+1)
	}) {
		return s.treeSearch(ctx, Sr, c, e, depth+1)
	}
	if err := s.treeSearch(ctx, Sl, b, c, depth+1); err != nil {
		return err
	}
	return s.treeSearch(ctx, Sr, c, e, depth+1)
}

// split returns the segments Q that do not strictly span the midpoint x_c, and the segments Sp that do. The segments of S that span the midpoint get the depth bit set in their mask, the returned segments keep the masks of the ancestors only.
func (s *searcher) split(S []member, c, depth int) ([]member, []member) {
	xc := s.xs[c]
	Q := make([]member, 0, len(S))
	Sp := []member{}
	for i, m := range S {
		if s.segs[m.id].Spans(xc) {
			Sp = append(Sp, m)
			S[i].mask |= 1 << depth
		} else {
			Q = append(Q, m)
		}
	}
	return Q, Sp
}

// intersections tests every segment that spans the midpoint against every segment that does not, unless an ancestor already separated them.
func (s *searcher) intersections(Q, Sp []member, b, e int) error {
	for _, p := range Sp {
		for _, q := range Q {
			if p.mask != q.mask {
				continue
			} else if err := s.test(p.id, q.id, b, e); err != nil {
				return err
			}
		}
	}
	return nil
}

// crossing returns the segments of S that reach the x-range of node (b,c).
func (s *searcher) crossing(S []member, b, c int) []member {
	x0, x1, closed := s.xs.Range(b, c)
	R := make([]member, 0, len(S))
	for _, m := range S {
		if s.segs[m.id].Reaches(x0, x1, closed) {
			R = append(R, m)
		}
	}
	return R
}

// searchInStrip tests all pairs in the elementary strip b that no ancestor separated. Segments are sorted by their lower y-coordinate so that only pairs with overlapping y-extents are tested.
func (s *searcher) searchInStrip(S []member, b int) error {
	slices.SortFunc(S, func(m, n member) int {
		return cmp.Compare(s.segs[m.id].YLow(), s.segs[n.id].YLow())
	})
	for i, p := range S {
		yHigh := s.segs[p.id].YHigh()
		for _, q := range S[i+1:] {
			if yHigh < s.segs[q.id].YLow() {
				break
			} else if p.mask != q.mask {
				continue
			} else if err := s.test(p.id, q.id, b, b+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// test reports segments i and j when they intersect and their leftmost common point lies in the x-range of node (b,e).
func (s *searcher) test(i, j, b, e int) error {
	if j < i {
		i, j = j, i
	}
	s.tests.Add(1)

	p, q := s.segs[i], s.segs[j]
	z, ok := intersectionSegmentSegment(p.A, p.B, q.A, q.B)
	if !ok {
		return nil
	}
	x := clamp(z.X, math.Max(p.XLow(), q.XLow()), math.Min(p.XHigh(), q.XHigh()))
	if !s.xs.Owns(b, e, x) {
		return nil
	}
	if !s.report.Add(i, j) && s.opts.Check {
		return fmt.Errorf("%w: pair %v reported twice", ErrInvariantViolation, newPair(i, j))
	}
	return nil
}

func (s *searcher) checkNode(S []member, b, e int) error {
	x0, x1, closed := s.xs.Range(b, e)
	for _, m := range S {
		if !s.segs[m.id].Reaches(x0, x1, closed) {
			return fmt.Errorf("%w: segment %d does not reach range [%d,%d)", ErrInvariantViolation, m.id, b, e)
		}
	}
	return nil
}

func (s *searcher) trace(depth int, format string, a ...any) {
	if s.opts.Trace == nil {
		return
	}
	s.traceMu.Lock()
	defer s.traceMu.Unlock()
	fmt.Fprintf(s.opts.Trace, "%*s", 2*depth, "")
	fmt.Fprintf(s.opts.Trace, format, a...)
	io.WriteString(s.opts.Trace, "\n")
}

func ids(S []member) []int {
	ids := make([]int, len(S))
	for i, m := range S {
		ids[i] = m.id
	}
	return ids
}
