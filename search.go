package intersect

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Result is the result of Search.
type Result struct {
	Pairs []Pair // sorted intersecting pairs
	Stats Stats
}

// ReportIntersections returns every pair of intersecting segments exactly once, using the default options. Segments are identified by their index in segs.
func ReportIntersections(segs []Segment) ([]Pair, error) {
	res, err := Search(context.Background(), segs, nil)
	if err != nil {
		return nil, err
	}
	return res.Pairs, nil
}

// Search returns every pair of intersecting segments exactly once. Segments are identified by their index in segs. No segments returns an empty result. Cancelling the context aborts the whole search and returns the context's error without pairs.
func Search(ctx context.Context, segs []Segment, opts *Options) (Result, error) {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	if len(segs) == 0 {
		return Result{Pairs: []Pair{}}, nil
	}
	for i, seg := range segs {
		if !seg.valid() {
			return Result{}, fmt.Errorf("%w: %d %v", ErrInvalidSegment, i, seg)
		}
	}

	xs := BuildPartition(segs)
	s := newSearcher(segs, xs, opts)
	S := make([]member, len(segs))
	for i := range segs {
		S[i] = member{id: i}
	}

	var err error
	if 1 < opts.Parallel {
		var g *errgroup.Group
		g, ctx = errgroup.WithContext(ctx)
		g.SetLimit(opts.Parallel)
		s.group = g
		g.Go(func() error {
			return s.treeSearch(ctx, S, 0, xs.Len(), 0)
		})
		err = g.Wait()
	} else {
		err = s.treeSearch(ctx, S, 0, xs.Len(), 0)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{
		Pairs: s.report.Pairs(),
		Stats: s.stats(),
	}, nil
}
