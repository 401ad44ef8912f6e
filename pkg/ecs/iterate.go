package ecs

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// iterator is the iteration phase of a run. It calls update for every entity
// of view and, when track is set, appends the visited entities to visited.
// Diffing and notification never happen inside an iterator.
type iterator[R any] interface {
	iterate(view View[R], update func(Entity, R) error, visited []Entity, track bool) ([]Entity, error)
}

func newIterator[R any](workers int) iterator[R] {
	if workers <= 1 {
		return sequential[R]{}
	}
	return partitioned[R]{workers: workers}
}

// sequential visits the view in store order on the calling goroutine.
type sequential[R any] struct{}

func (sequential[R]) iterate(view View[R], update func(Entity, R) error, visited []Entity, track bool) ([]Entity, error) {
	n := view.Len()

	if !track {
		for i := 0; i < n; i++ {
			if err := update(view.At(i)); err != nil {
				return visited, err
			}
		}
		return visited, nil
	}

	for i := 0; i < n; i++ {
		e, row := view.At(i)
		visited = append(visited, e)
		if err := update(e, row); err != nil {
			return visited, err
		}
	}
	return visited, nil
}

// partitioned splits the view into contiguous ranges, one per worker, and
// joins them before returning. The first failing update cancels the ranges
// that have not finished yet. A panicking update is re-raised on the calling
// goroutine after the join, as it would be in sequential mode.
type partitioned[R any] struct {
	workers int
}

func (p partitioned[R]) iterate(view View[R], update func(Entity, R) error, visited []Entity, track bool) ([]Entity, error) {
	n := view.Len()
	if n == 0 {
		return visited, nil
	}

	parts := min(p.workers, n)
	size := (n + parts - 1) / parts
	seen := make([][]Entity, parts)

	var panicked atomic.Pointer[panicValue]

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(p.workers)

	for k := 0; k < parts; k++ {
		lo := k * size
		hi := min(lo+size, n)
		if lo >= hi {
			break
		}

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					panicked.CompareAndSwap(nil, &panicValue{r})
					err = errPartitionPanicked
				}
			}()

			var local []Entity
			if track {
				local = make([]Entity, 0, hi-lo)
			}
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return nil
				}
				e, row := view.At(i)
				if track {
					local = append(local, e)
				}
				if err := update(e, row); err != nil {
					return err
				}
			}
			seen[k] = local
			return nil
		})
	}

	err := g.Wait()
	if pv := panicked.Load(); pv != nil {
		panic(pv.value)
	}
	if err != nil {
		return visited, err
	}

	if track {
		for _, part := range seen {
			visited = append(visited, part...)
		}
	}
	return visited, nil
}

type panicValue struct {
	value any
}

// errPartitionPanicked cancels the sibling ranges of a panicking update.
var errPartitionPanicked = errors.New("update panicked")
