package ecs

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// liveSet is the matched set of the previous successful run, kept sorted.
type liveSet struct {
	entities []Entity
	spare    []Entity

	// compares counts diff computations; tests use it to prove short-circuits.
	compares int
}

// scratch hands out a buffer for the current run's visited entities.
func (l *liveSet) scratch(n int) []Entity {
	buf := l.spare[:0]
	l.spare = nil
	if cap(buf) < n {
		buf = make([]Entity, 0, n)
	}
	return buf
}

// compare sorts current in place and returns it deduplicated together with
// current − previous and previous − current, both ascending. The history is
// left untouched until commit.
func (l *liveSet) compare(current []Entity) (sorted, added, removed []Entity) {
	l.compares++
	slices.Sort(current)
	sorted = slices.Compact(current)
	added = sortedDifference(sorted, l.entities)
	removed = sortedDifference(l.entities, sorted)
	return sorted, added, removed
}

// commit replaces the history with current, which must be sorted and unique.
func (l *liveSet) commit(current []Entity) {
	l.spare = l.entities[:0]
	l.entities = current
}

func (l *liveSet) snapshot() []Entity {
	return slices.Clone(l.entities)
}

// sortedDifference returns the elements of a that are not in b. Both inputs
// must be sorted ascending; the result is too. O(len(a)+len(b)).
func sortedDifference[E constraints.Ordered](a, b []E) []E {
	var out []E
	i, j := 0, 0
	for i < len(a) {
		switch {
		case j == len(b) || a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	return out
}
