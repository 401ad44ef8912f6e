package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedDifference(t *testing.T) {
	cases := []struct {
		name string
		a, b []Entity
		want []Entity
	}{
		{"both empty", nil, nil, nil},
		{"empty b", []Entity{1, 2}, nil, []Entity{1, 2}},
		{"empty a", nil, []Entity{1, 2}, nil},
		{"equal", []Entity{1, 2, 3}, []Entity{1, 2, 3}, nil},
		{"churn", []Entity{2, 3, 4}, []Entity{1, 2, 3}, []Entity{4}},
		{"disjoint", []Entity{1, 3, 5}, []Entity{2, 4, 6}, []Entity{1, 3, 5}},
		{"tail", []Entity{1, 2, 9, 10}, []Entity{2}, []Entity{1, 9, 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sortedDifference(tc.a, tc.b))
		})
	}

	assert.Equal(t, []string{"a"}, sortedDifference([]string{"a", "b"}, []string{"b", "c"}))
}

func TestLiveSetCompareAndCommit(t *testing.T) {
	var l liveSet

	current := append(l.scratch(4), 3, 1, 2, 1)
	sorted, added, removed := l.compare(current)
	assert.Equal(t, []Entity{1, 2, 3}, sorted)
	assert.Equal(t, []Entity{1, 2, 3}, added)
	assert.Nil(t, removed)
	assert.Empty(t, l.snapshot(), "compare must not touch the history")

	l.commit(sorted)
	assert.Equal(t, []Entity{1, 2, 3}, l.snapshot())

	current = append(l.scratch(3), 4, 2, 3)
	sorted, added, removed = l.compare(current)
	assert.Equal(t, []Entity{4}, added)
	assert.Equal(t, []Entity{1}, removed)
	l.commit(sorted)
	assert.Equal(t, []Entity{2, 3, 4}, l.snapshot())
	assert.Equal(t, 2, l.compares)
}

func TestLiveSetReusesBuffer(t *testing.T) {
	var l liveSet
	first := append(l.scratch(8), 1, 2)
	sorted, _, _ := l.compare(first)
	l.commit(sorted)

	second := append(l.scratch(2), 1, 2)
	sorted, _, _ = l.compare(second)
	l.commit(sorted)

	// The third run gets the first run's buffer back.
	third := l.scratch(2)
	assert.Equal(t, 8, cap(third))
	assert.Equal(t, []Entity{1, 2}, l.snapshot())
}
