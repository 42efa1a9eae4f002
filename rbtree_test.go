package persi_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrhy/persi/unsync"
)

func treeElements[T any](t unsync.RBTree[T]) []T {
	return slices.Collect(t.All())
}

func TestEmptyTree(t *testing.T) {
	tr := unsync.NewRBTree[int]()
	require.True(t, tr.IsEmpty())
	_, ok := tr.Root()
	require.False(t, ok)
	require.False(t, tr.Contains(1))
	require.Empty(t, treeElements(tr))
}

func TestLeftRightOnEmptyPanic(t *testing.T) {
	tr := unsync.NewRBTree[int]()
	require.Panics(t, func() { tr.Left() })
	require.Panics(t, func() { tr.Right() })
}

func TestLeaf(t *testing.T) {
	tr := unsync.RBLeaf(42)
	require.False(t, tr.IsEmpty())
	v, ok := tr.Root()
	require.True(t, ok)
	require.Equal(t, 42, v)
	require.True(t, tr.Left().IsEmpty())
	require.True(t, tr.Right().IsEmpty())
	require.True(t, tr.Contains(42))
	require.False(t, tr.Contains(41))
}

func TestInsertedSortsElements(t *testing.T) {
	tr := unsync.NewRBTree[int]()
	for _, x := range []int{5, 3, 8, 1, 4, 7, 9} {
		tr = tr.Inserted(x)
	}
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, treeElements(tr))
	for _, x := range []int{1, 3, 4, 5, 7, 8, 9} {
		require.True(t, tr.Contains(x))
	}
	require.False(t, tr.Contains(6))
}

func TestInsertedLeavesOldVersion(t *testing.T) {
	t1 := unsync.RBLeaf(2)
	t2 := t1.Inserted(1).Inserted(3)
	require.Equal(t, []int{2}, treeElements(t1))
	require.Equal(t, []int{1, 2, 3}, treeElements(t2))
}

func TestGetOrDefault(t *testing.T) {
	tr := unsync.RBLeaf(7)
	require.Equal(t, 7, tr.GetOrDefault(7, -1))
	require.Equal(t, -1, tr.GetOrDefault(8, -1))
}

func TestCustomComparator(t *testing.T) {
	// longest string first, ties by value
	tr := unsync.NewRBTreeFunc(func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	for _, s := range []string{"bb", "a", "dddd", "ccc"} {
		tr = tr.Inserted(s)
	}
	require.Equal(t, []string{"dddd", "ccc", "bb", "a"}, treeElements(tr))
	require.True(t, tr.Contains("ccc"))
}

type byName struct {
	name string
	age  int
}

func TestGetFunc(t *testing.T) {
	tr := unsync.NewRBTreeFunc(func(a, b byName) int {
		return strings.Compare(a.name, b.name)
	})
	tr = tr.Inserted(byName{"ana", 31})
	tr = tr.Inserted(byName{"bob", 42})

	// lookup by derived key, no full element needed
	e, ok := tr.GetFunc(func(e byName) int { return strings.Compare("bob", e.name) })
	require.True(t, ok)
	require.Equal(t, 42, e.age)
	_, ok = tr.GetFunc(func(e byName) int { return strings.Compare("eve", e.name) })
	require.False(t, ok)
}

func TestTreeIterationStopsEarly(t *testing.T) {
	tr := unsync.NewRBTree[int]()
	for x := range 100 {
		tr = tr.Inserted(x)
	}
	var seen []int
	for x := range tr.All() {
		seen = append(seen, x)
		if len(seen) == 3 {
			break
		}
	}
	require.Equal(t, []int{0, 1, 2}, seen)
}
