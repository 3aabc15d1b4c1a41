package splay

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
	"pgregory.net/rapid"
)

func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	default:
		return 1
	}
}

func collect[T any](t *Tree[T]) []T {
	var out []T
	it := t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		out = append(out, it.Cur())
	}
	return out
}

func TestEmptyTree(t *testing.T) {
	tr := New(Compare[int])
	require.Nil(t, tr.Search(1))
	_, found := tr.Delete(1)
	require.False(t, found)
	require.Equal(t, 0, tr.Len())
	require.Nil(t, tr.Root())
}

func TestInsertMakesRoot(t *testing.T) {
	tr := New(Compare[int])
	for _, v := range []int{10, 5, 15, 3, 7} {
		n := tr.Insert(v)
		require.Same(t, n, tr.Root())
		require.Equal(t, v, tr.Root().Value())
		require.NoError(t, tr.t.Verify())
	}
	require.Equal(t, 5, tr.Len())
	require.Equal(t, []int{3, 5, 7, 10, 15}, collect(tr))
}

func TestSearchSplaysAccessedNode(t *testing.T) {
	tr := New(Compare[int])
	for v := 200; v >= 100; v -= 10 {
		n := tr.Insert(v)
		require.Same(t, n, tr.Root())
	}
	require.Equal(t, 11, tr.Len())

	n := tr.Search(100)
	require.NotNil(t, n)
	require.Same(t, n, tr.Root())
	require.Equal(t, 100, tr.Root().Value())
	require.NoError(t, tr.t.Verify())

	n = tr.Search(200)
	require.NotNil(t, n)
	require.Same(t, n, tr.Root())
	require.Equal(t, 200, tr.Root().Value())
	require.NoError(t, tr.t.Verify())

	// Splay back down the reshaped tree.
	n = tr.Search(100)
	require.Same(t, n, tr.Root())
	require.NoError(t, tr.t.Verify())

	var want []int
	for v := 100; v <= 200; v += 10 {
		want = append(want, v)
	}
	require.Equal(t, want, collect(tr))
}

func TestSearchMissSplaysLastVisited(t *testing.T) {
	tr := New(Compare[int])
	tr.Insert(10)
	tr.Insert(20)
	tr.Insert(30)

	// The probe for 25 bottoms out under 20, so the miss splays 20.
	require.Nil(t, tr.Search(25))
	require.Equal(t, 20, tr.Root().Value())
	require.Equal(t, []int{10, 20, 30}, collect(tr))
	require.NoError(t, tr.t.Verify())
}

func TestInsertExistingSplays(t *testing.T) {
	tr := New(Compare[int])
	tr.Insert(10)
	tr.Insert(20)
	tr.Insert(30)

	n := tr.Insert(10)
	require.Same(t, n, tr.Root())
	require.Equal(t, 10, tr.Root().Value())
	require.Equal(t, 3, tr.Len())
	require.Equal(t, []int{10, 20, 30}, collect(tr))
	require.NoError(t, tr.t.Verify())
}

func TestDelete(t *testing.T) {
	tr := New(Compare[int])
	tr.Insert(5)
	tr.Insert(3)
	tr.Insert(8)

	// 5 is splayed to the root and removed there via its successor.
	removed, found := tr.Delete(5)
	require.True(t, found)
	require.Equal(t, 5, removed)
	require.Equal(t, 2, tr.Len())
	require.Equal(t, []int{3, 8}, collect(tr))
	require.NoError(t, tr.t.Verify())

	_, found = tr.Delete(5)
	require.False(t, found)

	tr.Delete(3)
	tr.Delete(8)
	require.Equal(t, 0, tr.Len())
	require.Nil(t, tr.Root())
}

func TestSplayProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tr := New(Compare[int])
		model := map[int]bool{}

		inserts := rapid.SliceOf(rapid.IntRange(0, 63)).Draw(t, "inserts")
		for _, v := range inserts {
			n := tr.Insert(v)
			model[v] = true
			require.Same(t, n, tr.Root())
			require.Equal(t, v, tr.Root().Value())
			if err := tr.t.Verify(); err != nil {
				t.Fatalf("after insert %d: %v", v, err)
			}
		}
		require.Equal(t, len(model), tr.Len())

		searches := rapid.SliceOf(rapid.IntRange(0, 63)).Draw(t, "searches")
		for _, v := range searches {
			n := tr.Search(v)
			require.Equal(t, model[v], n != nil)
			if n != nil {
				require.Same(t, n, tr.Root())
			}
			if len(model) > 0 {
				require.NotNil(t, tr.Root())
			}
			if err := tr.t.Verify(); err != nil {
				t.Fatalf("after search %d: %v", v, err)
			}
		}

		deletes := rapid.SliceOf(rapid.IntRange(0, 63)).Draw(t, "deletes")
		for _, v := range deletes {
			_, found := tr.Delete(v)
			require.Equal(t, model[v], found)
			delete(model, v)
			if err := tr.t.Verify(); err != nil {
				t.Fatalf("after delete %d: %v", v, err)
			}
		}

		got := collect(tr)
		require.Len(t, got, len(model))
		for i, v := range got {
			require.True(t, model[v])
			if i > 0 {
				require.Less(t, got[i-1], v)
			}
		}
	})
}
