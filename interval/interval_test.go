package interval

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxPrefix(t *testing.T) {
	tree := New()
	tree.Insert(Interval{0, 5}, 10)
	tree.Insert(Interval{5, 10}, -5)
	tree.Insert(Interval{10, 15}, 8)
	tree.Insert(Interval{15, 20}, -3)

	// Cumulative sums in start order are 10, 5, 13, 10.
	require.Equal(t, int64(10), tree.Sum())
	require.Equal(t, Aggregate{Sum: 10, MaxPrefix: 13, Argmax: 10}, tree.MaxPrefix())

	require.True(t, tree.Remove(Interval{10, 15}))
	require.Equal(t, int64(2), tree.Sum())
	require.Equal(t, Aggregate{Sum: 2, MaxPrefix: 10, Argmax: 0}, tree.MaxPrefix())
}

func TestEmptyAggregate(t *testing.T) {
	tree := New()
	require.True(t, tree.Empty())
	require.Equal(t, int64(0), tree.Sum())
	require.Equal(t, Aggregate{Sum: 0, MaxPrefix: math.MinInt64, Argmax: -1}, tree.MaxPrefix())
	require.False(t, tree.Remove(Interval{0, 1}))
}

func TestLeftmostTieBreak(t *testing.T) {
	tree := New()
	tree.Insert(Interval{0, 10}, 5)
	tree.Insert(Interval{10, 20}, -5)
	tree.Insert(Interval{20, 30}, 5)

	// Prefixes 5, 0, 5 tie at 5; the leftmost achiever wins.
	require.Equal(t, Aggregate{Sum: 5, MaxPrefix: 5, Argmax: 0}, tree.MaxPrefix())
}

func TestDuplicateStarts(t *testing.T) {
	tree := New()
	tree.Insert(Interval{5, 10}, 1)
	tree.Insert(Interval{5, 7}, 2)
	tree.Insert(Interval{5, 9}, 3)
	require.Equal(t, 3, tree.Len())

	// Duplicate starts route right: in-order follows insertion order.
	it := tree.MakeIter()
	it.First()
	for _, exp := range []Interval{{5, 10}, {5, 7}, {5, 9}} {
		require.True(t, it.Valid())
		require.Equal(t, exp, it.Cur())
		it.Next()
	}

	// Removal matches the exact (Start, End) pair.
	require.True(t, tree.Remove(Interval{5, 7}))
	require.False(t, tree.Remove(Interval{5, 8}))
	require.Equal(t, Aggregate{Sum: 4, MaxPrefix: 4, Argmax: 5}, tree.MaxPrefix())
}

func TestRemoveOlderDuplicateStart(t *testing.T) {
	tree := New()
	tree.Insert(Interval{5, 10}, 1)
	tree.Insert(Interval{5, 7}, 2)
	tree.Insert(Interval{5, 9}, 3)

	// The third insert rebalances, which can leave an earlier entry with the
	// same start in a left subtree. Exact-pair removal must still reach it.
	require.True(t, tree.Remove(Interval{5, 10}))
	require.Equal(t, 2, tree.Len())
	require.Equal(t, Aggregate{Sum: 5, MaxPrefix: 5, Argmax: 5}, tree.MaxPrefix())

	require.True(t, tree.Remove(Interval{5, 9}))
	require.True(t, tree.Remove(Interval{5, 7}))
	require.True(t, tree.Empty())
}

func TestRandomizedDuplicateStarts(t *testing.T) {
	const ops = 2000
	tree := New()
	var entries []refEntry
	used := map[Interval]bool{}
	for op := 0; op < ops; op++ {
		if len(entries) == 0 || rand.Float64() < 0.6 {
			// Starts collide constantly; only the (Start, End) pair is unique.
			ivl := Interval{Start: int64(rand.Intn(8))}
			ivl.End = ivl.Start + 1 + int64(rand.Intn(1<<20))
			for used[ivl] {
				ivl.End = ivl.Start + 1 + int64(rand.Intn(1<<20))
			}
			used[ivl] = true
			e := refEntry{ivl: ivl, val: int64(rand.Intn(201) - 100)}
			tree.Insert(e.ivl, e.val)
			// Duplicate starts route right, so the new entry lands after the
			// run of entries sharing its start.
			i := sort.Search(len(entries), func(i int) bool {
				return entries[i].ivl.Start > e.ivl.Start
			})
			entries = append(entries, refEntry{})
			copy(entries[i+1:], entries[i:])
			entries[i] = e
		} else {
			i := rand.Intn(len(entries))
			require.True(t, tree.Remove(entries[i].ivl))
			delete(used, entries[i].ivl)
			entries = append(entries[:i], entries[i+1:]...)
		}
		require.Equal(t, len(entries), tree.Len())
		require.Equal(t, refAggregate(entries), tree.MaxPrefix())
	}
	for len(entries) > 0 {
		i := rand.Intn(len(entries))
		require.True(t, tree.Remove(entries[i].ivl))
		entries = append(entries[:i], entries[i+1:]...)
	}
	require.True(t, tree.Empty())
}

func TestRoundTrip(t *testing.T) {
	tree := New()
	tree.Insert(Interval{0, 2}, 4)
	tree.Insert(Interval{2, 4}, -1)
	tree.Insert(Interval{4, 6}, 2)
	before := tree.MaxPrefix()

	tree.Insert(Interval{1, 3}, 100)
	require.True(t, tree.Remove(Interval{1, 3}))

	require.Equal(t, 3, tree.Len())
	require.Equal(t, before, tree.MaxPrefix())
}

type refEntry struct {
	ivl Interval
	val int64
}

// refAggregate recomputes the aggregate by scanning the reference slice in
// order.
func refAggregate(entries []refEntry) Aggregate {
	agg := Aggregate{Sum: 0, MaxPrefix: math.MinInt64, Argmax: -1}
	var run int64
	for _, e := range entries {
		run += e.val
		agg.Sum += e.val
		if run > agg.MaxPrefix {
			agg.MaxPrefix = run
			agg.Argmax = e.ivl.Start
		}
	}
	return agg
}

func TestRandomized(t *testing.T) {
	const ops = 2000
	tree := New()
	var entries []refEntry
	used := map[int64]bool{}
	for op := 0; op < ops; op++ {
		if len(entries) == 0 || rand.Float64() < 0.6 {
			// Distinct starts keep the reference model's removal identity
			// unambiguous.
			start := int64(rand.Intn(1 << 20))
			for used[start] {
				start = int64(rand.Intn(1 << 20))
			}
			used[start] = true
			e := refEntry{
				ivl: Interval{Start: start, End: start + int64(rand.Intn(100))},
				val: int64(rand.Intn(201) - 100),
			}
			tree.Insert(e.ivl, e.val)
			i := sort.Search(len(entries), func(i int) bool {
				return entries[i].ivl.Start > e.ivl.Start
			})
			entries = append(entries, refEntry{})
			copy(entries[i+1:], entries[i:])
			entries[i] = e
		} else {
			i := rand.Intn(len(entries))
			require.True(t, tree.Remove(entries[i].ivl))
			delete(used, entries[i].ivl.Start)
			entries = append(entries[:i], entries[i+1:]...)
		}
		require.Equal(t, len(entries), tree.Len())
		require.Equal(t, refAggregate(entries), tree.MaxPrefix())
	}

	it := tree.MakeIter()
	it.First()
	for _, e := range entries {
		require.True(t, it.Valid())
		require.Equal(t, e.ivl, it.Cur())
		require.Equal(t, e.val, it.Value())
		it.Next()
	}
	require.False(t, it.Valid())
}
