// Package orderstat provides an order-statistic tree: a dynamic ordered
// multiset with O(log n) rank and select queries, implemented as a
// red-black tree augmented with subtree sizes.
package orderstat

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/ajwerner/rbtree/abstract"
)

// ErrOutOfRange is returned by Select when the requested index falls
// outside [1, Len()].
var ErrOutOfRange = errors.New("order statistic index out of range")

// Tree is an order-statistic tree. Duplicate keys are retained.
type Tree[K any] struct {
	t abstract.Map[K, struct{}, aug[K], *aug[K]]
}

// Make constructs a Tree ordered by cmp.
func Make[K any](cmp func(K, K) int) Tree[K] {
	return Tree[K]{t: abstract.MakeMap[K, struct{}, aug[K]](cmp)}
}

// New constructs a Tree over a naturally ordered key type.
func New[K constraints.Ordered]() *Tree[K] {
	t := Make(abstract.Compare[K])
	return &t
}

// Insert adds k to the multiset.
func (t *Tree[K]) Insert(k K) {
	t.t.Insert(k, struct{}{})
}

// Remove removes one instance of k, reporting whether one was present.
// Removing an absent key is a no-op.
func (t *Tree[K]) Remove(k K) (removed bool) {
	_, _, removed = t.t.Delete(k)
	return removed
}

// Select returns the i-th smallest key, 1-indexed. Selecting outside
// [1, Len()] returns an error marked with ErrOutOfRange and leaves the
// tree untouched.
func (t *Tree[K]) Select(i int) (k K, _ error) {
	if i < 1 || i > t.Len() {
		return k, errors.Mark(
			errors.Newf("select %d from %d entries", i, t.Len()), ErrOutOfRange)
	}
	it := t.t.MakeIter()
	ll := abstract.LowLevel(&it)
	ll.Reset()
	for {
		r := ll.LeftAug().sizeOrZero() + 1
		switch {
		case i == r:
			return ll.Key(), nil
		case i < r:
			ll.Left()
		default:
			i -= r
			ll.Right()
		}
	}
}

// Rank returns the 1-indexed position of k in the multiset, or -1 when k
// is absent. When k occurs more than once the rank of its first instance
// is returned. Ranks are always at least 1, so -1 never collides with a
// valid result.
func (t *Tree[K]) Rank(k K) int {
	it := t.t.MakeIter()
	ll := abstract.LowLevel(&it)
	if !ll.Seek(k) {
		return -1
	}
	r := ll.LeftAug().sizeOrZero() + 1
	for !ll.IsRoot() {
		fromRight := ll.IsRightChild()
		ll.Parent()
		if fromRight {
			r += ll.LeftAug().sizeOrZero() + 1
		}
	}
	return r
}

// Len returns the number of keys in the multiset.
func (t *Tree[K]) Len() int {
	return t.t.Len()
}

// Empty reports whether the multiset has no keys.
func (t *Tree[K]) Empty() bool {
	return t.t.Len() == 0
}

// Iterator traverses the multiset in ascending key order.
type Iterator[K any] struct {
	it abstract.Iterator[K, struct{}, aug[K], *aug[K]]
}

// MakeIter returns a new Iterator object. It is not safe to continue using
// an Iterator after modifications are made to the tree.
func (t *Tree[K]) MakeIter() Iterator[K] {
	return Iterator[K]{it: t.t.MakeIter()}
}

func (it *Iterator[K]) First()      { it.it.First() }
func (it *Iterator[K]) Next()       { it.it.Next() }
func (it *Iterator[K]) Valid() bool { return it.it.Valid() }
func (it *Iterator[K]) Cur() K      { return it.it.Key() }
