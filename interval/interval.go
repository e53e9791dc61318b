// Package interval provides a dynamic multiset of weighted half-open
// intervals, ordered by start, with O(1) queries for the total weight and
// for the maximum prefix sum of the in-order weight sequence. It is a
// red-black tree augmented with (sum, maxPrefix, argmax) subtree summaries.
package interval

import "github.com/ajwerner/rbtree/abstract"

// Interval is a half-open interval [Start, End). Ordering is by Start;
// intervals with duplicate Starts are retained and route to the right of
// the existing ones. Removal identifies an interval by its exact
// (Start, End) pair.
type Interval struct {
	Start, End int64
}

// Aggregate is the tree-wide summary: the total weight, the maximum
// cumulative weight over all prefixes of the in-order sequence, and the
// Start of the leftmost interval achieving it.
type Aggregate struct {
	Sum       int64
	MaxPrefix int64
	Argmax    int64
}

// Tree is a dynamic multiset of weighted intervals.
type Tree struct {
	t abstract.Map[Interval, int64, aug, *aug]
}

// New constructs an empty Tree.
func New() *Tree {
	return &Tree{t: abstract.MakeMapWithEquality[Interval, int64, aug](
		func(a, b Interval) int { return abstract.Compare(a.Start, b.Start) },
		func(a, b Interval) bool { return a == b },
	)}
}

// Insert adds ivl with the given weight.
func (t *Tree) Insert(ivl Interval, value int64) {
	t.t.Insert(ivl, value)
}

// Remove removes one instance of the exact (Start, End) interval,
// reporting whether one was present. Removing an absent interval is a
// no-op.
func (t *Tree) Remove(ivl Interval) (removed bool) {
	_, _, removed = t.t.Delete(ivl)
	return removed
}

// MaxPrefix returns the tree-wide Aggregate in O(1). On an empty tree the
// maximum prefix is negative infinity (math.MinInt64) and Argmax is -1.
func (t *Tree) MaxPrefix() Aggregate {
	it := t.t.MakeIter()
	ll := abstract.LowLevel(&it)
	ll.Reset()
	if !ll.Valid() {
		return Aggregate{Sum: 0, MaxPrefix: negInf, Argmax: -1}
	}
	a := ll.Aug()
	return Aggregate{Sum: a.sum, MaxPrefix: a.maxPrefix, Argmax: a.argmax}
}

// Sum returns the total weight in the tree in O(1).
func (t *Tree) Sum() int64 {
	it := t.t.MakeIter()
	ll := abstract.LowLevel(&it)
	ll.Reset()
	if !ll.Valid() {
		return 0
	}
	return ll.Aug().sum
}

// Len returns the number of intervals in the tree.
func (t *Tree) Len() int {
	return t.t.Len()
}

// Empty reports whether the tree has no intervals.
func (t *Tree) Empty() bool {
	return t.t.Len() == 0
}
