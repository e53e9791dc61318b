package interval

import "github.com/ajwerner/rbtree/abstract"

// Iterator traverses the intervals in ascending Start order.
type Iterator struct {
	it abstract.Iterator[Interval, int64, aug, *aug]
}

// MakeIter returns a new Iterator object. It is not safe to continue using
// an Iterator after modifications are made to the tree.
func (t *Tree) MakeIter() Iterator {
	return Iterator{it: t.t.MakeIter()}
}

func (it *Iterator) First()        { it.it.First() }
func (it *Iterator) Next()         { it.it.Next() }
func (it *Iterator) Valid() bool   { return it.it.Valid() }
func (it *Iterator) Cur() Interval { return it.it.Key() }
func (it *Iterator) Value() int64  { return it.it.Value() }
