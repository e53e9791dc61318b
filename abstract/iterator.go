package abstract

// Iterator performs in-order traversal of a Map using the parent
// back-references. It is not safe to continue using an Iterator after
// modifications are made to the tree. If modifications are made, create a
// new Iterator.
type Iterator[K, V, A any, AP Aug[K, V, A]] struct {
	r *Map[K, V, A, AP]
	n *node[K, V, A]
}

// MakeIter returns a new Iterator object positioned before the first entry.
func (t *Map[K, V, A, AP]) MakeIter() Iterator[K, V, A, AP] {
	return Iterator[K, V, A, AP]{r: t, n: t.sentinel}
}

// First positions the Iterator at the smallest entry.
func (i *Iterator[K, V, A, AP]) First() {
	i.n = i.r.min(i.r.root)
}

// Last positions the Iterator at the largest entry.
func (i *Iterator[K, V, A, AP]) Last() {
	i.n = i.r.max(i.r.root)
}

// Next positions the Iterator at the entry immediately following its
// current position.
func (i *Iterator[K, V, A, AP]) Next() {
	if i.Valid() {
		i.n = i.r.successor(i.n)
	}
}

// Prev positions the Iterator at the entry immediately preceding its
// current position.
func (i *Iterator[K, V, A, AP]) Prev() {
	if i.Valid() {
		i.n = i.r.predecessor(i.n)
	}
}

// Valid returns whether the Iterator is positioned at an entry.
func (i *Iterator[K, V, A, AP]) Valid() bool {
	return i.n != i.r.sentinel
}

// Key returns the key at the Iterator's current position. It is illegal to
// call Key if the Iterator is not valid.
func (i *Iterator[K, V, A, AP]) Key() K {
	return i.n.key
}

// Value returns the value at the Iterator's current position.
func (i *Iterator[K, V, A, AP]) Value() V {
	return i.n.value
}
