package abstract

// LowLevelIterator exposes the tree structure to specialization packages:
// child and parent moves plus read access to subtree augmentations. No node
// references escape; positions live inside the iterator, so a caller cannot
// hold a node across a mutation.
type LowLevelIterator[K, V, A any, AP Aug[K, V, A]] Iterator[K, V, A, AP]

// LowLevel converts an Iterator to expose the low-level navigation surface.
func LowLevel[K, V, A any, AP Aug[K, V, A]](
	it *Iterator[K, V, A, AP],
) *LowLevelIterator[K, V, A, AP] {
	return (*LowLevelIterator[K, V, A, AP])(it)
}

// Reset positions the iterator at the root. On an empty tree the iterator
// is left invalid.
func (i *LowLevelIterator[K, V, A, AP]) Reset() {
	i.n = i.r.root
}

// Seek positions the iterator at the first entry identified with k,
// returning false and leaving the iterator invalid when there is none.
func (i *LowLevelIterator[K, V, A, AP]) Seek(k K) bool {
	i.n = i.r.find(k)
	return i.Valid()
}

// Valid returns whether the iterator is positioned at an entry.
func (i *LowLevelIterator[K, V, A, AP]) Valid() bool {
	return i.n != i.r.sentinel
}

func (i *LowLevelIterator[K, V, A, AP]) Key() K {
	return i.n.key
}

func (i *LowLevelIterator[K, V, A, AP]) Value() V {
	return i.n.value
}

// Aug returns the augmentation of the subtree rooted at the current node.
func (i *LowLevelIterator[K, V, A, AP]) Aug() *A {
	return &i.n.aug
}

// LeftAug returns the augmentation of the current node's left subtree, or
// nil when that subtree is empty.
func (i *LowLevelIterator[K, V, A, AP]) LeftAug() *A {
	return i.r.augOf(i.n.left)
}

// RightAug returns the augmentation of the current node's right subtree, or
// nil when that subtree is empty.
func (i *LowLevelIterator[K, V, A, AP]) RightAug() *A {
	return i.r.augOf(i.n.right)
}

// Left descends into the left child. Descending into an empty subtree
// leaves the iterator invalid.
func (i *LowLevelIterator[K, V, A, AP]) Left() {
	i.n = i.n.left
}

// Right descends into the right child.
func (i *LowLevelIterator[K, V, A, AP]) Right() {
	i.n = i.n.right
}

// Parent ascends to the current node's parent. Ascending from the root
// leaves the iterator invalid.
func (i *LowLevelIterator[K, V, A, AP]) Parent() {
	i.n = i.n.parent
}

// IsRoot reports whether the iterator is positioned at the tree's root.
func (i *LowLevelIterator[K, V, A, AP]) IsRoot() bool {
	return i.n == i.r.root
}

// IsRightChild reports whether the current node is its parent's right
// child. The root is neither child.
func (i *LowLevelIterator[K, V, A, AP]) IsRightChild() bool {
	return i.n.parent != i.r.sentinel && i.n == i.n.parent.right
}
