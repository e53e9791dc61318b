package abstract

import "golang.org/x/exp/constraints"

// Compare is a comparison function over naturally ordered types.
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

// Aug is a data structure which augments a node of the tree. It is updated
// when the structure or contents of the subtree rooted at the current node
// changes.
type Aug[K, V, A any] interface {
	*A

	// Update recomputes the augmentation from the node's own entry and the
	// augmentations of its children. A nil child augmentation means the
	// corresponding subtree is empty. Update is invoked children-first, so
	// both child augmentations are consistent with their subtrees by the
	// time it runs.
	Update(key K, value V, left, right *A)
}
