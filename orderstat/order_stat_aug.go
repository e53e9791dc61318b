package orderstat

type aug[K any] struct {
	// size is the number of entries rooted at the current subtree.
	size int
}

// Update recomputes the subtree size from the node's children.
func (a *aug[K]) Update(_ K, _ struct{}, left, right *aug[K]) {
	a.size = 1 + left.sizeOrZero() + right.sizeOrZero()
}

func (a *aug[K]) sizeOrZero() int {
	if a == nil {
		return 0
	}
	return a.size
}
