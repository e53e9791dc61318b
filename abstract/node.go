package abstract

type color int8

const (
	black color = iota
	red
)

// node is a single tree node. The parent pointer is a non-owning
// back-reference used for upward traversal during fix-up and iteration; the
// tree's shared sentinel stands in for absent children and for the root's
// parent.
type node[K, V, A any] struct {
	key    K
	value  V
	aug    A
	left   *node[K, V, A]
	right  *node[K, V, A]
	parent *node[K, V, A]
	c      color
}
