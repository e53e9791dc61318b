// Copyright 2018 The Cockroach Authors.
// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

// Map is an implementation of an augmented red-black tree, following the
// "Introduction to Algorithms" (Cormen et al, 3rd ed.) chapter 13 red-black
// tree and the chapter 14 augmentation scheme. The augmentation is a pure
// function of a node's entry and its children's augmentations, recomputed
// bottom-up after every structural mutation.
//
// Write operations are not safe for concurrent use by multiple goroutines.
// Read operations are safe only while no write is in flight.
type Map[K, V, A any, AP Aug[K, V, A]] struct {
	root *node[K, V, A]

	// sentinel is a shared dummy node standing in for every absent child and
	// for the root's parent, so that fix-up can read colors and children
	// uniformly without branching on emptiness. It is black, its
	// augmentation is never read, and its child links self-loop.
	sentinel *node[K, V, A]

	length int
	cmp    func(K, K) int
	eq     func(K, K) bool
}

// MakeMap constructs a Map ordered by cmp. Keys are identical for lookup
// and removal purposes when cmp reports 0.
func MakeMap[K, V, A any, AP Aug[K, V, A]](cmp func(K, K) int) Map[K, V, A, AP] {
	return MakeMapWithEquality[K, V, A, AP](cmp, func(a, b K) bool { return cmp(a, b) == 0 })
}

// MakeMapWithEquality constructs a Map ordered by cmp whose lookup and
// removal identity is eq. eq must imply cmp == 0 but may be finer, e.g.
// intervals ordered by start yet identified by their (start, end) pair.
func MakeMapWithEquality[K, V, A any, AP Aug[K, V, A]](
	cmp func(K, K) int, eq func(K, K) bool,
) Map[K, V, A, AP] {
	s := &node[K, V, A]{c: black}
	s.left, s.right, s.parent = s, s, s
	return Map[K, V, A, AP]{root: s, sentinel: s, cmp: cmp, eq: eq}
}

// Len returns the number of entries currently in the tree.
func (t *Map[K, V, A, AP]) Len() int {
	return t.length
}

// Reset removes all entries from the tree.
func (t *Map[K, V, A, AP]) Reset() {
	t.root = t.sentinel
	t.length = 0
}

// Get returns the value of the first entry identified with k.
func (t *Map[K, V, A, AP]) Get(k K) (v V, ok bool) {
	if x := t.find(k); x != t.sentinel {
		return x.value, true
	}
	return v, false
}

// Insert adds an entry to the tree. Entries are never replaced: a key whose
// ordering ties an existing entry routes to the right of it.
func (t *Map[K, V, A, AP]) Insert(k K, v V) {
	z := &node[K, V, A]{
		key: k, value: v, c: red,
		left: t.sentinel, right: t.sentinel, parent: t.sentinel,
	}
	// Seed the augmentation so fix-up rotations read a consistent value.
	AP(&z.aug).Update(k, v, nil, nil)

	y, x := t.sentinel, t.root
	for x != t.sentinel {
		y = x
		if t.cmp(k, x.key) < 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	z.parent = y
	switch {
	case y == t.sentinel:
		t.root = z
	case t.cmp(k, y.key) < 0:
		y.left = z
	default:
		y.right = z
	}
	t.insertFixup(z)
	// The path from z to the root is final only once fix-up has finished
	// relocating nodes, so the ancestor recomputation runs last.
	t.updateToRoot(z)
	t.length++
}

// Delete removes the first entry identified with k, returning it. Removing
// an absent key is a no-op.
func (t *Map[K, V, A, AP]) Delete(k K) (removedK K, removedV V, removed bool) {
	z := t.find(k)
	if z == t.sentinel {
		return removedK, removedV, false
	}

	// lowest is the lowest node whose subtree composition changes: the
	// spliced node's parent or, when a successor is promoted, the
	// successor's original parent (the successor itself when it is the
	// direct right child). The augmentation pass starts there after fix-up.
	lowest := z.parent
	y := z
	yc := y.c
	var x *node[K, V, A]
	switch {
	case z.left == t.sentinel:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.sentinel:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.min(z.right)
		yc = y.c
		x = y.right
		if y.parent == z {
			x.parent = y // x may be the sentinel
			lowest = y
		} else {
			lowest = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.c = z.c
	}
	if yc == black {
		t.deleteFixup(x)
	}
	t.updateToRoot(lowest)
	t.length--
	return z.key, z.value, true
}

// find locates the first entry identified with k. Entries whose ordering
// ties k form a contiguous in-order run, but rotations can spread the run
// across both subtrees of any tying node, so the search descends to the
// leftmost tying node and scans the run forward until eq matches.
func (t *Map[K, V, A, AP]) find(k K) *node[K, V, A] {
	x, first := t.root, t.sentinel
	for x != t.sentinel {
		c := t.cmp(k, x.key)
		if c == 0 {
			first = x
		}
		if c <= 0 {
			x = x.left
		} else {
			x = x.right
		}
	}
	for n := first; n != t.sentinel && t.cmp(k, n.key) == 0; n = t.successor(n) {
		if t.eq(k, n.key) {
			return n
		}
	}
	return t.sentinel
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *Map[K, V, A, AP]) transplant(u, v *node[K, V, A]) {
	if u.parent == t.sentinel {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

func (t *Map[K, V, A, AP]) min(x *node[K, V, A]) *node[K, V, A] {
	for x.left != t.sentinel {
		x = x.left
	}
	return x
}

func (t *Map[K, V, A, AP]) max(x *node[K, V, A]) *node[K, V, A] {
	for x.right != t.sentinel {
		x = x.right
	}
	return x
}

// successor returns the next in-order node, or the sentinel.
func (t *Map[K, V, A, AP]) successor(x *node[K, V, A]) *node[K, V, A] {
	if x.right != t.sentinel {
		return t.min(x.right)
	}
	y := x.parent
	for y != t.sentinel && x == y.right {
		x, y = y, y.parent
	}
	return y
}

// predecessor returns the previous in-order node, or the sentinel.
func (t *Map[K, V, A, AP]) predecessor(x *node[K, V, A]) *node[K, V, A] {
	if x.left != t.sentinel {
		return t.max(x.left)
	}
	y := x.parent
	for y != t.sentinel && x == y.left {
		x, y = y, y.parent
	}
	return y
}

// augOf returns the augmentation of the subtree rooted at x, or nil when x
// is the sentinel.
func (t *Map[K, V, A, AP]) augOf(x *node[K, V, A]) *A {
	if x == t.sentinel {
		return nil
	}
	return &x.aug
}

// update recomputes x's augmentation from its entry and its children.
func (t *Map[K, V, A, AP]) update(x *node[K, V, A]) {
	AP(&x.aug).Update(x.key, x.value, t.augOf(x.left), t.augOf(x.right))
}

// updateToRoot recomputes the augmentation of every node from x to the
// root, strictly bottom-up. The walk never stops early: a splice can
// relocate nodes above x, leaving an ancestor stale even when a lower
// node's recomputed value is unchanged.
func (t *Map[K, V, A, AP]) updateToRoot(x *node[K, V, A]) {
	for x != t.sentinel {
		t.update(x)
		x = x.parent
	}
}

// rotateLeft moves x down to the left, replacing it with its right child.
// The two endpoints have their augmentations recomputed immediately,
// down-moved node first, so the up-moved node reads consistent children.
func (t *Map[K, V, A, AP]) rotateLeft(x *node[K, V, A]) {
	y := x.right
	x.right = y.left
	if y.left != t.sentinel {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	t.update(x)
	t.update(y)
}

// rotateRight moves x down to the right, replacing it with its left child.
func (t *Map[K, V, A, AP]) rotateRight(x *node[K, V, A]) {
	y := x.left
	x.left = y.right
	if y.right != t.sentinel {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == t.sentinel {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
	t.update(x)
	t.update(y)
}

// insertFixup restores the red-black coloring invariants after inserting
// the red node z, per CLRS chapter 13.3.
func (t *Map[K, V, A, AP]) insertFixup(z *node[K, V, A]) {
	for z.parent.c == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right
			if y.c == red {
				z.parent.c = black
				y.c = black
				z.parent.parent.c = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.rotateLeft(z)
				}
				z.parent.c = black
				z.parent.parent.c = red
				t.rotateRight(z.parent.parent)
			}
		} else {
			// mirror image of the above
			y := z.parent.parent.left
			if y.c == red {
				z.parent.c = black
				y.c = black
				z.parent.parent.c = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.c = black
				z.parent.parent.c = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.c = black
}

// deleteFixup repairs the black-height deficit left at x after a black node
// was spliced out, per CLRS chapter 13.4.
func (t *Map[K, V, A, AP]) deleteFixup(x *node[K, V, A]) {
	for x != t.root && x.c == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.c == red {
				w.c = black
				x.parent.c = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.c == black && w.right.c == black {
				w.c = red
				x = x.parent
			} else {
				if w.right.c == black {
					w.left.c = black
					w.c = red
					t.rotateRight(w)
					w = x.parent.right
				}
				w.c = x.parent.c
				x.parent.c = black
				w.right.c = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else {
			// mirror image of the above
			w := x.parent.left
			if w.c == red {
				w.c = black
				x.parent.c = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.c == black && w.left.c == black {
				w.c = red
				x = x.parent
			} else {
				if w.left.c == black {
					w.right.c = black
					w.c = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.c = x.parent.c
				x.parent.c = black
				w.left.c = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.c = black
}
