// Package josephus generates Josephus elimination orders: n positions stand
// in a circle and every m-th remaining position is eliminated until none is
// left. The generator drives an order-statistic tree with select and remove
// for O(n log n); a circular-simulation reference runs in O(n*m).
package josephus

import "github.com/ajwerner/rbtree/orderstat"

// Permutation returns the elimination order of positions 0..n-1, counting
// from position 0 and eliminating every m-th remaining position. m must be
// at least 1.
func Permutation(n, m int) []int {
	tree := orderstat.New[int]()
	for i := 0; i < n; i++ {
		tree.Insert(i)
	}
	order := make([]int, 0, n)
	current := 0
	for !tree.Empty() {
		current = (current + m - 1) % tree.Len()
		eliminated, err := tree.Select(current + 1) // select is 1-indexed
		if err != nil {
			panic(err) // unreachable, current is always in range
		}
		order = append(order, eliminated)
		tree.Remove(eliminated)
		if !tree.Empty() {
			current %= tree.Len()
		}
	}
	return order
}

// Naive returns the same elimination order by walking a circular array of
// survivors, skipping m-1 of them per round.
func Naive(n, m int) []int {
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	order := make([]int, 0, n)
	current := 0
	for remaining := n; remaining > 0; remaining-- {
		count := 0
		for count < m {
			if alive[current] {
				count++
				if count == m {
					break
				}
			}
			current = (current + 1) % n
		}
		alive[current] = false
		order = append(order, current)
		if remaining > 1 {
			current = (current + 1) % n
			for !alive[current] {
				current = (current + 1) % n
			}
		}
	}
	return order
}
