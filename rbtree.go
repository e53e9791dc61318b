// Package rbtree provides plain ordered map and set containers on top of
// the augmented red-black tree core in abstract, using a no-op
// augmentation.
package rbtree

import "github.com/ajwerner/rbtree/abstract"

type noopAug[K, V any] struct{}

func (a *noopAug[K, V]) Update(K, V, *noopAug[K, V], *noopAug[K, V]) {}

// Map is an ordered map. Inserting a key that is already present retains
// both entries; use Delete to drop one first if replacement is wanted.
type Map[K, V any] struct {
	t abstract.Map[K, V, noopAug[K, V], *noopAug[K, V]]
}

// NewMap constructs a Map ordered by cmp.
func NewMap[K, V any](cmp func(K, K) int) *Map[K, V] {
	return &Map[K, V]{t: abstract.MakeMap[K, V, noopAug[K, V]](cmp)}
}

func (m *Map[K, V]) Insert(k K, v V) {
	m.t.Insert(k, v)
}

func (m *Map[K, V]) Delete(k K) (removed bool) {
	_, _, removed = m.t.Delete(k)
	return removed
}

func (m *Map[K, V]) Get(k K) (V, bool) {
	return m.t.Get(k)
}

func (m *Map[K, V]) Len() int {
	return m.t.Len()
}

// MapIterator traverses a Map in ascending key order.
type MapIterator[K, V any] struct {
	it abstract.Iterator[K, V, noopAug[K, V], *noopAug[K, V]]
}

func (m *Map[K, V]) MakeIter() MapIterator[K, V] {
	return MapIterator[K, V]{it: m.t.MakeIter()}
}

func (it *MapIterator[K, V]) First()      { it.it.First() }
func (it *MapIterator[K, V]) Next()       { it.it.Next() }
func (it *MapIterator[K, V]) Valid() bool { return it.it.Valid() }
func (it *MapIterator[K, V]) Key() K      { return it.it.Key() }
func (it *MapIterator[K, V]) Value() V    { return it.it.Value() }

// Set is an ordered multiset.
type Set[K any] struct {
	m Map[K, struct{}]
}

// NewSet constructs a Set ordered by cmp.
func NewSet[K any](cmp func(K, K) int) *Set[K] {
	return &Set[K]{m: Map[K, struct{}]{t: abstract.MakeMap[K, struct{}, noopAug[K, struct{}]](cmp)}}
}

func (s *Set[K]) Insert(k K) {
	s.m.Insert(k, struct{}{})
}

func (s *Set[K]) Delete(k K) bool {
	return s.m.Delete(k)
}

func (s *Set[K]) Contains(k K) bool {
	_, ok := s.m.Get(k)
	return ok
}

func (s *Set[K]) Len() int {
	return s.m.Len()
}

// SetIterator traverses a Set in ascending order.
type SetIterator[K any] struct {
	it MapIterator[K, struct{}]
}

func (s *Set[K]) MakeIter() SetIterator[K] {
	return SetIterator[K]{it: s.m.MakeIter()}
}

func (it *SetIterator[K]) First()      { it.it.First() }
func (it *SetIterator[K]) Next()       { it.it.Next() }
func (it *SetIterator[K]) Valid() bool { return it.it.Valid() }
func (it *SetIterator[K]) Cur() K      { return it.it.Key() }
