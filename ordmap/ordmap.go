package ordmap

import (
	"fmt"

	"golang.org/x/exp/maps"
)

// Entry is a single key/value pair of an OrderedMap.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is an immutable map that remembers the order in which keys were
// first inserted. Every mutating operation returns a new map and leaves the
// receiver untouched, so a held reference never observes a change.
//
// Keys are stored newest-first in a persistent list and reversed on read;
// updating an existing key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	order  *node[K]
	lookup map[K]V
	size   int
}

// New returns an empty OrderedMap.
func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		order:  nil,
		lookup: make(map[K]V),
		size:   0,
	}
}

// Contains reports whether k is present, regardless of its value.
func (m *OrderedMap[K, V]) Contains(k K) bool {
	_, ok := m.lookup[k]
	return ok
}

// Get returns the value stored under k and whether k is present. A stored
// zero value is still present; presence is never inferred from the value.
func (m *OrderedMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.lookup[k]
	return v, ok
}

// GetOr returns the value stored under k, or def if k is absent.
func (m *OrderedMap[K, V]) GetOr(k K, def V) V {
	if v, ok := m.lookup[k]; ok {
		return v
	}
	return def
}

// Put returns a map with v stored under k. A new key is appended to the
// insertion order; an existing key keeps its position and only the value
// changes.
func (m *OrderedMap[K, V]) Put(k K, v V) *OrderedMap[K, V] {
	lookup := maps.Clone(m.lookup)
	lookup[k] = v
	if m.Contains(k) {
		return &OrderedMap[K, V]{order: m.order, lookup: lookup, size: m.size}
	}
	return &OrderedMap[K, V]{order: m.order.push(k), lookup: lookup, size: m.size + 1}
}

// PutIfAbsent behaves like Put when k is absent and returns the receiver
// unchanged when k is already present.
func (m *OrderedMap[K, V]) PutIfAbsent(k K, v V) *OrderedMap[K, V] {
	if m.Contains(k) {
		return m
	}
	return m.Put(k, v)
}

// PutNew behaves like Put when k is absent and fails with a KeyConflictError
// when k is already present.
func (m *OrderedMap[K, V]) PutNew(k K, v V) (*OrderedMap[K, V], error) {
	if m.Contains(k) {
		return nil, &KeyConflictError[K]{Key: k, Contents: m.String()}
	}
	return m.Put(k, v), nil
}

// Delete returns a map without k. Deleting an absent key returns the
// receiver unchanged.
func (m *OrderedMap[K, V]) Delete(k K) *OrderedMap[K, V] {
	if !m.Contains(k) {
		return m
	}
	lookup := maps.Clone(m.lookup)
	delete(lookup, k)
	return &OrderedMap[K, V]{order: m.order.remove(k), lookup: lookup, size: m.size - 1}
}

// Pop removes k and returns its former value, whether k was present, and the
// resulting map. For an absent key it returns the zero value, false, and the
// receiver unchanged.
func (m *OrderedMap[K, V]) Pop(k K) (V, bool, *OrderedMap[K, V]) {
	v, ok := m.lookup[k]
	if !ok {
		return v, false, m
	}
	return v, true, m.Delete(k)
}

// UpdateOp tells GetAndUpdate what to do with the entry after the callback
// has seen the current value.
type UpdateOp int

const (
	// UpdateSet stores the callback's next value under the key.
	UpdateSet UpdateOp = iota
	// UpdatePop removes the key instead of storing a value.
	UpdatePop
)

// UpdateFunc receives the current value of a key (the zero value and false
// when absent) and returns the value to hand back to the caller, the value
// to store, and whether to store or pop.
type UpdateFunc[V any] func(cur V, ok bool) (ret V, next V, op UpdateOp)

// GetAndUpdate is the combined read-transform-write primitive: it applies f
// to the current value of k, then either stores f's next value via Put or
// removes the key via Pop semantics.
func (m *OrderedMap[K, V]) GetAndUpdate(k K, f UpdateFunc[V]) (V, *OrderedMap[K, V]) {
	cur, ok := m.lookup[k]
	ret, next, op := f(cur, ok)
	if op == UpdatePop {
		return ret, m.Delete(k)
	}
	return ret, m.Put(k, next)
}

// Size returns the number of keys. It is cached, never recomputed.
func (m *OrderedMap[K, V]) Size() int {
	return m.size
}

// IsEmpty reports whether the map holds no keys.
func (m *OrderedMap[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Keys returns the keys in insertion order, oldest first. The slice is
// freshly allocated on every call.
func (m *OrderedMap[K, V]) Keys() []K {
	return m.order.collect(m.size)
}

// Values returns the values ordered to match Keys position for position.
func (m *OrderedMap[K, V]) Values() []V {
	keys := m.Keys()
	arr := make([]V, 0, m.size)
	for _, k := range keys {
		arr = append(arr, m.lookup[k])
	}
	return arr
}

// Entries returns the key/value pairs in insertion order.
func (m *OrderedMap[K, V]) Entries() []Entry[K, V] {
	keys := m.Keys()
	arr := make([]Entry[K, V], 0, m.size)
	for _, k := range keys {
		arr = append(arr, Entry[K, V]{Key: k, Value: m.lookup[k]})
	}
	return arr
}

// Slice returns up to length entries starting at insertion-order position
// start. Out-of-range requests are clamped to the entries that exist; there
// is no error and no padding.
func (m *OrderedMap[K, V]) Slice(start, length int) []Entry[K, V] {
	if start < 0 || length <= 0 || start >= m.size {
		return []Entry[K, V]{}
	}
	end := start + length
	if end > m.size {
		end = m.size
	}
	return m.Entries()[start:end]
}

func (m *OrderedMap[K, V]) String() string {
	return fmt.Sprint(m.Entries())
}
