package ordmap

// Signal is the step function's verdict after seeing an entry.
type Signal int

const (
	// Continue proceeds to the next entry.
	Continue Signal = iota
	// Halt stops the traversal with the accumulator folded so far.
	Halt
	// Suspend pauses the traversal; the returned Reduction can be resumed
	// later from the next unvisited entry.
	Suspend
)

// StepFunc folds one entry into the accumulator and signals how the
// traversal should proceed.
type StepFunc[K comparable, V any, A any] func(e Entry[K, V], acc A) (A, Signal)

// Reduction is the outcome of a Reduce traversal: the accumulator plus a
// cursor into the remaining entries. When Suspended is true the traversal
// was paused by the step function and Resume continues it.
type Reduction[K comparable, V any, A any] struct {
	Acc       A
	Suspended bool

	entries []Entry[K, V]
	pos     int
	step    StepFunc[K, V, A]
}

// Reduce traverses m's entries in insertion order, oldest first, folding
// each into acc with step. Traversal runs until the entries are exhausted or
// step signals Halt or Suspend. The entries are snapshotted up front, which
// is safe because the map is immutable.
//
// Reduce is a free function rather than a method so the accumulator can have
// its own type parameter.
func Reduce[K comparable, V any, A any](m *OrderedMap[K, V], acc A, step StepFunc[K, V, A]) *Reduction[K, V, A] {
	r := &Reduction[K, V, A]{
		Acc:     acc,
		entries: m.Entries(),
		pos:     0,
		step:    step,
	}
	return r.run()
}

// Resume continues a suspended traversal from the next unvisited entry,
// reusing the same step function. Resuming a finished reduction returns it
// unchanged.
func (r *Reduction[K, V, A]) Resume() *Reduction[K, V, A] {
	if !r.Suspended {
		return r
	}
	r.Suspended = false
	return r.run()
}

func (r *Reduction[K, V, A]) run() *Reduction[K, V, A] {
	for r.pos < len(r.entries) {
		e := r.entries[r.pos]
		r.pos++
		acc, sig := r.step(e, r.Acc)
		r.Acc = acc
		switch sig {
		case Halt:
			return r
		case Suspend:
			r.Suspended = true
			return r
		}
	}
	return r
}

// FromEntries folds the pairs into a new map left to right via Put: a later
// duplicate key overwrites the value but keeps the first occurrence's
// position.
func FromEntries[K comparable, V any](entries []Entry[K, V]) *OrderedMap[K, V] {
	m := New[K, V]()
	for _, e := range entries {
		m = m.Put(e.Key, e.Value)
	}
	return m
}

// Each applies f to every entry in insertion order.
func Each[K comparable, V any](m *OrderedMap[K, V], f func(e Entry[K, V])) {
	Reduce(m, struct{}{}, func(e Entry[K, V], acc struct{}) (struct{}, Signal) {
		f(e)
		return acc, Continue
	})
}

// Find returns the first entry in insertion order for which pred is true,
// halting the traversal as soon as it matches.
func Find[K comparable, V any](m *OrderedMap[K, V], pred func(e Entry[K, V]) bool) (Entry[K, V], bool) {
	type result struct {
		entry Entry[K, V]
		found bool
	}
	r := Reduce(m, result{}, func(e Entry[K, V], acc result) (result, Signal) {
		if pred(e) {
			return result{entry: e, found: true}, Halt
		}
		return acc, Continue
	})
	return r.Acc.entry, r.Acc.found
}

// Take returns the first n entries in insertion order, fewer if the map is
// smaller.
func Take[K comparable, V any](m *OrderedMap[K, V], n int) []Entry[K, V] {
	if n <= 0 {
		return []Entry[K, V]{}
	}
	r := Reduce(m, make([]Entry[K, V], 0, n), func(e Entry[K, V], acc []Entry[K, V]) ([]Entry[K, V], Signal) {
		acc = append(acc, e)
		if len(acc) == n {
			return acc, Halt
		}
		return acc, Continue
	})
	return r.Acc
}

// Equal reports whether a and b hold the same entries in the same insertion
// order.
func Equal[K comparable, V comparable](a, b *OrderedMap[K, V]) bool {
	if a.Size() != b.Size() {
		return false
	}
	be := b.Entries()
	for i, e := range a.Entries() {
		if e != be[i] {
			return false
		}
	}
	return true
}
