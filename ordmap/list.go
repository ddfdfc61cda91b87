package ordmap

// node is a persistent singly linked list of keys, newest first. Prepend is
// O(1) and shares the whole previous list; remove copies only the prefix up
// to the removed key and shares the rest.
type node[K comparable] struct {
	key  K
	next *node[K]
}

func (n *node[K]) push(k K) *node[K] {
	return &node[K]{key: k, next: n}
}

func (n *node[K]) remove(k K) *node[K] {
	if n == nil {
		return nil
	}
	if n.key == k {
		return n.next
	}
	return &node[K]{key: n.key, next: n.next.remove(k)}
}

// collect returns the keys in insertion order (oldest first), i.e. the
// reverse of the list order. size must equal the list length.
func (n *node[K]) collect(size int) []K {
	arr := make([]K, size)
	i := size - 1
	for cur := n; cur != nil; cur = cur.next {
		arr[i] = cur.key
		i--
	}
	return arr
}
