package listor

// node is a single slot of the arena. Links are slot indices, never pointers,
// so they survive reallocation of the backing slice. A node whose prev equals
// its own index is the head of its chain; a node whose next equals its own
// index is the tail of its chain.
type node[T any] struct {
	item     T
	occupied bool
	prev     int
	next     int
}

// removeNode unlinks node idx from whatever chain it is in. It touches only
// link fields, never payloads.
func (l *Listor[T]) removeNode(idx int) {
	prev := l.nodes[idx].prev
	next := l.nodes[idx].next

	switch {
	case prev == idx && next == idx:
		// Isolated node, neighbors don't exist.
	case next == idx:
		// idx is the tail of its chain.
		l.nodes[prev].next = prev
	case prev == idx:
		// idx is the head of its chain.
		l.nodes[next].prev = next
	default:
		l.nodes[prev].next = next
		l.nodes[next].prev = prev
	}
}

// insertBefore threads node idx directly before node next.
func (l *Listor[T]) insertBefore(idx, next int) {
	prev := l.nodes[next].prev

	if prev == next {
		// next is the head of its chain, idx becomes the new head.
		l.nodes[next].prev = idx
		l.nodes[idx].next = next
		l.nodes[idx].prev = idx
	} else {
		l.insertBetween(idx, prev, next)
	}
}

// insertAfter threads node idx directly after node prev.
func (l *Listor[T]) insertAfter(idx, prev int) {
	next := l.nodes[prev].next

	if prev == next {
		// prev is the tail of its chain, idx becomes the new tail.
		l.nodes[prev].next = idx
		l.nodes[idx].prev = prev
		l.nodes[idx].next = idx
	} else {
		l.insertBetween(idx, prev, next)
	}
}

func (l *Listor[T]) insertBetween(idx, prev, next int) {
	l.nodes[next].prev = idx
	l.nodes[idx].next = next

	l.nodes[idx].prev = prev
	l.nodes[prev].next = idx
}
