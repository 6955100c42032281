package listor

import (
	"github.com/pkg/errors"
)

// Listor is an array-backed doubly linked list. Elements live in a contiguous
// arena of slots and are addressed by the integer handle returned when they
// were inserted. Handles stay valid until the element is removed; vacated
// slots are threaded into a reclaim chain right after the live tail and are
// reused by later insertions in LIFO order, so the arena does not grow under
// balanced churn.
//
// The listor performs no internal synchronization. Concurrent mutation
// requires external locking.
type Listor[T any] struct {
	nodes []node[T]
	count int
	head  int
	tail  int

	bounded bool
}

// New creates an empty, unbounded listor with no preallocated slots.
func New[T any]() *Listor[T] {
	return create[T](0, false)
}

// WithCapacity creates an empty, unbounded listor with capacity vacant slots.
func WithCapacity[T any](capacity int) *Listor[T] {
	return create[T](capacity, false)
}

// Bounded creates an empty listor fixed to exactly capacity slots. Pushing
// into a full bounded listor fails and the arena never grows.
func Bounded[T any](capacity int) *Listor[T] {
	return create[T](capacity, true)
}

func create[T any](capacity int, bounded bool) *Listor[T] {
	l := &Listor[T]{
		nodes:   make([]node[T], capacity),
		bounded: bounded,
	}
	l.relinkVacant()
	return l
}

// relinkVacant rethreads every slot into one linear vacant chain spanning the
// whole arena, with self-referential sentinels at both ends.
func (l *Listor[T]) relinkVacant() {
	last := len(l.nodes) - 1
	for i := range l.nodes {
		l.nodes[i] = node[T]{prev: max(i-1, 0), next: min(i+1, last)}
	}
}

// Len returns the number of stored elements.
func (l *Listor[T]) Len() int {
	return l.count
}

// Clear removes all elements. Capacity is preserved: every existing slot is
// relinked as vacant and will be reused before the arena grows again.
func (l *Listor[T]) Clear() {
	l.relinkVacant()
	l.count = 0
	l.head = 0
	l.tail = 0
}

// NextVacantIndex reports the handle the next insertion would return, without
// mutating the listor. It reports false only when the listor is bounded and
// full.
func (l *Listor[T]) NextVacantIndex() (int, bool) {
	if idx, ok := l.nextFreeIdx(); ok {
		return idx, true
	}
	if l.bounded {
		return 0, false
	}
	return len(l.nodes), true
}

// nextFreeIdx finds a reusable slot. The tail slot itself is vacant only when
// the listor is empty; otherwise the reclaim chain, if nonempty, starts at
// the tail's next link.
func (l *Listor[T]) nextFreeIdx() (int, bool) {
	if l.tail >= len(l.nodes) {
		return 0, false
	}
	if !l.nodes[l.tail].occupied {
		return l.tail, true
	}
	if next := l.nodes[l.tail].next; next != l.tail {
		return next, true
	}
	return 0, false
}

// allocate picks the slot for an insertion. In unbounded mode, when no
// reusable slot exists, it appends one new vacant slot threaded directly
// after the current tail so that the slot is already in tail position.
func (l *Listor[T]) allocate() (int, bool) {
	if idx, ok := l.nextFreeIdx(); ok {
		l.count++
		return idx, true
	}
	if l.bounded {
		return 0, false
	}

	idx := len(l.nodes)
	if idx > 0 {
		l.nodes[l.tail].next = idx
	}
	l.nodes = append(l.nodes, node[T]{prev: l.tail, next: idx})

	l.count++
	return idx, true
}

// PushBack stores item at the back of the listor and returns its handle.
// It fails only when the listor is bounded and full; item is then not stored
// and the caller keeps it.
func (l *Listor[T]) PushBack(item T) (int, error) {
	idx, ok := l.allocate()
	if !ok {
		return 0, errors.New("listor is full")
	}

	// The allocated slot is guaranteed to be in tail position already.
	l.tail = idx
	l.nodes[idx].item = item
	l.nodes[idx].occupied = true

	return idx, nil
}

// PushFront stores item at the front of the listor and returns its handle.
// It fails only when the listor is bounded and full.
func (l *Listor[T]) PushFront(item T) (int, error) {
	idx, ok := l.allocate()
	if !ok {
		return 0, errors.New("listor is full")
	}

	l.nodes[idx].item = item
	l.nodes[idx].occupied = true

	if idx != l.head {
		l.removeNode(idx)
		l.insertBefore(idx, l.head)

		l.head = idx
	}

	return idx, nil
}

// PopBack removes and returns the last element.
func (l *Listor[T]) PopBack() (T, bool) {
	return l.Remove(l.tail)
}

// PopFront removes and returns the first element.
func (l *Listor[T]) PopFront() (T, bool) {
	return l.Remove(l.head)
}

// Remove removes the element stored under handle idx and returns it. A vacant
// or out-of-range handle reports false, it is not an error. Handles are raw
// slot indices: one retained past this call may observe a different element
// once the slot is reused by a later insertion.
func (l *Listor[T]) Remove(idx int) (T, bool) {
	var zero T
	if idx < 0 || idx >= len(l.nodes) || !l.nodes[idx].occupied {
		return zero, false
	}

	item := l.nodes[idx].item
	l.nodes[idx].item = zero
	l.nodes[idx].occupied = false

	if l.head != l.tail {
		if idx == l.tail {
			l.tail = l.nodes[idx].prev
		} else {
			if idx == l.head {
				l.head = l.nodes[idx].next
			}
			l.removeNode(idx)
			l.insertAfter(idx, l.tail)
		}
	}

	l.count--
	return item, true
}

// At returns a pointer to the element stored under handle idx, or nil if the
// handle is out of range or vacant. The pointer may be used to mutate the
// element in place, but is invalidated by any operation that grows the arena.
func (l *Listor[T]) At(idx int) *T {
	if idx < 0 || idx >= len(l.nodes) || !l.nodes[idx].occupied {
		return nil
	}
	return &l.nodes[idx].item
}

// MustAt is like At but panics on a vacant or out-of-range handle. Use it
// only where occupancy has been independently established.
func (l *Listor[T]) MustAt(idx int) *T {
	item := l.At(idx)
	if item == nil {
		panic("out of bounds access")
	}
	return item
}

// Front returns a pointer to the first element, or nil if the listor is
// empty.
func (l *Listor[T]) Front() *T {
	return l.At(l.head)
}

// Back returns a pointer to the last element, or nil if the listor is empty.
func (l *Listor[T]) Back() *T {
	return l.At(l.tail)
}

// Iterator iterates over the elements from front to back. The returned
// function may be ranged over any number of times; each range starts a fresh
// walk. The listor must not be mutated during a walk.
func (l *Listor[T]) Iterator() func(func(*T) bool) {
	return func(yield func(*T) bool) {
		for idx := l.head; idx < len(l.nodes); {
			n := &l.nodes[idx]
			if !n.occupied {
				return
			}
			if !yield(&n.item) {
				return
			}
			if n.next == idx {
				return
			}
			idx = n.next
		}
	}
}
